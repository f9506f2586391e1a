package fastpoly

import (
	"container/list"
	"math/big"
	"strconv"
	"strings"

	"github.com/jba/omap"
	"github.com/pkg/errors"
)

// A Polynomial is the canonical sorted set of Monomials (polySet) plus the
// array of per-variable OccurrenceLists, phase bits, and optional modular
// reduction state, as described in spec.md §3.
type Polynomial struct {
	varSize  int
	polySet  *omap.MapFunc[*Monomial, *Monomial]
	refLists []*list.List
	phases   []bool

	modEnabled bool
	modNumber  *big.Int

	proof *ProofSession
}

// NewPolynomial returns an empty polynomial capable of holding variables
// 0..varSize-1.
func NewPolynomial(varSize int) *Polynomial {
	return &Polynomial{
		varSize:  varSize,
		polySet:  omap.NewMapFunc[*Monomial, *Monomial](monomialCompare),
		refLists: newOccurrenceLists(varSize),
		phases:   newPhases(varSize),
	}
}

// newPhases returns a phase-bit slice of length n with every entry true:
// phases[v] is false only once v has been negated an odd number of times,
// so an unmodified variable starts true.
func newPhases(n int) []bool {
	phases := make([]bool, n)
	for i := range phases {
		phases[i] = true
	}
	return phases
}

// VarSize returns the polynomial's declared variable capacity.
func (p *Polynomial) VarSize() int { return p.varSize }

// Len returns the number of monomials currently stored.
func (p *Polynomial) Len() int { return p.polySet.Len() }

// SetModReduction enables or disables modular reduction of coefficients.
// Enabling it immediately reduces every existing coefficient, erasing any
// monomial whose residue becomes zero.
func (p *Polynomial) SetModReduction(enabled bool, modNumber *big.Int) {
	p.modEnabled = enabled
	if enabled {
		p.modNumber = new(big.Int).Set(modNumber)
		p.reduceAllCoefficients()
	}
}

func (p *Polynomial) reduceAllCoefficients() {
	var toErase []*Monomial
	for _, m := range p.polySet.All() {
		reduceModNonNegative(m.Coef, p.modNumber)
		if m.Coef.Sign() == 0 {
			toErase = append(toErase, m)
		}
	}
	for _, m := range toErase {
		p.EraseMonomial(m)
	}
}

// AddMonomial implements spec.md §4.3's add_monomial: p <- p + m.
//
// If an equal-shape monomial already exists, its coefficient is summed in
// place (erasing it if the sum becomes zero, or zero after modular
// reduction). Otherwise m is copied into canonical storage and, for each
// variable it contains, appended to that variable's occurrence list.
//
// Returns the canonical monomial now in the set (nil if the net effect was
// an erasure or the addition summed to zero without ever having existed).
func (p *Polynomial) AddMonomial(m *Monomial) *Monomial {
	if existing, ok := p.polySet.Get(m); ok {
		existing.Coef.Add(existing.Coef, m.Coef)
		if p.modEnabled {
			reduceModNonNegative(existing.Coef, p.modNumber)
		}
		if existing.Coef.Sign() == 0 {
			p.EraseMonomial(existing)
			return nil
		}
		return existing
	}

	canonical := m.shallowCopy()
	if p.modEnabled {
		reduceModNonNegative(canonical.Coef, p.modNumber)
	}
	if canonical.Coef.Sign() == 0 {
		return nil
	}
	p.polySet.Set(canonical, canonical)
	for _, v := range canonical.vars {
		pushOccurrence(p.refLists[v], v, canonical)
	}
	return canonical
}

// EraseMonomial removes m from the polynomial: every back-handle of m is
// unlinked from its variable's occurrence list, then m is removed from
// polySet.
func (p *Polynomial) EraseMonomial(m *Monomial) {
	for _, v := range m.vars {
		unlinkOccurrence(p.refLists[v], v, m)
	}
	p.polySet.Delete(m)
}

// AddPolynomial adds every monomial of q to p via AddMonomial. It fails with
// a *CapacityError, without mutating p, if q's capacity exceeds p's.
func (p *Polynomial) AddPolynomial(q *Polynomial) error {
	if q.varSize > p.varSize {
		return &CapacityError{Have: p.varSize, Want: q.varSize}
	}
	for _, m := range q.polySet.All() {
		p.AddMonomial(m)
	}
	return nil
}

// FindContaining returns every monomial in p that contains every variable
// of mon. It picks the shortest occurrence list among mon's variables and
// filters by Contains on the rest, so the cost is proportional to the
// shortest relevant list rather than the whole polynomial. Returns nil if
// mon is the constant monomial or any of its variables has an empty
// occurrence list.
func (p *Polynomial) FindContaining(mon *Monomial) []*Monomial {
	if mon.size == 0 {
		return nil
	}
	shortest := mon.vars[0]
	for _, v := range mon.vars[1:] {
		if p.refLists[v].Len() < p.refLists[shortest].Len() {
			shortest = v
		}
	}
	if p.refLists[shortest].Len() == 0 {
		return nil
	}

	var out []*Monomial
	for e := p.refLists[shortest].Front(); e != nil; e = e.Next() {
		cand := e.Value.(*occurrenceEntry).mono
		containsAll := true
		for _, v := range mon.vars {
			if v == shortest {
				continue
			}
			if !cand.Contains(v) {
				containsAll = false
				break
			}
		}
		if containsAll {
			out = append(out, cand)
		}
	}
	return out
}

// FindExact is FindContaining narrowed to full monomial equality (same
// shape, i.e. same size and index sequence).
func (p *Polynomial) FindExact(mon *Monomial) *Monomial {
	for _, cand := range p.FindContaining(mon) {
		if cand.size == mon.size {
			return cand
		}
	}
	if mon.size == 0 {
		if m, ok := p.polySet.Get(mon); ok {
			return m
		}
	}
	return nil
}

// ContainsVar reports whether variable v currently occurs in some monomial
// of p. Returns an *OutOfRangeError, without mutation, if v is outside p's
// declared capacity.
func (p *Polynomial) ContainsVar(v VarIndex) (bool, error) {
	if v < 0 || v >= p.varSize {
		return false, &OutOfRangeError{Index: v, Limit: p.varSize}
	}
	return p.refLists[v].Len() > 0, nil
}

// Resize clears p's contents and reallocates its occurrence lists and phase
// bits for a new capacity.
func (p *Polynomial) Resize(newVarSize int) {
	p.varSize = newVarSize
	p.polySet = omap.NewMapFunc[*Monomial, *Monomial](monomialCompare)
	p.refLists = newOccurrenceLists(newVarSize)
	p.phases = newPhases(newVarSize)
}

// Terms returns the monomials currently stored, in ascending order.
func (p *Polynomial) Terms() []*Monomial {
	out := make([]*Monomial, 0, p.polySet.Len())
	for _, m := range p.polySet.All() {
		out = append(out, m)
	}
	return out
}

// GetShortestModel returns the monomial with the fewest variables (nil if
// p is empty), useful for presenting a minimal satisfying/falsifying term.
func (p *Polynomial) GetShortestModel() *Monomial {
	var best *Monomial
	for _, m := range p.polySet.All() {
		if best == nil || m.size < best.size {
			best = m
		}
	}
	return best
}

// MultiplyPoly returns the full cross-product a*b, computed via
// Monomial.Multiply over every pair of terms.
func MultiplyPoly(a, b *Polynomial) *Polynomial {
	varSize := a.varSize
	if b.varSize > varSize {
		varSize = b.varSize
	}
	out := NewPolynomial(varSize)
	for _, ta := range a.polySet.All() {
		for _, tb := range b.polySet.All() {
			out.AddMonomial(Multiply(ta, tb))
		}
	}
	return out
}

// ReplaceVarByPoly substitutes variable v by the polynomial sub, i.e. it
// extracts sub's terms as a tail list and calls ReplaceVar.
func (p *Polynomial) ReplaceVarByPoly(v VarIndex, sub *Polynomial) error {
	return p.ReplaceVar(v, sub.Terms())
}

// replaceVarTailContainsV reports whether any monomial of T contains v,
// which would make ReplaceVar's draining loop process its own output
// forever (see SPEC_FULL.md §9, "self-referential substitution tails").
func replaceVarTailContainsV(v VarIndex, T []*Monomial) bool {
	for _, t := range T {
		if t.Contains(v) {
			return true
		}
	}
	return false
}

// ReplaceVar implements spec.md §4.4: mutate p so that every monomial
// currently containing v is replaced by its product with T = sum(T),
// leaving all other monomials untouched.
//
// Returns a *SelfReferentialTailError if T contains v (see SPEC_FULL.md §9); if
// p has an attached ProofSession, use ReplaceVarWithQuotients instead, since
// only it emits the axiom/inference lines the session needs to stay
// consistent with the mutations actually applied.
func (p *Polynomial) ReplaceVar(v VarIndex, T []*Monomial) error {
	if replaceVarTailContainsV(v, T) {
		return newSelfReferentialTailError(v)
	}
	if p.proof != nil {
		return errors.New("fastpoly: ReplaceVar: a ProofSession is attached; use ReplaceVarWithQuotients")
	}
	p.replaceVarCore(v, T, nil)
	return nil
}

// ReplaceVarWithQuotients is the PAC-instrumented variant of ReplaceVar: in
// addition to mutating p, it writes an axiom line for -v+T and an inference
// line recording, per touched monomial, the quotient m/v, to the attached
// ProofSession. Returns an error if no ProofSession is attached.
func (p *Polynomial) ReplaceVarWithQuotients(v VarIndex, T []*Monomial) error {
	if replaceVarTailContainsV(v, T) {
		return newSelfReferentialTailError(v)
	}
	if p.proof == nil {
		return errors.New("fastpoly: ReplaceVarWithQuotients requires an attached ProofSession")
	}
	return p.replaceVarWithQuotients(v, T, p.proof)
}

func (p *Polynomial) replaceVarWithQuotients(v VarIndex, T []*Monomial, session *ProofSession) error {
	if session != nil {
		if err := session.WriteAxiom(v, T); err != nil {
			return err
		}
	}
	var quotients []string
	one := NewMonomialConstant(big.NewInt(1))
	p.replaceVarCore(v, T, func(m *Monomial) {
		quotients = append(quotients, m.Merge(v, one).String())
	})
	if session != nil {
		return session.WriteInferenceLine(quotients, p)
	}
	return nil
}

// replaceVarCore is the algorithm shared by ReplaceVar and
// ReplaceVarWithQuotients. onTouch, if non-nil, is invoked with the
// about-to-be-erased monomial (still holding its original coefficient and
// shape) before it is consumed, letting the quotient-collecting variant
// observe it without duplicating the draining loop.
func (p *Polynomial) replaceVarCore(v VarIndex, T []*Monomial, onTouch func(*Monomial)) {
	for p.refLists[v].Len() > 0 {
		e := p.refLists[v].Front()
		m := e.Value.(*occurrenceEntry).mono
		if onTouch != nil {
			onTouch(m)
		}
		p.EraseMonomial(m)
		for _, t := range T {
			r := m.Merge(v, t)
			if r.Coef.Sign() == 0 {
				continue
			}
			p.AddMonomial(r)
		}
	}
}

// String renders p as a sequence of signed monomials in ascending order,
// e.g. "1+2*x1-3*x1*x2".
func (p *Polynomial) String() string {
	return p.stringImpl(false)
}

// StringOpt is the PAC-compact format: identical to String, used as the
// external contract for PAC proof payloads.
func (p *Polynomial) StringOpt() string {
	return p.stringImpl(false)
}

func (p *Polynomial) stringImpl(withPhases bool) string {
	if p.polySet.Len() == 0 {
		return "0"
	}
	var sb strings.Builder
	first := true
	for _, m := range p.polySet.All() {
		if !first {
			if m.Coef.Sign() >= 0 {
				sb.WriteString("+")
			}
		}
		first = false
		sb.WriteString(m.Coef.String())
		for _, v := range m.vars {
			sb.WriteString("*x")
			if withPhases && v < len(p.phases) && !p.phases[v] {
				sb.WriteString("!")
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// StringWithPhases annotates each variable with its current phase
// ("x!3" denotes a variable negated an odd number of times).
func (p *Polynomial) StringWithPhases() string { return p.stringImpl(true) }

// StringWithPhasesOpt is the PAC-compact form of StringWithPhases.
func (p *Polynomial) StringWithPhasesOpt() string { return p.stringImpl(true) }
