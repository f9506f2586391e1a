package fastpoly

import "math/big"

// NegateVar implements spec.md §4.5's general negate_var(v): substitute
// every occurrence of v by 1-v. For each monomial m containing v, this adds
// m.Merge(v, 1) (m with v deleted) and re-adds m with its coefficient
// negated, in place of erasing it outright. Flips phases[v].
//
// Returns ErrProofActive if a ProofSession is attached (phase optimization
// and proof generation are mutually exclusive, per spec.md §4.5's caveat).
func (p *Polynomial) NegateVar(v VarIndex) error {
	if p.proof != nil {
		return ErrProofActive
	}
	one := NewMonomialConstant(big.NewInt(1))

	// Snapshot first: each originally-contained monomial must be processed
	// exactly once. The negated term re-inserted below still contains v,
	// so draining refLists[v] until empty (as ReplaceVar does) would loop
	// forever; a fixed snapshot avoids that.
	var snapshot []*Monomial
	for e := p.refLists[v].Front(); e != nil; e = e.Next() {
		snapshot = append(snapshot, e.Value.(*occurrenceEntry).mono)
	}

	for _, m := range snapshot {
		p.EraseMonomial(m)
		tail := m.Merge(v, one)
		negated := m.shallowCopy()
		negated.Coef.Neg(negated.Coef)
		if tail.Coef.Sign() != 0 {
			p.AddMonomial(tail)
		}
		if negated.Coef.Sign() != 0 {
			p.AddMonomial(negated)
		}
	}
	p.phases[v] = !p.phases[v]
	return nil
}

// NegateVarImproved is the in-place, faster variant of NegateVar: it never
// erases or reinserts the monomials already containing v (a permissible
// optimization because monomial ordering ignores the coefficient). For each
// m containing v, it inserts m.Merge(v, 1) and then negates m's
// coefficient in place. NegateVarImproved is its own inverse: a second call
// restores both the original coefficients and cancels the inserted tails.
func (p *Polynomial) NegateVarImproved(v VarIndex) error {
	if p.proof != nil {
		return ErrProofActive
	}
	one := NewMonomialConstant(big.NewInt(1))

	for e := p.refLists[v].Front(); e != nil; e = e.Next() {
		m := e.Value.(*occurrenceEntry).mono
		tail := m.Merge(v, one)
		if tail.Coef.Sign() != 0 {
			p.AddMonomial(tail)
		}
		m.Coef.Neg(m.Coef)
	}
	p.phases[v] = !p.phases[v]
	return nil
}

// TestPhaseChange applies NegateVarImproved to v and keeps the change only
// if it strictly decreased the monomial count, reverting (by calling
// NegateVarImproved again, which is self-inverse) otherwise. Returns
// whether the flip was kept.
func (p *Polynomial) TestPhaseChange(v VarIndex) (bool, error) {
	before := p.Len()
	if err := p.NegateVarImproved(v); err != nil {
		return false, err
	}
	if p.Len() < before {
		return true, nil
	}
	if err := p.NegateVarImproved(v); err != nil {
		return false, err
	}
	return false, nil
}

// GreedyPhaseChange calls TestPhaseChange for every variable 0..varSize-1
// in ascending order and returns the total decrease in monomial count.
func (p *Polynomial) GreedyPhaseChange() (int, error) {
	order := make([]VarIndex, p.varSize)
	for i := range order {
		order[i] = i
	}
	return p.GreedyPhaseChangeCustom(order)
}

// GreedyPhaseChangeBackward is GreedyPhaseChange traversing variable
// indices in descending order.
func (p *Polynomial) GreedyPhaseChangeBackward() (int, error) {
	order := make([]VarIndex, p.varSize)
	for i := range order {
		order[i] = p.varSize - 1 - i
	}
	return p.GreedyPhaseChangeCustom(order)
}

// GreedyPhaseChangeCustom calls TestPhaseChange for each variable in order,
// returning the total decrease in monomial count.
func (p *Polynomial) GreedyPhaseChangeCustom(order []VarIndex) (int, error) {
	before := p.Len()
	for _, v := range order {
		if _, err := p.TestPhaseChange(v); err != nil {
			return 0, err
		}
	}
	return before - p.Len(), nil
}

// PhaseChangeEffectOnMonom predicts the size delta a hypothetical flip of v
// would cause to the single monomial m, without applying it: +1 if the
// resulting tail term (m with v replaced by 1) does not yet exist in p,
// -1 if it exists and would cancel to zero, 0 otherwise (including when m
// does not contain v, since m itself is never removed by a flip: its
// coefficient changes sign but stays nonzero).
func (p *Polynomial) PhaseChangeEffectOnMonom(v VarIndex, m *Monomial) int {
	if !m.Contains(v) {
		return 0
	}
	one := NewMonomialConstant(big.NewInt(1))
	tail := m.Merge(v, one)

	existing, ok := p.polySet.Get(tail)
	if !ok {
		return 1
	}
	sum := new(big.Int).Add(existing.Coef, tail.Coef)
	if sum.Sign() == 0 {
		return -1
	}
	return 0
}
