// Package fastpoly implements efficient multivariate polynomial reduction
// over the integers, optionally modulo a prime, specialized for verifying
// combinational Boolean circuits by symbolic rewriting.
package fastpoly

import (
	"container/list"
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// VarIndex identifies a variable. The integer value is used directly; there
// is no symbol table.
type VarIndex = int

// A Monomial is a term c * x_i1 * x_i2 * ... * x_ik, where the index
// sequence is strictly increasing and duplicate-free (x*x=x is collapsed at
// construction, since these variables encode Boolean signals).
//
// Ordering and equality (used by the polynomial's sorted set) never touch
// Coef: two monomials are equal iff they share size, sum and index
// sequence. Coefficient mutation in place is therefore safe for a Monomial
// that lives inside a Polynomial's set.
type Monomial struct {
	Coef *big.Int
	vars []VarIndex
	sum  int
	size int

	// handles maps a contained variable to its node in that variable's
	// OccurrenceList. Populated on insertion into a Polynomial, cleared on
	// erasure. Transient: copying a Monomial by value never copies this
	// map, only the shape and coefficient.
	handles map[VarIndex]*list.Element
}

func sumOf(vars []VarIndex) int {
	s := 0
	for _, v := range vars {
		s += v
	}
	return s
}

func sortDedup(vars []VarIndex) []VarIndex {
	cp := append([]VarIndex(nil), vars...)
	sort.Ints(cp)
	out := cp[:0]
	for i, v := range cp {
		if i == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

// newMonomialSorted is the fast path used internally by Merge and Multiply:
// vars must already be sorted ascending and deduplicated.
func newMonomialSorted(vars []VarIndex, coef *big.Int) *Monomial {
	return &Monomial{Coef: coef, vars: vars, sum: sumOf(vars), size: len(vars)}
}

// NewMonomialConstant returns the constant monomial (the empty product)
// with the given coefficient.
func NewMonomialConstant(coef *big.Int) *Monomial {
	return newMonomialSorted(nil, coef)
}

// NewMonomialSingle returns the monomial 1*x_v.
func NewMonomialSingle(v VarIndex) *Monomial {
	return newMonomialSorted([]VarIndex{v}, big.NewInt(1))
}

// NewMonomialSingleCoef returns the monomial coef*x_v.
func NewMonomialSingleCoef(v VarIndex, coef *big.Int) *Monomial {
	return newMonomialSorted([]VarIndex{v}, coef)
}

// NewMonomialPair returns the monomial coef*x_a*x_b, collapsing a==b to the
// single-variable monomial coef*x_a (x*x=x).
func NewMonomialPair(a, b VarIndex, coef *big.Int) *Monomial {
	if a == b {
		return newMonomialSorted([]VarIndex{a}, coef)
	}
	vars := []VarIndex{a, b}
	sort.Ints(vars)
	return newMonomialSorted(vars, coef)
}

// NewMonomialFromIndices builds a monomial from an arbitrary index array,
// which is sorted and deduplicated.
func NewMonomialFromIndices(idx []VarIndex, coef *big.Int) *Monomial {
	return newMonomialSorted(sortDedup(idx), coef)
}

// Vars returns the monomial's strictly increasing, duplicate-free index
// sequence. The returned slice must not be mutated by callers.
func (m *Monomial) Vars() []VarIndex { return m.vars }

// Size returns the number of distinct variables in m.
func (m *Monomial) Size() int { return m.size }

// Sum returns the sum of m's variable indices.
func (m *Monomial) Sum() int { return m.sum }

// Contains reports whether v appears in m, via binary search.
func (m *Monomial) Contains(v VarIndex) bool {
	i := sort.SearchInts(m.vars, v)
	return i < len(m.vars) && m.vars[i] == v
}

// shallowCopy returns a copy of m's shape and coefficient, with no handles
// (handles are owned by whichever Polynomial m currently lives in, if any).
func (m *Monomial) shallowCopy() *Monomial {
	return &Monomial{
		Coef: new(big.Int).Set(m.Coef),
		vars: append([]VarIndex(nil), m.vars...),
		sum:  m.sum,
		size: m.size,
	}
}

// monomialCompare implements the three-level total order in spec.md §3:
// smaller sum first, then smaller size, then lexicographic on indices.
// Coefficients never participate.
func monomialCompare(a, b *Monomial) int {
	if a.sum != b.sum {
		if a.sum < b.sum {
			return -1
		}
		return 1
	}
	if a.size != b.size {
		if a.size < b.size {
			return -1
		}
		return 1
	}
	for i := 0; i < a.size; i++ {
		if a.vars[i] != b.vars[i] {
			if a.vars[i] < b.vars[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Merge is the core substitution primitive. Precondition: v is contained in
// m. It returns a new monomial representing (m/v)*n, i.e. the product
// obtained by deleting v from m and union-multiplying with n. Both m's and
// n's occurrences of v are skipped while streaming (matching the source's
// behavior, which skips v in both operands).
func (m *Monomial) Merge(v VarIndex, n *Monomial) *Monomial {
	out := make([]VarIndex, 0, m.size+n.size)
	i, j := 0, 0
	for i < m.size || j < n.size {
		for i < m.size && m.vars[i] == v {
			i++
		}
		for j < n.size && n.vars[j] == v {
			j++
		}
		switch {
		case i >= m.size && j >= n.size:
		case i >= m.size:
			out = append(out, n.vars[j])
			j++
		case j >= n.size:
			out = append(out, m.vars[i])
			i++
		case m.vars[i] < n.vars[j]:
			out = append(out, m.vars[i])
			i++
		case m.vars[i] > n.vars[j]:
			out = append(out, n.vars[j])
			j++
		default: // equal: idempotent union, emit once
			out = append(out, m.vars[i])
			i++
			j++
		}
	}
	coef := new(big.Int).Mul(m.Coef, n.Coef)
	return newMonomialSorted(out, coef)
}

// Multiply returns the product a*b: the same sorted-merge streaming as
// Merge, but without skipping any variable.
func Multiply(a, b *Monomial) *Monomial {
	out := make([]VarIndex, 0, a.size+b.size)
	i, j := 0, 0
	for i < a.size || j < b.size {
		switch {
		case i >= a.size:
			out = append(out, b.vars[j])
			j++
		case j >= b.size:
			out = append(out, a.vars[i])
			i++
		case a.vars[i] < b.vars[j]:
			out = append(out, a.vars[i])
			i++
		case a.vars[i] > b.vars[j]:
			out = append(out, b.vars[j])
			j++
		default:
			out = append(out, a.vars[i])
			i++
			j++
		}
	}
	coef := new(big.Int).Mul(a.Coef, b.Coef)
	return newMonomialSorted(out, coef)
}

// String renders m as "±coef*x<i>*x<j>...", the syntax from spec.md §6.
func (m *Monomial) String() string {
	var sb strings.Builder
	sb.WriteString(m.Coef.String())
	for _, v := range m.vars {
		sb.WriteString("*x")
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}
