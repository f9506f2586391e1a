package fastpoly

import (
	"math/big"
	"testing"
)

func TestAddMonomialFoldsEqualShapes(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialSingleCoef(1, big.NewInt(2)))
	p.AddMonomial(NewMonomialSingleCoef(1, big.NewInt(3)))
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
	terms := p.Terms()
	if terms[0].Coef.Cmp(big.NewInt(5)) != 0 {
		t.Fatalf("coefficient = %v, want 5", terms[0].Coef)
	}
}

func TestAddMonomialErasesOnZeroSum(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialSingleCoef(1, big.NewInt(2)))
	p.AddMonomial(NewMonomialSingleCoef(1, big.NewInt(-2)))
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after cancellation", p.Len())
	}
	if ok, _ := p.ContainsVar(1); ok {
		t.Fatalf("ContainsVar(1) = true, want false after cancellation")
	}
}

func TestContainsVarOutOfRange(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(2)
	_, err := p.ContainsVar(5)
	if _, ok := err.(*OutOfRangeError); !ok {
		t.Fatalf("ContainsVar(5) err = %v (%T), want *OutOfRangeError", err, err)
	}
}

func TestFindContainingAndFindExact(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(4)
	p.AddMonomial(NewMonomialFromIndices([]VarIndex{1, 2}, big.NewInt(1)))
	p.AddMonomial(NewMonomialFromIndices([]VarIndex{1, 3}, big.NewInt(1)))
	p.AddMonomial(NewMonomialSingle(1))

	containing := p.FindContaining(NewMonomialSingle(1))
	if len(containing) != 3 {
		t.Fatalf("FindContaining(x1) returned %d monomials, want 3", len(containing))
	}

	exact := p.FindExact(NewMonomialFromIndices([]VarIndex{1, 2}, big.NewInt(1)))
	if exact == nil || exact.Size() != 2 || !exact.Contains(2) {
		t.Fatalf("FindExact(x1*x2) = %v, want x1*x2", exact)
	}
}

func TestAddPolynomialCapacityError(t *testing.T) {
	t.Parallel()
	small := NewPolynomial(2)
	big9 := NewPolynomial(9)
	err := small.AddPolynomial(big9)
	if _, ok := err.(*CapacityError); !ok {
		t.Fatalf("AddPolynomial err = %v (%T), want *CapacityError", err, err)
	}
}

func TestReplaceVarSelfReferentialTailRejected(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialSingle(1))
	err := p.ReplaceVar(1, []*Monomial{NewMonomialFromIndices([]VarIndex{1, 2}, big.NewInt(1))})
	if err == nil {
		t.Fatalf("ReplaceVar with self-referential tail returned nil error")
	}
}

func TestReplaceVarWithProofActiveRequiresQuotientsVariant(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialSingle(1))
	session := &ProofSession{firstLine: true}
	p.AttachProofSession(session)
	err := p.ReplaceVar(1, []*Monomial{NewMonomialConstant(big.NewInt(1))})
	if err == nil {
		t.Fatalf("ReplaceVar with an attached proof session returned nil error, want an error directing to ReplaceVarWithQuotients")
	}
}

// fullAdderSpec builds the scenario S1 full-adder circuit:
// sum = 2*x8 + x7, x8 = OR(x5,x6), x7 = XOR(x3,x4), x6 = AND(x3,x4),
// x5 = AND(x1,x2), x4 = XOR(x1,x2).
func fullAdderSpec(t *testing.T) *Polynomial {
	t.Helper()
	p := NewPolynomial(9)
	p.AddMonomial(NewMonomialSingleCoef(8, big.NewInt(2)))
	p.AddMonomial(NewMonomialSingle(7))
	if err := p.ReplaceOR(8, 5, 6); err != nil {
		t.Fatalf("ReplaceOR: %v", err)
	}
	if err := p.ReplaceXOR(7, 3, 4); err != nil {
		t.Fatalf("ReplaceXOR: %v", err)
	}
	if err := p.ReplaceAND(6, 3, 4); err != nil {
		t.Fatalf("ReplaceAND: %v", err)
	}
	if err := p.ReplaceAND(5, 1, 2); err != nil {
		t.Fatalf("ReplaceAND: %v", err)
	}
	if err := p.ReplaceXOR(4, 1, 2); err != nil {
		t.Fatalf("ReplaceXOR: %v", err)
	}
	return p
}

// evalMonomial evaluates m at a 0/1 assignment keyed by variable index.
func evalMonomial(m *Monomial, assignment map[VarIndex]int64) int64 {
	v := new(big.Int).Set(m.Coef)
	acc := int64(1)
	for _, idx := range m.Vars() {
		acc *= assignment[idx]
	}
	return v.Int64() * acc
}

func evalPolynomial(p *Polynomial, assignment map[VarIndex]int64) int64 {
	var total int64
	for _, m := range p.Terms() {
		total += evalMonomial(m, assignment)
	}
	return total
}

// TestFullAdderMatchesTruthTable exercises scenario S1 against every
// possible 3-bit input, checking the residual polynomial evaluates to the
// same carry*2+sum value the full adder produces.
func TestFullAdderMatchesTruthTable(t *testing.T) {
	t.Parallel()
	for a := int64(0); a <= 1; a++ {
		for b := int64(0); b <= 1; b++ {
			for cin := int64(0); cin <= 1; cin++ {
				p := fullAdderSpec(t)
				total := a + b + cin
				wantSum := total % 2
				wantCarry := total / 2
				want := wantCarry*2 + wantSum

				got := evalPolynomial(p, map[VarIndex]int64{1: a, 2: b, 3: cin})
				if got != want {
					t.Errorf("a=%d b=%d cin=%d: evaluated %d, want %d", a, b, cin, got, want)
				}
			}
		}
	}
}

func TestReplaceXORSelfCancelsToZero(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialSingle(1))
	if err := p.ReplaceXOR(1, 2, 2); err != nil {
		t.Fatalf("ReplaceXOR(v,x,x): %v", err)
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d after XOR(x,x) substitution, want 0", p.Len())
	}
}

func TestReplaceANDSelfIsIdentity(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialSingle(1))
	if err := p.ReplaceAND(1, 2, 2); err != nil {
		t.Fatalf("ReplaceAND(v,x,x): %v", err)
	}
	terms := p.Terms()
	if len(terms) != 1 || terms[0].Size() != 1 || !terms[0].Contains(2) {
		t.Fatalf("terms = %v, want single x2", terms)
	}
}

func TestReplaceNOTTwiceIsIdentity(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialSingle(1))
	if err := p.ReplaceNOT(1, 2); err != nil {
		t.Fatalf("ReplaceNOT: %v", err)
	}
	// p is now 1 - x2; replace x2 by NOT(x3) = 1 - x3, giving back x3.
	if err := p.ReplaceNOT(2, 3); err != nil {
		t.Fatalf("ReplaceNOT: %v", err)
	}
	terms := p.Terms()
	if len(terms) != 1 || terms[0].Size() != 1 || !terms[0].Contains(3) {
		t.Fatalf("terms = %v, want single x3 after double negation", terms)
	}
	if terms[0].Coef.Cmp(big.NewInt(1)) != 0 {
		t.Fatalf("coefficient = %v, want 1", terms[0].Coef)
	}
}

func TestModReductionNonNegative(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(2)
	p.SetModReduction(true, big.NewInt(5))
	p.AddMonomial(NewMonomialSingleCoef(1, big.NewInt(-3)))
	terms := p.Terms()
	if len(terms) != 1 {
		t.Fatalf("Len() = %d, want 1", len(terms))
	}
	if terms[0].Coef.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("coefficient = %v, want 2 (-3 mod 5)", terms[0].Coef)
	}
}

func TestSetModReductionReducesExistingCoefficients(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(2)
	p.AddMonomial(NewMonomialSingleCoef(1, big.NewInt(7)))
	p.SetModReduction(true, big.NewInt(5))
	terms := p.Terms()
	if len(terms) != 1 || terms[0].Coef.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("terms = %v, want single coefficient 2", terms)
	}
}

func TestMultiplyPoly(t *testing.T) {
	t.Parallel()
	a := NewPolynomial(3)
	a.AddMonomial(NewMonomialSingle(1))
	a.AddMonomial(NewMonomialConstant(big.NewInt(1)))

	b := NewPolynomial(3)
	b.AddMonomial(NewMonomialSingle(2))
	b.AddMonomial(NewMonomialConstant(big.NewInt(1)))

	r := MultiplyPoly(a, b)
	// (x1+1)*(x2+1) = x1*x2 + x1 + x2 + 1
	if r.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", r.Len())
	}
}

func TestGetShortestModel(t *testing.T) {
	t.Parallel()
	p := NewPolynomial(3)
	p.AddMonomial(NewMonomialFromIndices([]VarIndex{1, 2}, big.NewInt(1)))
	p.AddMonomial(NewMonomialSingle(2))
	best := p.GetShortestModel()
	if best == nil || best.Size() != 1 {
		t.Fatalf("GetShortestModel() = %v, want single-variable monomial", best)
	}
}
