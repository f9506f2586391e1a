package fastpoly

import "math/big"

// The gate-shortcut operations are one-liners that build a small
// hard-coded substitution tail T and call ReplaceVar (or, for the
// WithQuotients variants, ReplaceVarWithQuotients), per the coefficient
// tables in spec.md §6. Each non-degenerate table uses a = min(in1,in2),
// b = max(in1,in2); the constant 1 is the empty monomial.

func one() *big.Int    { return big.NewInt(1) }
func negOne() *big.Int { return big.NewInt(-1) }
func two() *big.Int    { return big.NewInt(2) }
func negTwo() *big.Int { return big.NewInt(-2) }

func minMax(in1, in2 VarIndex) (a, b VarIndex) {
	if in1 < in2 {
		return in1, in2
	}
	return in2, in1
}

func replace(p *Polynomial, v VarIndex, T []*Monomial, withQuotients bool) error {
	if withQuotients {
		return p.ReplaceVarWithQuotients(v, T)
	}
	return p.ReplaceVar(v, T)
}

// ReplaceAND substitutes v by AND(in1, in2): x_a*x_b, collapsing to x_in1
// when in1==in2 (AND(x,x)=x).
func (p *Polynomial) ReplaceAND(v, in1, in2 VarIndex) error { return p.replaceAND(v, in1, in2, false) }

// ReplaceANDWithQuotients is ReplaceAND instrumented for PAC proof emission.
func (p *Polynomial) ReplaceANDWithQuotients(v, in1, in2 VarIndex) error {
	return p.replaceAND(v, in1, in2, true)
}

func (p *Polynomial) replaceAND(v, in1, in2 VarIndex, wq bool) error {
	if in1 == in2 {
		return replace(p, v, []*Monomial{NewMonomialSingle(in1)}, wq)
	}
	a, b := minMax(in1, in2)
	return replace(p, v, []*Monomial{NewMonomialPair(a, b, one())}, wq)
}

// ReplaceANDOneNegation substitutes v by AND(NOT(neg), other):
// -1*x_a*x_b + 1*x_other.
func (p *Polynomial) ReplaceANDOneNegation(v, neg, other VarIndex) error {
	return p.replaceANDOneNegation(v, neg, other, false)
}

// ReplaceANDOneNegationWithQuotients is ReplaceANDOneNegation instrumented
// for PAC proof emission.
func (p *Polynomial) ReplaceANDOneNegationWithQuotients(v, neg, other VarIndex) error {
	return p.replaceANDOneNegation(v, neg, other, true)
}

func (p *Polynomial) replaceANDOneNegation(v, neg, other VarIndex, wq bool) error {
	a, b := minMax(neg, other)
	T := []*Monomial{
		NewMonomialPair(a, b, negOne()),
		NewMonomialSingle(other),
	}
	return replace(p, v, T, wq)
}

// ReplaceANDBothNegated substitutes v by AND(NOT(in1), NOT(in2)):
// 1*x_a*x_b - 1*x_a - 1*x_b + 1, collapsing to NOT(x_in1) when in1==in2
// (AND(¬x,¬x)=¬x).
func (p *Polynomial) ReplaceANDBothNegated(v, in1, in2 VarIndex) error {
	return p.replaceANDBothNegated(v, in1, in2, false)
}

// ReplaceANDBothNegatedWithQuotients is ReplaceANDBothNegated instrumented
// for PAC proof emission.
func (p *Polynomial) ReplaceANDBothNegatedWithQuotients(v, in1, in2 VarIndex) error {
	return p.replaceANDBothNegated(v, in1, in2, true)
}

func (p *Polynomial) replaceANDBothNegated(v, in1, in2 VarIndex, wq bool) error {
	if in1 == in2 {
		return p.replaceNOT(v, in1, wq)
	}
	a, b := minMax(in1, in2)
	T := []*Monomial{
		NewMonomialPair(a, b, one()),
		NewMonomialSingleCoef(a, negOne()),
		NewMonomialSingleCoef(b, negOne()),
		NewMonomialConstant(one()),
	}
	return replace(p, v, T, wq)
}

// ReplaceOR substitutes v by OR(in1, in2): x_a + x_b - x_a*x_b, collapsing
// to x_in1 when in1==in2 (OR(x,x)=x).
func (p *Polynomial) ReplaceOR(v, in1, in2 VarIndex) error { return p.replaceOR(v, in1, in2, false) }

// ReplaceORWithQuotients is ReplaceOR instrumented for PAC proof emission.
func (p *Polynomial) ReplaceORWithQuotients(v, in1, in2 VarIndex) error {
	return p.replaceOR(v, in1, in2, true)
}

func (p *Polynomial) replaceOR(v, in1, in2 VarIndex, wq bool) error {
	if in1 == in2 {
		return replace(p, v, []*Monomial{NewMonomialSingle(in1)}, wq)
	}
	a, b := minMax(in1, in2)
	T := []*Monomial{
		NewMonomialSingle(a),
		NewMonomialSingle(b),
		NewMonomialPair(a, b, negOne()),
	}
	return replace(p, v, T, wq)
}

// ReplaceOROneNegation substitutes v by OR(NOT(neg), other):
// 1 - 1*x_neg + 1*x_a*x_b.
func (p *Polynomial) ReplaceOROneNegation(v, neg, other VarIndex) error {
	return p.replaceOROneNegation(v, neg, other, false)
}

// ReplaceOROneNegationWithQuotients is ReplaceOROneNegation instrumented
// for PAC proof emission.
func (p *Polynomial) ReplaceOROneNegationWithQuotients(v, neg, other VarIndex) error {
	return p.replaceOROneNegation(v, neg, other, true)
}

func (p *Polynomial) replaceOROneNegation(v, neg, other VarIndex, wq bool) error {
	a, b := minMax(neg, other)
	T := []*Monomial{
		NewMonomialConstant(one()),
		NewMonomialSingleCoef(neg, negOne()),
		NewMonomialPair(a, b, one()),
	}
	return replace(p, v, T, wq)
}

// ReplaceORBothNegated substitutes v by OR(NOT(in1), NOT(in2)):
// 1 - 1*x_a*x_b, collapsing to NOT(x_in1) when in1==in2.
func (p *Polynomial) ReplaceORBothNegated(v, in1, in2 VarIndex) error {
	return p.replaceORBothNegated(v, in1, in2, false)
}

// ReplaceORBothNegatedWithQuotients is ReplaceORBothNegated instrumented
// for PAC proof emission.
func (p *Polynomial) ReplaceORBothNegatedWithQuotients(v, in1, in2 VarIndex) error {
	return p.replaceORBothNegated(v, in1, in2, true)
}

func (p *Polynomial) replaceORBothNegated(v, in1, in2 VarIndex, wq bool) error {
	if in1 == in2 {
		return p.replaceNOT(v, in1, wq)
	}
	a, b := minMax(in1, in2)
	T := []*Monomial{
		NewMonomialConstant(one()),
		NewMonomialPair(a, b, negOne()),
	}
	return replace(p, v, T, wq)
}

// ReplaceXOR substitutes v by XOR(in1, in2): x_a + x_b - 2*x_a*x_b,
// collapsing to 0 when in1==in2 (XOR(x,x)=0).
func (p *Polynomial) ReplaceXOR(v, in1, in2 VarIndex) error { return p.replaceXOR(v, in1, in2, false) }

// ReplaceXORWithQuotients is ReplaceXOR instrumented for PAC proof
// emission.
func (p *Polynomial) ReplaceXORWithQuotients(v, in1, in2 VarIndex) error {
	return p.replaceXOR(v, in1, in2, true)
}

func (p *Polynomial) replaceXOR(v, in1, in2 VarIndex, wq bool) error {
	if in1 == in2 {
		return replace(p, v, nil, wq)
	}
	a, b := minMax(in1, in2)
	T := []*Monomial{
		NewMonomialSingle(a),
		NewMonomialSingle(b),
		NewMonomialPair(a, b, negTwo()),
	}
	return replace(p, v, T, wq)
}

// ReplaceXOROneNegation substitutes v by XOR(NOT(in1), in2) (equivalently
// XOR(in1, NOT(in2)), the gate being symmetric under exactly one negated
// input): -1*x_a - 1*x_b + 2*x_a*x_b + 1.
func (p *Polynomial) ReplaceXOROneNegation(v, in1, in2 VarIndex) error {
	return p.replaceXOROneNegation(v, in1, in2, false)
}

// ReplaceXOROneNegationWithQuotients is ReplaceXOROneNegation instrumented
// for PAC proof emission.
func (p *Polynomial) ReplaceXOROneNegationWithQuotients(v, in1, in2 VarIndex) error {
	return p.replaceXOROneNegation(v, in1, in2, true)
}

func (p *Polynomial) replaceXOROneNegation(v, in1, in2 VarIndex, wq bool) error {
	a, b := minMax(in1, in2)
	T := []*Monomial{
		NewMonomialSingleCoef(a, negOne()),
		NewMonomialSingleCoef(b, negOne()),
		NewMonomialPair(a, b, two()),
		NewMonomialConstant(one()),
	}
	return replace(p, v, T, wq)
}

// ReplaceNOT substitutes v by NOT(in): 1 - x_in.
func (p *Polynomial) ReplaceNOT(v, in VarIndex) error { return p.replaceNOT(v, in, false) }

// ReplaceNOTWithQuotients is ReplaceNOT instrumented for PAC proof
// emission.
func (p *Polynomial) ReplaceNOTWithQuotients(v, in VarIndex) error { return p.replaceNOT(v, in, true) }

func (p *Polynomial) replaceNOT(v, in VarIndex, wq bool) error {
	T := []*Monomial{
		NewMonomialSingleCoef(in, negOne()),
		NewMonomialConstant(one()),
	}
	return replace(p, v, T, wq)
}

// ReplaceBUFFER substitutes v by in (an identity pass-through gate).
func (p *Polynomial) ReplaceBUFFER(v, in VarIndex) error {
	return replace(p, v, []*Monomial{NewMonomialSingle(in)}, false)
}

// ReplaceBUFFERWithQuotients is ReplaceBUFFER instrumented for PAC proof
// emission.
func (p *Polynomial) ReplaceBUFFERWithQuotients(v, in VarIndex) error {
	return replace(p, v, []*Monomial{NewMonomialSingle(in)}, true)
}

// ReplaceCON0 substitutes v by the constant 0.
func (p *Polynomial) ReplaceCON0(v VarIndex) error { return replace(p, v, nil, false) }

// ReplaceCON0WithQuotients is ReplaceCON0 instrumented for PAC proof
// emission.
func (p *Polynomial) ReplaceCON0WithQuotients(v VarIndex) error { return replace(p, v, nil, true) }

// ReplaceCON1 substitutes v by the constant 1.
func (p *Polynomial) ReplaceCON1(v VarIndex) error {
	return replace(p, v, []*Monomial{NewMonomialConstant(one())}, false)
}

// ReplaceCON1WithQuotients is ReplaceCON1 instrumented for PAC proof
// emission.
func (p *Polynomial) ReplaceCON1WithQuotients(v VarIndex) error {
	return replace(p, v, []*Monomial{NewMonomialConstant(one())}, true)
}
