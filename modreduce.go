package fastpoly

import "math/big"

// reduceModNonNegative reduces c into the canonical residue class
// [0, modNumber) in place, matching math/big.Int.Mod's own convention
// (unlike Rem, Mod always returns a non-negative result for a positive
// modulus).
func reduceModNonNegative(c, modNumber *big.Int) {
	c.Mod(c, modNumber)
}

// ModReduceWithQuotient reduces coef modulo modNumber into [0, modNumber)
// and returns the quotient (coefAfter - coefBefore) / modNumber, so that
// coefBefore + modNumber*quotient == coefAfter: a PAC inference line that
// adds "1 *(Q_mod)" to the pre-reduction polynomial obtains the
// post-reduction one with this sign (see SPEC_FULL.md §9 for the resolved
// open question; the source's prose describes the opposite sign, but its
// own code computes diff = coefAfter - coefBefore).
func ModReduceWithQuotient(coef, modNumber *big.Int) (after, quotient *big.Int) {
	before := new(big.Int).Set(coef)
	after = new(big.Int).Mod(coef, modNumber)
	diff := new(big.Int).Sub(after, before)
	quotient = new(big.Int).Div(diff, modNumber)
	return after, quotient
}
