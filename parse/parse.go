// Package parse groups the tokens produced by package scan into the terms
// of a monomial-line grammar: a polynomial is a sequence of signed terms,
// each term a coefficient followed by zero or more "*x<index>" factors.
package parse

import (
	"strconv"

	"github.com/pkg/errors"

	"fastpoly/parse/scan"
)

// A Term is one signed monomial as parsed from a polynomial line: Sign is
// +1 or -1, Coef is the unsigned coefficient magnitude, Vars are the
// variable indices in the order they appeared (not yet sorted or
// deduplicated — the caller does that, per spec.md §6's "the parser sorts
// and deduplicates").
type Term struct {
	Sign int
	Coef int64
	Vars []int
}

// Parse tokenizes and groups every term on a single line produced by sc.
func Parse(sc *scan.Scanner) ([]Term, error) {
	var terms []Term
	tok := sc.Next()
	for tok.Type != scan.EOF {
		term, next, err := parseTerm(sc, tok)
		if err != nil {
			return nil, err
		}
		terms = append(terms, term)
		tok = next
	}
	return terms, nil
}

func parseTerm(sc *scan.Scanner, tok scan.Token) (Term, scan.Token, error) {
	var term Term
	term.Sign = 1

	if tok.Type == scan.Sign {
		if tok.Text == "-" {
			term.Sign = -1
		}
		tok = sc.Next()
	}

	switch tok.Type {
	case scan.Int:
		coef, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return Term{}, tok, errors.Wrap(err, "parsing coefficient")
		}
		term.Coef = coef
		tok = sc.Next()
	case scan.X:
		// The PAC external format shrinks a bare "1*" prefix to nothing
		// (e.g. "-1*x8" becomes "-x8"), so a term beginning directly with
		// "x" has an implicit coefficient of 1.
		term.Coef = 1
		idx, next, err := parseVarIndex(sc)
		if err != nil {
			return Term{}, tok, err
		}
		term.Vars = append(term.Vars, idx)
		tok = next
	default:
		return Term{}, tok, errors.Errorf("expected coefficient or variable, got %#v", tok)
	}

	for tok.Type == scan.Star {
		tok = sc.Next()
		if tok.Type != scan.X {
			return Term{}, tok, errors.Errorf("expected 'x' after '*', got %#v", tok)
		}
		idx, next, err := parseVarIndex(sc)
		if err != nil {
			return Term{}, tok, err
		}
		term.Vars = append(term.Vars, idx)
		tok = next
	}

	return term, tok, nil
}

// parseVarIndex reads the integer index following an already-consumed 'x'
// token and returns it along with the next unconsumed token.
func parseVarIndex(sc *scan.Scanner) (int, scan.Token, error) {
	tok := sc.Next()
	if tok.Type != scan.Int {
		return 0, tok, errors.Errorf("expected variable index after 'x', got %#v", tok)
	}
	idx, err := strconv.Atoi(tok.Text)
	if err != nil {
		return 0, tok, errors.Wrap(err, "parsing variable index")
	}
	return idx, sc.Next(), nil
}
