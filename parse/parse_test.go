package parse

import (
	"bytes"
	"testing"

	"fastpoly/parse/scan"
)

func mustParse(t *testing.T, line string) []Term {
	t.Helper()
	terms, err := Parse(scan.NewScanner(bytes.NewBufferString(line)))
	if err != nil {
		t.Fatalf("Parse(%q): %v", line, err)
	}
	return terms
}

func TestParseExplicitCoefficients(t *testing.T) {
	t.Parallel()
	terms := mustParse(t, "+3*x1*x4-2*x5+1")
	want := []Term{
		{Sign: 1, Coef: 3, Vars: []int{1, 4}},
		{Sign: -1, Coef: 2, Vars: []int{5}},
		{Sign: 1, Coef: 1, Vars: nil},
	}
	if len(terms) != len(want) {
		t.Fatalf("Parse returned %d terms, want %d", len(terms), len(want))
	}
	for i, w := range want {
		if terms[i].Sign != w.Sign || terms[i].Coef != w.Coef || !intSliceEqual(terms[i].Vars, w.Vars) {
			t.Errorf("term %d = %+v, want %+v", i, terms[i], w)
		}
	}
}

func TestParseImplicitUnitCoefficient(t *testing.T) {
	t.Parallel()
	terms := mustParse(t, "-x8+x5+x6-x5*x6")
	want := []Term{
		{Sign: -1, Coef: 1, Vars: []int{8}},
		{Sign: 1, Coef: 1, Vars: []int{5}},
		{Sign: 1, Coef: 1, Vars: []int{6}},
		{Sign: -1, Coef: 1, Vars: []int{5, 6}},
	}
	if len(terms) != len(want) {
		t.Fatalf("Parse returned %d terms, want %d", len(terms), len(want))
	}
	for i, w := range want {
		if terms[i].Sign != w.Sign || terms[i].Coef != w.Coef || !intSliceEqual(terms[i].Vars, w.Vars) {
			t.Errorf("term %d = %+v, want %+v", i, terms[i], w)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []string{
		"*x1",     // missing leading coefficient/variable
		"1*",      // missing 'x' after '*'
		"1*x",     // missing index after 'x'
		"1*y1",    // unrecognized character
	}
	for _, in := range tests {
		if _, err := Parse(scan.NewScanner(bytes.NewBufferString(in))); err == nil {
			t.Errorf("Parse(%q) returned nil error", in)
		}
	}
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
