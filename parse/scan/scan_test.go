package scan

import (
	"bytes"
	"testing"
)

func tokenTypes(t *testing.T, input string) []Type {
	t.Helper()
	sc := NewScanner(bytes.NewBufferString(input))
	var types []Type
	for {
		tok := sc.Next()
		types = append(types, tok.Type)
		if tok.Type == EOF || tok.Type == Error {
			break
		}
	}
	return types
}

func TestScannerTokenizesBasicTerm(t *testing.T) {
	t.Parallel()
	got := tokenTypes(t, "1*x1*x2")
	want := []Type{Int, Star, X, Int, Star, X, Int, EOF}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("tokens = %v, want %v", got, want)
		}
	}
}

func TestScannerSigns(t *testing.T) {
	t.Parallel()
	got := tokenTypes(t, "+3-2")
	want := []Type{Sign, Int, Sign, Int, EOF}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
}

func TestScannerSkipsSpaces(t *testing.T) {
	t.Parallel()
	got := tokenTypes(t, "1 * x1")
	want := []Type{Int, Star, X, Int, EOF}
	if len(got) != len(want) {
		t.Fatalf("tokens = %v, want %v", got, want)
	}
}

func TestScannerErrorsOnUnrecognizedCharacter(t *testing.T) {
	t.Parallel()
	sc := NewScanner(bytes.NewBufferString("1*y2"))
	var last Token
	for {
		last = sc.Next()
		if last.Type == Error || last.Type == EOF {
			break
		}
	}
	if last.Type != Error {
		t.Fatalf("last token type = %v, want Error", last.Type)
	}
}

func TestScannerTokenText(t *testing.T) {
	t.Parallel()
	sc := NewScanner(bytes.NewBufferString("42*x7"))
	tok := sc.Next()
	if tok.Type != Int || tok.Text != "42" {
		t.Fatalf("first token = %+v, want Int \"42\"", tok)
	}
}
