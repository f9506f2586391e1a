package fastpoly

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"
)

func TestParsePolynomial(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		line    string
		wantLen int
	}{
		{"single term with two variables", "1*x1*x2", 1},
		{"multiple signed terms", "+3*x1*x4-2*x5+1", 3},
		{"implicit unit coefficient", "-x8+x5+x6-x5*x6", 4},
		{"bare constant", "7", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mons, err := ParsePolynomial(tt.line)
			if err != nil {
				t.Fatalf("ParsePolynomial(%q): %v", tt.line, err)
			}
			if len(mons) != tt.wantLen {
				t.Fatalf("ParsePolynomial(%q) returned %d monomials, want %d", tt.line, len(mons), tt.wantLen)
			}
		})
	}
}

func TestParsePolynomialRejectsGarbage(t *testing.T) {
	t.Parallel()
	if _, err := ParsePolynomial("1*y2"); err == nil {
		t.Fatalf("ParsePolynomial(\"1*y2\") returned nil error, want a parse error")
	}
}

func TestReadSpecFileAndReduceFile(t *testing.T) {
	t.Parallel()
	spec, subs, err := ReadSpecFile(filepath.Join("testdata", "fulladder_example.txt"))
	if err != nil {
		t.Fatalf("ReadSpecFile: %v", err)
	}
	if spec.VarSize() != 9 {
		t.Fatalf("VarSize() = %d, want 9", spec.VarSize())
	}
	if len(subs) != 5 {
		t.Fatalf("len(subs) = %d, want 5", len(subs))
	}

	if err := ReduceFile(spec, subs); err != nil {
		t.Fatalf("ReduceFile: %v", err)
	}

	for a := int64(0); a <= 1; a++ {
		for b := int64(0); b <= 1; b++ {
			for cin := int64(0); cin <= 1; cin++ {
				total := a + b + cin
				want := (total/2)*2 + total%2
				got := evalPolynomial(spec, map[VarIndex]int64{1: a, 2: b, 3: cin})
				if got != want {
					t.Errorf("a=%d b=%d cin=%d: got %d, want %d", a, b, cin, got, want)
				}
			}
		}
	}
}

func TestReadSpecFileEnablesModReduction(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "spec.txt")
	content := "2\n3\n2*x1\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	spec, subs, err := ReadSpecFile(path)
	if err != nil {
		t.Fatalf("ReadSpecFile: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("len(subs) = %d, want 0", len(subs))
	}
	terms := spec.Terms()
	if len(terms) != 1 || terms[0].Coef.Cmp(big.NewInt(2)) != 0 {
		t.Fatalf("terms = %v, want single coefficient 2 (3 does not reduce 2)", terms)
	}
}
