package fastpoly

import (
	"bufio"
	"bytes"
	"math/big"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"fastpoly/parse"
	"fastpoly/parse/scan"
)

// ParsePolynomial parses a single polynomial-line string (spec.md §6's
// monomial syntax, e.g. "+3*x1*x4-2*x5+1") into its constituent Monomials.
// Variables within a monomial may appear in any order; the parser sorts and
// deduplicates them.
func ParsePolynomial(line string) ([]*Monomial, error) {
	terms, err := parse.Parse(scan.NewScanner(bytes.NewBufferString(line)))
	if err != nil {
		return nil, &ParseError{Text: line, Err: err}
	}
	mons := make([]*Monomial, 0, len(terms))
	for _, t := range terms {
		coef := big.NewInt(int64(t.Sign) * t.Coef)
		mons = append(mons, NewMonomialFromIndices(t.Vars, coef))
	}
	return mons, nil
}

// ReadSpecFile reads a polynomial file (spec.md §6: three header lines then
// substitution lines) and returns the initial specification polynomial plus
// the parsed substitution lines, in file order. Line 1 is the max variable
// index, line 2 the modular coefficient (0 disables modular reduction),
// line 3 the spec polynomial, and every line from 4 onward a substitution
// (first monomial is the leading/replaced variable, the rest its tail).
// Grounded on original_source/src/poly_parser.cpp's init_spec/read_spec_poly.
func ReadSpecFile(path string) (spec *Polynomial, substitutions [][]*Monomial, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNum := 0
	var maxVarNum int
	var modCoef *big.Int
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		switch lineNum {
		case 1:
			maxVarNum, err = strconv.Atoi(line)
			if err != nil {
				return nil, nil, &ParseError{Line: lineNum, Text: line, Err: err}
			}
			spec = NewPolynomial(maxVarNum + 1)
		case 2:
			n, ok := new(big.Int).SetString(line, 10)
			if !ok {
				return nil, nil, &ParseError{Line: lineNum, Text: line}
			}
			modCoef = n
		case 3:
			mons, err := ParsePolynomial(line)
			if err != nil {
				return nil, nil, errors.Wrap(err, "parsing spec polynomial")
			}
			for _, m := range mons {
				spec.AddMonomial(m)
			}
			if modCoef != nil && modCoef.Sign() > 0 {
				spec.SetModReduction(true, modCoef)
			}
		default:
			mons, err := ParsePolynomial(line)
			if err != nil {
				return nil, nil, errors.Wrap(err, "parsing substitution line")
			}
			substitutions = append(substitutions, mons)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, &FileError{Path: path, Err: err}
	}
	return spec, substitutions, nil
}

// ReduceFile applies every substitution line of a spec file (as produced by
// ReadSpecFile) to spec in order: the first monomial of each substitution
// line names the variable being replaced, the rest form its tail. Grounded
// on original_source/src/poly_parser.cpp's reduce_poly/reduce_by_one_line.
func ReduceFile(spec *Polynomial, substitutions [][]*Monomial) error {
	for i, mons := range substitutions {
		if len(mons) == 0 {
			continue
		}
		leading := mons[0]
		if leading.size != 1 {
			return &ParseError{Line: i + 4, Text: "leading monomial must be a single variable"}
		}
		v := leading.vars[0]
		if err := spec.ReplaceVar(v, mons[1:]); err != nil {
			return errors.Wrap(err, "reducing substitution line")
		}
	}
	return nil
}
