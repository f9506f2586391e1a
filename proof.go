package fastpoly

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// A ProofSession is the encapsulated replacement for the source's
// process-wide proof-writer state (an axiom counter and two file names).
// It owns two output files: the polys file (the starting polynomial plus
// one axiom per substitution step) and the proof file (one PAC inference
// line per substitution step). Only one ProofSession may be attached to a
// given Polynomial at a time (see Polynomial.AttachProofSession).
type ProofSession struct {
	polysPath, proofPath string
	polysFile, proofFile *os.File

	axiomNum   int
	lastResult int
	firstLine  bool

	modNumber *big.Int
}

// NewProofSession creates (truncating if necessary) the two output files
// and returns a ProofSession ready to record a single reduction run.
func NewProofSession(polysPath, proofPath string) (*ProofSession, error) {
	polysFile, err := os.Create(polysPath)
	if err != nil {
		return nil, &FileError{Path: polysPath, Err: err}
	}
	proofFile, err := os.Create(proofPath)
	if err != nil {
		polysFile.Close()
		return nil, &FileError{Path: proofPath, Err: err}
	}
	return &ProofSession{
		polysPath: polysPath, proofPath: proofPath,
		polysFile: polysFile, proofFile: proofFile,
		firstLine: true,
	}, nil
}

// Close releases the session's file handles.
func (s *ProofSession) Close() error {
	err1 := s.polysFile.Close()
	err2 := s.proofFile.Close()
	if err1 != nil {
		return err1
	}
	return err2
}

// WriteStartingPoly writes the three polys-file header lines: axiom 0 is
// the max variable index, axiom 1 is the modular coefficient (0 if modular
// reduction is disabled), axiom 2 is the starting polynomial in PAC format.
func (s *ProofSession) WriteStartingPoly(p *Polynomial) error {
	modCoef := "0"
	if p.modEnabled {
		modCoef = p.modNumber.String()
		s.modNumber = new(big.Int).Set(p.modNumber)
	}
	lines := []string{
		fmt.Sprintf("0 %d;", p.varSize-1),
		fmt.Sprintf("1 %s;", modCoef),
		fmt.Sprintf("2 %s;", convertToPACFormat(p.StringOpt())),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(s.polysFile, line); err != nil {
			return &FileError{Path: s.polysPath, Err: err}
		}
	}
	s.axiomNum = 2
	s.lastResult = 2
	return nil
}

// WriteAxiom records the substitution polynomial -x_v+T as the next axiom
// in the polys file, called before the mutation it describes takes effect.
func (s *ProofSession) WriteAxiom(v VarIndex, T []*Monomial) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "-1*x%d", v)
	for _, t := range T {
		if t.Coef.Sign() >= 0 {
			sb.WriteString("+")
		}
		sb.WriteString(t.String())
	}
	s.axiomNum++
	line := fmt.Sprintf("%d %s;", s.axiomNum, convertToPACFormat(sb.String()))
	if _, err := fmt.Fprintln(s.polysFile, line); err != nil {
		return &FileError{Path: s.polysPath, Err: err}
	}
	return nil
}

// WriteInferenceLine records one PAC inference step: the axiom just
// written by WriteAxiom is consumed, multiplied by the collected quotients
// Q, added to the previous result, to produce the polynomial currently held
// by result. No mod-reduction quotient term ("+ 1 *(Q_mod)") is written:
// the line has the same form whether or not the session carries a modular
// reduction number.
func (s *ProofSession) WriteInferenceLine(quotients []string, result *Polynomial) error {
	usedAxiom := s.axiomNum
	s.axiomNum++
	id := s.axiomNum

	q := joinSigned(quotients)
	line := fmt.Sprintf("%d %% %d *(%s) + %d, %s;", id, usedAxiom, q, s.lastResult, convertToPACFormat(result.StringOpt()))
	if _, err := fmt.Fprintln(s.proofFile, line); err != nil {
		return &FileError{Path: s.proofPath, Err: err}
	}
	if !s.firstLine {
		del := fmt.Sprintf("%d d;", s.lastResult)
		if _, err := fmt.Fprintln(s.proofFile, del); err != nil {
			return &FileError{Path: s.proofPath, Err: err}
		}
	}
	s.firstLine = false
	s.lastResult = id
	return nil
}

// joinSigned joins terms with a leading sign on every term after the
// first, matching the "+"/"-" sign-aware joining the quotient string needs.
func joinSigned(terms []string) string {
	var sb strings.Builder
	for i, t := range terms {
		if i > 0 && !strings.HasPrefix(t, "-") {
			sb.WriteString("+")
		}
		sb.WriteString(t)
	}
	return sb.String()
}

// unitCoefficientPrefix matches a "1*" that opens a monomial (at the start
// of the string or right after a "+"/"-" sign), never a "1*" occurring
// inside a variable token (the "1" of "x1") or a multi-digit coefficient
// (the "1" of "21").
var unitCoefficientPrefix = regexp.MustCompile(`(^|[+-])1\*`)

// convertToPACFormat applies the PAC external-format normalization rules
// from spec.md §6: strip brackets and spaces; collapse "+-", "*-", "*+"
// into "-", "-", "+"; rewrite bare "-x..." as "-1*x..."; shrink a unit
// coefficient prefix ("1*" opening a monomial) to nothing.
func convertToPACFormat(s string) string {
	s = strings.NewReplacer("[", "", "]", "", " ", "").Replace(s)
	for {
		next := strings.NewReplacer("+-", "-", "*-", "-", "*+", "+").Replace(s)
		if next == s {
			break
		}
		s = next
	}
	s = strings.ReplaceAll(s, "-x", "-1*x")
	s = unitCoefficientPrefix.ReplaceAllString(s, "$1")
	return s
}

// AttachProofSession attaches s to p. Phase optimization and proof
// generation are mutually exclusive (see Polynomial's phase functions);
// this only governs ReplaceVar/ReplaceVarWithQuotients dispatch.
func (p *Polynomial) AttachProofSession(s *ProofSession) {
	p.proof = s
}

// DetachProofSession removes any attached ProofSession from p.
func (p *Polynomial) DetachProofSession() {
	p.proof = nil
}

// ProofSession returns p's currently attached session, or nil.
func (p *Polynomial) ProofSession() *ProofSession {
	return p.proof
}

// ReplayPACProof reads a polys file and proof file previously produced by a
// ProofSession and replays the reduction, returning the final polynomial.
// It is grounded on the source's writePolysIntoPACProof / init_spec_from_PAC
// / reduce_poly_with_proof functions (original_source/src/proof_writer.cpp).
func ReplayPACProof(polysPath, proofPath string) (*Polynomial, error) {
	axioms, err := readAxiomLines(polysPath)
	if err != nil {
		return nil, err
	}
	if len(axioms) < 3 {
		return nil, &FileError{Path: polysPath, Err: errors.New("fewer than 3 header axioms")}
	}

	proofLines, err := readAxiomLines(proofPath)
	if err != nil {
		return nil, err
	}
	gotSteps := 0
	for _, line := range proofLines {
		if line != "d" {
			gotSteps++
		}
	}
	wantSteps := len(axioms) - 3
	if gotSteps != wantSteps {
		return nil, &InvariantError{Detail: fmt.Sprintf("proof file records %d inference steps, polys file has %d substitution axioms", gotSteps, wantSteps)}
	}
	maxVar, err := strconv.Atoi(axioms[0])
	if err != nil {
		return nil, &ParseError{Line: 0, Text: axioms[0], Err: err}
	}
	modCoef, ok := new(big.Int).SetString(axioms[1], 10)
	if !ok {
		return nil, &ParseError{Line: 1, Text: axioms[1]}
	}

	spec := NewPolynomial(maxVar + 1)
	specMons, err := ParsePolynomial(axioms[2])
	if err != nil {
		return nil, errors.Wrap(err, "replay starting polynomial")
	}
	for _, m := range specMons {
		spec.AddMonomial(m)
	}
	if modCoef.Sign() > 0 {
		spec.SetModReduction(true, modCoef)
	}

	for i := 3; i < len(axioms); i++ {
		mons, err := ParsePolynomial(axioms[i])
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("replay axiom %d", i))
		}
		if len(mons) == 0 {
			continue
		}
		leadMon := mons[0]
		if leadMon.size != 1 {
			return nil, &InvariantError{Detail: fmt.Sprintf("axiom %d's leading monomial is not a single variable", i)}
		}
		v := leadMon.vars[0]
		tail := mons[1:]
		if err := spec.ReplaceVar(v, tail); err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("replay axiom %d", i))
		}
	}
	return spec, nil
}

// readAxiomLines reads "id payload;" lines from a polys file and returns
// the payloads ordered by their position in the file (the original id
// prefix and trailing semicolon are stripped).
func readAxiomLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, removeLineNumAndSemicolon(line))
	}
	if err := sc.Err(); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return out, nil
}

// removeLineNumAndSemicolon strips a leading "N " line-number prefix and a
// trailing ";" from a polys/proof file line.
func removeLineNumAndSemicolon(line string) string {
	line = strings.TrimSuffix(line, ";")
	if idx := strings.Index(line, " "); idx >= 0 {
		return line[idx+1:]
	}
	return line
}
