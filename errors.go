package fastpoly

import "fmt"

// PolyError is implemented by every error kind this package returns from
// core operations, so callers can errors.As into the taxonomy instead of
// inspecting error strings.
type PolyError interface {
	error
	PolyError() string
}

// ParseError reports malformed polynomial text.
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fastpoly: parse error at line %d (%q): %v", e.Line, e.Text, e.Err)
}
func (e *ParseError) Unwrap() error     { return e.Err }
func (e *ParseError) PolyError() string { return "ParseError" }

// CapacityError reports that a polynomial's varSize exceeds the capacity of
// the polynomial it is being added into.
type CapacityError struct {
	Have int
	Want int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("fastpoly: capacity %d insufficient for varSize %d", e.Have, e.Want)
}
func (e *CapacityError) PolyError() string { return "CapacityError" }

// OutOfRangeError reports a variable index outside a polynomial's declared
// capacity.
type OutOfRangeError struct {
	Index int
	Limit int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("fastpoly: variable index %d out of range [0, %d)", e.Index, e.Limit)
}
func (e *OutOfRangeError) PolyError() string { return "OutOfRangeError" }

// InvariantError reports a broken internal invariant, such as an occurrence
// list found empty where a monomial was expected. Operations that detect
// this return without partial mutation.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("fastpoly: invariant violated: %s", e.Detail)
}
func (e *InvariantError) PolyError() string { return "InvariantError" }

// FileError reports that a file could not be opened, read or written: a
// polynomial file read by ReadSpecFile, or a ProofSession's output or
// replay files.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("fastpoly: file error for %q: %v", e.Path, e.Err)
}
func (e *FileError) Unwrap() error     { return e.Err }
func (e *FileError) PolyError() string { return "FileError" }

// SelfReferentialTailError is returned by ReplaceVar when the substitution
// tail T itself contains the variable being replaced. Forbidding this at the
// API boundary resolves the open question of whether such a T should ever
// terminate.
type SelfReferentialTailError struct {
	Var VarIndex
}

func (e *SelfReferentialTailError) Error() string {
	return fmt.Sprintf("fastpoly: substitution tail for variable %d contains that same variable", e.Var)
}
func (e *SelfReferentialTailError) PolyError() string { return "SelfReferentialTailError" }

// ErrProofActive is returned by the phase optimizer when a ProofSession is
// attached: phase optimization and proof generation are mutually exclusive.
type errProofActive struct{}

func (e *errProofActive) Error() string {
	return "fastpoly: phase optimization is not supported while a proof session is active"
}
func (e *errProofActive) PolyError() string { return "ProofActive" }

// ErrProofActive is the sentinel value returned whenever phase optimization
// is attempted on a polynomial with an active ProofSession.
var ErrProofActive error = &errProofActive{}

func newSelfReferentialTailError(v VarIndex) error { return &SelfReferentialTailError{Var: v} }
