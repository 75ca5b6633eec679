package advanced

import "github.com/pkg/errors"

var (
	ErrInvalidInputSize    = errors.New("polygon needs at least 3 vertices")
	ErrInvalidCoordinate   = errors.New("vertex coordinate is not finite")
	ErrDegenerateVertices  = errors.New("polygon has coincident vertices")
	ErrZeroArea            = errors.New("polygon has zero area")
	ErrNonMonotone         = errors.New("polygon is not y-monotone")
	ErrOracleContradiction = errors.New("triangulation invariant violated")
)

// Threading errors through every step of the sweep would bury the algorithm in
// error plumbing. Instead, invariant failures panic with a TriangulateError, and
// the public API recovers to convert to an error.

type TriangulateError struct {
	Err error
}

func (e TriangulateError) Error() string {
	return e.Err.Error()
}

func (e TriangulateError) Unwrap() error {
	return e.Err
}

// Panic with a TriangulateError wrapping one of the sentinel errors above.
func fatalf(kind error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(kind, format, args...)})
}

// Converts a recovered TriangulateError back into an error. Anything else is a
// genuine bug, and keeps panicking.
func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.Err
		}
		panic(r)
	}
	return nil
}
