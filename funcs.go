package exprtree

import (
	"errors"
	"math"
	"strconv"
)

// call applies a unary operator.
func (op UnaryOp) call(x float64) (float64, error) {
	switch op {
	case OpNeg:
		return -x, nil
	case OpSqrt:
		if !(x >= 0) {
			return 0, &DomainError{X: x, Func: op.String()}
		}
		return math.Sqrt(x), nil
	case OpCbrt:
		return math.Cbrt(x), nil
	case OpSin:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, &DomainError{X: x, Func: op.String()}
		}
		return math.Sin(x), nil
	case OpCos:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, &DomainError{X: x, Func: op.String()}
		}
		return math.Cos(x), nil
	case OpExp:
		r := math.Exp(x)
		if math.IsInf(r, 1) {
			return 0, &RangeError{X: x, Func: op.String()}
		}
		return r, nil
	case OpLn:
		if !(x > 0) {
			return 0, &DomainError{X: x, Func: op.String()}
		}
		return math.Log(x), nil
	default:
		panic("exprtree: invalid unary operator " + op.String())
	}
}

var (
	// ErrDomain matches every *DomainError with errors.Is.
	ErrDomain = errors.New("exprtree: argument outside domain")
	// ErrRange matches every *RangeError with errors.Is.
	ErrRange = errors.New("exprtree: result out of range")
)

// DomainError is an error returned when an operation is applied to an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument. For integer powers it is the base; for
	// division it is the divisor.
	X float64
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// Is reports whether target is ErrDomain.
func (err *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// RangeError is an error returned when the result of an operation is too large
// to represent. Only exp currently overflows; its result saturating to
// infinity is reported as a RangeError rather than returned.
type RangeError struct {
	// X is the argument that caused the overflow.
	X float64
	// Func is a name identifying the operation.
	Func string
}

func (err *RangeError) Error() string {
	return err.Func + "(" + strconv.FormatFloat(err.X, 'g', -1, 64) + ") out of range"
}

// Is reports whether target is ErrRange.
func (err *RangeError) Is(target error) bool {
	return target == ErrRange
}
