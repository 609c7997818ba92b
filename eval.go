package exprtree

import (
	"math"
	"strconv"
)

// Eps is the tolerance used by near-zero domain checks. Divisors smaller than
// Eps in magnitude are rejected.
const Eps = 1e-12

// Bindings maps variable names to their values for one evaluation. Eval never
// modifies the map.
type Bindings map[string]float64

// Eval evaluates the expression with the given variable bindings. Every
// subexpression is evaluated exactly once, children before parents and left
// before right. If a variable is missing from vars, the error is a
// *NameError. If an argument is outside an operation's domain, e.g. the square
// root of a negative number or a division by something smaller than Eps, the
// error is a *DomainError. If exp overflows, the error is a *RangeError.
//
// Eval holds no state of its own, so one Expr may be evaluated concurrently
// from any number of goroutines.
func (e *Expr) Eval(vars Bindings) (float64, error) {
	return e.n.eval(vars)
}

// eval computes the node's value.
func (n *node) eval(vars Bindings) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.num, nil
	case nodeName:
		v, ok := vars[n.name]
		if !ok {
			return 0, &NameError{Name: n.name}
		}
		return v, nil
	case nodePow:
		x, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		return intPow(x, n.exp)
	case nodeUnary:
		x, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		return n.uop.call(x)
	case nodeBinary:
		l, err := n.left.eval(vars)
		if err != nil {
			return 0, err
		}
		r, err := n.right.eval(vars)
		if err != nil {
			return 0, err
		}
		return n.bop.call(l, r)
	default:
		panic("exprtree: invalid node kind " + n.kind.String())
	}
}

// intPow computes x^k by repeated squaring.
func intPow(x float64, k int) (float64, error) {
	switch {
	case k == 0:
		return 1, nil
	case k > 0:
		return powu(x, uint(k)), nil
	}
	if x == 0 {
		return 0, &DomainError{X: x, Func: "^"}
	}
	// -(k+1) doesn't overflow for k == math.MinInt.
	r := 1 / powu(x, uint(-(k+1))+1)
	if math.IsInf(r, 0) {
		// x^|k| is too close to zero for its reciprocal to be finite.
		return 0, &DomainError{X: x, Func: "^"}
	}
	return r, nil
}

func powu(x float64, k uint) float64 {
	r := 1.0
	for k > 0 {
		if k&1 != 0 {
			r *= x
		}
		k >>= 1
		if k > 0 {
			x *= x
		}
	}
	return r
}

// call applies a binary operator.
func (op BinaryOp) call(l, r float64) (float64, error) {
	switch op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		// Negated so that a NaN divisor is also rejected.
		if !(math.Abs(r) >= Eps) {
			return 0, &DomainError{X: r, Func: op.String()}
		}
		return l / r, nil
	default:
		panic("exprtree: invalid binary operator " + op.String())
	}
}

// NameError is an error from a lookup for a variable that is missing from the
// evaluation bindings.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
