package exprtree

import (
	"strconv"
	"strings"
)

// Expr is an immutable arithmetic expression tree. Exprs are built with the
// constructors in this package and may be evaluated any number of times,
// including concurrently, with different variable bindings.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the sorted list of variable names used in the expression.
	names []string
}

// node is a node in an expression tree. Nodes are never modified after
// construction, so subtrees may be shared between several parents.
type node struct {
	kind nodeKind

	num  float64 // nodeNum
	name string  // nodeName
	exp  int     // nodePow

	uop UnaryOp  // nodeUnary
	bop BinaryOp // nodeBinary

	left  *node // operand of nodePow and nodeUnary; lhs of nodeBinary
	right *node // rhs of nodeBinary
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // value is num
	nodeName   // lookup(name)
	nodePow    // evaluate left, raise to integer exp
	nodeUnary  // evaluate left, apply uop
	nodeBinary // evaluate left, evaluate right, combine with bop
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeName:
		return "Name"
	case nodePow:
		return "Pow"
	case nodeUnary:
		return "Unary"
	case nodeBinary:
		return "Binary"
	}
	return "nodeKind(" + strconv.Itoa(int(k)) + ")"
}

// UnaryOp identifies a function of one argument.
type UnaryOp int8

const (
	OpNeg  UnaryOp = iota // -x
	OpSqrt                // square root, x >= 0
	OpCbrt                // real cube root
	OpSin                 // sine, radians
	OpCos                 // cosine, radians
	OpExp                 // e^x
	OpLn                  // natural logarithm, x > 0

	numUnaryOps
)

var unaryNames = [numUnaryOps]string{
	OpNeg:  "-",
	OpSqrt: "sqrt",
	OpCbrt: "cbrt",
	OpSin:  "sin",
	OpCos:  "cos",
	OpExp:  "exp",
	OpLn:   "ln",
}

func (op UnaryOp) String() string {
	if op < 0 || op >= numUnaryOps {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return unaryNames[op]
}

// BinaryOp identifies an arithmetic operator of two arguments.
type BinaryOp int8

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv

	numBinaryOps
)

var binaryNames = [numBinaryOps]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
}

func (op BinaryOp) String() string {
	if op < 0 || op >= numBinaryOps {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binaryNames[op]
}

// Const returns an expression that always evaluates to v.
func Const(v float64) *Expr {
	return &Expr{n: &node{kind: nodeNum, num: v}}
}

// Var returns an expression that evaluates to the value bound to name.
func Var(name string) *Expr {
	return &Expr{n: &node{kind: nodeName, name: name}, names: []string{name}}
}

// IntPow returns an expression raising base to the integer power n. Zero and
// negative powers are allowed; 0^0 is 1.
func IntPow(base *Expr, n int) *Expr {
	mustExpr(base, "IntPow")
	return &Expr{
		n:     &node{kind: nodePow, exp: n, left: base.n},
		names: base.names,
	}
}

// Unary returns an expression applying op to x.
func Unary(op UnaryOp, x *Expr) *Expr {
	if op < 0 || op >= numUnaryOps {
		panic("exprtree: invalid unary operator " + op.String())
	}
	mustExpr(x, op.String())
	return &Expr{
		n:     &node{kind: nodeUnary, uop: op, left: x.n},
		names: x.names,
	}
}

// Binary returns an expression combining l and r with op.
func Binary(op BinaryOp, l, r *Expr) *Expr {
	if op < 0 || op >= numBinaryOps {
		panic("exprtree: invalid binary operator " + op.String())
	}
	mustExpr(l, op.String())
	mustExpr(r, op.String())
	return &Expr{
		n:     &node{kind: nodeBinary, bop: op, left: l.n, right: r.n},
		names: mergeNames(l.names, r.names),
	}
}

// Shorthands for Unary and Binary.

func Neg(x *Expr) *Expr  { return Unary(OpNeg, x) }
func Sqrt(x *Expr) *Expr { return Unary(OpSqrt, x) }
func Cbrt(x *Expr) *Expr { return Unary(OpCbrt, x) }
func Sin(x *Expr) *Expr  { return Unary(OpSin, x) }
func Cos(x *Expr) *Expr  { return Unary(OpCos, x) }
func Exp(x *Expr) *Expr  { return Unary(OpExp, x) }
func Ln(x *Expr) *Expr   { return Unary(OpLn, x) }

func Add(l, r *Expr) *Expr { return Binary(OpAdd, l, r) }
func Sub(l, r *Expr) *Expr { return Binary(OpSub, l, r) }
func Mul(l, r *Expr) *Expr { return Binary(OpMul, l, r) }
func Div(l, r *Expr) *Expr { return Binary(OpDiv, l, r) }

func mustExpr(e *Expr, where string) {
	if e == nil || e.n == nil {
		panic("exprtree: nil operand to " + where)
	}
}

// mergeNames merges two sorted, duplicate-free name lists. The inputs are
// shared with other Exprs and are never modified.
func mergeNames(a, b []string) []string {
	switch {
	case len(a) == 0:
		return b
	case len(b) == 0:
		return a
	}
	r := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			r = append(r, a[i])
			i++
		case a[i] > b[j]:
			r = append(r, b[j])
			j++
		default:
			r = append(r, a[i])
			i++
			j++
		}
	}
	r = append(r, a[i:]...)
	return append(r, b[j:]...)
}

// Vars returns the sorted variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the expression, with alternating
// round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
	case nodeName:
		b.WriteString(n.name)
	case nodePow:
		n.left.fmt(b, !square)
		b.WriteString(" ^ ")
		b.WriteString(strconv.Itoa(n.exp))
	case nodeUnary:
		b.WriteString(n.uop.String())
		n.left.fmt(b, !square)
	case nodeBinary:
		n.left.fmt(b, !square)
		switch n.bop {
		case OpMul:
			b.WriteString(" × ")
		case OpDiv:
			b.WriteString(" ÷ ")
		default:
			b.WriteByte(' ')
			b.WriteString(n.bop.String())
			b.WriteByte(' ')
		}
		n.right.fmt(b, !square)
	default:
		panic("exprtree: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
