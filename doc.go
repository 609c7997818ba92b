// Package exprtree implements immutable arithmetic expression trees over
// float64.
//
// A tree is built from constants, named variables, integer powers, unary
// functions (negation, square and cube roots, sine, cosine, exp, ln) and the
// four binary arithmetic operators. Build a tree once and evaluate it for many
// inputs by passing different Bindings to Eval:
//
//	f := exprtree.Add(exprtree.IntPow(exprtree.Var("x"), 2), exprtree.Neg(exprtree.Const(1)))
//	y, err := f.Eval(exprtree.Bindings{"x": 3}) // 8, nil
//
// Evaluation never substitutes NaN or a default value for a failure. A missing
// variable is a *NameError, an argument outside an operation's domain is a
// *DomainError, and an overflowing exp is a *RangeError.
package exprtree
