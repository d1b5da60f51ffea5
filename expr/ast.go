package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrDomain indicates the expression has no finite value at the given point
	// (log of a non-positive number, division by zero, sqrt of a negative, …).
	ErrDomain = errors.New("expr: domain error")

	// ErrUnboundVariable indicates Eval met a variable absent from the bindings.
	ErrUnboundVariable = errors.New("expr: unbound variable")
)

// Expr is an immutable expression tree in one or more real variables.
//
// Eval substitutes the given bindings and computes a finite float64,
// or fails with ErrDomain / ErrUnboundVariable. Diff returns the exact
// symbolic derivative with respect to variable; it never evaluates and
// never fails. String renders a parseable form of the expression.
type Expr interface {
	Eval(vars map[string]float64) (float64, error)
	Diff(variable string) Expr
	String() string
}

// EvalAt is a convenience wrapper binding a single variable.
func EvalAt(e Expr, variable string, x float64) (float64, error) {
	return e.Eval(map[string]float64{variable: x})
}

// finite rejects NaN and ±Inf results so callers never see non-finite values.
func finite(v float64, what string) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrDomain, what)
	}
	return v, nil
}

// Number is a numeric literal.
type Number struct{ Value float64 }

func (n Number) Eval(map[string]float64) (float64, error) { return n.Value, nil }
func (n Number) Diff(string) Expr                         { return Number{0} }
func (n Number) String() string {
	if n.Value < 0 {
		return "(" + strconv.FormatFloat(n.Value, 'g', -1, 64) + ")"
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

// Variable is a named free variable.
type Variable struct{ Name string }

func (v Variable) Eval(vars map[string]float64) (float64, error) {
	x, ok := vars[v.Name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnboundVariable, v.Name)
	}
	return x, nil
}

func (v Variable) Diff(variable string) Expr {
	if v.Name == variable {
		return Number{1}
	}
	return Number{0}
}

func (v Variable) String() string { return v.Name }

// Neg is unary negation.
type Neg struct{ X Expr }

func (n Neg) Eval(vars map[string]float64) (float64, error) {
	x, err := n.X.Eval(vars)
	if err != nil {
		return 0, err
	}
	return -x, nil
}

func (n Neg) Diff(variable string) Expr { return Neg{n.X.Diff(variable)} }
func (n Neg) String() string            { return "(-" + n.X.String() + ")" }

// Add is binary addition.
type Add struct{ L, R Expr }

func (a Add) Eval(vars map[string]float64) (float64, error) {
	l, r, err := evalPair(a.L, a.R, vars)
	if err != nil {
		return 0, err
	}
	return finite(l+r, "sum")
}

func (a Add) Diff(variable string) Expr {
	return Add{a.L.Diff(variable), a.R.Diff(variable)}
}

func (a Add) String() string { return "(" + a.L.String() + " + " + a.R.String() + ")" }

// Sub is binary subtraction.
type Sub struct{ L, R Expr }

func (s Sub) Eval(vars map[string]float64) (float64, error) {
	l, r, err := evalPair(s.L, s.R, vars)
	if err != nil {
		return 0, err
	}
	return finite(l-r, "difference")
}

func (s Sub) Diff(variable string) Expr {
	return Sub{s.L.Diff(variable), s.R.Diff(variable)}
}

func (s Sub) String() string { return "(" + s.L.String() + " - " + s.R.String() + ")" }

// Mul is binary multiplication.
type Mul struct{ L, R Expr }

func (m Mul) Eval(vars map[string]float64) (float64, error) {
	l, r, err := evalPair(m.L, m.R, vars)
	if err != nil {
		return 0, err
	}
	return finite(l*r, "product")
}

// Diff applies the product rule: (uv)' = u'v + uv'.
func (m Mul) Diff(variable string) Expr {
	return Add{
		Mul{m.L.Diff(variable), m.R},
		Mul{m.L, m.R.Diff(variable)},
	}
}

func (m Mul) String() string { return "(" + m.L.String() + " * " + m.R.String() + ")" }

// Div is binary division.
type Div struct{ L, R Expr }

func (d Div) Eval(vars map[string]float64) (float64, error) {
	l, r, err := evalPair(d.L, d.R, vars)
	if err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	return finite(l/r, "quotient")
}

// Diff applies the quotient rule: (u/v)' = (u'v - uv') / v².
func (d Div) Diff(variable string) Expr {
	return Div{
		Sub{
			Mul{d.L.Diff(variable), d.R},
			Mul{d.L, d.R.Diff(variable)},
		},
		Pow{d.R, Number{2}},
	}
}

func (d Div) String() string { return "(" + d.L.String() + " / " + d.R.String() + ")" }

// Pow is exponentiation, base^exponent.
type Pow struct{ Base, Exponent Expr }

func (p Pow) Eval(vars map[string]float64) (float64, error) {
	b, e, err := evalPair(p.Base, p.Exponent, vars)
	if err != nil {
		return 0, err
	}
	return finite(math.Pow(b, e), "power")
}

// Diff distinguishes three cases, cheapest rule first:
//
//	u^c     -> c·u^(c-1)·u'          (constant exponent)
//	c^v     -> c^v·ln(c)·v'          (constant base)
//	u^v     -> u^v·(v'·ln(u) + v·u'/u)
func (p Pow) Diff(variable string) Expr {
	du := p.Base.Diff(variable)
	dv := p.Exponent.Diff(variable)
	if c, ok := p.Exponent.(Number); ok {
		return Mul{
			Mul{c, Pow{p.Base, Number{c.Value - 1}}},
			du,
		}
	}
	if _, ok := p.Base.(Number); ok {
		return Mul{
			Mul{p, Call{"ln", p.Base}},
			dv,
		}
	}
	return Mul{p, Add{
		Mul{dv, Call{"ln", p.Base}},
		Mul{p.Exponent, Div{du, p.Base}},
	}}
}

func (p Pow) String() string { return "(" + p.Base.String() + "^" + p.Exponent.String() + ")" }

// Call is a unary function application. Name is one of the identifiers
// accepted by Parse; unknown names are rejected at parse time.
type Call struct {
	Name string
	Arg  Expr
}

func (c Call) Eval(vars map[string]float64) (float64, error) {
	x, err := c.Arg.Eval(vars)
	if err != nil {
		return 0, err
	}
	var v float64
	switch c.Name {
	case "sin":
		v = math.Sin(x)
	case "cos":
		v = math.Cos(x)
	case "tan":
		v = math.Tan(x)
	case "asin":
		v = math.Asin(x)
	case "acos":
		v = math.Acos(x)
	case "atan":
		v = math.Atan(x)
	case "exp":
		v = math.Exp(x)
	case "ln", "log":
		if x <= 0 {
			return 0, fmt.Errorf("%w: log of non-positive value %v", ErrDomain, x)
		}
		v = math.Log(x)
	case "log10":
		if x <= 0 {
			return 0, fmt.Errorf("%w: log of non-positive value %v", ErrDomain, x)
		}
		v = math.Log10(x)
	case "sqrt":
		if x < 0 {
			return 0, fmt.Errorf("%w: sqrt of negative value %v", ErrDomain, x)
		}
		v = math.Sqrt(x)
	case "abs":
		v = math.Abs(x)
	default:
		return 0, fmt.Errorf("%w: unknown function %q", ErrDomain, c.Name)
	}
	return finite(v, c.Name+"("+strconv.FormatFloat(x, 'g', -1, 64)+")")
}

// Diff applies the chain rule with the standard derivative table.
func (c Call) Diff(variable string) Expr {
	du := c.Arg.Diff(variable)
	var outer Expr
	switch c.Name {
	case "sin":
		outer = Call{"cos", c.Arg}
	case "cos":
		outer = Neg{Call{"sin", c.Arg}}
	case "tan":
		outer = Div{Number{1}, Pow{Call{"cos", c.Arg}, Number{2}}}
	case "asin":
		outer = Div{Number{1}, Call{"sqrt", Sub{Number{1}, Pow{c.Arg, Number{2}}}}}
	case "acos":
		outer = Neg{Div{Number{1}, Call{"sqrt", Sub{Number{1}, Pow{c.Arg, Number{2}}}}}}
	case "atan":
		outer = Div{Number{1}, Add{Number{1}, Pow{c.Arg, Number{2}}}}
	case "exp":
		outer = c
	case "ln", "log":
		outer = Div{Number{1}, c.Arg}
	case "log10":
		outer = Div{Number{1}, Mul{c.Arg, Number{math.Ln10}}}
	case "sqrt":
		outer = Div{Number{1}, Mul{Number{2}, c}}
	case "abs":
		// d|u|/du = u/|u|; undefined at u = 0, which Eval reports as ErrDomain.
		outer = Div{c.Arg, c}
	default:
		outer = Number{math.NaN()}
	}
	return Mul{outer, du}
}

func (c Call) String() string { return c.Name + "(" + c.Arg.String() + ")" }

// evalPair evaluates both operands of a binary node.
func evalPair(l, r Expr, vars map[string]float64) (float64, float64, error) {
	lv, err := l.Eval(vars)
	if err != nil {
		return 0, 0, err
	}
	rv, err := r.Eval(vars)
	if err != nil {
		return 0, 0, err
	}
	return lv, rv, nil
}
