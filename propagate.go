package uncert

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/qetlabs/uncert/internal/stats"
)

// Op identifies an arithmetic operation on values.
type Op string

// Binary operations.
const (
	OpAdd Op = "add"
	OpSub Op = "sub"
	OpMul Op = "mul"
	OpDiv Op = "div"
	OpPow Op = "pow"
)

// Unary operations.
const (
	OpSqrt Op = "sqrt"
	OpLog  Op = "log" // natural logarithm
	OpExp  Op = "exp"
	OpSin  Op = "sin"
	OpCos  Op = "cos"
	OpTan  Op = "tan"
)

// operation describes one operator: how to evaluate it, its first-order
// derivative-propagated uncertainty, and the domain restrictions on its
// central operand values. Unary operations ignore the second operand.
type operation struct {
	arity    int
	eval     func(x, y float64) float64
	derivErr func(a, b Pair) float64

	// check returns a non-empty message when the operation is undefined for
	// the given central values. Infinite operands are not rejected here; the
	// display layer prints infinite results as "inf".
	check func(a, b Pair) string
}

var operations = map[Op]operation{
	OpAdd: {
		arity:    2,
		eval:     func(x, y float64) float64 { return x + y },
		derivErr: func(a, b Pair) float64 { return math.Hypot(a.Err, b.Err) },
	},
	OpSub: {
		arity:    2,
		eval:     func(x, y float64) float64 { return x - y },
		derivErr: func(a, b Pair) float64 { return math.Hypot(a.Err, b.Err) },
	},
	OpMul: {
		arity:    2,
		eval:     func(x, y float64) float64 { return x * y },
		derivErr: func(a, b Pair) float64 { return math.Hypot(b.Value*a.Err, a.Value*b.Err) },
	},
	OpDiv: {
		arity: 2,
		eval:  func(x, y float64) float64 { return x / y },
		derivErr: func(a, b Pair) float64 {
			return math.Hypot(a.Err/b.Value, a.Value*b.Err/(b.Value*b.Value))
		},
		check: func(a, b Pair) string {
			if b.Value == 0 {
				return "division by a zero-valued operand"
			}
			return ""
		},
	},
	OpPow: {
		arity: 2,
		eval:  math.Pow,
		derivErr: func(a, b Pair) float64 {
			dBase := b.Value * math.Pow(a.Value, b.Value-1) * a.Err
			dExp := 0.0
			if b.Err > 0 {
				dExp = math.Pow(a.Value, b.Value) * math.Log(a.Value) * b.Err
			}
			return math.Hypot(dBase, dExp)
		},
		check: func(a, b Pair) string {
			switch {
			case a.Value == 0 && b.Value < 0:
				return "zero raised to a negative power"
			case a.Value < 0 && b.Value != math.Trunc(b.Value):
				return "negative base with a non-integer exponent"
			case a.Value <= 0 && b.Err > 0:
				return "an uncertain exponent requires a positive base"
			}
			return ""
		},
	},
	OpSqrt: {
		arity: 1,
		eval:  func(x, _ float64) float64 { return math.Sqrt(x) },
		derivErr: func(a, _ Pair) float64 {
			if a.Err == 0 {
				return 0
			}
			return a.Err / (2 * math.Sqrt(a.Value))
		},
		check: func(a, _ Pair) string {
			if a.Value < 0 {
				return "square root of a negative value"
			}
			return ""
		},
	},
	OpLog: {
		arity:    1,
		eval:     func(x, _ float64) float64 { return math.Log(x) },
		derivErr: func(a, _ Pair) float64 { return a.Err / a.Value },
		check: func(a, _ Pair) string {
			if a.Value <= 0 {
				return "logarithm of a non-positive value"
			}
			return ""
		},
	},
	OpExp: {
		arity:    1,
		eval:     func(x, _ float64) float64 { return math.Exp(x) },
		derivErr: func(a, _ Pair) float64 { return math.Exp(a.Value) * a.Err },
	},
	OpSin: {
		arity:    1,
		eval:     func(x, _ float64) float64 { return math.Sin(x) },
		derivErr: func(a, _ Pair) float64 { return math.Abs(math.Cos(a.Value)) * a.Err },
	},
	OpCos: {
		arity:    1,
		eval:     func(x, _ float64) float64 { return math.Cos(x) },
		derivErr: func(a, _ Pair) float64 { return math.Abs(math.Sin(a.Value)) * a.Err },
	},
	OpTan: {
		arity: 1,
		eval:  func(x, _ float64) float64 { return math.Tan(x) },
		derivErr: func(a, _ Pair) float64 {
			c := math.Cos(a.Value)
			return a.Err / (c * c)
		},
	},
}

// Add returns x + y with propagated uncertainty.
func Add(x, y any) (*Derived, error) { return Derive(OpAdd, x, y) }

// Sub returns x - y with propagated uncertainty.
func Sub(x, y any) (*Derived, error) { return Derive(OpSub, x, y) }

// Mul returns x * y with propagated uncertainty.
func Mul(x, y any) (*Derived, error) { return Derive(OpMul, x, y) }

// Div returns x / y with propagated uncertainty. Division by a zero-valued
// operand is reported as an OperationError rather than returning inf.
func Div(x, y any) (*Derived, error) { return Derive(OpDiv, x, y) }

// Pow returns x raised to y with propagated uncertainty.
func Pow(x, y any) (*Derived, error) { return Derive(OpPow, x, y) }

// Sqrt returns the square root of x with propagated uncertainty.
func Sqrt(x any) (*Derived, error) { return Derive(OpSqrt, x) }

// Log returns the natural logarithm of x with propagated uncertainty.
func Log(x any) (*Derived, error) { return Derive(OpLog, x) }

// Exp returns e raised to x with propagated uncertainty.
func Exp(x any) (*Derived, error) { return Derive(OpExp, x) }

// Sin returns the sine of x with propagated uncertainty.
func Sin(x any) (*Derived, error) { return Derive(OpSin, x) }

// Cos returns the cosine of x with propagated uncertainty.
func Cos(x any) (*Derived, error) { return Derive(OpCos, x) }

// Tan returns the tangent of x with propagated uncertainty.
func Tan(x any) (*Derived, error) { return Derive(OpTan, x) }

// Derive applies an operation to its operands and returns a Derived value
// holding the results of all three propagation methods. Operands may be
// Values or plain numbers; numbers are coerced to exact constants.
//
// The derivative method assumes operands are independent: no covariance is
// tracked across operands that share an ancestor measurement.
func Derive(op Op, operands ...any) (*Derived, error) {
	def, ok := operations[op]
	if !ok {
		return nil, &InputError{
			Code:    ErrCodeInvalidInput,
			Message: fmt.Sprintf("unknown operation %q", string(op)),
		}
	}
	if len(operands) != def.arity {
		return nil, &InputError{
			Code:    ErrCodeInvalidInput,
			Message: fmt.Sprintf("operation %s takes %d operand(s), got %d", op, def.arity, len(operands)),
		}
	}

	vals := make([]Value, len(operands))
	for i, raw := range operands {
		v, err := toOperand(raw)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}

	trials := GlobalSettings().MonteCarloTrials()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	results := make(map[Method]Pair, 3)
	for _, m := range []Method{Derivative, MinMax, MonteCarlo} {
		a := vals[0].methodPair(m)
		var b Pair
		if def.arity == 2 {
			b = vals[1].methodPair(m)
		}

		if def.check != nil {
			if msg := def.check(a, b); msg != "" {
				return nil, &OperationError{Op: op, Message: msg}
			}
		}

		var (
			p   Pair
			msg string
		)
		switch m {
		case Derivative:
			p = Pair{Value: def.eval(a.Value, b.Value), Err: math.Abs(def.derivErr(a, b))}
		case MinMax:
			p, msg = minMaxPair(def, a, b)
		case MonteCarlo:
			var ops [2]mcOperand
			ops[0] = mcOperandOf(vals[0], m)
			if def.arity == 2 {
				ops[1] = mcOperandOf(vals[1], m)
			}
			p, msg = monteCarloPair(rng, def, trials, ops[0], ops[1])
		}
		if msg != "" {
			return nil, &OperationError{Op: op, Message: msg}
		}
		results[m] = p
	}

	return &Derived{results: results}, nil
}

// DeriveWithMethod is Derive with the display method pinned at creation.
// A pinned value keeps presenting that method even when the settings store's
// error method later changes.
func DeriveWithMethod(m Method, op Op, operands ...any) (*Derived, error) {
	d, err := Derive(op, operands...)
	if err != nil {
		return nil, err
	}
	if err := d.PinMethod(m); err != nil {
		return nil, err
	}
	return d, nil
}

// minMaxPair evaluates the operation at every combination of value +/- err
// and reports half the resulting range as worst-case uncertainty. Corners
// outside the operation's domain (NaN results) are skipped.
func minMaxPair(def operation, a, b Pair) (Pair, string) {
	center := def.eval(a.Value, b.Value)

	xs := [2]float64{a.Value - a.Err, a.Value + a.Err}
	var corners []float64
	if def.arity == 1 {
		for _, x := range xs {
			if v := def.eval(x, 0); !math.IsNaN(v) {
				corners = append(corners, v)
			}
		}
	} else {
		ys := [2]float64{b.Value - b.Err, b.Value + b.Err}
		for _, x := range xs {
			for _, y := range ys {
				if v := def.eval(x, y); !math.IsNaN(v) {
					corners = append(corners, v)
				}
			}
		}
	}
	if len(corners) == 0 {
		return Pair{}, "operation is undefined at every extreme of the operand range"
	}

	lo, hi := stats.MinMax(corners)
	return Pair{Value: center, Err: (hi - lo) / 2}, ""
}

// toOperand coerces an operand into a Value, wrapping plain numbers as exact
// constants so operations work on a uniform type.
func toOperand(x any) (Value, error) {
	switch t := x.(type) {
	case Value:
		if t == nil {
			return nil, &InputError{Code: ErrCodeInvalidInput, Message: "operand is nil"}
		}
		return t, nil
	case float64:
		return Const{val: t}, nil
	case float32:
		return Const{val: float64(t)}, nil
	case int:
		return Const{val: float64(t)}, nil
	case int64:
		return Const{val: float64(t)}, nil
	default:
		return nil, &InputError{
			Code:    ErrCodeInvalidInput,
			Message: fmt.Sprintf("operand must be a Value or a number, got %T", x),
		}
	}
}
