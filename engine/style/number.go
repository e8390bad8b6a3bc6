package style

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/boxflow/core/dimen"
	"github.com/npillmayer/boxflow/core/percent"
)

// NumberKind discriminates the variants of a Number.
type NumberKind uint8

// A Number is unset (NoNumber), a literal pixel value, a percentage or an
// arithmetic expression.
const (
	NoNumber NumberKind = iota
	LiteralNumber
	PercentNumber
	ExpressionNumber
)

// Operator is an arithmetic operator of an expression Number.
type Operator uint8

// Operators of calc()-expressions.
const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	}
	return "?"
}

// Number is an option type for sizes. The zero value is an unset Number.
type Number struct {
	kind  NumberKind
	value float32 // pixels for literals, the figure for percentages
	op    Operator
	lhs   *Number
	rhs   *Number
}

// Px creates a literal pixel Number.
func Px(px float32) Number {
	return Number{kind: LiteralNumber, value: px}
}

// Pct creates a percentage Number.
func Pct(p float32) Number {
	return Number{kind: PercentNumber, value: p}
}

// Calc creates an expression Number `lhs op rhs`.
func Calc(lhs Number, op Operator, rhs Number) Number {
	l, r := lhs, rhs
	return Number{kind: ExpressionNumber, op: op, lhs: &l, rhs: &r}
}

// Unset returns an unset Number.
func Unset() Number {
	return Number{}
}

// Kind returns the variant of n.
func (n Number) Kind() NumberKind {
	return n.kind
}

// IsSet returns false for the zero value.
func (n Number) IsSet() bool {
	return n.kind != NoNumber
}

// IsLiteral is true for literal pixel values, the only Numbers which may be
// resolved without any reference dimension.
func (n Number) IsLiteral() bool {
	return n.kind == LiteralNumber
}

// IsPercent is true for percentages.
func (n Number) IsPercent() bool {
	return n.kind == PercentNumber
}

// Literal returns the pixel value of a literal Number and false for any
// other variant.
func (n Number) Literal() (dimen.Px, bool) {
	if n.kind != LiteralNumber {
		return 0, false
	}
	return dimen.Px(n.value), true
}

// Resolve computes the pixel value of n with respect to a reference
// dimension. Unset Numbers resolve to 0. Division by zero yields 0.
func (n Number) Resolve(reference dimen.Px) dimen.Px {
	switch n.kind {
	case LiteralNumber:
		return dimen.Px(n.value)
	case PercentNumber:
		return percent.Percent(n.value).Of(reference)
	case ExpressionNumber:
		l, r := n.lhs.Resolve(reference), n.rhs.Resolve(reference)
		switch n.op {
		case OpAdd:
			return l + r
		case OpSub:
			return l - r
		case OpMul:
			return l * r
		case OpDiv:
			if r == 0 {
				tracer().Errorf("division by zero in %v", n)
				return 0
			}
			return l / r
		}
	}
	return 0
}

// ResolveOr resolves n or returns a default value if n is unset.
func (n Number) ResolveOr(reference, deflt dimen.Px) dimen.Px {
	if !n.IsSet() {
		return deflt
	}
	return n.Resolve(reference)
}

// Equals compares two Numbers structurally.
func (n Number) Equals(other Number) bool {
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case NoNumber:
		return true
	case LiteralNumber, PercentNumber:
		return n.value == other.value
	}
	return n.op == other.op && n.lhs.Equals(*other.lhs) && n.rhs.Equals(*other.rhs)
}

func (n Number) String() string {
	switch n.kind {
	case NoNumber:
		return "unset"
	case LiteralNumber:
		return strconv.FormatFloat(float64(n.value), 'f', -1, 32) + "px"
	case PercentNumber:
		return percent.Percent(n.value).String()
	}
	return fmt.Sprintf("calc(%s %s %s)", n.lhs.calcString(), n.op, n.rhs.calcString())
}

func (n *Number) calcString() string {
	if n.kind == ExpressionNumber {
		return fmt.Sprintf("(%s %s %s)", n.lhs.calcString(), n.op, n.rhs.calcString())
	}
	return n.String()
}
