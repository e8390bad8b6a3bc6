package style

import (
	"strings"
	"unicode"

	"github.com/npillmayer/boxflow/core"
	"github.com/npillmayer/boxflow/core/dimen"
)

// ParseNumber parses a size value. Accepted forms are plain numbers ("12"),
// pixels ("12px"), percentages ("50%") and calc-expressions
// ("calc(100% - 2 * 15px)"). An empty string or "auto" yields an unset Number.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "auto") {
		return Unset(), nil
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "calc(") && strings.HasSuffix(lower, ")") {
		p := &calcParser{input: s[5 : len(s)-1]}
		n, err := p.expression()
		if err != nil {
			return Unset(), err
		}
		p.skipSpace()
		if p.pos < len(p.input) {
			return Unset(), core.Error(core.EINVALID, "unexpected %q in %q", p.input[p.pos:], s)
		}
		return n, nil
	}
	return parseAtom(s)
}

// MustParseNumber is like ParseNumber, but panics on error. Intended for tests
// and literals in code.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

func parseAtom(s string) (Number, error) {
	d, isPercent, err := dimen.ParseDimen(s)
	if err != nil {
		return Unset(), core.WrapError(err, core.EINVALID, "illegal size value %q", s)
	}
	if isPercent {
		return Pct(float32(d)), nil
	}
	return Px(float32(d)), nil
}

// calcParser is a recursive descent parser for the body of calc():
//
//     expression := term { ('+'|'-') term }
//     term       := factor { ('*'|'/') factor }
//     factor     := atom | '(' expression ')'
//
// As in CSS, '+' and '-' must be surrounded by whitespace, which lets us
// tell them apart from signed atoms.
type calcParser struct {
	input string
	pos   int
}

func (p *calcParser) skipSpace() bool {
	start := p.pos
	for p.pos < len(p.input) && unicode.IsSpace(rune(p.input[p.pos])) {
		p.pos++
	}
	return p.pos > start
}

func (p *calcParser) expression() (Number, error) {
	lhs, err := p.term()
	if err != nil {
		return lhs, err
	}
	for {
		save := p.pos
		if !p.skipSpace() || p.pos >= len(p.input) {
			p.pos = save
			return lhs, nil
		}
		var op Operator
		switch p.input[p.pos] {
		case '+':
			op = OpAdd
		case '-':
			op = OpSub
		default:
			p.pos = save
			return lhs, nil
		}
		p.pos++
		if !p.skipSpace() {
			return lhs, core.Error(core.EINVALID, "operator %s must be followed by whitespace", op)
		}
		rhs, err := p.term()
		if err != nil {
			return lhs, err
		}
		lhs = Calc(lhs, op, rhs)
	}
}

func (p *calcParser) term() (Number, error) {
	lhs, err := p.factor()
	if err != nil {
		return lhs, err
	}
	for {
		save := p.pos
		p.skipSpace()
		if p.pos >= len(p.input) {
			p.pos = save
			return lhs, nil
		}
		var op Operator
		switch p.input[p.pos] {
		case '*':
			op = OpMul
		case '/':
			op = OpDiv
		default:
			p.pos = save
			return lhs, nil
		}
		p.pos++
		p.skipSpace()
		rhs, err := p.factor()
		if err != nil {
			return lhs, err
		}
		lhs = Calc(lhs, op, rhs)
	}
}

func (p *calcParser) factor() (Number, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return Unset(), core.Error(core.EINVALID, "unexpected end of calc-expression")
	}
	if p.input[p.pos] == '(' {
		p.pos++
		n, err := p.expression()
		if err != nil {
			return n, err
		}
		p.skipSpace()
		if p.pos >= len(p.input) || p.input[p.pos] != ')' {
			return n, core.Error(core.EINVALID, "missing ')' in calc-expression")
		}
		p.pos++
		return n, nil
	}
	start := p.pos
	if c := p.input[p.pos]; c == '+' || c == '-' {
		p.pos++
	}
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if unicode.IsSpace(rune(c)) || c == ')' || c == '(' || c == '*' || c == '/' {
			break
		}
		p.pos++
	}
	if start == p.pos {
		return Unset(), core.Error(core.EINVALID, "missing operand in calc-expression")
	}
	return parseAtom(p.input[start:p.pos])
}
