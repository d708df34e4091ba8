package plural

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Formula accepts a count and returns the index of the numerus form to use
type Formula func(n int) int

// Compile turns a C plural expression such as "n%10==1 && n%100!=11 ? 0 : 1"
// into a Formula. The only variable is n.
func Compile(expr string) (Formula, error) {
	p := &parser{tokens: tokenize(expr), expr: expr}
	if len(p.tokens) == 0 {
		return nil, fmt.Errorf("empty plural formula")
	}
	for _, tok := range p.tokens {
		if tok.kind == tokInvalid {
			return nil, fmt.Errorf("invalid character %q in plural formula %q", tok.text, expr)
		}
	}

	node, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("unexpected %q in plural formula %q", p.peek().text, expr)
	}

	return Formula(node), nil
}

type tokenKind int

const (
	tokInvalid tokenKind = iota
	tokN
	tokInt
	tokOp
)

type token struct {
	kind tokenKind
	text string
	val  int
}

var twoCharOps = []string{"==", "!=", "<=", ">=", "&&", "||"}

func tokenize(expr string) []token {
	var tokens []token
	for i := 0; i < len(expr); {
		c := rune(expr[i])
		switch {
		case unicode.IsSpace(c):
			i++
		case c == 'n':
			tokens = append(tokens, token{kind: tokN, text: "n"})
			i++
		case unicode.IsDigit(c):
			j := i
			for j < len(expr) && unicode.IsDigit(rune(expr[j])) {
				j++
			}
			val, _ := strconv.Atoi(expr[i:j])
			tokens = append(tokens, token{kind: tokInt, text: expr[i:j], val: val})
			i = j
		default:
			op := ""
			for _, candidate := range twoCharOps {
				if strings.HasPrefix(expr[i:], candidate) {
					op = candidate
					break
				}
			}
			if op == "" && strings.ContainsRune("?:()<>!%+-*/", c) {
				op = string(c)
			}
			if op == "" {
				return append(tokens, token{kind: tokInvalid, text: string(c)})
			}
			tokens = append(tokens, token{kind: tokOp, text: op})
			i += len(op)
		}
	}
	return tokens
}

type node func(n int) int

type parser struct {
	tokens []token
	pos    int
	expr   string
}

func (p *parser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *parser) peek() token {
	if p.done() {
		return token{}
	}
	return p.tokens[p.pos]
}

func (p *parser) accept(ops ...string) (string, bool) {
	tok := p.peek()
	if tok.kind != tokOp {
		return "", false
	}
	for _, op := range ops {
		if tok.text == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *parser) ternary() (node, error) {
	cond, err := p.or()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept("?"); !ok {
		return cond, nil
	}
	yes, err := p.ternary()
	if err != nil {
		return nil, err
	}
	if _, ok := p.accept(":"); !ok {
		return nil, fmt.Errorf("missing ':' in plural formula %q", p.expr)
	}
	no, err := p.ternary()
	if err != nil {
		return nil, err
	}
	return func(n int) int {
		if cond(n) != 0 {
			return yes(n)
		}
		return no(n)
	}, nil
}

func (p *parser) or() (node, error) {
	return p.binary(p.and, "||")
}

func (p *parser) and() (node, error) {
	return p.binary(p.equality, "&&")
}

func (p *parser) equality() (node, error) {
	return p.binary(p.relational, "==", "!=")
}

func (p *parser) relational() (node, error) {
	return p.binary(p.additive, "<", "<=", ">", ">=")
}

func (p *parser) additive() (node, error) {
	return p.binary(p.multiplicative, "+", "-")
}

func (p *parser) multiplicative() (node, error) {
	return p.binary(p.unary, "*", "/", "%")
}

func (p *parser) binary(next func() (node, error), ops ...string) (node, error) {
	x, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.accept(ops...)
		if !ok {
			return x, nil
		}
		y, err := next()
		if err != nil {
			return nil, err
		}
		x = makeBinary(op, x, y)
	}
}

func (p *parser) unary() (node, error) {
	if op, ok := p.accept("!", "-"); ok {
		x, err := p.unary()
		if err != nil {
			return nil, err
		}
		if op == "-" {
			return func(n int) int { return -x(n) }, nil
		}
		return func(n int) int { return boolInt(x(n) == 0) }, nil
	}
	return p.primary()
}

func (p *parser) primary() (node, error) {
	if p.done() {
		return nil, fmt.Errorf("unexpected end of plural formula %q", p.expr)
	}
	tok := p.tokens[p.pos]
	p.pos++
	switch tok.kind {
	case tokN:
		return func(n int) int { return n }, nil
	case tokInt:
		val := tok.val
		return func(int) int { return val }, nil
	}
	if tok.text == "(" {
		x, err := p.ternary()
		if err != nil {
			return nil, err
		}
		if _, ok := p.accept(")"); !ok {
			return nil, fmt.Errorf("missing ')' in plural formula %q", p.expr)
		}
		return x, nil
	}
	return nil, fmt.Errorf("unexpected %q in plural formula %q", tok.text, p.expr)
}

func makeBinary(op string, x, y node) node {
	switch op {
	case "||":
		return func(n int) int { return boolInt(x(n) != 0 || y(n) != 0) }
	case "&&":
		return func(n int) int { return boolInt(x(n) != 0 && y(n) != 0) }
	case "==":
		return func(n int) int { return boolInt(x(n) == y(n)) }
	case "!=":
		return func(n int) int { return boolInt(x(n) != y(n)) }
	case "<":
		return func(n int) int { return boolInt(x(n) < y(n)) }
	case "<=":
		return func(n int) int { return boolInt(x(n) <= y(n)) }
	case ">":
		return func(n int) int { return boolInt(x(n) > y(n)) }
	case ">=":
		return func(n int) int { return boolInt(x(n) >= y(n)) }
	case "+":
		return func(n int) int { return x(n) + y(n) }
	case "-":
		return func(n int) int { return x(n) - y(n) }
	case "*":
		return func(n int) int { return x(n) * y(n) }
	case "/":
		return func(n int) int {
			d := y(n)
			if d == 0 {
				return 0
			}
			return x(n) / d
		}
	case "%":
		return func(n int) int {
			d := y(n)
			if d == 0 {
				return 0
			}
			return x(n) % d
		}
	}
	panic("invalid op " + op)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
