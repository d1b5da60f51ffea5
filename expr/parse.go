package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var (
	// ErrSyntax indicates the input is not a well-formed expression.
	ErrSyntax = errors.New("expr: invalid syntax")

	// ErrUnknownFunction indicates a call to a function the engine does not know.
	ErrUnknownFunction = errors.New("expr: unknown function")
)

// functions is the closed set of unary functions accepted by Parse.
var functions = map[string]bool{
	"sin": true, "cos": true, "tan": true,
	"asin": true, "acos": true, "atan": true,
	"exp": true, "ln": true, "log": true, "log10": true,
	"sqrt": true, "abs": true,
}

// constants maps named literals to their values.
var constants = map[string]float64{
	"e":  math.E,
	"pi": math.Pi,
}

// Parse converts an algebraic expression string into an Expr tree.
//
// Grammar (precedence low to high, ^ is right-associative and binds
// tighter than unary minus):
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { ("*" | "/") unary }
//	unary   = "-" unary | power
//	power   = primary [ "^" unary ]
//	primary = number | constant | variable | func "(" expr ")" | "(" expr ")"
//
// Errors wrap ErrSyntax or ErrUnknownFunction and carry the offending
// position in the input.
func Parse(input string) (Expr, error) {
	p := &parser{src: input}
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, p.src[p.pos], p.pos)
	}
	return e, nil
}

// parser is a hand-written recursive-descent parser over a byte buffer.
type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

// accept consumes c if it is the next non-space byte.
func (p *parser) accept(c byte) bool {
	p.skipSpace()
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser) parseExpr() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		if p.accept('+') {
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = Add{left, right}
		} else if p.accept('-') {
			right, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			left = Sub{left, right}
		} else {
			return left, nil
		}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		if p.accept('*') {
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Mul{left, right}
		} else if p.accept('/') {
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = Div{left, right}
		} else {
			return left, nil
		}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	if p.accept('-') {
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Neg{x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.accept('^') {
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return Pow{base, exp}, nil
	}
	return base, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	p.skipSpace()
	if p.eof() {
		return nil, fmt.Errorf("%w: unexpected end of expression", ErrSyntax)
	}
	c := p.peek()
	switch {
	case c == '(':
		p.pos++
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, fmt.Errorf("%w: missing ')' at position %d", ErrSyntax, p.pos)
		}
		return e, nil
	case c >= '0' && c <= '9' || c == '.':
		return p.parseNumber()
	case isIdentStart(c):
		return p.parseIdent()
	default:
		return nil, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, c, p.pos)
	}
}

func (p *parser) parseNumber() (Expr, error) {
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if c >= '0' && c <= '9' || c == '.' {
			p.pos++
			continue
		}
		// scientific notation: 1e-3, 2.5E+7
		if (c == 'e' || c == 'E') && p.pos > start {
			next := p.pos + 1
			if next < len(p.src) && (p.src[next] == '+' || p.src[next] == '-') {
				next++
			}
			if next < len(p.src) && p.src[next] >= '0' && p.src[next] <= '9' {
				p.pos = next + 1
				continue
			}
		}
		break
	}
	v, err := strconv.ParseFloat(p.src[start:p.pos], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q at position %d", ErrSyntax, p.src[start:p.pos], start)
	}
	return Number{v}, nil
}

func (p *parser) parseIdent() (Expr, error) {
	start := p.pos
	for !p.eof() && isIdentPart(p.src[p.pos]) {
		p.pos++
	}
	name := strings.ToLower(p.src[start:p.pos])
	if p.accept('(') {
		if !functions[name] {
			return nil, fmt.Errorf("%w: %q at position %d", ErrUnknownFunction, name, start)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.accept(')') {
			return nil, fmt.Errorf("%w: missing ')' at position %d", ErrSyntax, p.pos)
		}
		return Call{name, arg}, nil
	}
	if v, ok := constants[name]; ok {
		return Number{v}, nil
	}
	return Variable{name}, nil
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c >= '0' && c <= '9'
}
