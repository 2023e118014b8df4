// Package amount turns user-typed amount input, a plain numeral or a small
// arithmetic expression such as "50+20", into a validated positive decimal.
// The grammar is fixed to numeric literals and + - * / ( ); input is never
// handed to a general-purpose evaluator.
package amount

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidExpression = errors.New("invalid amount expression")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrNotPositive       = errors.New("amount must be greater than zero")
)

// Parse evaluates input and returns the resulting amount. It fails when the
// expression contains disallowed tokens, does not evaluate cleanly, or yields
// a result that is not strictly positive.
func Parse(input string) (decimal.Decimal, error) {
	p := &parser{input: input}
	p.skipSpaces()
	if p.eof() {
		return decimal.Zero, ErrInvalidExpression
	}
	result, err := p.parseExpr()
	if err != nil {
		return decimal.Zero, err
	}
	p.skipSpaces()
	if !p.eof() {
		return decimal.Zero, ErrInvalidExpression
	}
	if result.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, ErrNotPositive
	}
	return result, nil
}

type parser struct {
	input string
	pos   int
}

// parseExpr handles addition and subtraction.
func (p *parser) parseExpr() (decimal.Decimal, error) {
	left, err := p.parseTerm()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpaces()
		switch {
		case p.consume('+'):
			right, err := p.parseTerm()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Add(right)
		case p.consume('-'):
			right, err := p.parseTerm()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Sub(right)
		default:
			return left, nil
		}
	}
}

// parseTerm handles multiplication and division.
func (p *parser) parseTerm() (decimal.Decimal, error) {
	left, err := p.parseFactor()
	if err != nil {
		return decimal.Zero, err
	}
	for {
		p.skipSpaces()
		switch {
		case p.consume('*'):
			right, err := p.parseFactor()
			if err != nil {
				return decimal.Zero, err
			}
			left = left.Mul(right)
		case p.consume('/'):
			right, err := p.parseFactor()
			if err != nil {
				return decimal.Zero, err
			}
			if right.IsZero() {
				return decimal.Zero, ErrDivisionByZero
			}
			left = left.Div(right)
		default:
			return left, nil
		}
	}
}

// parseFactor handles literals, parenthesized expressions and unary signs.
func (p *parser) parseFactor() (decimal.Decimal, error) {
	p.skipSpaces()
	switch {
	case p.consume('('):
		inner, err := p.parseExpr()
		if err != nil {
			return decimal.Zero, err
		}
		p.skipSpaces()
		if !p.consume(')') {
			return decimal.Zero, ErrInvalidExpression
		}
		return inner, nil
	case p.consume('-'):
		inner, err := p.parseFactor()
		if err != nil {
			return decimal.Zero, err
		}
		return inner.Neg(), nil
	case p.consume('+'):
		return p.parseFactor()
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (decimal.Decimal, error) {
	start := p.pos
	for !p.eof() {
		c := p.input[p.pos]
		if (c < '0' || c > '9') && c != '.' {
			break
		}
		p.pos++
	}
	literal := p.input[start:p.pos]
	if literal == "" || strings.Count(literal, ".") > 1 {
		return decimal.Zero, ErrInvalidExpression
	}
	value, err := decimal.NewFromString(literal)
	if err != nil {
		return decimal.Zero, ErrInvalidExpression
	}
	return value, nil
}

func (p *parser) consume(c byte) bool {
	if p.eof() || p.input[p.pos] != c {
		return false
	}
	p.pos++
	return true
}

func (p *parser) skipSpaces() {
	for !p.eof() && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}
