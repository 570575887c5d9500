// Package expr parses infix arithmetic expressions into autodiff graphs.
//
// The grammar covers the engine's operator set: + - * / with the usual
// precedence, parentheses, unary minus, float literals, and named variables.
// Variables resolve against a caller-supplied binding map, so the same
// parsed source can reference leaves the caller later differentiates
// against.
package expr

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/scalar-ml/scalargrad/internal/autodiff"
)

// Parse builds a computation graph from src. Identifiers resolve through
// vars; an identifier without a binding is an error. The returned node is
// the expression root, sharing the bound leaves by identity.
func Parse(src string, vars map[string]*autodiff.Node) (*autodiff.Node, error) {
	p := &parser{src: src, vars: vars}
	p.next()
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokenEOF {
		return nil, fmt.Errorf("expr: unexpected %q at offset %d", p.tok.text, p.tok.pos)
	}
	return node, nil
}

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenInvalid
	tokenNumber
	tokenIdent
	tokenPlus
	tokenMinus
	tokenStar
	tokenSlash
	tokenLParen
	tokenRParen
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

type parser struct {
	src  string
	pos  int
	tok  token
	vars map[string]*autodiff.Node
}

// next scans the following token into p.tok.
func (p *parser) next() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
	start := p.pos
	if p.pos >= len(p.src) {
		p.tok = token{kind: tokenEOF, pos: start}
		return
	}

	c := p.src[p.pos]
	switch {
	case c == '+':
		p.pos++
		p.tok = token{tokenPlus, "+", start}
	case c == '-':
		p.pos++
		p.tok = token{tokenMinus, "-", start}
	case c == '*':
		p.pos++
		p.tok = token{tokenStar, "*", start}
	case c == '/':
		p.pos++
		p.tok = token{tokenSlash, "/", start}
	case c == '(':
		p.pos++
		p.tok = token{tokenLParen, "(", start}
	case c == ')':
		p.pos++
		p.tok = token{tokenRParen, ")", start}
	case c >= '0' && c <= '9' || c == '.':
		for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.' || p.src[p.pos] == 'e' || p.src[p.pos] == 'E') {
			p.pos++
			// exponent sign
			if p.pos < len(p.src) && (p.src[p.pos-1] == 'e' || p.src[p.pos-1] == 'E') &&
				(p.src[p.pos] == '+' || p.src[p.pos] == '-') {
				p.pos++
			}
		}
		p.tok = token{tokenNumber, p.src[start:p.pos], start}
	case isIdentStart(c):
		for p.pos < len(p.src) && isIdentPart(p.src[p.pos]) {
			p.pos++
		}
		p.tok = token{tokenIdent, p.src[start:p.pos], start}
	default:
		p.pos++
		p.tok = token{tokenInvalid, string(c), start}
	}
}

func isDigit(c byte) bool      { return c >= '0' && c <= '9' }
func isIdentStart(c byte) bool { return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isIdentPart(c byte) bool  { return isIdentStart(c) || isDigit(c) }

// parseExpr handles + and -.
func (p *parser) parseExpr() (*autodiff.Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenPlus || p.tok.kind == tokenMinus {
		op := p.tok.kind
		p.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if op == tokenPlus {
			left = left.Add(right)
		} else {
			left = left.Sub(right)
		}
	}
	return left, nil
}

// parseTerm handles * and /.
func (p *parser) parseTerm() (*autodiff.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.tok.kind == tokenStar || p.tok.kind == tokenSlash {
		op := p.tok.kind
		p.next()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if op == tokenStar {
			left = left.Mul(right)
		} else {
			left = left.Div(right)
		}
	}
	return left, nil
}

func (p *parser) parseUnary() (*autodiff.Node, error) {
	if p.tok.kind == tokenMinus {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return autodiff.Leaf(-1).Mul(operand), nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*autodiff.Node, error) {
	switch p.tok.kind {
	case tokenNumber:
		v, err := strconv.ParseFloat(p.tok.text, 64)
		if err != nil {
			return nil, fmt.Errorf("expr: invalid number %q at offset %d: %w", p.tok.text, p.tok.pos, err)
		}
		p.next()
		return autodiff.Leaf(v), nil
	case tokenIdent:
		node, ok := p.vars[p.tok.text]
		if !ok {
			return nil, fmt.Errorf("expr: unbound variable %q at offset %d (known: %s)",
				p.tok.text, p.tok.pos, knownVars(p.vars))
		}
		p.next()
		return node, nil
	case tokenLParen:
		p.next()
		node, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.tok.kind != tokenRParen {
			return nil, fmt.Errorf("expr: missing ) at offset %d", p.tok.pos)
		}
		p.next()
		return node, nil
	case tokenEOF:
		return nil, fmt.Errorf("expr: unexpected end of expression at offset %d", p.tok.pos)
	default:
		return nil, fmt.Errorf("expr: unexpected %q at offset %d", p.tok.text, p.tok.pos)
	}
}

func knownVars(vars map[string]*autodiff.Node) string {
	if len(vars) == 0 {
		return "none"
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names) // deterministic error message
	return strings.Join(names, ", ")
}
