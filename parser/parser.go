// Package parser implements a single-pass recursive-descent parser over the
// lexer's token stream, producing an ast.Node.
//
// Grammar (ε denotes the empty production):
//
//	EXP     -> TERM SUBEXP
//	SUBEXP  -> '|' TERM SUBEXP | ε
//	TERM    -> FACTOR SUBTERM
//	SUBTERM -> '*' FACTOR SUBTERM | FACTOR SUBTERM | '*' | ε
//	FACTOR  -> LITERAL | '(' EXP ')'
package parser

import (
	"github.com/youssefhj/rxmatch/ast"
	"github.com/youssefhj/rxmatch/lexer"
)

// Parser holds per-parse cursor and paren-depth state. It is single-use:
// construct one with Parse and discard it.
type Parser struct {
	tokens []lexer.Token
	pos    int
	depth  int
}

// Parse consumes the full token stream exactly once and returns the parsed
// AST, or a *ParseError.
func Parse(tokens []lexer.Token) (ast.Node, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{Err: ErrEmptyInput}
	}

	p := &Parser{tokens: tokens}
	root, err := p.parseExp()
	if err != nil {
		return nil, err
	}
	if p.depth != 0 {
		panic("parser: paren-depth tracker unbalanced after a successful parse")
	}

	if p.pos != len(p.tokens) {
		tok := p.tokens[p.pos]
		return nil, &ParseError{Err: ErrUnexpectedToken, Pos: tok.Pos, Value: &tok}
	}
	return root, nil
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// parseExp implements EXP -> TERM SUBEXP.
func (p *Parser) parseExp() (ast.Node, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return p.parseSubExp(term)
}

// parseSubExp implements SUBEXP -> '|' TERM SUBEXP | ε.
func (p *Parser) parseSubExp(left ast.Node) (ast.Node, error) {
	if p.atEnd() || p.peek().Kind != lexer.PIPE {
		return left, nil
	}
	p.advance()
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	return p.parseSubExp(&ast.Alternation{Left: left, Right: term})
}

// parseTerm implements TERM -> FACTOR SUBTERM.
func (p *Parser) parseTerm() (ast.Node, error) {
	factor, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return p.parseSubTerm(factor)
}

// parseSubTerm implements SUBTERM -> '*' FACTOR SUBTERM | FACTOR SUBTERM | '*' | ε.
//
// current is the already-parsed atom that a leading '*' (if any) applies to.
func (p *Parser) parseSubTerm(current ast.Node) (ast.Node, error) {
	if p.atEnd() {
		return current, nil
	}

	tok := p.peek()
	switch tok.Kind {
	case lexer.KLEENE_STAR:
		p.advance()
		starred := ast.Node(&ast.Star{Inner: current})

		if p.atEnd() {
			return starred, nil
		}
		switch next := p.peek(); next.Kind {
		case lexer.LITERAL, lexer.LPAREN:
			factor, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			rest, err := p.parseSubTerm(factor)
			if err != nil {
				return nil, err
			}
			return &ast.Concat{Left: starred, Right: rest}, nil
		case lexer.PIPE, lexer.RPAREN:
			return starred, nil
		default:
			// A second '*' with nothing between it and the first: neither
			// '*' FACTOR SUBTERM nor the bare '*' production applies.
			return nil, &ParseError{Err: ErrUnexpectedToken, Pos: next.Pos, Value: &next}
		}

	case lexer.LITERAL, lexer.LPAREN:
		factor, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		rest, err := p.parseSubTerm(factor)
		if err != nil {
			return nil, err
		}
		return &ast.Concat{Left: current, Right: rest}, nil

	default:
		// PIPE or RPAREN: end of SUBTERM (ε production); the caller decides
		// whether this token is itself legal at this point.
		return current, nil
	}
}

// parseFactor implements FACTOR -> LITERAL | '(' EXP ')'.
func (p *Parser) parseFactor() (ast.Node, error) {
	if p.atEnd() {
		return nil, &ParseError{Err: ErrUnexpectedEnd}
	}

	tok := p.advance()
	switch tok.Kind {
	case lexer.LITERAL:
		return &ast.Literal{Ch: tok.Value}, nil

	case lexer.LPAREN:
		p.depth++
		openPos := tok.Pos
		inner, err := p.parseExp()
		if err != nil {
			return nil, err
		}
		p.depth--
		if p.atEnd() || p.peek().Kind != lexer.RPAREN {
			return nil, &ParseError{Err: ErrUnmatchedParen, Pos: openPos}
		}
		p.advance()
		return inner, nil

	default:
		return nil, &ParseError{Err: ErrUnexpectedToken, Pos: tok.Pos, Value: &tok}
	}
}
