// Package parser implements the recursive-descent parser for path-regex
// query strings, producing a pkg/ast.Query tree.
package parser

import (
	"fmt"
	"strconv"

	"github.com/jsongrep/jsongrep/internal/lexer"
	"github.com/jsongrep/jsongrep/pkg/ast"
)

// ParseError reports a syntax error at a specific position, naming what the
// parser expected and what it found instead. The parser never panics: every
// failure path returns an error, a *ParseError for syntax errors or a
// *lexer.LexError for lexical ones.
type ParseError struct {
	Pos      lexer.Position
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected %s, expected %s", e.Found, e.Expected)
}

// Parser consumes a token stream from a Lexer and builds an ast.Query.
type Parser struct {
	lex  *lexer.Lexer
	cur  lexer.Token
	peek lexer.Token
}

// New creates a Parser over query, priming its first two tokens of
// lookahead.
func New(query string) *Parser {
	p := &Parser{lex: lexer.New(query)}
	p.cur = p.lex.NextToken()
	p.peek = p.lex.NextToken()
	return p
}

// Parse parses a complete query string and returns its AST, or the first
// lexical or syntax error encountered.
func Parse(query string) (*ast.Query, error) {
	p := New(query)
	return p.ParseQuery()
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) errorf(expected string) error {
	return &ParseError{
		Pos:      p.cur.Pos,
		Expected: expected,
		Found:    tokenDesc(p.cur),
	}
}

func tokenDesc(t lexer.Token) string {
	switch t.Type {
	case lexer.EOF:
		return "end of query"
	case lexer.ILLEGAL:
		return fmt.Sprintf("illegal character %q", t.Literal)
	case lexer.IDENT, lexer.QUOTEDIDENT, lexer.INTEGER:
		return fmt.Sprintf("%q", t.Literal)
	default:
		return fmt.Sprintf("%q", t.Type.String())
	}
}

// ParseQuery parses the full expr grammar and requires the token stream to
// be exhausted afterward. An input that is only whitespace (or empty)
// parses to Empty.
func (p *Parser) ParseQuery() (*ast.Query, error) {
	if p.cur.Type == lexer.EOF {
		return ast.NewEmpty(), nil
	}

	q, err := p.parseAlt()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != lexer.EOF {
		return nil, p.errorf("end of query")
	}
	if lexErrs := p.lex.Errors(); len(lexErrs) > 0 {
		e := lexErrs[0]
		return nil, &lexer.LexError{Pos: e.Pos, Message: e.Message}
	}
	return q, nil
}

// illegalTokenError returns the original LexError for an ILLEGAL token when
// one was recorded, so callers see "integer literal overflows" rather than
// a generic "unexpected illegal token".
func (p *Parser) illegalTokenError(t lexer.Token) error {
	for _, e := range p.lex.Errors() {
		if e.Pos == t.Pos {
			return &lexer.LexError{Pos: e.Pos, Message: e.Message}
		}
	}
	return p.errorf("a valid token")
}

// alt ::= seq ('|' seq)*
func (p *Parser) parseAlt() (*ast.Query, error) {
	left, err := p.parseSeq()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == lexer.PIPE {
		p.advance()
		right, err := p.parseSeq()
		if err != nil {
			return nil, err
		}
		left = ast.NewAlt(left, right)
	}
	return left, nil
}

func startsStep(t lexer.TokenType) bool {
	switch t {
	case lexer.IDENT, lexer.QUOTEDIDENT, lexer.STAR, lexer.LBRACKET, lexer.LPAREN:
		return true
	default:
		return false
	}
}

// seq ::= postfix ('.' postfix | postfix)*
func (p *Parser) parseSeq() (*ast.Query, error) {
	first, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	result := first
	for {
		if p.cur.Type == lexer.DOT {
			p.advance()
			next, err := p.parsePostfix()
			if err != nil {
				return nil, err
			}
			result = ast.NewSeq(result, next)
			continue
		}
		// index_expr immediately following a step starts a new step
		// without a dot: foo[0] == foo.[0]
		if p.cur.Type == lexer.LBRACKET {
			next, err := p.parsePostfix()
			if err != nil {
				return nil, err
			}
			result = ast.NewSeq(result, next)
			continue
		}
		break
	}
	return result, nil
}

// postfix ::= atom ('*' | '?')?
//
// A bare '*' that begins a step is the field wildcard (handled in
// parseAtom); a '*' immediately after an atom is the Kleene postfix. "**"
// therefore parses as FieldWildcard followed by postfix Star, i.e. "any
// number of any fields" — never as a bare wildcard in postfix position on
// itself.
func (p *Parser) parsePostfix() (*ast.Query, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	switch p.cur.Type {
	case lexer.STAR:
		p.advance()
		return ast.NewStar(atom), nil
	case lexer.QUESTION:
		p.advance()
		return ast.NewOpt(atom), nil
	default:
		return atom, nil
	}
}

// atom ::= field | index_expr | '(' expr ')'
func (p *Parser) parseAtom() (*ast.Query, error) {
	switch p.cur.Type {
	case lexer.IDENT:
		name := p.cur.Literal
		p.advance()
		return ast.NewField(name), nil
	case lexer.QUOTEDIDENT:
		name := p.cur.Literal
		p.advance()
		return ast.NewField(name), nil
	case lexer.STAR:
		p.advance()
		return ast.NewFieldWildcard(), nil
	case lexer.LBRACKET:
		return p.parseIndexExpr()
	case lexer.LPAREN:
		p.advance()
		inner, err := p.parseAlt()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.RPAREN {
			return nil, p.errorf("')'")
		}
		p.advance()
		return inner, nil
	case lexer.REGEX:
		return nil, &ParseError{
			Pos:      p.cur.Pos,
			Expected: "a field, index, or group (regex field patterns are not supported)",
			Found:    tokenDesc(p.cur),
		}
	case lexer.ILLEGAL:
		return nil, p.illegalTokenError(p.cur)
	default:
		return nil, p.errorf("a field name, '[', '(', or '*'")
	}
}

// index_expr ::= '[' Integer ']' | '[' Integer ':' Integer ']' | '[' '*' ']'
func (p *Parser) parseIndexExpr() (*ast.Query, error) {
	p.advance() // consume '['

	if p.cur.Type == lexer.STAR {
		p.advance()
		if p.cur.Type != lexer.RBRACKET {
			return nil, p.errorf("']'")
		}
		p.advance()
		return ast.NewIndexWildcard(), nil
	}

	if p.cur.Type == lexer.ILLEGAL {
		return nil, p.illegalTokenError(p.cur)
	}
	if p.cur.Type != lexer.INTEGER {
		return nil, p.errorf("an integer or '*'")
	}
	start, err := p.parseUint32()
	if err != nil {
		return nil, err
	}

	if p.cur.Type == lexer.COLON {
		p.advance()
		if p.cur.Type == lexer.ILLEGAL {
			return nil, p.illegalTokenError(p.cur)
		}
		if p.cur.Type != lexer.INTEGER {
			return nil, p.errorf("an integer")
		}
		end, err := p.parseUint32()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != lexer.RBRACKET {
			return nil, p.errorf("']'")
		}
		p.advance()
		if start > end {
			return nil, &ParseError{
				Pos:      p.cur.Pos,
				Expected: "a slice with start <= end",
				Found:    fmt.Sprintf("[%d:%d]", start, end),
			}
		}
		return ast.NewSlice(start, end), nil
	}

	if p.cur.Type != lexer.RBRACKET {
		return nil, p.errorf("']' or ':'")
	}
	p.advance()
	return ast.NewIndex(start), nil
}

func (p *Parser) parseUint32() (uint32, error) {
	lit := p.cur.Literal
	n, err := strconv.ParseUint(lit, 10, 32)
	if err != nil {
		return 0, &ParseError{
			Pos:      p.cur.Pos,
			Expected: "an array index in range",
			Found:    fmt.Sprintf("%q", lit),
		}
	}
	p.advance()
	return uint32(n), nil
}
