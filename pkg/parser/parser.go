package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/consts"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

type (
	// Parser parses SQL text for one dialect.
	Parser struct {
		dialect        dialect.Dialect
		recursionLimit int
	}

	// Option configures a Parser.
	Option func(*Parser)

	// state is the per-call parsing state: the token cursor and the current
	// nesting depth.
	state struct {
		lex     *lexer.PeekingLexer
		dialect dialect.Dialect
		limit   int
		depth   int
	}
)

// WithRecursionLimit bounds how deeply parenthesized table references,
// queries and expressions may nest. Values below one are ignored.
func WithRecursionLimit(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.recursionLimit = n
		}
	}
}

// New creates a Parser for d.
func New(d dialect.Dialect, opts ...Option) *Parser {
	p := &Parser{dialect: d, recursionLimit: consts.DefaultRecursionLimit}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseSQL parses sql with a default Parser for d.
func ParseSQL(d dialect.Dialect, sql string) ([]ast.Statement, error) {
	return New(d).Parse(sql)
}

// Dialect returns the dialect the parser was created with.
func (p *Parser) Dialect() dialect.Dialect {
	return p.dialect
}

// Parse parses every statement in sql. Lexical errors are returned as
// *lexer.Error and syntax errors as *ParserError. Parsing stops at the first
// error.
func (p *Parser) Parse(sql string) ([]ast.Statement, error) {
	return p.ParseNamed("", sql)
}

// ParseNamed is like Parse but records filename in token positions.
func (p *Parser) ParseNamed(filename, sql string) ([]ast.Statement, error) {
	lex, err := lexer.Upgrade(tokenizer.NewNamed(p.dialect, filename, sql), tokenizer.Elided()...)
	if err != nil {
		return nil, err
	}

	s := &state{lex: lex, dialect: p.dialect, limit: p.recursionLimit}
	return s.parseStatements()
}

func (s *state) parseStatements() ([]ast.Statement, error) {
	var stmts []ast.Statement
	expectDelimiter := false

	for {
		for s.consumeToken(";") {
			expectDelimiter = false
		}

		if s.peek().EOF() {
			return stmts, nil
		}
		if expectDelimiter {
			return nil, s.expected("end of statement", s.peek())
		}

		stmt, err := s.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		expectDelimiter = true
	}
}

func (s *state) parseStatement() (ast.Statement, error) {
	tok := s.peek()

	switch {
	case startsQuery(tok), tokenizer.IsPunct(tok, "("):
		q, err := s.parseQuery()
		if err != nil {
			return nil, err
		}
		return &ast.QueryStatement{Query: q}, nil

	case tokenizer.IsKeyword(tok, "CREATE"):
		return s.parseCreate()
	}

	return nil, s.expected("an SQL statement", tok)
}

func (s *state) peek() lexer.Token {
	return *s.lex.Peek()
}

func (s *state) next() lexer.Token {
	return *s.lex.Next()
}

func (s *state) expected(what string, found lexer.Token) error {
	return expectedError(what, found)
}

// enter records one more level of nesting and fails once the limit is hit.
// Every successful call must be paired with leave.
func (s *state) enter() error {
	if s.depth >= s.limit {
		return &ParserError{Msg: "recursion limit exceeded", Pos: s.peek().Pos}
	}
	s.depth++
	return nil
}

func (s *state) leave() {
	s.depth--
}

// parseKeyword consumes the next token if it is the keyword kw.
func (s *state) parseKeyword(kw string) bool {
	if tokenizer.IsKeyword(s.peek(), kw) {
		s.next()
		return true
	}
	return false
}

// parseKeywords consumes the keyword sequence kws, or nothing at all.
func (s *state) parseKeywords(kws ...string) bool {
	cp := s.lex.MakeCheckpoint()
	for _, kw := range kws {
		if !s.parseKeyword(kw) {
			s.lex.LoadCheckpoint(cp)
			return false
		}
	}
	return true
}

func (s *state) expectKeyword(kw string) error {
	if !s.parseKeyword(kw) {
		return s.expected(kw, s.peek())
	}
	return nil
}

// consumeToken consumes the next token if it is the punctuation p.
func (s *state) consumeToken(p string) bool {
	if tokenizer.IsPunct(s.peek(), p) {
		s.next()
		return true
	}
	return false
}

func (s *state) expectToken(p string) error {
	if !s.consumeToken(p) {
		return s.expected(p, s.peek())
	}
	return nil
}

func startsQuery(tok lexer.Token) bool {
	return tokenizer.IsKeyword(tok, "SELECT") || tokenizer.IsKeyword(tok, "WITH")
}

// parseIdentifier parses a bare word or a delimited identifier.
func (s *state) parseIdentifier() (ast.Ident, error) {
	tok := s.peek()
	switch tok.Type {
	case tokenizer.Word, tokenizer.QuotedIdent:
		s.next()
		return identFromToken(tok), nil
	}
	return ast.Ident{}, s.expected("identifier", tok)
}

// parseObjectName parses a dotted name such as db.schema.table.
func (s *state) parseObjectName() (ast.ObjectName, error) {
	var name ast.ObjectName
	for {
		ident, err := s.parseIdentifier()
		if err != nil {
			return nil, err
		}
		name = append(name, ident)
		if !s.consumeToken(".") {
			return name, nil
		}
	}
}

// parseParenthesizedColumnList parses "(a, b, ...)". When optional is set
// and no "(" follows, it returns an empty list.
func (s *state) parseParenthesizedColumnList(optional bool) ([]ast.Ident, error) {
	if !s.consumeToken("(") {
		if optional {
			return nil, nil
		}
		return nil, s.expected("a list of columns in parentheses", s.peek())
	}

	var cols []ast.Ident
	for {
		col, err := s.parseIdentifier()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
		if !s.consumeToken(",") {
			break
		}
	}

	if err := s.expectToken(")"); err != nil {
		return nil, err
	}
	return cols, nil
}

func identFromToken(tok lexer.Token) ast.Ident {
	if tok.Type != tokenizer.QuotedIdent {
		return ast.NewIdent(tok.Value)
	}
	quote := rune(tok.Value[0])
	return ast.Ident{Value: tok.Value[1 : len(tok.Value)-1], Quote: quote}
}

func unquoteString(raw string) string {
	return strings.ReplaceAll(raw[1:len(raw)-1], "''", "'")
}
