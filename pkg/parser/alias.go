package parser

import (
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

// reservedWords is the set of bare words that end an implicit alias.
type reservedWords interface {
	Contains(word string) bool
}

// parseOptionalAlias parses "AS name", or an implicit alias when the next
// token is a non-reserved word, a delimited identifier or a string. Nothing
// is consumed when no alias follows.
func (s *state) parseOptionalAlias(reserved reservedWords) (*ast.Ident, error) {
	afterAs := s.parseKeyword("AS")
	tok := s.peek()

	switch tok.Type {
	case tokenizer.Word:
		if afterAs || !reserved.Contains(tok.Value) {
			s.next()
			ident := identFromToken(tok)
			return &ident, nil
		}
	case tokenizer.QuotedIdent:
		s.next()
		ident := identFromToken(tok)
		return &ident, nil
	case tokenizer.String:
		s.next()
		return &ast.Ident{Value: unquoteString(tok.Value), Quote: '\''}, nil
	}

	if afterAs {
		return nil, s.expected("an identifier after AS", tok)
	}
	return nil, nil
}

// parseOptionalTableAlias parses an alias for a relation, including an
// optional column list.
func (s *state) parseOptionalTableAlias() (*ast.TableAlias, error) {
	name, err := s.parseOptionalAlias(dialect.ReservedForTableAlias)
	if err != nil || name == nil {
		return nil, err
	}

	cols, err := s.parseParenthesizedColumnList(true)
	if err != nil {
		return nil, err
	}

	return &ast.TableAlias{Name: *name, Columns: cols}, nil
}

// startsTableAlias reports whether the next token would be parsed as a
// table alias.
func (s *state) startsTableAlias() bool {
	tok := s.peek()
	switch tok.Type {
	case tokenizer.Word:
		return tokenizer.IsKeyword(tok, "AS") || !dialect.ReservedForTableAlias.Contains(tok.Value)
	case tokenizer.QuotedIdent, tokenizer.String:
		return true
	}
	return false
}

// bindAlias attaches alias to f. A relation takes at most one alias; the
// error names the alias that was bound first.
func bindAlias(f ast.TableFactor, alias *ast.TableAlias) *ParserError {
	if existing := ast.AliasOf(f); existing != nil {
		return &ParserError{Msg: "duplicate alias " + existing.Name.String()}
	}
	if !ast.SetAlias(f, alias) {
		return &ParserError{Msg: "cannot alias " + f.String()}
	}
	return nil
}
