package parser

import (
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

// parseCreate parses CREATE [OR REPLACE] TABLE [IF NOT EXISTS] name (columns).
func (s *state) parseCreate() (ast.Statement, error) {
	s.next()
	stmt := &ast.CreateTable{OrReplace: s.parseKeywords("OR", "REPLACE")}

	if !s.parseKeyword("TABLE") {
		return nil, s.expected("an object type after CREATE", s.peek())
	}

	stmt.IfNotExists = s.parseKeywords("IF", "NOT", "EXISTS")

	name, err := s.parseObjectName()
	if err != nil {
		return nil, err
	}
	stmt.Name = name

	if stmt.Columns, err = s.parseColumns(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (s *state) parseColumns() ([]ast.ColumnDef, error) {
	if !s.consumeToken("(") || s.consumeToken(")") {
		return nil, nil
	}

	var cols []ast.ColumnDef
	for {
		col, err := s.parseColumnDef()
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)

		comma := s.consumeToken(",")
		if s.consumeToken(")") {
			return cols, nil
		}
		if !comma {
			return nil, s.expected("',' or ')' after column definition", s.peek())
		}
	}
}

func (s *state) parseColumnDef() (ast.ColumnDef, error) {
	name, err := s.parseIdentifier()
	if err != nil {
		return ast.ColumnDef{}, s.expected("column name or constraint definition", s.peek())
	}

	dt, err := s.parseDataType()
	if err != nil {
		return ast.ColumnDef{}, err
	}

	col := ast.ColumnDef{Name: name, DataType: dt}
	for {
		var opt ast.ColumnOption
		switch {
		case s.parseKeywords("NOT", "NULL"):
			opt.Kind = ast.OptionNotNull
		case s.parseKeyword("NULL"):
			opt.Kind = ast.OptionNull
		case s.parseKeywords("PRIMARY", "KEY"):
			opt.Kind = ast.OptionPrimaryKey
		case s.parseKeyword("UNIQUE"):
			opt.Kind = ast.OptionUnique
		case s.parseKeyword("DEFAULT"):
			opt.Kind = ast.OptionDefault
			if opt.Default, err = s.parseExpr(); err != nil {
				return ast.ColumnDef{}, err
			}
		default:
			return col, nil
		}
		col.Options = append(col.Options, opt)
	}
}

var columnOptionKeywords = []string{"NOT", "NULL", "PRIMARY", "UNIQUE", "DEFAULT"}

// startsColumnOption reports whether tok begins a column option rather than
// a type name.
func startsColumnOption(tok lexer.Token) bool {
	for _, kw := range columnOptionKeywords {
		if tokenizer.IsKeyword(tok, kw) {
			return true
		}
	}
	return false
}
