package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

// set operator binding strength; INTERSECT binds tighter
const (
	precUnion     = 10
	precIntersect = 20
)

// parseQuery parses a full query: optional CTEs, a body, then ORDER BY,
// LIMIT and OFFSET.
func (s *state) parseQuery() (*ast.Query, error) {
	q := &ast.Query{}

	if s.parseKeyword("WITH") {
		with, err := s.parseWith()
		if err != nil {
			return nil, err
		}
		q.With = with
	}

	body, err := s.parseQueryBody(0)
	if err != nil {
		return nil, err
	}
	q.Body = body

	if s.parseKeywords("ORDER", "BY") {
		for {
			item, err := s.parseOrderByExpr()
			if err != nil {
				return nil, err
			}
			q.OrderBy = append(q.OrderBy, item)
			if !s.consumeToken(",") {
				break
			}
		}
	}

	if s.parseKeyword("LIMIT") {
		if q.Limit, err = s.parseExpr(); err != nil {
			return nil, err
		}
	}

	if s.parseKeyword("OFFSET") {
		value, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		q.Offset = &ast.Offset{Value: value}
		if tok := s.peek(); tokenizer.IsKeyword(tok, "ROW") || tokenizer.IsKeyword(tok, "ROWS") {
			q.Offset.Rows = strings.ToUpper(s.next().Value)
		}
	}

	return q, nil
}

func (s *state) parseWith() (*ast.With, error) {
	with := &ast.With{Recursive: s.parseKeyword("RECURSIVE")}

	for {
		name, err := s.parseIdentifier()
		if err != nil {
			return nil, err
		}
		cols, err := s.parseParenthesizedColumnList(true)
		if err != nil {
			return nil, err
		}
		if err := s.expectKeyword("AS"); err != nil {
			return nil, err
		}
		q, err := s.parseNestedQuery()
		if err != nil {
			return nil, err
		}

		with.CTEs = append(with.CTEs, ast.CTE{
			Alias: ast.TableAlias{Name: name, Columns: cols},
			Query: q,
		})

		if !s.consumeToken(",") {
			return with, nil
		}
	}
}

// parseNestedQuery parses "(" query ")".
func (s *state) parseNestedQuery() (*ast.Query, error) {
	if err := s.expectToken("("); err != nil {
		return nil, err
	}
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	q, err := s.parseQuery()
	if err != nil {
		return nil, err
	}
	if err := s.expectToken(")"); err != nil {
		return nil, err
	}
	return q, nil
}

// parseQueryBody parses SELECT blocks and parenthesized queries joined by
// set operators binding tighter than prec.
func (s *state) parseQueryBody(prec int) (ast.SetExpr, error) {
	var body ast.SetExpr

	switch tok := s.peek(); {
	case s.parseKeyword("SELECT"):
		sel, err := s.parseSelect()
		if err != nil {
			return nil, err
		}
		body = sel

	case tokenizer.IsPunct(tok, "("):
		q, err := s.parseNestedQuery()
		if err != nil {
			return nil, err
		}
		body = &ast.NestedQuery{Query: q}

	default:
		return nil, s.expected("SELECT or a subquery in the query body", tok)
	}

	for {
		op, opPrec := setOperator(s.peek())
		if op == "" || prec >= opPrec {
			return body, nil
		}

		s.next()
		all := s.parseKeyword("ALL")
		right, err := s.parseQueryBody(opPrec)
		if err != nil {
			return nil, err
		}
		body = &ast.SetOperation{Op: op, All: all, Left: body, Right: right}
	}
}

func setOperator(tok lexer.Token) (ast.SetOperator, int) {
	switch {
	case tokenizer.IsKeyword(tok, "UNION"):
		return ast.Union, precUnion
	case tokenizer.IsKeyword(tok, "EXCEPT"):
		return ast.Except, precUnion
	case tokenizer.IsKeyword(tok, "INTERSECT"):
		return ast.Intersect, precIntersect
	}
	return "", 0
}

// parseSelect parses a SELECT block after the SELECT keyword.
func (s *state) parseSelect() (*ast.Select, error) {
	sel := &ast.Select{Distinct: s.parseKeyword("DISTINCT")}

	for {
		item, err := s.parseSelectItem()
		if err != nil {
			return nil, err
		}
		sel.Projection = append(sel.Projection, item)
		if !s.consumeToken(",") {
			break
		}
	}

	var err error
	if s.parseKeyword("FROM") {
		if sel.From, err = s.parseTableAndJoinsList(); err != nil {
			return nil, err
		}
	}

	if s.parseKeyword("WHERE") {
		if sel.Selection, err = s.parseExpr(); err != nil {
			return nil, err
		}
	}

	if s.parseKeywords("GROUP", "BY") {
		if sel.GroupBy, err = s.parseCommaSeparatedExprs(); err != nil {
			return nil, err
		}
	}

	if s.parseKeyword("HAVING") {
		if sel.Having, err = s.parseExpr(); err != nil {
			return nil, err
		}
	}

	return sel, nil
}

func (s *state) parseSelectItem() (ast.SelectItem, error) {
	expr, err := s.parseWildcardExpr()
	if err != nil {
		return ast.SelectItem{}, err
	}

	switch expr.(type) {
	case *ast.Wildcard, *ast.QualifiedWildcard:
		return ast.SelectItem{Expr: expr}, nil
	}

	alias, err := s.parseOptionalAlias(dialect.ReservedForColumnAlias)
	if err != nil {
		return ast.SelectItem{}, err
	}
	return ast.SelectItem{Expr: expr, Alias: alias}, nil
}

func (s *state) parseOrderByExpr() (ast.OrderByExpr, error) {
	expr, err := s.parseExpr()
	if err != nil {
		return ast.OrderByExpr{}, err
	}

	item := ast.OrderByExpr{Expr: expr}
	switch {
	case s.parseKeyword("ASC"):
		asc := true
		item.Asc = &asc
	case s.parseKeyword("DESC"):
		asc := false
		item.Asc = &asc
	}
	return item, nil
}
