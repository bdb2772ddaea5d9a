package parser

import (
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

// parenKind classifies what a run of opening parentheses leads to.
type parenKind int

const (
	// ( followed by anything other than a query
	parenRelation parenKind = iota
	// ( SELECT ...
	parenQuery
	// ( ( ... ( SELECT ...
	parenNestedQuery
)

// parseTableAndJoinsList parses the comma separated FROM list.
func (s *state) parseTableAndJoinsList() ([]*ast.TableWithJoins, error) {
	var out []*ast.TableWithJoins
	for {
		twj, err := s.parseTableAndJoins()
		if err != nil {
			return nil, err
		}
		out = append(out, twj)
		if !s.consumeToken(",") {
			return out, nil
		}
	}
}

// parseTableAndJoins parses one relation followed by any number of joins.
func (s *state) parseTableAndJoins() (*ast.TableWithJoins, error) {
	relation, err := s.parseTableFactor()
	if err != nil {
		return nil, err
	}

	twj := &ast.TableWithJoins{Relation: relation}
	for {
		join, ok, err := s.parseJoin()
		if err != nil {
			return nil, err
		}
		if !ok {
			return twj, nil
		}
		twj.Joins = append(twj.Joins, join)
	}
}

// parseJoin parses a single join. It returns false without consuming
// anything when the next token does not start a join.
func (s *state) parseJoin() (ast.Join, bool, error) {
	if s.parseKeyword("CROSS") {
		var op ast.JoinOperator
		switch {
		case s.parseKeyword("JOIN"):
			op = ast.JoinCross
		case s.parseKeyword("APPLY"):
			op = ast.JoinCrossApply
		default:
			return ast.Join{}, false, s.expected("JOIN or APPLY after CROSS", s.peek())
		}
		return s.parseUnconstrainedJoin(op)
	}

	if s.parseKeyword("OUTER") {
		if !s.parseKeyword("APPLY") {
			return ast.Join{}, false, s.expected("APPLY after OUTER", s.peek())
		}
		return s.parseUnconstrainedJoin(ast.JoinOuterApply)
	}

	natural := s.parseKeyword("NATURAL")
	tok := s.peek()

	var op ast.JoinOperator
	switch {
	case tokenizer.IsKeyword(tok, "JOIN"), tokenizer.IsKeyword(tok, "INNER"):
		s.parseKeyword("INNER")
		op = ast.JoinInner
	case tokenizer.IsKeyword(tok, "LEFT"):
		op = ast.JoinLeftOuter
	case tokenizer.IsKeyword(tok, "RIGHT"):
		op = ast.JoinRightOuter
	case tokenizer.IsKeyword(tok, "FULL"):
		op = ast.JoinFullOuter
	default:
		if natural {
			return ast.Join{}, false, s.expected("a join type after NATURAL", tok)
		}
		return ast.Join{}, false, nil
	}

	if op != ast.JoinInner {
		s.next()
		s.parseKeyword("OUTER")
	}
	if err := s.expectKeyword("JOIN"); err != nil {
		return ast.Join{}, false, err
	}

	relation, err := s.parseTableFactor()
	if err != nil {
		return ast.Join{}, false, err
	}

	constraint, err := s.parseJoinConstraint(natural)
	if err != nil {
		return ast.Join{}, false, err
	}

	return ast.Join{Relation: relation, Operator: op, Constraint: constraint}, true, nil
}

func (s *state) parseUnconstrainedJoin(op ast.JoinOperator) (ast.Join, bool, error) {
	relation, err := s.parseTableFactor()
	if err != nil {
		return ast.Join{}, false, err
	}
	return ast.Join{Relation: relation, Operator: op}, true, nil
}

func (s *state) parseJoinConstraint(natural bool) (ast.JoinConstraint, error) {
	switch {
	case natural:
		return &ast.JoinNatural{}, nil

	case s.parseKeyword("ON"):
		expr, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		return &ast.JoinOn{Expr: expr}, nil

	case s.parseKeyword("USING"):
		cols, err := s.parseParenthesizedColumnList(false)
		if err != nil {
			return nil, err
		}
		return &ast.JoinUsing{Columns: cols}, nil
	}

	return nil, s.expected("ON, or USING after JOIN", s.peek())
}

// parseTableFactor parses a single relation: a named table or table
// function, a derived table, or a parenthesized group.
func (s *state) parseTableFactor() (ast.TableFactor, error) {
	if tokenizer.IsKeyword(s.peek(), "LATERAL") {
		if err := s.enter(); err != nil {
			return nil, err
		}
		defer s.leave()

		s.next()
		if !s.consumeToken("(") {
			return nil, s.expected("subquery after LATERAL", s.peek())
		}
		return s.parseDerivedTableFactor(true)
	}

	if !tokenizer.IsPunct(s.peek(), "(") {
		return s.parseTable()
	}

	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	switch s.classifyParen() {
	case parenQuery:
		s.next()
		return s.parseDerivedTableFactor(false)

	case parenNestedQuery:
		// Either a parenthesized relation around a derived table, as in
		// ((SELECT 1) AS t), or a query whose body starts with a
		// parenthesized query, as in ((SELECT 1) UNION (SELECT 2)).
		cp := s.lex.MakeCheckpoint()
		factor, err := s.parseParenthesizedTableFactor()
		if err == nil {
			return factor, nil
		}

		s.lex.LoadCheckpoint(cp)
		s.next()
		if derived, derr := s.parseDerivedTableFactor(false); derr == nil {
			return derived, nil
		}
		return nil, err
	}

	return s.parseParenthesizedTableFactor()
}

// classifyParen looks past the run of "(" at the cursor without consuming
// anything.
func (s *state) classifyParen() parenKind {
	cp := s.lex.MakeCheckpoint()
	defer s.lex.LoadCheckpoint(cp)

	s.next()
	nested := false
	for s.consumeToken("(") {
		nested = true
	}

	switch {
	case !startsQuery(s.peek()):
		return parenRelation
	case nested:
		return parenNestedQuery
	}
	return parenQuery
}

// parseDerivedTableFactor parses the rest of a derived table once its "("
// has been consumed.
func (s *state) parseDerivedTableFactor(lateral bool) (ast.TableFactor, error) {
	q, err := s.parseQuery()
	if err != nil {
		return nil, err
	}
	if err := s.expectToken(")"); err != nil {
		return nil, err
	}

	alias, err := s.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}

	return &ast.Derived{Lateral: lateral, Subquery: q, Alias: alias}, nil
}

// parseParenthesizedTableFactor parses "(" table-with-joins ")".
//
// A join tree becomes a NestedJoin and may not be followed by an alias. A
// single relation is unwrapped and returned as is, with a trailing alias
// bound to it; this recurses, so any number of parentheses around one
// relation collapse to that relation.
func (s *state) parseParenthesizedTableFactor() (ast.TableFactor, error) {
	s.next()

	inner, err := s.parseTableAndJoins()
	if err != nil {
		return nil, err
	}

	nested, isNested := inner.Relation.(*ast.NestedJoin)
	if len(inner.Joins) > 0 || isNested {
		if err := s.expectToken(")"); err != nil {
			return nil, err
		}

		// a join tree can't take an alias
		if s.startsTableAlias() {
			return nil, s.expected("end of statement", s.peek())
		}

		if isNested && len(inner.Joins) == 0 {
			return nested, nil
		}
		return &ast.NestedJoin{TableWithJoins: inner}, nil
	}

	if !dialect.SupportsParenthesizedRelations(s.dialect) {
		return nil, s.expected("joined table", s.peek())
	}

	if err := s.expectToken(")"); err != nil {
		return nil, err
	}

	pos := s.peek().Pos
	alias, err := s.parseOptionalTableAlias()
	if err != nil {
		return nil, err
	}

	if alias != nil {
		if err := bindAlias(inner.Relation, alias); err != nil {
			err.Pos = pos
			return nil, err
		}
	}

	return inner.Relation, nil
}

// parseTable parses a named relation with its optional arguments, alias and
// MsSQL table hints.
func (s *state) parseTable() (ast.TableFactor, error) {
	name, err := s.parseObjectName()
	if err != nil {
		return nil, err
	}

	table := &ast.Table{Name: name}

	if s.consumeToken("(") {
		table.Args = []ast.Expr{}
		if !s.consumeToken(")") {
			if table.Args, err = s.parseCommaSeparatedExprs(); err != nil {
				return nil, err
			}
			if err := s.expectToken(")"); err != nil {
				return nil, err
			}
		}
	}

	if table.Alias, err = s.parseOptionalTableAlias(); err != nil {
		return nil, err
	}

	if !s.dialect.IsDialect(dialect.MsSQLName) {
		return table, nil
	}

	cp := s.lex.MakeCheckpoint()
	if s.parseKeyword("WITH") {
		if !s.consumeToken("(") {
			// WITH starts the next statement's CTE list
			s.lex.LoadCheckpoint(cp)
			return table, nil
		}

		if table.WithHints, err = s.parseCommaSeparatedExprs(); err != nil {
			return nil, err
		}
		if err := s.expectToken(")"); err != nil {
			return nil, err
		}
	}

	return table, nil
}
