package parser_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	. "github.com/pseudomuto/sqlfront/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestParenthesizedRelationsUnwrap(t *testing.T) {
	derivedT := &ast.Derived{
		Subquery: selectOne(),
		Alias:    &ast.TableAlias{Name: ast.NewIdent("t")},
	}

	tests := []struct {
		name     string
		sql      string
		expected ast.TableFactor
	}{
		{
			name:     "derived table without parens",
			sql:      "SELECT * FROM (SELECT 1) AS t",
			expected: derivedT,
		},
		{
			name:     "aliased derived table in two parens",
			sql:      "SELECT * FROM (((SELECT 1) AS t))",
			expected: derivedT,
		},
		{
			name:     "alias outside the parens",
			sql:      "SELECT * FROM ((SELECT 1)) AS t",
			expected: derivedT,
		},
		{
			name:     "alias between the parens",
			sql:      "SELECT * FROM (((SELECT 1)) t)",
			expected: derivedT,
		},
		{
			name:     "bare table",
			sql:      "SELECT * FROM (((a)))",
			expected: table("a"),
		},
		{
			name:     "table aliased inside",
			sql:      "SELECT * FROM ((a AS x))",
			expected: table("a", "x"),
		},
		{
			name:     "table aliased outside",
			sql:      "SELECT * FROM ((a)) x",
			expected: table("a", "x"),
		},
		{
			name: "alias with column list",
			sql:  "SELECT * FROM (a) AS x (c1, c2)",
			expected: &ast.Table{
				Name:  ast.NewObjectName("a"),
				Alias: &ast.TableAlias{Name: ast.NewIdent("x"), Columns: []ast.Ident{ast.NewIdent("c1"), ast.NewIdent("c2")}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := onlyRelation(t, dialect.Snowflake{}, tt.sql)
			require.Equal(t, tt.expected, got)
			require.True(t, ast.EqualTableFactor(tt.expected, got))
		})
	}
}

func TestNestedJoinStructureIgnoresInnerParens(t *testing.T) {
	expected := naturalJoin(table("a"), table("b"))

	for _, sql := range []string{
		"SELECT * FROM (a NATURAL JOIN b)",
		"SELECT * FROM (a NATURAL JOIN (b))",
		"SELECT * FROM (a NATURAL JOIN ((b)))",
		"SELECT * FROM ((a) NATURAL JOIN (((b))))",
		"SELECT * FROM ((a NATURAL JOIN b))",
	} {
		t.Run(sql, func(t *testing.T) {
			require.Equal(t, expected, onlyRelation(t, dialect.Snowflake{}, sql))
		})
	}
}

func TestAliasBindsToNearestRelation(t *testing.T) {
	expected := naturalJoin(table("a"), table("b", "c"))

	for _, sql := range []string{
		"SELECT * FROM (a NATURAL JOIN (b) c)",
		"SELECT * FROM (a NATURAL JOIN ((b)) c)",
		"SELECT * FROM (a NATURAL JOIN ( (b) c ) )",
		"SELECT * FROM (a NATURAL JOIN ( (b) as c ) )",
		"SELECT * FROM (a NATURAL JOIN b c)",
	} {
		t.Run(sql, func(t *testing.T) {
			require.Equal(t, expected, onlyRelation(t, dialect.Snowflake{}, sql))
		})
	}

	t.Run("both sides aliased", func(t *testing.T) {
		got := onlyRelation(t, dialect.Snowflake{}, "SELECT * FROM (a alias1 NATURAL JOIN ( (b) c ) )")
		require.Equal(t, naturalJoin(table("a", "alias1"), table("b", "c")), got)
	})
}

func TestAliasErrors(t *testing.T) {
	tests := []struct {
		name string
		sql  string
		err  string
	}{
		{
			name: "alias inside and outside parens",
			sql:  "SELECT * FROM (a b) c",
			err:  "duplicate alias b",
		},
		{
			name: "alias at two paren levels",
			sql:  "SELECT * FROM ((a) b) c",
			err:  "duplicate alias b",
		},
		{
			name: "aliased derived table aliased again",
			sql:  "SELECT * FROM ((SELECT 1) AS t (x)) u",
			err:  "duplicate alias t",
		},
		{
			name: "alias on a join tree",
			sql:  "SELECT * FROM (a NATURAL JOIN b) c",
			err:  "Expected end of statement, found: c",
		},
		{
			name: "AS alias on a join tree",
			sql:  "SELECT * FROM (a NATURAL JOIN b) AS c",
			err:  "Expected end of statement, found: AS",
		},
		{
			name: "alias on a join tree inside a subquery",
			sql:  "SELECT * FROM (SELECT * FROM (a CROSS JOIN b) x) y",
			err:  "Expected end of statement, found: x",
		},
		{
			name: "missing identifier after AS",
			sql:  "SELECT * FROM a AS",
			err:  "Expected an identifier after AS, found: EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSQL(dialect.Snowflake{}, tt.sql)
			require.EqualError(t, err, tt.err)

			var perr *ParserError
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tt.err, perr.Message())
		})
	}
}

func TestErrorPosition(t *testing.T) {
	_, err := ParseSQL(dialect.Snowflake{}, "SELECT * FROM (a NATURAL JOIN b) c")

	var perr *ParserError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 1, perr.Position().Line)
	require.Equal(t, 34, perr.Position().Column)
	require.Equal(t, 33, perr.Position().Offset)
}

func TestParenthesizedRelationsByDialect(t *testing.T) {
	t.Run("supported", func(t *testing.T) {
		for _, d := range []dialect.Dialect{dialect.Snowflake{}, dialect.Generic{}} {
			require.Equal(t, table("a", "x"), onlyRelation(t, d, "SELECT * FROM (a) x"))
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		for _, d := range []dialect.Dialect{
			dialect.ANSI{}, dialect.MySQL{}, dialect.MsSQL{}, dialect.PostgreSQL{}, dialect.SQLite{},
		} {
			_, err := ParseSQL(d, "SELECT * FROM (a) x")
			require.EqualError(t, err, "Expected joined table, found: )", d.Name())
		}
	})

	t.Run("join trees parse everywhere", func(t *testing.T) {
		got := onlyRelation(t, dialect.PostgreSQL{}, "SELECT * FROM (a NATURAL JOIN b)")
		require.Equal(t, naturalJoin(table("a"), table("b")), got)
	})

	t.Run("parenthesized subquery falls back to a derived table", func(t *testing.T) {
		got := onlyRelation(t, dialect.PostgreSQL{}, "SELECT * FROM ((SELECT 1)) AS t")
		require.Equal(t, &ast.Derived{
			Subquery: &ast.Query{Body: &ast.NestedQuery{Query: selectOne()}},
			Alias:    &ast.TableAlias{Name: ast.NewIdent("t")},
		}, got)
	})
}

func TestDerivedTableWithSetOperation(t *testing.T) {
	got := onlyRelation(t, dialect.Snowflake{}, "SELECT * FROM ((SELECT 1) UNION (SELECT 2)) AS u")

	derived, ok := got.(*ast.Derived)
	require.True(t, ok, "expected a derived table, got %T", got)
	require.Equal(t, "u", derived.Alias.Name.Value)

	op, ok := derived.Subquery.Body.(*ast.SetOperation)
	require.True(t, ok)
	require.Equal(t, ast.Union, op.Op)
	require.Equal(t, "(SELECT 1)", op.Left.String())
	require.Equal(t, "(SELECT 2)", op.Right.String())
}

func TestLateralDerivedTable(t *testing.T) {
	from := fromList(t, parseOne(t, dialect.PostgreSQL{}, "SELECT * FROM a, LATERAL (SELECT * FROM b) AS l"))
	require.Len(t, from, 2)

	derived, ok := from[1].Relation.(*ast.Derived)
	require.True(t, ok)
	require.True(t, derived.Lateral)
	require.Equal(t, "l", derived.Alias.Name.Value)

	_, err := ParseSQL(dialect.PostgreSQL{}, "SELECT * FROM LATERAL b")
	require.EqualError(t, err, "Expected subquery after LATERAL, found: b")
}

func TestJoinOperators(t *testing.T) {
	sql := "SELECT * FROM a " +
		"LEFT OUTER JOIN b ON a.id = b.id " +
		"RIGHT JOIN c USING (id, other) " +
		"FULL OUTER JOIN d ON TRUE " +
		"INNER JOIN e ON 1 = 1 " +
		"JOIN f USING (id) " +
		"NATURAL LEFT JOIN g " +
		"CROSS JOIN h " +
		"CROSS APPLY fn(h.x) " +
		"OUTER APPLY fn2()"

	from := fromList(t, parseOne(t, dialect.MsSQL{}, sql))
	require.Len(t, from, 1)

	joins := from[0].Joins
	require.Len(t, joins, 9)

	expected := []struct {
		op         ast.JoinOperator
		constraint ast.JoinConstraint
		relation   string
	}{
		{ast.JoinLeftOuter, &ast.JoinOn{}, "b"},
		{ast.JoinRightOuter, &ast.JoinUsing{}, "c"},
		{ast.JoinFullOuter, &ast.JoinOn{}, "d"},
		{ast.JoinInner, &ast.JoinOn{}, "e"},
		{ast.JoinInner, &ast.JoinUsing{}, "f"},
		{ast.JoinLeftOuter, &ast.JoinNatural{}, "g"},
		{ast.JoinCross, nil, "h"},
		{ast.JoinCrossApply, nil, "fn(h.x)"},
		{ast.JoinOuterApply, nil, "fn2()"},
	}

	for i, e := range expected {
		require.Equal(t, e.op, joins[i].Operator, "join %d", i)
		require.IsType(t, e.constraint, joins[i].Constraint, "join %d", i)
		require.Equal(t, e.relation, joins[i].Relation.String(), "join %d", i)
	}

	require.Equal(t, []ast.Ident{ast.NewIdent("id"), ast.NewIdent("other")}, joins[1].Constraint.(*ast.JoinUsing).Columns)
	require.Equal(t, "a.id = b.id", joins[0].Constraint.(*ast.JoinOn).Expr.String())
}

func TestJoinErrors(t *testing.T) {
	tests := []struct {
		sql string
		err string
	}{
		{"SELECT * FROM a JOIN b", "Expected ON, or USING after JOIN, found: EOF"},
		{"SELECT * FROM a LEFT JOIN b WHERE x", "Expected ON, or USING after JOIN, found: WHERE"},
		{"SELECT * FROM a LEFT b", "Expected JOIN, found: b"},
		{"SELECT * FROM a OUTER b", "Expected APPLY after OUTER, found: b"},
		{"SELECT * FROM a NATURAL b", "Expected a join type after NATURAL, found: b"},
		{"SELECT * FROM a CROSS b", "Expected JOIN or APPLY after CROSS, found: b"},
		{"SELECT * FROM a JOIN b USING id", "Expected a list of columns in parentheses, found: id"},
		{"SELECT * FROM a JOIN", "Expected identifier, found: EOF"},
		{"SELECT * FROM (a JOIN b ON x", "Expected ), found: EOF"},
		{"SELECT * FROM (SELECT 1", "Expected ), found: EOF"},
	}

	for _, tt := range tests {
		t.Run(tt.sql, func(t *testing.T) {
			_, err := ParseSQL(dialect.Generic{}, tt.sql)
			require.EqualError(t, err, tt.err)
		})
	}
}

func TestFromListOrder(t *testing.T) {
	from := fromList(t, parseOne(t, dialect.Generic{}, "SELECT * FROM a, b JOIN c ON x, (d NATURAL JOIN e), f AS g"))
	require.Len(t, from, 4)

	names := make([]string, 0, len(from))
	for _, twj := range from {
		names = append(names, twj.String())
	}
	require.Equal(t, []string{"a", "b JOIN c ON x", "(d NATURAL JOIN e)", "f AS g"}, names)
}

func TestTableFunctionsAndHints(t *testing.T) {
	t.Run("table function", func(t *testing.T) {
		got := onlyRelation(t, dialect.Generic{}, "SELECT * FROM f(1, 'a') AS x")
		tbl, ok := got.(*ast.Table)
		require.True(t, ok)
		require.Len(t, tbl.Args, 2)
		require.Equal(t, "x", tbl.Alias.Name.Value)
	})

	t.Run("table function without arguments", func(t *testing.T) {
		got := onlyRelation(t, dialect.Generic{}, "SELECT * FROM f()")
		require.Equal(t, &ast.Table{Name: ast.NewObjectName("f"), Args: []ast.Expr{}}, got)
	})

	t.Run("table hints", func(t *testing.T) {
		got := onlyRelation(t, dialect.MsSQL{}, "SELECT * FROM [dbo].[t] AS x WITH (NOLOCK)")
		tbl, ok := got.(*ast.Table)
		require.True(t, ok)
		require.Equal(t, "[dbo].[t]", tbl.Name.String())
		require.Equal(t, "NOLOCK", tbl.WithHints[0].String())
	})

	t.Run("table hints outside mssql", func(t *testing.T) {
		for _, d := range []dialect.Dialect{dialect.Generic{}, dialect.PostgreSQL{}, dialect.Snowflake{}} {
			_, err := ParseSQL(d, "SELECT * FROM t AS x WITH (NOLOCK)")
			require.EqualError(t, err, "Expected end of statement, found: WITH", d.Name())
		}
	})
}

func TestImplicitAliases(t *testing.T) {
	tests := []struct {
		name  string
		d     dialect.Dialect
		sql   string
		alias ast.Ident
	}{
		{"bare word", dialect.Generic{}, "SELECT * FROM a x", ast.NewIdent("x")},
		{"double quoted", dialect.Generic{}, `SELECT * FROM a "x y"`, ast.Ident{Value: "x y", Quote: '"'}},
		{"quoted keyword", dialect.Generic{}, `SELECT * FROM a "join"`, ast.Ident{Value: "join", Quote: '"'}},
		{"backticks", dialect.MySQL{}, "SELECT * FROM a `x`", ast.Ident{Value: "x", Quote: '`'}},
		{"brackets", dialect.MsSQL{}, "SELECT * FROM a [x]", ast.Ident{Value: "x", Quote: '['}},
		{"string", dialect.Generic{}, "SELECT * FROM a 'x'", ast.Ident{Value: "x", Quote: '\''}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := onlyRelation(t, tt.d, tt.sql)
			require.Equal(t, tt.alias, ast.AliasOf(got).Name)
		})
	}

	t.Run("reserved words end the relation", func(t *testing.T) {
		for _, kw := range []string{"WHERE", "GROUP", "ORDER", "LIMIT", "UNION", "ON"} {
			_, err := ParseSQL(dialect.Generic{}, "SELECT * FROM a "+kw)
			require.Error(t, err)
			require.NotContains(t, err.Error(), "duplicate", kw)
		}

		got := onlyRelation(t, dialect.Generic{}, "SELECT * FROM a ORDER BY x")
		require.Nil(t, ast.AliasOf(got))
	})
}

func TestRecursionLimit(t *testing.T) {
	nested := func(n int, inner string) string {
		return strings.Repeat("(", n) + inner + strings.Repeat(")", n)
	}

	t.Run("table references", func(t *testing.T) {
		p := New(dialect.Snowflake{}, WithRecursionLimit(5))

		_, err := p.Parse("SELECT * FROM " + nested(5, "a"))
		require.NoError(t, err)

		_, err = p.Parse("SELECT * FROM " + nested(6, "a"))
		require.EqualError(t, err, "recursion limit exceeded")
	})

	t.Run("expressions", func(t *testing.T) {
		p := New(dialect.Generic{}, WithRecursionLimit(5))

		_, err := p.Parse("SELECT " + nested(2, "1"))
		require.NoError(t, err)

		_, err = p.Parse("SELECT " + nested(10, "1"))
		require.EqualError(t, err, "recursion limit exceeded")
	})

	t.Run("default limit", func(t *testing.T) {
		_, err := ParseSQL(dialect.Snowflake{}, "SELECT * FROM "+nested(20, "a"))
		require.NoError(t, err)

		_, err = ParseSQL(dialect.Snowflake{}, "SELECT * FROM "+nested(1000, "a"))
		require.EqualError(t, err, "recursion limit exceeded")

		_, err = ParseSQL(dialect.Generic{}, "SELECT "+nested(1000, "1"))
		require.EqualError(t, err, "recursion limit exceeded")
	})

	t.Run("non-positive limits are ignored", func(t *testing.T) {
		_, err := New(dialect.Snowflake{}, WithRecursionLimit(0)).Parse("SELECT * FROM " + nested(20, "a"))
		require.NoError(t, err)
	})
}
