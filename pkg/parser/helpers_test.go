package parser_test

import (
	"testing"

	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	. "github.com/pseudomuto/sqlfront/pkg/parser"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, d dialect.Dialect, sql string) ast.Statement {
	t.Helper()

	stmts, err := ParseSQL(d, sql)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	return stmts[0]
}

// verifiedStatement parses sql, checks that it renders back to exactly sql and
// that the rendering parses to an equal tree.
func verifiedStatement(t *testing.T, d dialect.Dialect, sql string) ast.Statement {
	t.Helper()

	stmt := parseOne(t, d, sql)
	require.Equal(t, sql, stmt.String())

	again := parseOne(t, d, stmt.String())
	require.Equal(t, stmt, again)
	require.True(t, ast.EqualStatement(stmt, again))
	return stmt
}

// fromList returns the FROM clause of a SELECT statement.
func fromList(t *testing.T, stmt ast.Statement) []*ast.TableWithJoins {
	t.Helper()

	qs, ok := stmt.(*ast.QueryStatement)
	require.True(t, ok, "expected a query, got %T", stmt)
	sel, ok := qs.Query.Body.(*ast.Select)
	require.True(t, ok, "expected a SELECT body, got %T", qs.Query.Body)
	return sel.From
}

// onlyRelation parses sql and returns the single relation in its FROM clause.
func onlyRelation(t *testing.T, d dialect.Dialect, sql string) ast.TableFactor {
	t.Helper()

	from := fromList(t, parseOne(t, d, sql))
	require.Len(t, from, 1)
	require.Empty(t, from[0].Joins)
	return from[0].Relation
}

func table(name string, alias ...string) *ast.Table {
	tbl := &ast.Table{Name: ast.NewObjectName(name)}
	if len(alias) > 0 {
		tbl.Alias = &ast.TableAlias{Name: ast.NewIdent(alias[0])}
	}
	return tbl
}

func naturalJoin(left ast.TableFactor, right ast.TableFactor) *ast.NestedJoin {
	return &ast.NestedJoin{TableWithJoins: &ast.TableWithJoins{
		Relation: left,
		Joins: []ast.Join{{
			Relation:   right,
			Operator:   ast.JoinInner,
			Constraint: &ast.JoinNatural{},
		}},
	}}
}

func selectOne() *ast.Query {
	return &ast.Query{Body: &ast.Select{
		Projection: []ast.SelectItem{{Expr: &ast.Number{Value: "1"}}},
	}}
}
