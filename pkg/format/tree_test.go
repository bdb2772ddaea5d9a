package format_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/pseudomuto/sqlfront/pkg/dialect"
	. "github.com/pseudomuto/sqlfront/pkg/format"
	"github.com/pseudomuto/sqlfront/pkg/parser"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// dig walks decoded YAML using map keys and sequence indexes.
func dig(t *testing.T, v any, path ...any) any {
	t.Helper()

	for _, p := range path {
		switch key := p.(type) {
		case string:
			m, ok := v.(map[string]any)
			require.True(t, ok, "expected mapping at %q, got %T", key, v)
			v, ok = m[key]
			require.True(t, ok, "missing key %q", key)
		case int:
			s, ok := v.([]any)
			require.True(t, ok, "expected sequence at %d, got %T", key, v)
			require.Greater(t, len(s), key)
			v = s[key]
		}
	}
	return v
}

func TestWriteTree(t *testing.T) {
	stmts, err := parser.ParseSQL(dialect.Generic{}, `
		SELECT CAST(a AS VARCHAR(10)) FROM t JOIN u ON t.id = u.id;
		CREATE TABLE x (id INT NOT NULL)
	`)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteTree(&buf, stmts...))

	var docs []map[string]any
	dec := yaml.NewDecoder(&buf)
	for {
		var doc map[string]any
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		docs = append(docs, doc)
	}
	require.Len(t, docs, 2)

	query := docs[0]
	require.Equal(t, "QueryStatement", dig(t, query, "node"))

	cast := dig(t, query, "Query", "Body", "Projection", 0, "Expr")
	require.Equal(t, "Cast", dig(t, cast, "node"))
	require.Equal(t, "VARCHAR(10)", dig(t, cast, "DataType"))
	require.Equal(t, "a", dig(t, cast, "Expr", "Ident"))
	require.NotContains(t, cast, "Shorthand")

	from := dig(t, query, "Query", "Body", "From", 0)
	require.Equal(t, "t", dig(t, from, "Relation", "Name"))
	require.Equal(t, "JOIN", dig(t, from, "Joins", 0, "Operator"))
	require.Equal(t, "u", dig(t, from, "Joins", 0, "Relation", "Name"))
	require.Equal(t, "JoinOn", dig(t, from, "Joins", 0, "Constraint", "node"))
	require.Equal(t, "=", dig(t, from, "Joins", 0, "Constraint", "Expr", "Op"))

	create := docs[1]
	require.Equal(t, "CreateTable", dig(t, create, "node"))
	require.Equal(t, "x", dig(t, create, "Name"))
	require.Equal(t, "id", dig(t, create, "Columns", 0, "Name"))
	require.Equal(t, "INT", dig(t, create, "Columns", 0, "DataType"))
	require.Equal(t, "NOT NULL", dig(t, create, "Columns", 0, "Options", 0))
	require.NotContains(t, create, "IfNotExists")
}

func TestTree_Aliases(t *testing.T) {
	stmts, err := parser.ParseSQL(dialect.Generic{}, "WITH c (x) AS (SELECT 1) SELECT 'a' FROM c AS d (y)")
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, Tree(stmts[0]).Decode(&out))

	require.Equal(t, "c (x)", dig(t, out, "Query", "With", "CTEs", 0, "Alias"))
	require.Equal(t, "d (y)", dig(t, out, "Query", "Body", "From", 0, "Relation", "Alias"))

	literal := dig(t, out, "Query", "Body", "Projection", 0, "Expr")
	require.Equal(t, "StringLiteral", dig(t, literal, "node"))
	require.Equal(t, 0, dig(t, literal, "Kind"))
	require.Equal(t, "a", dig(t, literal, "Value"))
}

func TestTree_Nil(t *testing.T) {
	node := Tree(nil)
	require.Equal(t, yaml.ScalarNode, node.Kind)
	require.Equal(t, "!!null", node.Tag)
}
