package cmd

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfront/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_Stdin(t *testing.T) {
	out, err := testutil.RunCommandWithInput(t, parse(nil), strings.NewReader("select a from t as x; select 1"))
	require.NoError(t, err)
	require.Equal(t, "SELECT a FROM t AS x;\nSELECT 1;\n", out)

	out, err = testutil.RunCommandWithInput(t, parse(nil), strings.NewReader("SELECT * FROM (a)"), "-")
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM a;\n", out)
}

func TestParseCommand_Files(t *testing.T) {
	fixture := testutil.NewSQLFixture(t).WithFiles(map[string]string{
		"one.sql": "SELECT a FROM t LEFT OUTER JOIN u USING (id)",
		"two.sql": "CREATE TABLE x (id INT NOT NULL)",
	})

	out, err := testutil.RunCommand(t, parse(nil), fixture.Path("one.sql"), fixture.Path("two.sql"))
	require.NoError(t, err)
	require.Equal(t, "SELECT a FROM t LEFT JOIN u USING(id);\nCREATE TABLE x (id INT NOT NULL);\n", out)

	_, err = testutil.RunCommand(t, parse(nil), fixture.Path("missing.sql"))
	require.ErrorContains(t, err, "failed to read file")
}

func TestParseCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		sql     string
		message string
	}{
		{
			name:    "duplicate alias",
			sql:     "SELECT * FROM (a x) y",
			message: "<stdin>:1:21: duplicate alias x",
		},
		{
			name:    "unwrap not supported",
			args:    []string{"--dialect", "mysql"},
			sql:     "SELECT * FROM (a)",
			message: "<stdin>:1:17: Expected joined table, found: )",
		},
		{
			name:    "lexical error",
			sql:     "SELECT 'abc",
			message: "<stdin>:1:8: ",
		},
		{
			name:    "unknown dialect",
			args:    []string{"--dialect", "cobol"},
			sql:     "SELECT 1",
			message: `unknown dialect "cobol"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testutil.RunCommandWithInput(t, parse(nil), strings.NewReader(tt.sql), tt.args...)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestParseCommand_Dialect(t *testing.T) {
	sql := "SELECT * FROM a CROSS APPLY f(a.x)"

	out, err := testutil.RunCommandWithInput(t, parse(nil), strings.NewReader(sql), "--dialect", "mssql")
	require.NoError(t, err)
	require.Equal(t, sql+";\n", out)

	cfg := &config.Config{Dialect: "snowflake", RecursionLimit: 50}
	out, err = testutil.RunCommandWithInput(t, parse(cfg), strings.NewReader("SELECT * FROM (a)"))
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM a;\n", out)
}

func TestParseCommand_RecursionLimit(t *testing.T) {
	cfg := &config.Config{Dialect: "generic", RecursionLimit: 3}

	_, err := testutil.RunCommandWithInput(t, parse(cfg), strings.NewReader("SELECT ((((1))))"))
	require.ErrorContains(t, err, "recursion limit exceeded")

	out, err := testutil.RunCommandWithInput(t, parse(cfg), strings.NewReader("SELECT (1)"))
	require.NoError(t, err)
	require.Equal(t, "SELECT (1);\n", out)
}

func TestParseCommand_AST(t *testing.T) {
	out, err := testutil.RunCommandWithInput(t, parse(nil), strings.NewReader("SELECT a FROM t; SELECT 2"), "--ast")
	require.NoError(t, err)
	require.Contains(t, out, "node: QueryStatement")
	require.Contains(t, out, "node: Select")
	require.Contains(t, out, "Name: t")
	require.Equal(t, 1, strings.Count(out, "---"))
}
