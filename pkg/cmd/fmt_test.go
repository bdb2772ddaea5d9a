package cmd

import (
	"testing"

	"github.com/pseudomuto/sqlfront/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/pseudomuto/sqlfront/pkg/format"
	"github.com/stretchr/testify/require"
)

const unformattedSQL = "select a,b from t as x left join u on x.id=u.id where a>1;create table t(id int not null)"

const formattedSQL = `SELECT
  a,
  b
FROM t AS x
LEFT JOIN u ON x.id = u.id
WHERE a > 1;

CREATE TABLE t (
  id int NOT NULL
);
`

func defaultFmtCmd() *fmtCommand {
	return &fmtCommand{cfg: nil, formatter: format.New(format.Defaults)}
}

type fmtCommand struct {
	cfg       *config.Config
	formatter *format.Formatter
}

func (c *fmtCommand) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return testutil.RunCommand(t, fmtCmd(c.cfg, c.formatter), args...)
}

func TestFmtCommand_RequiresPath(t *testing.T) {
	_, err := defaultFmtCmd().run(t)
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	fixture := testutil.NewSQLFixture(t).WithFiles(map[string]string{"test.sql": unformattedSQL})

	out, err := defaultFmtCmd().run(t, fixture.Path("test.sql"))
	require.NoError(t, err)
	require.Equal(t, formattedSQL, out)

	// Stdout mode leaves the file alone
	require.Equal(t, unformattedSQL, fixture.Read("test.sql"))
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	fixture := testutil.NewSQLFixture(t).WithFiles(map[string]string{"test.sql": unformattedSQL})

	out, err := defaultFmtCmd().run(t, "-w", fixture.Path("test.sql"))
	require.NoError(t, err)
	require.Empty(t, out)
	require.Equal(t, formattedSQL, fixture.Read("test.sql"))

	// Formatting is idempotent
	_, err = defaultFmtCmd().run(t, "-w", fixture.Path("test.sql"))
	require.NoError(t, err)
	require.Equal(t, formattedSQL, fixture.Read("test.sql"))
}

func TestFmtCommand_Directory(t *testing.T) {
	fixture := testutil.NewSQLFixture(t).WithFiles(map[string]string{
		"a.sql":      "select 1",
		"notes.txt":  "not sql",
		"sub/b.SQL":  "select 2",
		"sub/c.sql":  "select 3",
		"sub/d.yaml": "x: 1",
	})

	out, err := defaultFmtCmd().run(t, fixture.Dir)
	require.NoError(t, err)
	require.Equal(t, "SELECT 1;\nSELECT 2;\nSELECT 3;\n", out)

	_, err = defaultFmtCmd().run(t, "--write", fixture.Dir)
	require.NoError(t, err)
	require.Equal(t, "SELECT 2;\n", fixture.Read("sub/b.SQL"))
	require.Equal(t, "not sql", fixture.Read("notes.txt"))
}

func TestFmtCommand_Errors(t *testing.T) {
	t.Run("invalid SQL", func(t *testing.T) {
		bad := "select * from (a x) y"
		fixture := testutil.NewSQLFixture(t).WithFiles(map[string]string{"bad.sql": bad})

		_, err := defaultFmtCmd().run(t, "-w", fixture.Path("bad.sql"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "bad.sql:1:21: duplicate alias x")
		require.Equal(t, bad, fixture.Read("bad.sql"))
	})

	t.Run("invalid SQL in directory", func(t *testing.T) {
		fixture := testutil.NewSQLFixture(t).WithFiles(map[string]string{"bad.sql": "select * from"})

		_, err := defaultFmtCmd().run(t, fixture.Dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to format file")
	})

	t.Run("no SQL files", func(t *testing.T) {
		fixture := testutil.NewSQLFixture(t).WithFiles(map[string]string{"readme.md": "# hi"})

		_, err := defaultFmtCmd().run(t, fixture.Dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "no SQL files found in directory")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := defaultFmtCmd().run(t, "does-not-exist.sql")
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to access path")
	})
}

func TestFmtCommand_Config(t *testing.T) {
	upper := false
	fixture := testutil.NewSQLFixture(t).
		WithConfig(&config.Config{
			Dialect:        "mssql",
			RecursionLimit: 10,
			Format:         config.Format{IndentSize: 4, UppercaseKeywords: &upper},
		}).
		WithFiles(map[string]string{"q.sql": "SELECT a, [b c] FROM t CROSS APPLY f(t.x)"})

	cfg, err := config.LoadConfigFile(fixture.Path("sqlfront.yaml"))
	require.NoError(t, err)

	c := &fmtCommand{cfg: cfg, formatter: cfg.GetFormatter()}
	out, err := c.run(t, fixture.Path("q.sql"))
	require.NoError(t, err)
	require.Equal(t, "select\n    a,\n    [b c]\nfrom t\ncross apply f(t.x);\n", out)
}
