package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/pseudomuto/sqlfront/pkg/consts"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// SQLFixture is a temporary directory of SQL files used by command tests.
type SQLFixture struct {
	Dir string
	t   *testing.T
}

// NewSQLFixture creates an empty fixture directory that is removed when the
// test ends.
func NewSQLFixture(t *testing.T) *SQLFixture {
	t.Helper()
	return &SQLFixture{Dir: t.TempDir(), t: t}
}

// WithFiles writes files (relative path -> content), creating directories as
// needed.
func (f *SQLFixture) WithFiles(files map[string]string) *SQLFixture {
	f.t.Helper()

	for name, content := range files {
		path := f.Path(name)
		require.NoError(f.t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(f.t, os.WriteFile(path, []byte(content), consts.ModeFile))
	}
	return f
}

// WithConfig writes cfg as the fixture's sqlfront.yaml.
func (f *SQLFixture) WithConfig(cfg *config.Config) *SQLFixture {
	f.t.Helper()

	data, err := yaml.Marshal(cfg)
	require.NoError(f.t, err)
	return f.WithFiles(map[string]string{consts.ConfigFile: string(data)})
}

// Path returns the absolute path of a file inside the fixture.
func (f *SQLFixture) Path(name string) string {
	return filepath.Join(f.Dir, name)
}

// Read returns the content of a file inside the fixture.
func (f *SQLFixture) Read(name string) string {
	f.t.Helper()

	data, err := os.ReadFile(f.Path(name))
	require.NoError(f.t, err)
	return string(data)
}
