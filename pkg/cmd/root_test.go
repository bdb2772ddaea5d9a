package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewApp(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp(&Version{Version: "v1.2.3", Commit: "abc123", Timestamp: "2025-01-01"}, dialects(nil))
	app.Writer = &buf

	require.NoError(t, app.Run(context.Background(), []string{"sqlfront", "--version"}))
	require.Contains(t, buf.String(), "Version: v1.2.3")
	require.Contains(t, buf.String(), "Commit: abc123")

	buf.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"sqlfront", "dialects"}))
	require.Contains(t, buf.String(), "* generic")
}

func TestModule(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"success", []string{"sqlfront", "dialects"}, 0},
		{"failure", []string{"sqlfront", "parse", "--dialect", "cobol"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fxtest.New(t,
				fx.Supply(&Version{Version: "test"}),
				fx.Provide(
					func() []string { return tt.args },
					func() context.Context { return context.Background() },
				),
				config.Module,
				Module,
			)

			app.RequireStart()
			sig := <-app.Wait()
			require.Equal(t, tt.exitCode, sig.ExitCode)
			app.RequireStop()
		})
	}
}
