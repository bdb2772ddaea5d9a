package testutil

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes command as a subcommand of a throwaway root command and
// returns everything it wrote.
func RunCommand(t *testing.T, command *cli.Command, args ...string) (string, error) {
	t.Helper()
	return RunCommandWithInput(t, command, nil, args...)
}

// RunCommandWithInput is like RunCommand but serves stdin from in.
func RunCommandWithInput(t *testing.T, command *cli.Command, in io.Reader, args ...string) (string, error) {
	t.Helper()

	var buf bytes.Buffer
	app := &cli.Command{
		Name:     "test",
		Commands: []*cli.Command{command},
		Reader:   in,
		Writer:   &buf,
	}

	// Prepend command name to args
	fullArgs := append([]string{"test", command.Name}, args...)

	err := app.Run(context.Background(), fullArgs)
	return buf.String(), err
}
