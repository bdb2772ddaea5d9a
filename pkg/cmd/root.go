package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run builds the sqlfront CLI application from the registered commands and
// runs it once the fx application starts. The process exit code reflects
// whether the command succeeded.
//
// Example usage:
//
//	fx.New(
//		fx.Supply(&cmd.Version{Version: "v1.0.0"}),
//		fx.Provide(func() []string { return os.Args }),
//		config.Module,
//		cmd.Module,
//	).Run()
func Run(p Params) {
	app := NewApp(p.Version, p.Commands...)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// NewApp returns the root command with the given subcommands.
func NewApp(v *Version, commands ...*cli.Command) *cli.Command {
	if v == nil {
		v = &Version{Version: "dev"}
	}

	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Root().Writer, "Version:", v.Version)
		fmt.Fprintln(cmd.Root().Writer, "Commit:", v.Commit)
		fmt.Fprintln(cmd.Root().Writer, "Date:", v.Timestamp)
	}

	return &cli.Command{
		Name:  "sqlfront",
		Usage: "Tokenize, parse and format SQL",
		Description: `sqlfront is a SQL front-end. It tokenizes and parses SQL for a number
of dialects, reports syntax errors with their position, prints the parsed
statements in canonical form and formats SQL files.`,
		Version:  v.Version,
		Commands: commands,
	}
}
