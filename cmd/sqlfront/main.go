package main

import (
	"context"
	"os"

	"github.com/pseudomuto/sqlfront/pkg/cmd"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		fx.Supply(&cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(
			func() []string { return os.Args },
			func() context.Context { return context.Background() },
		),
		config.Module,
		cmd.Module,
	).Run()
}
