package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialects creates a CLI command that lists the built-in dialects. The
// dialect selected by the configuration (or the default) is marked with *.
func dialects(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the supported SQL dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			selected, err := cfg.GetDialect()
			if err != nil {
				return err
			}

			w := writer(cmd)
			for _, name := range dialect.Names() {
				marker := " "
				if selected.IsDialect(name) {
					marker = "*"
				}

				if _, err := fmt.Fprintf(w, "%s %s\n", marker, name); err != nil {
					return errors.Wrap(err, "failed to write dialect")
				}
			}
			return nil
		},
	}
}
