package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/pseudomuto/sqlfront/pkg/format"
	"github.com/urfave/cli/v3"
)

// parse creates a CLI command that parses SQL and prints each statement in
// canonical single-line form, or the syntax tree as YAML with --ast.
//
// Syntax errors are reported with the file name, line and column of the
// offending token:
//
//	$ echo 'SELECT * FROM (a x) y' | sqlfront parse
//	... level=ERROR msg="Error running command" err="<stdin>:1:21: duplicate alias x"
//
// Examples:
//
//	# Canonical form of every statement in a file
//	sqlfront parse query.sql
//
//	# Syntax tree for stdin using the PostgreSQL dialect
//	echo 'SELECT a::INT FROM t' | sqlfront parse --ast --dialect postgres
func parse(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "Parse SQL and print the canonical form of each statement",
		ArgsUsage: "[file ...]",
		Flags: []cli.Flag{
			dialectFlag(),
			&cli.BoolFlag{
				Name:  "ast",
				Usage: "Print the syntax tree as YAML instead of SQL",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			p, err := parserFor(cmd, cfg)
			if err != nil {
				return err
			}

			inputs, err := readInputs(cmd)
			if err != nil {
				return err
			}

			var stmts []ast.Statement
			for _, in := range inputs {
				parsed, err := p.ParseNamed(in.name, in.sql)
				if err != nil {
					return describe(err)
				}
				stmts = append(stmts, parsed...)
			}

			w := writer(cmd)
			if cmd.Bool("ast") {
				return format.WriteTree(w, stmts...)
			}

			for _, stmt := range stmts {
				if _, err := fmt.Fprintf(w, "%s;\n", stmt); err != nil {
					return errors.Wrap(err, "failed to write statement")
				}
			}
			return nil
		},
	}
}
