package cmd

import (
	"context"
	"fmt"
	"slices"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
	"github.com/urfave/cli/v3"
)

// tokens creates a CLI command that prints the token stream for SQL input,
// one token per line as "line:column<TAB>type<TAB>quoted value". Whitespace
// and comments are hidden unless --all is given.
func tokens(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Print the tokens of SQL input",
		ArgsUsage: "[file ...]",
		Flags: []cli.Flag{
			dialectFlag(),
			&cli.BoolFlag{
				Name:    "all",
				Aliases: []string{"a"},
				Usage:   "Include whitespace and comment tokens",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d, err := dialectFor(cmd, cfg)
			if err != nil {
				return err
			}

			inputs, err := readInputs(cmd)
			if err != nil {
				return err
			}

			elided := tokenizer.Elided()
			w := writer(cmd)

			for _, in := range inputs {
				toks, err := tokenizer.NewNamed(d, in.name, in.sql).Tokenize()
				if err != nil {
					return describe(err)
				}

				for _, tok := range toks {
					if tok.Type == lexer.EOF || (!cmd.Bool("all") && slices.Contains(elided, tok.Type)) {
						continue
					}

					_, err := fmt.Fprintf(w, "%d:%d\t%s\t%q\n", tok.Pos.Line, tok.Pos.Column, tokenizer.TypeName(tok.Type), tok.Value)
					if err != nil {
						return errors.Wrap(err, "failed to write token")
					}
				}
			}
			return nil
		},
	}
}
