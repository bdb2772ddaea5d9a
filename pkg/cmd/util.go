package cmd

import (
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
	"github.com/pseudomuto/sqlfront/pkg/parser"
	"github.com/urfave/cli/v3"
)

// input is a named chunk of SQL read from a file or stdin.
type input struct {
	name string
	sql  string
}

func dialectFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "dialect",
		Aliases: []string{"D"},
		Usage:   "the SQL dialect (see the dialects command)",
		Sources: cli.EnvVars("SQLFRONT_DIALECT"),
		Config: cli.StringConfig{
			TrimSpace: true,
		},
	}
}

// dialectFor returns the dialect named by --dialect, falling back to the
// configured one.
func dialectFor(cmd *cli.Command, cfg *config.Config) (dialect.Dialect, error) {
	if name := cmd.String("dialect"); name != "" {
		return dialect.Lookup(name)
	}
	return cfg.GetDialect()
}

// parserFor returns a parser for the selected dialect using the configured
// recursion limit.
func parserFor(cmd *cli.Command, cfg *config.Config) (*parser.Parser, error) {
	d, err := dialectFor(cmd, cfg)
	if err != nil {
		return nil, err
	}

	var opts []parser.Option
	if cfg != nil {
		opts = append(opts, parser.WithRecursionLimit(cfg.RecursionLimit))
	}
	return parser.New(d, opts...), nil
}

// readInputs reads every file argument. With no arguments, or the single
// argument "-", SQL is read from stdin.
func readInputs(cmd *cli.Command) ([]input, error) {
	args := cmd.Args().Slice()
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		data, err := io.ReadAll(reader(cmd))
		if err != nil {
			return nil, errors.Wrap(err, "failed to read stdin")
		}
		return []input{{name: "<stdin>", sql: string(data)}}, nil
	}

	inputs := make([]input, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read file: %s", path)
		}
		inputs = append(inputs, input{name: path, sql: string(data)})
	}
	return inputs, nil
}

func reader(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// describe prefixes lexical and syntax errors with their position.
func describe(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return errors.Errorf("%s: %s", perr.Position(), perr.Message())
	}
	return err
}
