package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/config"
	"github.com/pseudomuto/sqlfront/pkg/consts"
	"github.com/pseudomuto/sqlfront/pkg/format"
	"github.com/pseudomuto/sqlfront/pkg/parser"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates a CLI command for formatting SQL files. This command
// provides gofmt-like functionality for SQL files, allowing users to format
// individual files or entire directory trees recursively.
//
// The command supports two output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place with formatted content
//
// Path handling:
//   - File paths: Format the specified SQL file directly
//   - Directory paths: Recursively find and format all .sql files
//
// Examples:
//
//	# Format single file to stdout
//	sqlfront fmt query.sql
//
//	# Format all SQL files in directory tree in-place
//	sqlfront fmt -w db/
//
// Files with syntax errors cause the command to fail without modifying them.
func fmtCmd(cfg *config.Config, formatter *format.Formatter) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			dialectFlag(),
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return errors.New("exactly one path argument is required")
			}

			p, err := parserFor(cmd, cfg)
			if err != nil {
				return err
			}

			f := &fileFormatter{
				parser:    p,
				formatter: formatter,
				writeBack: cmd.Bool("write"),
				writer:    writer(cmd),
			}
			return f.formatPath(cmd.Args().First())
		},
	}
}

type fileFormatter struct {
	parser    *parser.Parser
	formatter *format.Formatter
	writeBack bool
	writer    io.Writer
}

// formatPath dispatches to formatDirectory or formatFile.
func (f *fileFormatter) formatPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return f.formatDirectory(path)
	}

	return f.formatFile(path)
}

// formatDirectory recursively walks through a directory and formats all .sql
// files in lexical order.
func (f *fileFormatter) formatDirectory(dir string) error {
	var sqlFiles []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			sqlFiles = append(sqlFiles, path)
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(sqlFiles) == 0 {
		return errors.Errorf("no SQL files found in directory: %s", dir)
	}

	for _, sqlFile := range sqlFiles {
		if err := f.formatFile(sqlFile); err != nil {
			return errors.Wrapf(err, "failed to format file: %s", sqlFile)
		}
	}

	return nil
}

// formatFile formats a single SQL file and either writes to stdout or back to
// the file.
func (f *fileFormatter) formatFile(path string) error {
	slog.Debug("Formatting file", "path", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read file: %s", path)
	}

	stmts, err := f.parser.ParseNamed(path, string(content))
	if err != nil {
		return describe(err)
	}

	var buf strings.Builder
	if err := f.formatter.Format(&buf, stmts...); err != nil {
		return errors.Wrapf(err, "failed to format SQL in file: %s", path)
	}

	formatted := buf.String()
	if formatted != "" {
		formatted += "\n"
	}

	if f.writeBack {
		if err := os.WriteFile(path, []byte(formatted), consts.ModeFile); err != nil {
			return errors.Wrapf(err, "failed to write formatted content to file: %s", path)
		}

		slog.Info("Formatted file", "path", path, "statements", len(stmts))
		return nil
	}

	if _, err := fmt.Fprint(f.writer, formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}
	return nil
}
