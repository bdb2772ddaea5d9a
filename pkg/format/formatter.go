package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/consts"
)

type (
	// FormatterOptions controls formatting behavior
	FormatterOptions struct {
		// IndentSize specifies the number of spaces for each indent level
		IndentSize int
		// UppercaseKeywords whether to uppercase clause keywords
		UppercaseKeywords bool
		// AlignColumns whether to align data types in CREATE TABLE columns
		AlignColumns bool
	}

	// Formatter handles SQL statement formatting with configurable options
	Formatter struct {
		options FormatterOptions
	}
)

// Defaults are the options used by the sqlfront CLI when no configuration
// overrides them.
var Defaults = FormatterOptions{
	IndentSize:        consts.DefaultIndentSize,
	UppercaseKeywords: true,
	AlignColumns:      true,
}

// New creates a new Formatter with the specified options. A non-positive
// IndentSize falls back to the default.
func New(options FormatterOptions) *Formatter {
	if options.IndentSize <= 0 {
		options.IndentSize = consts.DefaultIndentSize
	}
	return &Formatter{options: options}
}

// Options returns the options the formatter was created with.
func (f *Formatter) Options() FormatterOptions {
	return f.options
}

// Format writes each statement terminated by a semicolon. Statements are
// separated by a blank line. Nil statements are skipped.
func (f *Formatter) Format(w io.Writer, stmts ...ast.Statement) error {
	first := true
	for _, stmt := range stmts {
		if stmt == nil {
			continue
		}

		text := f.Statement(stmt)
		if text == "" {
			continue
		}

		if !first {
			if _, err := io.WriteString(w, "\n\n"); err != nil {
				return errors.Wrap(err, "failed to write statement separator")
			}
		}
		first = false

		if _, err := io.WriteString(w, text+";"); err != nil {
			return errors.Wrap(err, "failed to write statement")
		}
	}

	return nil
}

// Format formats statements with the given options (convenience function)
func Format(w io.Writer, options FormatterOptions, stmts ...ast.Statement) error {
	return New(options).Format(w, stmts...)
}

// Statement formats a single statement without the trailing semicolon.
func (f *Formatter) Statement(stmt ast.Statement) string {
	switch s := stmt.(type) {
	case *ast.QueryStatement:
		if s == nil || s.Query == nil {
			return ""
		}
		return strings.Join(f.query(s.Query), "\n")
	case *ast.CreateTable:
		if s == nil {
			return ""
		}
		return strings.Join(f.createTable(s), "\n")
	default:
		return ""
	}
}

// keyword formats a keyword according to the formatter options
func (f *Formatter) keyword(kw string) string {
	if f.options.UppercaseKeywords {
		return strings.ToUpper(kw)
	}
	return strings.ToLower(kw)
}

// indent returns the specified number of indent levels as spaces
func (f *Formatter) indent(level int) string {
	return strings.Repeat(" ", level*f.options.IndentSize)
}

// indented shifts every line one level to the right.
func (f *Formatter) indented(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = f.indent(1) + line
	}
	return out
}

// prefixed prepends prefix to the first line.
func prefixed(prefix string, lines []string) []string {
	if len(lines) == 0 {
		return []string{prefix}
	}
	out := append([]string{prefix + lines[0]}, lines[1:]...)
	return out
}

// suffixed appends suffix to the last line.
func suffixed(lines []string, suffix string) []string {
	if len(lines) == 0 {
		return []string{suffix}
	}
	out := append([]string(nil), lines...)
	out[len(out)-1] += suffix
	return out
}

// list lays items out under header. A single single-line item stays on the
// header line; anything else gets one indented item per line.
func (f *Formatter) list(header string, items [][]string) []string {
	if len(items) == 1 && len(items[0]) == 1 {
		return []string{header + " " + items[0][0]}
	}

	lines := []string{header}
	for i, item := range items {
		if i < len(items)-1 {
			item = suffixed(item, ",")
		}
		lines = append(lines, f.indented(item)...)
	}
	return lines
}

func single[T ast.Node](nodes []T) [][]string {
	out := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, []string{n.String()})
	}
	return out
}

func joined[T ast.Node](nodes []T) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		parts = append(parts, n.String())
	}
	return strings.Join(parts, ", ")
}
