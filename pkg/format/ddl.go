package format

import (
	"strings"
	"unicode/utf8"

	"github.com/pseudomuto/sqlfront/pkg/ast"
)

// createTable formats CREATE TABLE with one column definition per line.
// With AlignColumns set, data types start in the same column.
func (f *Formatter) createTable(c *ast.CreateTable) []string {
	header := f.keyword("CREATE")
	if c.OrReplace {
		header += " " + f.keyword("OR REPLACE")
	}
	header += " " + f.keyword("TABLE")
	if c.IfNotExists {
		header += " " + f.keyword("IF NOT EXISTS")
	}
	header += " " + c.Name.String()

	if len(c.Columns) == 0 {
		return []string{header}
	}

	width := 0
	if f.options.AlignColumns {
		for _, col := range c.Columns {
			width = max(width, utf8.RuneCountInString(col.Name.String()))
		}
	}

	lines := []string{header + " ("}
	for i, col := range c.Columns {
		line := f.indent(1) + f.column(col, width)
		if i < len(c.Columns)-1 {
			line += ","
		}
		lines = append(lines, line)
	}
	return append(lines, ")")
}

func (f *Formatter) column(col ast.ColumnDef, width int) string {
	name := col.Name.String()
	if pad := width - utf8.RuneCountInString(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}

	out := name + " " + col.DataType.String()
	for _, opt := range col.Options {
		out += " " + f.columnOption(opt)
	}
	return out
}

func (f *Formatter) columnOption(opt ast.ColumnOption) string {
	if opt.Kind == ast.OptionDefault {
		return f.keyword("DEFAULT") + " " + opt.Default.String()
	}
	return f.keyword(opt.String())
}
