package ast

import (
	"strings"

	"github.com/pseudomuto/sqlfront/pkg/compare"
)

type (
	// CreateTable is CREATE [OR REPLACE] TABLE [IF NOT EXISTS] name (columns).
	CreateTable struct {
		OrReplace   bool
		IfNotExists bool
		Name        ObjectName
		Columns     []ColumnDef
	}

	// ColumnDef is a column definition inside CREATE TABLE.
	ColumnDef struct {
		Name     Ident
		DataType *DataType
		Options  []ColumnOption
	}

	// ColumnOption is a constraint or default attached to a column.
	ColumnOption struct {
		Kind    ColumnOptionKind
		Default Expr
	}

	// ColumnOptionKind enumerates the supported column options.
	ColumnOptionKind int

	// DataType is a column or cast target type such as VARCHAR(20),
	// DOUBLE PRECISION or INT[]. It is parsed by a participle grammar over
	// the same token stream as the rest of the statement.
	DataType struct {
		Name      string   `parser:"@Word"`
		Qualifier string   `parser:"@('PRECISION' | 'VARYING')?"`
		Args      []string `parser:"('(' @Number (',' @Number)* ')')?"`
		Array     bool     `parser:"@('[' ']')?"`
	}
)

const (
	OptionNull ColumnOptionKind = iota
	OptionNotNull
	OptionPrimaryKey
	OptionUnique
	OptionDefault
)

// String returns the SQL representation of the statement.
func (c *CreateTable) String() string {
	out := "CREATE "
	if c.OrReplace {
		out += "OR REPLACE "
	}
	out += "TABLE "
	if c.IfNotExists {
		out += "IF NOT EXISTS "
	}
	out += c.Name.String()
	if len(c.Columns) > 0 {
		out += " (" + commaSeparated(c.Columns) + ")"
	}
	return out
}

func (c ColumnDef) String() string {
	out := c.Name.String() + " " + c.DataType.String()
	for _, opt := range c.Options {
		out += " " + opt.String()
	}
	return out
}

func (o ColumnOption) String() string {
	switch o.Kind {
	case OptionNull:
		return "NULL"
	case OptionNotNull:
		return "NOT NULL"
	case OptionPrimaryKey:
		return "PRIMARY KEY"
	case OptionUnique:
		return "UNIQUE"
	case OptionDefault:
		return "DEFAULT " + o.Default.String()
	}
	return ""
}

// String returns the type as written, with arguments normalized to
// comma-separated form.
func (d *DataType) String() string {
	if d == nil {
		return ""
	}

	out := d.Name
	if d.Qualifier != "" {
		out += " " + d.Qualifier
	}
	if len(d.Args) > 0 {
		out += "(" + strings.Join(d.Args, ", ") + ")"
	}
	if d.Array {
		out += "[]"
	}
	return out
}

// Equal compares two data types. Type names compare case-insensitively.
func (d *DataType) Equal(other *DataType) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}
	return strings.EqualFold(d.Name, other.Name) &&
		strings.EqualFold(d.Qualifier, other.Qualifier) &&
		compare.Slices(d.Args, other.Args, func(a, b string) bool { return a == b }) &&
		d.Array == other.Array
}

// Equal compares two CREATE TABLE statements.
func (c *CreateTable) Equal(other *CreateTable) bool {
	if eq, more := compare.NilCheck(c, other); !more {
		return eq
	}
	return c.OrReplace == other.OrReplace &&
		c.IfNotExists == other.IfNotExists &&
		c.Name.Equal(other.Name) &&
		compare.Slices(c.Columns, other.Columns, ColumnDef.Equal)
}

// Equal compares two column definitions.
func (c ColumnDef) Equal(other ColumnDef) bool {
	return c.Name.Equal(other.Name) &&
		c.DataType.Equal(other.DataType) &&
		compare.Slices(c.Options, other.Options, func(a, b ColumnOption) bool {
			return a.Kind == b.Kind && EqualExpr(a.Default, b.Default)
		})
}
