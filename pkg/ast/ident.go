package ast

import (
	"strings"

	"github.com/pseudomuto/sqlfront/pkg/compare"
)

type (
	// Ident is an identifier, optionally delimited. Quote holds the opening
	// delimiter and is zero for bare words. A single quote marks an alias that
	// was written as a string literal.
	Ident struct {
		Value string
		Quote rune
	}

	// ObjectName is a possibly qualified name such as db.schema.table.
	ObjectName []Ident

	// TableAlias names a relation and optionally renames its columns.
	TableAlias struct {
		Name    Ident
		Columns []Ident
	}
)

// NewIdent creates an unquoted identifier.
func NewIdent(value string) Ident {
	return Ident{Value: value}
}

// NewObjectName builds an ObjectName from unquoted parts.
func NewObjectName(parts ...string) ObjectName {
	name := make(ObjectName, 0, len(parts))
	for _, p := range parts {
		name = append(name, NewIdent(p))
	}
	return name
}

// String returns the identifier as written, including its delimiters.
func (i Ident) String() string {
	switch i.Quote {
	case 0:
		return i.Value
	case '[':
		return "[" + i.Value + "]"
	case '\'':
		return "'" + strings.ReplaceAll(i.Value, "'", "''") + "'"
	default:
		q := string(i.Quote)
		return q + i.Value + q
	}
}

// Equal reports whether both identifiers have the same value and delimiter.
func (i Ident) Equal(other Ident) bool {
	return i == other
}

// String returns the dotted form of the name.
func (n ObjectName) String() string {
	return join(n, ".")
}

// Equal compares two names part by part.
func (n ObjectName) Equal(other ObjectName) bool {
	return compare.Slices(n, other, Ident.Equal)
}

// String returns the SQL representation of the alias, without AS.
func (a *TableAlias) String() string {
	if len(a.Columns) == 0 {
		return a.Name.String()
	}
	return a.Name.String() + " (" + commaSeparated(a.Columns) + ")"
}

// Equal compares two aliases including their column lists.
func (a *TableAlias) Equal(other *TableAlias) bool {
	if eq, more := compare.NilCheck(a, other); !more {
		return eq
	}
	return a.Name.Equal(other.Name) && compare.Slices(a.Columns, other.Columns, Ident.Equal)
}
