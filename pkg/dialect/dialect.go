package dialect

import "slices"

// Dialect defines the character classification and naming contract for a SQL
// dialect.
type Dialect interface {
	// IsIdentifierStart reports whether ch may start an unquoted identifier.
	IsIdentifierStart(ch rune) bool
	// IsIdentifierPart reports whether ch may appear after the first character
	// of an unquoted identifier.
	IsIdentifierPart(ch rune) bool
	// IsDelimitedIdentifierStart reports whether ch opens a quoted identifier.
	IsDelimitedIdentifierStart(ch rune) bool
	// Name returns the dialect name, e.g. "snowflake".
	Name() string
	// IsDialect reports whether this dialect is one of names.
	IsDialect(names ...string) bool
}

// MatchingEndQuote returns the character that closes a delimited identifier
// opened with start.
func MatchingEndQuote(start rune) rune {
	switch start {
	case '[':
		return ']'
	default:
		return start
	}
}

// SupportsParenthesizedRelations reports whether d accepts a lone table or
// derived table wrapped in parentheses in a FROM clause, e.g. `FROM (t) AS x`.
// Standard SQL only permits parentheses around joins.
func SupportsParenthesizedRelations(d Dialect) bool {
	return d.IsDialect(SnowflakeName, GenericName)
}

func isOneOf(name string, names []string) bool {
	return slices.Contains(names, name)
}

func isDoubleQuote(ch rune) bool {
	return ch == '"'
}

func isASCIILetter(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

func isASCIIDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
