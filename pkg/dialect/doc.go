// Package dialect describes the lexical rules of the SQL dialects understood by
// sqlfront.
//
// A Dialect is a small, immutable strategy value. The tokenizer asks it which
// characters may start or continue an unquoted identifier and which characters
// open a delimited (quoted) identifier. The parser asks it for its name so that
// dialect-specific grammar can be branched on without knowing the concrete type:
//
//	if d.IsDialect("mssql") {
//		// parse T-SQL specific syntax
//	}
//
// Built-in dialects:
//   - Generic: permissive default, accepts most of the others' identifiers
//   - ANSI: strict ASCII identifiers
//   - MySQL: backtick quoting, `$` and non-ASCII identifiers
//   - MsSQL: `[bracket]` quoting, `@var` and `#temp` identifiers
//   - PostgreSQL: `$` inside identifiers
//   - Snowflake: `$` inside identifiers, parenthesized relations in FROM
//   - SQLite: all three quoting styles
//
// Dialect values carry no state, so a single value can be shared by any number
// of concurrent tokenizer and parser invocations.
//
// The package also holds the keyword tables the parser uses to decide where an
// implicit alias ends and the next clause begins.
package dialect
