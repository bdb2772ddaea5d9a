// Package parser turns SQL text into statements from the ast package.
//
// Parsing is a hand-written recursive descent over the token stream produced
// by the tokenizer package. The stream is upgraded to a participle
// PeekingLexer that skips whitespace and comments; its checkpoints provide
// the save and restore used for speculative parsing. Column data types are
// parsed by a small participle grammar running on the same lexer.
//
// Basic usage:
//
//	stmts, err := parser.ParseSQL(dialect.Snowflake{}, "SELECT * FROM (a NATURAL JOIN (b) c)")
//	if err != nil {
//		var perr *parser.ParserError
//		if errors.As(err, &perr) {
//			fmt.Println(perr.Position(), perr.Message())
//		}
//	}
//
// The hardest part of the grammar is the FROM clause. A parenthesized table
// reference can mean three different things:
//
//   - (SELECT ...) is a derived table;
//   - (a JOIN b ON ...) is a join tree, which cannot take an alias;
//   - (a) or ((a) AS x) is a single relation, which the parser unwraps so the
//     parentheses carry no meaning. An alias written outside the parentheses
//     binds to the relation inside, and binding a second alias fails with
//     "duplicate alias <first>".
//
// Unwrapping single relations is only allowed by dialects that support it
// (see dialect.SupportsParenthesizedRelations); other dialects report
// "Expected joined table".
//
// A Parser holds no per-parse state, so one Parser may be shared between
// goroutines.
package parser
