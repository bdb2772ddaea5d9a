// Package tokenizer turns SQL source text into a stream of participle
// lexer.Token values.
//
// Identifier boundaries and quoting are decided by a dialect.Dialect, so the
// same text can lex differently per dialect (`$` is part of an identifier in
// Snowflake but not in ANSI; `[x]` is a quoted identifier in MS SQL only).
//
// The tokenizer implements participle's lexer.Lexer interface and Definition
// implements lexer.Definition, which lets the token stream be upgraded to a
// lexer.PeekingLexer and shared between the hand-written parser and
// participle grammars:
//
//	lex, err := lexer.Upgrade(tokenizer.New(dialect.Snowflake{}, sql), tokenizer.Elided()...)
//
// Whitespace and comments are emitted as tokens so that callers which need the
// raw stream (formatters, linters) can see them; Elided lists their types.
//
// Lexical errors are fatal: the first unterminated quote, unterminated comment
// or illegal character stops tokenization and is reported as a *lexer.Error
// carrying the position of the offending token.
package tokenizer
