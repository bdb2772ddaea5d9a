// Package format provides well-formatted SQL output for parsed statements.
//
// The ast package renders every node on a single line, which is what the
// parser round-trip tests compare against. This package takes the same
// trees and lays them out for people: one clause per line, projections and
// column definitions indented, subqueries nested with their own indentation.
//
// Key features:
//   - Consistent indentation and spacing
//   - One clause per line with joins kept under their FROM
//   - Configurable keyword casing for clause keywords
//   - Optional alignment of column types in CREATE TABLE
//   - A YAML dump of the syntax tree for debugging
//
// Usage:
//
//	// Object-oriented API with default options
//	formatter := format.New(format.Defaults)
//
//	// Object-oriented API with custom options
//	formatter := format.New(format.FormatterOptions{
//		IndentSize:        4,
//		UppercaseKeywords: false,
//		AlignColumns:      true,
//	})
//
//	var buf bytes.Buffer
//	err := formatter.Format(&buf, statements...)
//
//	// Functional API
//	var buf bytes.Buffer
//	err := format.Format(&buf, format.Defaults, statements...)
//
// Example:
//
//	SELECT a, b FROM t AS x LEFT JOIN u ON x.id = u.id WHERE a > 1
//
// is formatted as
//
//	SELECT
//	  a,
//	  b
//	FROM t AS x
//	LEFT JOIN u ON x.id = u.id
//	WHERE a > 1;
//
// Expressions are written in their canonical single-line form, so keyword
// casing options only apply to clause keywords.
package format
