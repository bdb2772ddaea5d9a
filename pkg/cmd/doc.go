// Package cmd provides CLI commands for the sqlfront tool.
//
// This package implements the command-line interface for sqlfront,
// exposing the tokenizer, parser and formatter to the shell.
//
// # Available Commands
//
//   - parse: Parse SQL and print the canonical form or the syntax tree
//   - fmt: Format SQL files, optionally rewriting them in place
//   - tokens: Print the token stream for SQL input
//   - dialects: List the built-in SQL dialects
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands receive their
// dependencies (the loaded *config.Config and the configured
// *format.Formatter) as constructor arguments and are registered into the
// "commands" fx group by Module.
//
// # Configuration
//
// When sqlfront.yaml exists in the working directory it selects the dialect,
// the parser recursion limit and the formatter options. The --dialect flag
// accepted by parse, fmt and tokens overrides the configured dialect.
//
// # Example Usage
//
//	sqlfront parse query.sql                  # Print canonical SQL
//	sqlfront parse --ast query.sql            # Dump the syntax tree as YAML
//	echo 'SELECT 1' | sqlfront parse          # Read from stdin
//	sqlfront fmt -w db/                       # Format every .sql file in place
//	sqlfront tokens --dialect mssql q.sql     # Show tokens for a dialect
//	sqlfront dialects                         # List dialects
package cmd
