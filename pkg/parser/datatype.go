package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

// dataTypeParser runs the ast.DataType grammar directly on the statement's
// token stream. It is built over the tokenizer's definition so both agree on
// token types; the dialect does not matter since no lexing happens here.
var dataTypeParser = participle.MustBuild[ast.DataType](
	participle.Lexer(tokenizer.Definition{}),
	participle.CaseInsensitive("Word"),
	participle.UseLookahead(2),
)

// parseDataType parses a column or cast type at the cursor, leaving the
// cursor on the first token after it.
func (s *state) parseDataType() (*ast.DataType, error) {
	start := s.peek()
	if start.Type != tokenizer.Word || startsColumnOption(start) {
		return nil, s.expected("a data type", start)
	}

	dt, err := dataTypeParser.ParseFromLexer(s.lex, participle.AllowTrailing(true))
	if err != nil {
		if perr, ok := err.(participle.Error); ok {
			return nil, &ParserError{Msg: "Expected a data type, found: " + found(perr), Pos: perr.Position()}
		}
		return nil, s.expected("a data type", start)
	}
	return dt, nil
}

// found extracts the offending token text from a participle error.
func found(err participle.Error) string {
	if ute, ok := err.(*participle.UnexpectedTokenError); ok {
		return tokenizer.Display(ute.Unexpected)
	}
	return err.Message()
}
