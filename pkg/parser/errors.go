package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

var _ participle.Error = (*ParserError)(nil)

// ParserError is a syntax error. Error returns the message alone so callers
// can match on it; the position is available through Position.
type ParserError struct {
	Msg string
	Pos lexer.Position
}

// Error implements error.
func (e *ParserError) Error() string { return e.Msg }

// Message implements participle.Error.
func (e *ParserError) Message() string { return e.Msg }

// Position implements participle.Error.
func (e *ParserError) Position() lexer.Position { return e.Pos }

// expectedError builds the "Expected <what>, found: <token>" error.
func expectedError(what string, found lexer.Token) *ParserError {
	return &ParserError{
		Msg: fmt.Sprintf("Expected %s, found: %s", what, tokenizer.Display(found)),
		Pos: found.Pos,
	}
}
