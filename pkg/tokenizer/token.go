package tokenizer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Token types produced by the tokenizer.
const (
	EOF lexer.TokenType = lexer.EOF - iota
	Whitespace
	Comment
	Word
	QuotedIdent
	Number
	String
	NationalString
	HexString
	Punct
)

var symbols = map[string]lexer.TokenType{
	"EOF":            EOF,
	"Whitespace":     Whitespace,
	"Comment":        Comment,
	"Word":           Word,
	"QuotedIdent":    QuotedIdent,
	"Number":         Number,
	"String":         String,
	"NationalString": NationalString,
	"HexString":      HexString,
	"Punct":          Punct,
}

// Symbols returns the symbolic names of all token types.
func Symbols() map[string]lexer.TokenType {
	out := make(map[string]lexer.TokenType, len(symbols))
	for k, v := range symbols {
		out[k] = v
	}
	return out
}

// Elided returns the token types a parser should skip.
func Elided() []lexer.TokenType {
	return []lexer.TokenType{Whitespace, Comment}
}

// TypeName returns the symbolic name of a token type.
func TypeName(t lexer.TokenType) string {
	for name, typ := range symbols {
		if typ == t {
			return name
		}
	}
	return "Unknown"
}

// Display renders a token the way parser error messages refer to it: its
// source text, or EOF at the end of input.
func Display(t lexer.Token) string {
	if t.EOF() {
		return "EOF"
	}
	return t.Value
}

// IsKeyword reports whether t is an unquoted word equal to kw, ignoring case.
func IsKeyword(t lexer.Token, kw string) bool {
	return t.Type == Word && strings.EqualFold(t.Value, kw)
}

// IsPunct reports whether t is the punctuation or operator p.
func IsPunct(t lexer.Token, p string) bool {
	return t.Type == Punct && t.Value == p
}
