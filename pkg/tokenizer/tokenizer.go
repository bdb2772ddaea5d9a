package tokenizer

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlfront/pkg/dialect"
)

// multi-character operators, longest first
var operators = []string{"<=", ">=", "<>", "!=", "||", "::"}

const punctuation = "=<>+-*/%(),;.:[]&|^~!"

var (
	_ lexer.Lexer            = (*Tokenizer)(nil)
	_ lexer.Definition       = Definition{}
	_ lexer.StringDefinition = Definition{}
)

// Tokenizer produces tokens from SQL source text using the character rules of
// a dialect. A Tokenizer is not restartable: once it has returned EOF or an
// error, every subsequent call returns the same result.
type Tokenizer struct {
	dialect dialect.Dialect
	src     string
	offset  int
	pos     lexer.Position
	err     error
}

// New creates a tokenizer over src.
func New(d dialect.Dialect, src string) *Tokenizer {
	return NewNamed(d, "", src)
}

// NewNamed creates a tokenizer whose token positions carry filename.
func NewNamed(d dialect.Dialect, filename, src string) *Tokenizer {
	return &Tokenizer{
		dialect: d,
		src:     src,
		pos:     lexer.Position{Filename: filename, Line: 1, Column: 1},
	}
}

// Tokenize consumes the remaining input and returns every token, including
// whitespace, comments and the trailing EOF token.
func (t *Tokenizer) Tokenize() ([]lexer.Token, error) {
	return lexer.ConsumeAll(t)
}

// Next returns the next token.
func (t *Tokenizer) Next() (lexer.Token, error) {
	if t.err != nil {
		return lexer.Token{}, t.err
	}

	if t.offset >= len(t.src) {
		return lexer.EOFToken(t.pos), nil
	}

	start := t.pos
	typ, n, msg := t.scan(t.src[t.offset:])
	if msg != "" {
		t.err = &lexer.Error{Msg: msg, Pos: start}
		return lexer.Token{}, t.err
	}

	text := t.src[t.offset : t.offset+n]
	t.offset += n
	t.pos.Advance(text)

	return lexer.Token{Type: typ, Value: text, Pos: start}, nil
}

// scan classifies the token at the start of rest and returns its type and
// length in bytes, or an error message.
func (t *Tokenizer) scan(rest string) (lexer.TokenType, int, string) {
	ch, size := utf8.DecodeRuneInString(rest)

	switch {
	case isSpace(ch):
		return Whitespace, len(rest) - len(strings.TrimLeft(rest, " \t\r\n")), ""

	case strings.HasPrefix(rest, "--"):
		if end := strings.IndexByte(rest, '\n'); end >= 0 {
			return Comment, end + 1, ""
		}
		return Comment, len(rest), ""

	case strings.HasPrefix(rest, "/*"):
		end := strings.Index(rest[2:], "*/")
		if end < 0 {
			return 0, 0, "Unexpected EOF while in a multi-line comment"
		}
		return Comment, end + 4, ""

	case (ch == 'N' || ch == 'n') && strings.HasPrefix(rest[1:], "'"):
		n, ok := scanQuoted(rest[1:], '\'')
		if !ok {
			return 0, 0, "Unterminated string literal"
		}
		return NationalString, n + 1, ""

	case (ch == 'X' || ch == 'x') && strings.HasPrefix(rest[1:], "'"):
		end := strings.IndexByte(rest[2:], '\'')
		if end < 0 {
			return 0, 0, "Unterminated string literal"
		}
		return HexString, end + 3, ""

	case t.dialect.IsIdentifierStart(ch):
		n := size
		for n < len(rest) {
			next, s := utf8.DecodeRuneInString(rest[n:])
			if !t.dialect.IsIdentifierPart(next) {
				break
			}
			n += s
		}
		return Word, n, ""

	case ch == '\'':
		n, ok := scanQuoted(rest, '\'')
		if !ok {
			return 0, 0, "Unterminated string literal"
		}
		return String, n, ""

	case t.dialect.IsDelimitedIdentifierStart(ch):
		quote := dialect.MatchingEndQuote(ch)
		end := strings.IndexRune(rest[size:], quote)
		if end < 0 {
			return 0, 0, fmt.Sprintf("Expected close delimiter '%c' before EOF.", quote)
		}
		return QuotedIdent, size + end + utf8.RuneLen(quote), ""

	case isDigit(ch) || (ch == '.' && len(rest) > 1 && isDigit(rune(rest[1]))):
		return Number, scanNumber(rest), ""
	}

	for _, op := range operators {
		if strings.HasPrefix(rest, op) {
			return Punct, len(op), ""
		}
	}

	if strings.ContainsRune(punctuation, ch) {
		return Punct, size, ""
	}

	return 0, 0, fmt.Sprintf("Unexpected character '%c'", ch)
}

// scanQuoted returns the length of the quoted literal at the start of s,
// treating a doubled quote as an escaped quote.
func scanQuoted(s string, quote byte) (int, bool) {
	for i := 1; i < len(s); i++ {
		if s[i] != quote {
			continue
		}
		if i+1 < len(s) && s[i+1] == quote {
			i++
			continue
		}
		return i + 1, true
	}
	return 0, false
}

func scanNumber(s string) int {
	n := digits(s, 0)
	if n < len(s) && s[n] == '.' {
		n = digits(s, n+1)
	}
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		exp := n + 1
		if exp < len(s) && (s[exp] == '+' || s[exp] == '-') {
			exp++
		}
		if end := digits(s, exp); end > exp {
			n = end
		}
	}
	return n
}

func digits(s string, i int) int {
	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}
	return i
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isSpace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

// Definition adapts the tokenizer to participle's lexer.Definition so it can
// back participle grammars. A zero Definition lexes with dialect.Generic.
type Definition struct {
	Dialect dialect.Dialect
}

// Symbols implements lexer.Definition.
func (d Definition) Symbols() map[string]lexer.TokenType {
	return Symbols()
}

// Lex implements lexer.Definition.
func (d Definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(src))
}

// LexString implements lexer.StringDefinition.
func (d Definition) LexString(filename string, input string) (lexer.Lexer, error) {
	dl := d.Dialect
	if dl == nil {
		dl = dialect.Generic{}
	}
	return NewNamed(dl, filename, input), nil
}
