package ast

import (
	"strings"
)

type (
	// Expr is a scalar expression.
	Expr interface {
		Node
		expr()
	}

	// Identifier is an unqualified column or variable reference.
	Identifier struct {
		Ident
	}

	// CompoundIdentifier is a qualified reference such as t.col.
	CompoundIdentifier struct {
		Parts []Ident
	}

	// Wildcard is an unqualified `*` in a projection or function call.
	Wildcard struct{}

	// QualifiedWildcard is `prefix.*` in a projection.
	QualifiedWildcard struct {
		Prefix ObjectName
	}

	// Number is a numeric literal kept as written.
	Number struct {
		Value string
	}

	// StringLiteral is a quoted string. Value holds the unescaped contents.
	StringLiteral struct {
		Kind  StringKind
		Value string
	}

	// StringKind distinguishes plain, national and hex string literals.
	StringKind int

	// Boolean is TRUE or FALSE.
	Boolean struct {
		Value bool
	}

	// Null is the NULL literal.
	Null struct{}

	// BinaryOp is <left> <op> <right>.
	BinaryOp struct {
		Left  Expr
		Op    BinaryOperator
		Right Expr
	}

	// BinaryOperator is the operator text of a BinaryOp.
	BinaryOperator string

	// UnaryOp is a prefix operator applied to an expression.
	UnaryOp struct {
		Op   UnaryOperator
		Expr Expr
	}

	// UnaryOperator is +, - or NOT.
	UnaryOperator string

	// IsNull is <expr> IS [NOT] NULL.
	IsNull struct {
		Expr    Expr
		Negated bool
	}

	// InList is <expr> [NOT] IN (<list>).
	InList struct {
		Expr    Expr
		List    []Expr
		Negated bool
	}

	// InSubquery is <expr> [NOT] IN (<query>).
	InSubquery struct {
		Expr     Expr
		Subquery *Query
		Negated  bool
	}

	// Between is <expr> [NOT] BETWEEN <low> AND <high>.
	Between struct {
		Expr    Expr
		Low     Expr
		High    Expr
		Negated bool
	}

	// Exists is [NOT] EXISTS (<query>).
	Exists struct {
		Subquery *Query
		Negated  bool
	}

	// Subquery is a parenthesized query used as a scalar.
	Subquery struct {
		Query *Query
	}

	// Nested is a parenthesized expression.
	Nested struct {
		Expr Expr
	}

	// Function is a function call.
	Function struct {
		Name     ObjectName
		Args     []Expr
		Distinct bool
	}

	// Cast is CAST(<expr> AS <type>) or, when Shorthand is set, <expr>::<type>.
	Cast struct {
		Expr      Expr
		DataType  *DataType
		Shorthand bool
	}

	// Case is a CASE expression. Conditions and Results have equal length.
	Case struct {
		Operand    Expr
		Conditions []Expr
		Results    []Expr
		Else       Expr
	}
)

const (
	SingleQuoted StringKind = iota
	NationalQuoted
	HexQuoted
)

const (
	OpPlus         BinaryOperator = "+"
	OpMinus        BinaryOperator = "-"
	OpMultiply     BinaryOperator = "*"
	OpDivide       BinaryOperator = "/"
	OpModulo       BinaryOperator = "%"
	OpStringConcat BinaryOperator = "||"
	OpGt           BinaryOperator = ">"
	OpLt           BinaryOperator = "<"
	OpGtEq         BinaryOperator = ">="
	OpLtEq         BinaryOperator = "<="
	OpEq           BinaryOperator = "="
	OpNotEq        BinaryOperator = "<>"
	OpBangNotEq    BinaryOperator = "!="
	OpAnd          BinaryOperator = "AND"
	OpOr           BinaryOperator = "OR"
	OpLike         BinaryOperator = "LIKE"
	OpNotLike      BinaryOperator = "NOT LIKE"
)

const (
	UnaryPlus  UnaryOperator = "+"
	UnaryMinus UnaryOperator = "-"
	UnaryNot   UnaryOperator = "NOT"
)

func (*Identifier) expr()         {}
func (*CompoundIdentifier) expr() {}
func (*Wildcard) expr()           {}
func (*QualifiedWildcard) expr()  {}
func (*Number) expr()             {}
func (*StringLiteral) expr()      {}
func (*Boolean) expr()            {}
func (*Null) expr()               {}
func (*BinaryOp) expr()           {}
func (*UnaryOp) expr()            {}
func (*IsNull) expr()             {}
func (*InList) expr()             {}
func (*InSubquery) expr()         {}
func (*Between) expr()            {}
func (*Exists) expr()             {}
func (*Subquery) expr()           {}
func (*Nested) expr()             {}
func (*Function) expr()           {}
func (*Cast) expr()               {}
func (*Case) expr()               {}

// EqualExpr compares two expressions. Expressions are equal when they render
// to the same SQL, which includes identifier quoting and parentheses.
func EqualExpr(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

func (c *CompoundIdentifier) String() string { return join(c.Parts, ".") }
func (*Wildcard) String() string             { return "*" }
func (q *QualifiedWildcard) String() string  { return q.Prefix.String() + ".*" }
func (n *Number) String() string             { return n.Value }
func (*Null) String() string                 { return "NULL" }

func (s *StringLiteral) String() string {
	quoted := "'" + strings.ReplaceAll(s.Value, "'", "''") + "'"
	switch s.Kind {
	case NationalQuoted:
		return "N" + quoted
	case HexQuoted:
		return "X" + quoted
	}
	return quoted
}

func (b *Boolean) String() string {
	if b.Value {
		return "TRUE"
	}
	return "FALSE"
}

func (b *BinaryOp) String() string {
	return b.Left.String() + " " + string(b.Op) + " " + b.Right.String()
}

func (u *UnaryOp) String() string {
	inner := u.Expr.String()
	switch {
	case u.Op == UnaryNot:
		return "NOT " + inner
	case strings.HasPrefix(inner, string(u.Op)):
		// "--" would start a comment
		return string(u.Op) + " " + inner
	}
	return string(u.Op) + inner
}

func (i *IsNull) String() string {
	if i.Negated {
		return i.Expr.String() + " IS NOT NULL"
	}
	return i.Expr.String() + " IS NULL"
}

func (i *InList) String() string {
	return i.Expr.String() + negated(i.Negated) + " IN (" + commaSeparated(i.List) + ")"
}

func (i *InSubquery) String() string {
	return i.Expr.String() + negated(i.Negated) + " IN (" + i.Subquery.String() + ")"
}

func (b *Between) String() string {
	return b.Expr.String() + negated(b.Negated) + " BETWEEN " + b.Low.String() + " AND " + b.High.String()
}

func (e *Exists) String() string {
	if e.Negated {
		return "NOT EXISTS (" + e.Subquery.String() + ")"
	}
	return "EXISTS (" + e.Subquery.String() + ")"
}

func (s *Subquery) String() string { return "(" + s.Query.String() + ")" }
func (n *Nested) String() string   { return "(" + n.Expr.String() + ")" }

func (f *Function) String() string {
	out := f.Name.String() + "("
	if f.Distinct {
		out += "DISTINCT "
	}
	return out + commaSeparated(f.Args) + ")"
}

func (c *Cast) String() string {
	if c.Shorthand {
		return c.Expr.String() + "::" + c.DataType.String()
	}
	return "CAST(" + c.Expr.String() + " AS " + c.DataType.String() + ")"
}

func (c *Case) String() string {
	out := "CASE"
	if c.Operand != nil {
		out += " " + c.Operand.String()
	}
	for i := range c.Conditions {
		out += " WHEN " + c.Conditions[i].String() + " THEN " + c.Results[i].String()
	}
	if c.Else != nil {
		out += " ELSE " + c.Else.String()
	}
	return out + " END"
}

func negated(n bool) string {
	if n {
		return " NOT"
	}
	return ""
}
