package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/sqlfront/pkg/ast"
	"github.com/pseudomuto/sqlfront/pkg/tokenizer"
)

// binding strength of infix and prefix operators
const (
	precOr          = 5
	precAnd         = 10
	precUnaryNot    = 15
	precIs          = 17
	precCompare     = 20
	precPlusMinus   = 30
	precMulDiv      = 40
	precDoubleColon = 50
)

func (s *state) parseExpr() (ast.Expr, error) {
	return s.parseSubexpr(0)
}

// parseSubexpr parses an expression whose operators bind tighter than prec.
func (s *state) parseSubexpr(prec int) (ast.Expr, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	expr, err := s.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		next := s.nextPrecedence()
		if prec >= next {
			return expr, nil
		}
		if expr, err = s.parseInfix(expr, next); err != nil {
			return nil, err
		}
	}
}

func (s *state) parseCommaSeparatedExprs() ([]ast.Expr, error) {
	var exprs []ast.Expr
	for {
		expr, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !s.consumeToken(",") {
			return exprs, nil
		}
	}
}

// parseWildcardExpr parses a projection, which may be * or prefix.*.
func (s *state) parseWildcardExpr() (ast.Expr, error) {
	if s.consumeToken("*") {
		return &ast.Wildcard{}, nil
	}

	cp := s.lex.MakeCheckpoint()
	var prefix ast.ObjectName
	for {
		tok := s.peek()
		if tok.Type != tokenizer.Word && tok.Type != tokenizer.QuotedIdent {
			break
		}
		s.next()
		prefix = append(prefix, identFromToken(tok))

		if !s.consumeToken(".") {
			break
		}
		if s.consumeToken("*") {
			return &ast.QualifiedWildcard{Prefix: prefix}, nil
		}
	}
	s.lex.LoadCheckpoint(cp)

	return s.parseExpr()
}

func (s *state) nextPrecedence() int {
	tok := s.peek()

	switch tok.Type {
	case tokenizer.Word:
		switch strings.ToUpper(tok.Value) {
		case "OR":
			return precOr
		case "AND":
			return precAnd
		case "IS":
			return precIs
		case "LIKE", "IN", "BETWEEN":
			return precCompare
		case "NOT":
			cp := s.lex.MakeCheckpoint()
			s.next()
			after := s.peek()
			s.lex.LoadCheckpoint(cp)
			if negatable(after) {
				return precCompare
			}
		}

	case tokenizer.Punct:
		switch tok.Value {
		case "=", "<", ">", "<=", ">=", "<>", "!=":
			return precCompare
		case "+", "-":
			return precPlusMinus
		case "*", "/", "%", "||":
			return precMulDiv
		case "::":
			return precDoubleColon
		}
	}

	return 0
}

func negatable(tok lexer.Token) bool {
	return tokenizer.IsKeyword(tok, "LIKE") ||
		tokenizer.IsKeyword(tok, "IN") ||
		tokenizer.IsKeyword(tok, "BETWEEN")
}

func (s *state) parseInfix(left ast.Expr, prec int) (ast.Expr, error) {
	tok := s.next()

	if tok.Type == tokenizer.Punct {
		if tok.Value == "::" {
			dt, err := s.parseDataType()
			if err != nil {
				return nil, err
			}
			return &ast.Cast{Expr: left, DataType: dt, Shorthand: true}, nil
		}

		right, err := s.parseSubexpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: ast.BinaryOperator(tok.Value), Right: right}, nil
	}

	keyword := strings.ToUpper(tok.Value)
	switch keyword {
	case "AND", "OR":
		right, err := s.parseSubexpr(prec)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOp{Left: left, Op: ast.BinaryOperator(keyword), Right: right}, nil

	case "IS":
		negated := s.parseKeyword("NOT")
		if !s.parseKeyword("NULL") {
			return nil, s.expected("NULL or NOT NULL after IS", s.peek())
		}
		return &ast.IsNull{Expr: left, Negated: negated}, nil
	}

	negated := keyword == "NOT"
	if negated {
		keyword = strings.ToUpper(s.next().Value)
	}

	switch keyword {
	case "LIKE":
		right, err := s.parseSubexpr(precCompare)
		if err != nil {
			return nil, err
		}
		op := ast.OpLike
		if negated {
			op = ast.OpNotLike
		}
		return &ast.BinaryOp{Left: left, Op: op, Right: right}, nil

	case "IN":
		return s.parseIn(left, negated)

	case "BETWEEN":
		low, err := s.parseSubexpr(precCompare)
		if err != nil {
			return nil, err
		}
		if err := s.expectKeyword("AND"); err != nil {
			return nil, err
		}
		high, err := s.parseSubexpr(precCompare)
		if err != nil {
			return nil, err
		}
		return &ast.Between{Expr: left, Low: low, High: high, Negated: negated}, nil
	}

	// nextPrecedence only admits the operators handled above
	return nil, s.expected("an infix operator", tok)
}

func (s *state) parseIn(left ast.Expr, negated bool) (ast.Expr, error) {
	if err := s.expectToken("("); err != nil {
		return nil, err
	}

	var expr ast.Expr
	if startsQuery(s.peek()) {
		q, err := s.parseQuery()
		if err != nil {
			return nil, err
		}
		expr = &ast.InSubquery{Expr: left, Subquery: q, Negated: negated}
	} else {
		list, err := s.parseCommaSeparatedExprs()
		if err != nil {
			return nil, err
		}
		expr = &ast.InList{Expr: left, List: list, Negated: negated}
	}

	if err := s.expectToken(")"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (s *state) parsePrefix() (ast.Expr, error) {
	tok := s.peek()

	switch tok.Type {
	case tokenizer.Word:
		switch strings.ToUpper(tok.Value) {
		case "TRUE", "FALSE":
			s.next()
			return &ast.Boolean{Value: strings.EqualFold(tok.Value, "TRUE")}, nil
		case "NULL":
			s.next()
			return &ast.Null{}, nil
		case "NOT":
			s.next()
			if s.parseKeyword("EXISTS") {
				return s.parseExists(true)
			}
			expr, err := s.parseSubexpr(precUnaryNot)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOp{Op: ast.UnaryNot, Expr: expr}, nil
		case "EXISTS":
			s.next()
			return s.parseExists(false)
		case "CASE":
			s.next()
			return s.parseCase()
		case "CAST":
			s.next()
			return s.parseCast()
		}
		return s.parseIdentifierExpr()

	case tokenizer.QuotedIdent:
		return s.parseIdentifierExpr()

	case tokenizer.Number:
		s.next()
		return &ast.Number{Value: tok.Value}, nil

	case tokenizer.String:
		s.next()
		return &ast.StringLiteral{Value: unquoteString(tok.Value)}, nil

	case tokenizer.NationalString:
		s.next()
		return &ast.StringLiteral{Kind: ast.NationalQuoted, Value: unquoteString(tok.Value[1:])}, nil

	case tokenizer.HexString:
		s.next()
		return &ast.StringLiteral{Kind: ast.HexQuoted, Value: tok.Value[2 : len(tok.Value)-1]}, nil

	case tokenizer.Punct:
		switch tok.Value {
		case "(":
			return s.parseParenExpr()
		case "+", "-":
			s.next()
			expr, err := s.parseSubexpr(precPlusMinus)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOp{Op: ast.UnaryOperator(tok.Value), Expr: expr}, nil
		}
	}

	return nil, s.expected("an expression", tok)
}

// parseParenExpr parses a parenthesized expression or scalar subquery.
func (s *state) parseParenExpr() (ast.Expr, error) {
	s.next()

	var expr ast.Expr
	if startsQuery(s.peek()) {
		q, err := s.parseQuery()
		if err != nil {
			return nil, err
		}
		expr = &ast.Subquery{Query: q}
	} else {
		inner, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		expr = &ast.Nested{Expr: inner}
	}

	if err := s.expectToken(")"); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIdentifierExpr parses a column reference or a function call.
func (s *state) parseIdentifierExpr() (ast.Expr, error) {
	var parts []ast.Ident
	for {
		ident, err := s.parseIdentifier()
		if err != nil {
			return nil, err
		}
		parts = append(parts, ident)
		if !s.consumeToken(".") {
			break
		}
	}

	if s.consumeToken("(") {
		return s.parseFunction(ast.ObjectName(parts))
	}
	if len(parts) == 1 {
		return &ast.Identifier{Ident: parts[0]}, nil
	}
	return &ast.CompoundIdentifier{Parts: parts}, nil
}

// parseFunction parses a call's arguments once its "(" has been consumed.
func (s *state) parseFunction(name ast.ObjectName) (ast.Expr, error) {
	fn := &ast.Function{Name: name, Args: []ast.Expr{}}
	if s.consumeToken(")") {
		return fn, nil
	}

	fn.Distinct = s.parseKeyword("DISTINCT")
	for {
		if s.consumeToken("*") {
			fn.Args = append(fn.Args, &ast.Wildcard{})
		} else {
			arg, err := s.parseExpr()
			if err != nil {
				return nil, err
			}
			fn.Args = append(fn.Args, arg)
		}

		if !s.consumeToken(",") {
			break
		}
	}

	if err := s.expectToken(")"); err != nil {
		return nil, err
	}
	return fn, nil
}

func (s *state) parseExists(negated bool) (ast.Expr, error) {
	q, err := s.parseNestedQuery()
	if err != nil {
		return nil, err
	}
	return &ast.Exists{Subquery: q, Negated: negated}, nil
}

func (s *state) parseCase() (ast.Expr, error) {
	c := &ast.Case{}

	if !tokenizer.IsKeyword(s.peek(), "WHEN") {
		operand, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		c.Operand = operand
	}

	if err := s.expectKeyword("WHEN"); err != nil {
		return nil, err
	}

	for {
		cond, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := s.expectKeyword("THEN"); err != nil {
			return nil, err
		}
		result, err := s.parseExpr()
		if err != nil {
			return nil, err
		}

		c.Conditions = append(c.Conditions, cond)
		c.Results = append(c.Results, result)

		if !s.parseKeyword("WHEN") {
			break
		}
	}

	if s.parseKeyword("ELSE") {
		elseExpr, err := s.parseExpr()
		if err != nil {
			return nil, err
		}
		c.Else = elseExpr
	}

	if err := s.expectKeyword("END"); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *state) parseCast() (ast.Expr, error) {
	if err := s.expectToken("("); err != nil {
		return nil, err
	}
	expr, err := s.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := s.expectKeyword("AS"); err != nil {
		return nil, err
	}
	dt, err := s.parseDataType()
	if err != nil {
		return nil, err
	}
	if err := s.expectToken(")"); err != nil {
		return nil, err
	}
	return &ast.Cast{Expr: expr, DataType: dt}, nil
}
