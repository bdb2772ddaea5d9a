package ast

import (
	"fmt"
	"strings"
)

type (
	// Node is implemented by every syntax tree node.
	Node interface {
		fmt.Stringer
	}

	// Statement is a single top-level SQL statement.
	Statement interface {
		Node
		statement()
	}

	// QueryStatement is a statement consisting of a query.
	QueryStatement struct {
		Query *Query
	}
)

func (*QueryStatement) statement() {}
func (*CreateTable) statement()    {}

// String returns the SQL representation of the query statement.
func (s *QueryStatement) String() string {
	return s.Query.String()
}

// EqualStatement compares two statements structurally.
func EqualStatement(a, b Statement) bool {
	switch x := a.(type) {
	case *QueryStatement:
		y, ok := b.(*QueryStatement)
		return ok && x.Query.Equal(y.Query)
	case *CreateTable:
		y, ok := b.(*CreateTable)
		return ok && x.Equal(y)
	}
	return a == nil && b == nil
}

func join[T fmt.Stringer](items []T, sep string) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, item.String())
	}
	return strings.Join(parts, sep)
}

// commaSeparated renders items the way SQL lists are written.
func commaSeparated[T fmt.Stringer](items []T) string {
	return join(items, ", ")
}
