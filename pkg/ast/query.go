package ast

import (
	"github.com/pseudomuto/sqlfront/pkg/compare"
)

type (
	// Query is a complete query expression, including any CTEs and the
	// ORDER BY, LIMIT and OFFSET clauses that apply to its body.
	Query struct {
		With    *With
		Body    SetExpr
		OrderBy []OrderByExpr
		Limit   Expr
		Offset  *Offset
	}

	// With is a WITH clause.
	With struct {
		Recursive bool
		CTEs      []CTE
	}

	// CTE is a single common table expression: alias AS (query).
	CTE struct {
		Alias TableAlias
		Query *Query
	}

	// SetExpr is the body of a query.
	SetExpr interface {
		Node
		setExpr()
	}

	// Select is a SELECT block.
	Select struct {
		Distinct   bool
		Projection []SelectItem
		From       []*TableWithJoins
		Selection  Expr
		GroupBy    []Expr
		Having     Expr
	}

	// SetOperation combines two query bodies with UNION, EXCEPT or INTERSECT.
	SetOperation struct {
		Op    SetOperator
		All   bool
		Left  SetExpr
		Right SetExpr
	}

	// SetOperator is UNION, EXCEPT or INTERSECT.
	SetOperator string

	// NestedQuery is a parenthesized query used as a query body.
	NestedQuery struct {
		Query *Query
	}

	// SelectItem is one projection. Expr may be a *Wildcard or a
	// *QualifiedWildcard, in which case Alias is always nil.
	SelectItem struct {
		Expr  Expr
		Alias *Ident
	}

	// OrderByExpr is an ORDER BY item. Asc is nil when no direction was
	// written.
	OrderByExpr struct {
		Expr Expr
		Asc  *bool
	}

	// Offset is an OFFSET clause. Rows holds ROW or ROWS when written.
	Offset struct {
		Value Expr
		Rows  string
	}
)

const (
	Union     SetOperator = "UNION"
	Except    SetOperator = "EXCEPT"
	Intersect SetOperator = "INTERSECT"
)

func (*Select) setExpr()       {}
func (*SetOperation) setExpr() {}
func (*NestedQuery) setExpr()  {}

// String returns the SQL representation of the query.
func (q *Query) String() string {
	out := ""
	if q.With != nil {
		out = q.With.String() + " "
	}
	out += q.Body.String()
	if len(q.OrderBy) > 0 {
		out += " ORDER BY " + commaSeparated(q.OrderBy)
	}
	if q.Limit != nil {
		out += " LIMIT " + q.Limit.String()
	}
	if q.Offset != nil {
		out += " " + q.Offset.String()
	}
	return out
}

func (w *With) String() string {
	out := "WITH "
	if w.Recursive {
		out += "RECURSIVE "
	}
	return out + commaSeparated(w.CTEs)
}

func (c CTE) String() string {
	return c.Alias.String() + " AS (" + c.Query.String() + ")"
}

// String returns the SQL representation of the SELECT block.
func (s *Select) String() string {
	out := "SELECT "
	if s.Distinct {
		out += "DISTINCT "
	}
	out += commaSeparated(s.Projection)
	if len(s.From) > 0 {
		out += " FROM " + commaSeparated(s.From)
	}
	if s.Selection != nil {
		out += " WHERE " + s.Selection.String()
	}
	if len(s.GroupBy) > 0 {
		out += " GROUP BY " + commaSeparated(s.GroupBy)
	}
	if s.Having != nil {
		out += " HAVING " + s.Having.String()
	}
	return out
}

func (s *SetOperation) String() string {
	out := s.Left.String() + " " + string(s.Op) + " "
	if s.All {
		out += "ALL "
	}
	return out + s.Right.String()
}

func (n *NestedQuery) String() string {
	return "(" + n.Query.String() + ")"
}

func (s SelectItem) String() string {
	if s.Alias == nil {
		return s.Expr.String()
	}
	return s.Expr.String() + " AS " + s.Alias.String()
}

func (o OrderByExpr) String() string {
	switch {
	case o.Asc == nil:
		return o.Expr.String()
	case *o.Asc:
		return o.Expr.String() + " ASC"
	default:
		return o.Expr.String() + " DESC"
	}
}

func (o *Offset) String() string {
	if o.Rows == "" {
		return "OFFSET " + o.Value.String()
	}
	return "OFFSET " + o.Value.String() + " " + o.Rows
}

// Equal compares two queries structurally.
func (q *Query) Equal(other *Query) bool {
	if eq, more := compare.NilCheck(q, other); !more {
		return eq
	}
	return compare.PointersWithEqual(q.With, other.With, (*With).Equal) &&
		EqualSetExpr(q.Body, other.Body) &&
		compare.Slices(q.OrderBy, other.OrderBy, OrderByExpr.Equal) &&
		EqualExpr(q.Limit, other.Limit) &&
		compare.PointersWithEqual(q.Offset, other.Offset, (*Offset).Equal)
}

// Equal compares two WITH clauses.
func (w *With) Equal(other *With) bool {
	return w.Recursive == other.Recursive &&
		compare.Slices(w.CTEs, other.CTEs, CTE.Equal)
}

// Equal compares two CTEs.
func (c CTE) Equal(other CTE) bool {
	return c.Alias.Equal(&other.Alias) && c.Query.Equal(other.Query)
}

// EqualSetExpr compares two query bodies structurally.
func EqualSetExpr(a, b SetExpr) bool {
	switch x := a.(type) {
	case *Select:
		y, ok := b.(*Select)
		return ok && x.Equal(y)
	case *SetOperation:
		y, ok := b.(*SetOperation)
		return ok && x.Op == y.Op && x.All == y.All &&
			EqualSetExpr(x.Left, y.Left) && EqualSetExpr(x.Right, y.Right)
	case *NestedQuery:
		y, ok := b.(*NestedQuery)
		return ok && x.Query.Equal(y.Query)
	}
	return a == nil && b == nil
}

// Equal compares two SELECT blocks.
func (s *Select) Equal(other *Select) bool {
	if eq, more := compare.NilCheck(s, other); !more {
		return eq
	}
	return s.Distinct == other.Distinct &&
		compare.Slices(s.Projection, other.Projection, SelectItem.Equal) &&
		compare.Slices(s.From, other.From, (*TableWithJoins).Equal) &&
		EqualExpr(s.Selection, other.Selection) &&
		compare.Slices(s.GroupBy, other.GroupBy, EqualExpr) &&
		EqualExpr(s.Having, other.Having)
}

// Equal compares two projections.
func (s SelectItem) Equal(other SelectItem) bool {
	return EqualExpr(s.Expr, other.Expr) &&
		compare.PointersWithEqual(s.Alias, other.Alias, func(a, b *Ident) bool { return a.Equal(*b) })
}

// Equal compares two ORDER BY items.
func (o OrderByExpr) Equal(other OrderByExpr) bool {
	return EqualExpr(o.Expr, other.Expr) && compare.Pointers(o.Asc, other.Asc)
}

// Equal compares two OFFSET clauses.
func (o *Offset) Equal(other *Offset) bool {
	return EqualExpr(o.Value, other.Value) && o.Rows == other.Rows
}
