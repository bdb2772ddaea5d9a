package ast

import (
	"github.com/pseudomuto/sqlfront/pkg/compare"
)

type (
	// TableFactor is a single relation in a FROM clause or join.
	TableFactor interface {
		Node
		tableFactor()
		alias() **TableAlias
	}

	// Table is a named relation, optionally called like a table-valued
	// function and optionally carrying MsSQL style WITH hints.
	Table struct {
		Name      ObjectName
		Alias     *TableAlias
		Args      []Expr
		WithHints []Expr
	}

	// Derived is a subquery used as a relation.
	Derived struct {
		Lateral  bool
		Subquery *Query
		Alias    *TableAlias
	}

	// NestedJoin is a parenthesized join tree. It never carries an alias.
	NestedJoin struct {
		TableWithJoins *TableWithJoins
	}

	// TableWithJoins is a relation followed by zero or more joins.
	TableWithJoins struct {
		Relation TableFactor
		Joins    []Join
	}

	// Join attaches Relation to the preceding relation using Operator.
	Join struct {
		Relation   TableFactor
		Operator   JoinOperator
		Constraint JoinConstraint
	}

	// JoinOperator is the kind of join.
	JoinOperator int

	// JoinConstraint is the condition attached to an inner or outer join.
	JoinConstraint interface {
		Node
		joinConstraint()
	}

	// JoinOn is an ON <expr> constraint.
	JoinOn struct {
		Expr Expr
	}

	// JoinUsing is a USING (<columns>) constraint.
	JoinUsing struct {
		Columns []Ident
	}

	// JoinNatural marks a NATURAL join.
	JoinNatural struct{}
)

const (
	JoinInner JoinOperator = iota
	JoinLeftOuter
	JoinRightOuter
	JoinFullOuter
	JoinCross
	JoinCrossApply
	JoinOuterApply
)

func (*Table) tableFactor()      {}
func (*Derived) tableFactor()    {}
func (*NestedJoin) tableFactor() {}

func (t *Table) alias() **TableAlias      { return &t.Alias }
func (d *Derived) alias() **TableAlias    { return &d.Alias }
func (n *NestedJoin) alias() **TableAlias { return nil }

func (*JoinOn) joinConstraint()      {}
func (*JoinUsing) joinConstraint()   {}
func (*JoinNatural) joinConstraint() {}

// AliasOf returns the alias attached to a table factor, or nil.
func AliasOf(f TableFactor) *TableAlias {
	if slot := f.alias(); slot != nil {
		return *slot
	}
	return nil
}

// SetAlias attaches an alias to a table factor. It reports false when the
// factor cannot carry an alias.
func SetAlias(f TableFactor, a *TableAlias) bool {
	slot := f.alias()
	if slot == nil {
		return false
	}
	*slot = a
	return true
}

// String returns the SQL representation of the table.
func (t *Table) String() string {
	out := t.Name.String()
	if t.Args != nil {
		out += "(" + commaSeparated(t.Args) + ")"
	}
	if t.Alias != nil {
		out += " AS " + t.Alias.String()
	}
	if len(t.WithHints) > 0 {
		out += " WITH (" + commaSeparated(t.WithHints) + ")"
	}
	return out
}

// String returns the SQL representation of the derived table.
func (d *Derived) String() string {
	out := "(" + d.Subquery.String() + ")"
	if d.Lateral {
		out = "LATERAL " + out
	}
	if d.Alias != nil {
		out += " AS " + d.Alias.String()
	}
	return out
}

// String returns the parenthesized join tree.
func (n *NestedJoin) String() string {
	return "(" + n.TableWithJoins.String() + ")"
}

// String returns the relation followed by its joins.
func (t *TableWithJoins) String() string {
	out := t.Relation.String()
	for _, j := range t.Joins {
		out += j.String()
	}
	return out
}

// String returns the join with a leading space so joins can be appended to
// their left-hand relation.
func (j Join) String() string {
	switch j.Operator {
	case JoinCross:
		return " CROSS JOIN " + j.Relation.String()
	case JoinCrossApply:
		return " CROSS APPLY " + j.Relation.String()
	case JoinOuterApply:
		return " OUTER APPLY " + j.Relation.String()
	}

	prefix := " "
	suffix := ""
	switch c := j.Constraint.(type) {
	case *JoinNatural:
		prefix = " NATURAL "
	case *JoinOn, *JoinUsing:
		suffix = " " + c.String()
	}

	return prefix + j.Operator.String() + " " + j.Relation.String() + suffix
}

// String returns the join keyword(s) for the operator.
func (o JoinOperator) String() string {
	switch o {
	case JoinInner:
		return "JOIN"
	case JoinLeftOuter:
		return "LEFT JOIN"
	case JoinRightOuter:
		return "RIGHT JOIN"
	case JoinFullOuter:
		return "FULL JOIN"
	case JoinCross:
		return "CROSS JOIN"
	case JoinCrossApply:
		return "CROSS APPLY"
	case JoinOuterApply:
		return "OUTER APPLY"
	}
	return "UNKNOWN JOIN"
}

func (c *JoinOn) String() string      { return "ON " + c.Expr.String() }
func (c *JoinUsing) String() string   { return "USING(" + commaSeparated(c.Columns) + ")" }
func (c *JoinNatural) String() string { return "NATURAL" }

// EqualTableFactor compares two table factors structurally.
func EqualTableFactor(a, b TableFactor) bool {
	switch x := a.(type) {
	case *Table:
		y, ok := b.(*Table)
		return ok && x.Equal(y)
	case *Derived:
		y, ok := b.(*Derived)
		return ok && x.Equal(y)
	case *NestedJoin:
		y, ok := b.(*NestedJoin)
		return ok && x.Equal(y)
	}
	return a == nil && b == nil
}

// Equal compares two tables.
func (t *Table) Equal(other *Table) bool {
	if eq, more := compare.NilCheck(t, other); !more {
		return eq
	}
	return t.Name.Equal(other.Name) &&
		t.Alias.Equal(other.Alias) &&
		compare.SlicesPresence(t.Args, other.Args, EqualExpr) &&
		compare.Slices(t.WithHints, other.WithHints, EqualExpr)
}

// Equal compares two derived tables.
func (d *Derived) Equal(other *Derived) bool {
	if eq, more := compare.NilCheck(d, other); !more {
		return eq
	}
	return d.Lateral == other.Lateral &&
		d.Subquery.Equal(other.Subquery) &&
		d.Alias.Equal(other.Alias)
}

// Equal compares two nested joins.
func (n *NestedJoin) Equal(other *NestedJoin) bool {
	if eq, more := compare.NilCheck(n, other); !more {
		return eq
	}
	return n.TableWithJoins.Equal(other.TableWithJoins)
}

// Equal compares two join trees.
func (t *TableWithJoins) Equal(other *TableWithJoins) bool {
	if eq, more := compare.NilCheck(t, other); !more {
		return eq
	}
	return EqualTableFactor(t.Relation, other.Relation) &&
		compare.Slices(t.Joins, other.Joins, Join.Equal)
}

// Equal compares two joins.
func (j Join) Equal(other Join) bool {
	return j.Operator == other.Operator &&
		EqualTableFactor(j.Relation, other.Relation) &&
		equalConstraint(j.Constraint, other.Constraint)
}

func equalConstraint(a, b JoinConstraint) bool {
	switch x := a.(type) {
	case *JoinOn:
		y, ok := b.(*JoinOn)
		return ok && EqualExpr(x.Expr, y.Expr)
	case *JoinUsing:
		y, ok := b.(*JoinUsing)
		return ok && compare.Slices(x.Columns, y.Columns, Ident.Equal)
	case *JoinNatural:
		_, ok := b.(*JoinNatural)
		return ok
	}
	return a == nil && b == nil
}
