package format

import (
	"github.com/pseudomuto/sqlfront/pkg/ast"
)

// from lays out a FROM clause. A single relation stays on the FROM line
// with its joins underneath; several relations are listed one per line.
func (f *Formatter) from(items []*ast.TableWithJoins) []string {
	header := f.keyword("FROM")
	if len(items) == 1 {
		return prefixed(header+" ", f.tableWithJoins(items[0]))
	}

	relations := make([][]string, 0, len(items))
	for _, item := range items {
		relations = append(relations, f.tableWithJoins(item))
	}
	return f.list(header, relations)
}

func (f *Formatter) tableWithJoins(t *ast.TableWithJoins) []string {
	lines := f.tableFactor(t.Relation)
	for _, j := range t.Joins {
		lines = append(lines, f.join(j)...)
	}
	return lines
}

func (f *Formatter) tableFactor(factor ast.TableFactor) []string {
	switch t := factor.(type) {
	case *ast.Table:
		return []string{f.table(t)}
	case *ast.Derived:
		lines := f.parenthesized(f.query(t.Subquery))
		if t.Lateral {
			lines = prefixed(f.keyword("LATERAL")+" ", lines)
		}
		return suffixed(lines, f.alias(t.Alias))
	case *ast.NestedJoin:
		inner := f.tableWithJoins(t.TableWithJoins)
		if len(inner) == 1 {
			return []string{"(" + inner[0] + ")"}
		}
		return f.parenthesized(inner)
	default:
		return nil
	}
}

func (f *Formatter) table(t *ast.Table) string {
	out := t.Name.String()
	if t.Args != nil {
		out += "(" + joined(t.Args) + ")"
	}

	out += f.alias(t.Alias)

	if len(t.WithHints) > 0 {
		out += " " + f.keyword("WITH") + " (" + joined(t.WithHints) + ")"
	}
	return out
}

// alias returns " AS <alias>", or nothing when a is nil.
func (f *Formatter) alias(a *ast.TableAlias) string {
	if a == nil {
		return ""
	}
	return " " + f.keyword("AS") + " " + a.String()
}

func (f *Formatter) join(j ast.Join) []string {
	kw := f.keyword(j.Operator.String())
	if _, ok := j.Constraint.(*ast.JoinNatural); ok {
		kw = f.keyword("NATURAL") + " " + kw
	}

	lines := prefixed(kw+" ", f.tableFactor(j.Relation))

	switch c := j.Constraint.(type) {
	case *ast.JoinOn:
		lines = suffixed(lines, " "+f.keyword("ON")+" "+c.Expr.String())
	case *ast.JoinUsing:
		lines = suffixed(lines, " "+f.keyword("USING")+"("+joined(c.Columns)+")")
	}

	return lines
}
