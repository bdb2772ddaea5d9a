package format

import (
	"github.com/pseudomuto/sqlfront/pkg/ast"
)

// query lays out a complete query, one clause per line.
func (f *Formatter) query(q *ast.Query) []string {
	var lines []string

	if q.With != nil {
		lines = append(lines, f.with(q.With)...)
	}

	lines = append(lines, f.setExpr(q.Body)...)

	if len(q.OrderBy) > 0 {
		lines = append(lines, f.keyword("ORDER BY")+" "+joined(q.OrderBy))
	}

	if q.Limit != nil {
		lines = append(lines, f.keyword("LIMIT")+" "+q.Limit.String())
	}

	if q.Offset != nil {
		line := f.keyword("OFFSET") + " " + q.Offset.Value.String()
		if q.Offset.Rows != "" {
			line += " " + f.keyword(q.Offset.Rows)
		}
		lines = append(lines, line)
	}

	return lines
}

func (f *Formatter) with(w *ast.With) []string {
	header := f.keyword("WITH")
	if w.Recursive {
		header += " " + f.keyword("RECURSIVE")
	}

	items := make([][]string, 0, len(w.CTEs))
	for _, cte := range w.CTEs {
		item := []string{cte.Alias.String() + " " + f.keyword("AS") + " ("}
		item = append(item, f.indented(f.query(cte.Query))...)
		item = append(item, ")")
		items = append(items, item)
	}

	return f.list(header, items)
}

func (f *Formatter) setExpr(body ast.SetExpr) []string {
	switch b := body.(type) {
	case *ast.Select:
		return f.selectBlock(b)
	case *ast.SetOperation:
		op := f.keyword(string(b.Op))
		if b.All {
			op += " " + f.keyword("ALL")
		}

		lines := f.setExpr(b.Left)
		lines = append(lines, op)
		return append(lines, f.setExpr(b.Right)...)
	case *ast.NestedQuery:
		return f.parenthesized(f.query(b.Query))
	default:
		return nil
	}
}

func (f *Formatter) selectBlock(s *ast.Select) []string {
	header := f.keyword("SELECT")
	if s.Distinct {
		header += " " + f.keyword("DISTINCT")
	}

	lines := f.list(header, single(s.Projection))

	if len(s.From) > 0 {
		lines = append(lines, f.from(s.From)...)
	}

	if s.Selection != nil {
		lines = append(lines, f.keyword("WHERE")+" "+s.Selection.String())
	}

	if len(s.GroupBy) > 0 {
		lines = append(lines, f.keyword("GROUP BY")+" "+joined(s.GroupBy))
	}

	if s.Having != nil {
		lines = append(lines, f.keyword("HAVING")+" "+s.Having.String())
	}

	return lines
}

// parenthesized wraps lines in an indented block: the opening paren on its
// own line and the closing paren starting the last line.
func (f *Formatter) parenthesized(lines []string) []string {
	out := []string{"("}
	out = append(out, f.indented(lines)...)
	return append(out, ")")
}
