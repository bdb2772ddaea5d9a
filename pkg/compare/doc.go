// Package compare holds the small generic helpers the AST uses to implement
// structural Equal methods.
//
// The helpers fold the usual nil and length checks into a single call:
//
//	func (a *TableAlias) Equal(other *TableAlias) bool {
//	    if eq, more := compare.NilCheck(a, other); !more {
//	        return eq
//	    }
//	    return a.Name.Equal(other.Name) &&
//	        compare.Slices(a.Columns, other.Columns, Ident.Equal)
//	}
package compare
