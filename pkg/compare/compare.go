package compare

// NilCheck performs a nil check on two pointers. It reports whether they are
// equal and whether the caller still needs to compare their fields.
//
// Both nil yields (true, false), exactly one nil yields (false, false) and two
// non-nil pointers yield (false, true).
func NilCheck[T any](a, b *T) (equal bool, needsMoreChecks bool) {
	if a == nil && b == nil {
		return true, false
	}
	if a == nil || b == nil {
		return false, false
	}
	return false, true
}

// Pointers compares two pointers to comparable values. Two nil pointers are
// equal, as are two non-nil pointers whose targets are equal.
//
//	compare.Pointers(o.Asc, other.Asc)
func Pointers[T comparable](a, b *T) bool {
	if (a != nil) != (b != nil) {
		return false
	}
	return a == nil || *a == *b
}

// PointersWithEqual compares two pointers using equalFunc once both are known
// to be non-nil.
//
//	compare.PointersWithEqual(t.Alias, other.Alias, (*TableAlias).Equal)
func PointersWithEqual[T any](a, b *T, equalFunc func(*T, *T) bool) bool {
	if eq, more := NilCheck(a, b); !more {
		return eq
	}
	return equalFunc(a, b)
}

// Slices compares two slices element by element. A nil slice and an empty
// slice are considered equal.
//
//	compare.Slices(twj.Joins, other.Joins, Join.Equal)
func Slices[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalFunc(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SlicesPresence is like Slices but also distinguishes a nil slice from an
// empty one. Table arguments use it since `t` and `t()` are different
// relations.
func SlicesPresence[T any](a, b []T, equalFunc func(T, T) bool) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	return Slices(a, b, equalFunc)
}
