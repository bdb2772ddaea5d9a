package dialect

import "strings"

type keywordSet map[string]struct{}

func newKeywordSet(words ...string) keywordSet {
	set := make(keywordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether word (compared case-insensitively) is in the set.
func (s keywordSet) Contains(word string) bool {
	_, ok := s[strings.ToUpper(word)]
	return ok
}

var (
	// ReservedForTableAlias holds the keywords that can never be used as an
	// implicit (AS-less) table alias because they start the next clause or a
	// join, e.g. `SELECT * FROM t WHERE ...`.
	ReservedForTableAlias = newKeywordSet(
		// clauses
		"WITH", "EXPLAIN", "ANALYZE", "SELECT", "WHERE", "GROUP", "SORT", "HAVING", "ORDER",
		"TOP", "LATERAL", "VIEW", "LIMIT", "OFFSET", "FETCH", "UNION", "EXCEPT", "INTERSECT",
		"CLUSTER", "DISTRIBUTE", "SET",
		// joins
		"ON", "JOIN", "INNER", "CROSS", "FULL", "LEFT", "RIGHT", "NATURAL", "USING", "OUTER",
	)

	// ReservedForColumnAlias holds the keywords that can never be used as an
	// implicit column alias in a projection, e.g. `SELECT a FROM t`.
	ReservedForColumnAlias = newKeywordSet(
		"WITH", "EXPLAIN", "ANALYZE", "SELECT", "WHERE", "GROUP", "SORT", "HAVING", "ORDER",
		"TOP", "LIMIT", "OFFSET", "FETCH", "UNION", "EXCEPT", "INTERSECT", "FROM", "INTO",
	)
)
