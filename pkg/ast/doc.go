// Package ast defines the syntax tree produced by the parser package.
//
// Every node renders back to SQL through its String method. For the
// statements the parser accepts, parsing the rendered text yields a tree
// equal to the original, which makes String the canonical form used by the
// formatter and by round-trip tests.
//
// Table references are the core of the tree:
//
//	TableWithJoins
//	├── Relation  TableFactor (*Table, *Derived or *NestedJoin)
//	└── Joins     []Join
//	              ├── Relation   TableFactor
//	              ├── Operator   JoinOperator
//	              └── Constraint JoinConstraint (*JoinOn, *JoinUsing, *JoinNatural or nil)
//
// A *NestedJoin always wraps a join tree; a lone relation written inside
// parentheses is unwrapped by the parser and never appears as a NestedJoin
// without joins.
package ast
