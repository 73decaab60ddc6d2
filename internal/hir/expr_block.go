package hir

// Block represents a statement sequence with an optional tail
// expression whose value is the block's value. Tail is nil for
// unit-valued blocks.
type Block struct {
	Span
	Stmts []Stmt
	Tail  Expr
}

// DropTemps wraps an expression whose temporaries must not outlive it.
// The front end inserts it around desugared loop heads.
type DropTemps struct {
	Span
	X Expr
}

// Assign represents `lhs = rhs` in expression position.
type Assign struct {
	Span
	Lhs Expr
	Rhs Expr
}

func (*Block) isNode()     {}
func (*Block) isExpr()     {}
func (*DropTemps) isNode() {}
func (*DropTemps) isExpr() {}
func (*Assign) isNode()    {}
func (*Assign) isExpr()    {}
