package hir

// Loop represents an unconditional loop wrapping a block. Label is
// empty for unlabeled loops.
type Loop struct {
	Span
	Label string
	Body  *Block
}

// Break represents a break out of an enclosing loop. Label names the
// destination loop, empty means the innermost one.
type Break struct {
	Span
	Label string
}

// If represents a lowered conditional. Else may be nil.
type If struct {
	Span
	Cond Expr
	Then *Block
	Else Expr
}

func (*Loop) isNode()  {}
func (*Loop) isExpr()  {}
func (*Break) isNode() {}
func (*Break) isExpr() {}
func (*If) isNode()    {}
func (*If) isExpr()    {}
