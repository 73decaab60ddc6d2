package hir

// Local represents a `let` binding statement. Init is nil for
// declarations without an initializer.
//
//	let mut __next;       // Pat: <BindingPat mut __next>, Init: nil
//	let y = __next;       // Pat: <BindingPat y>, Init: <Path __next>
type Local struct {
	Span
	Pat  Pat
	Init Expr
}

// ExprStmt holds an expression used in statement position.
type ExprStmt struct {
	Span
	X Expr
}

func (*Local) isNode()    {}
func (*Local) isStmt()    {}
func (*ExprStmt) isNode() {}
func (*ExprStmt) isStmt() {}
