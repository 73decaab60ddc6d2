package hir

// Node is the base interface implemented by all HIR node types.
// Each node denotes a single lowered construct produced by the front end
// (e.g., call, match, loop, binding, break).
type Node interface {
	isNode()
	NodeSpan() Span
}

// Expr marks nodes that represent lowered expressions,
// such as calls, matches, loops, blocks, etc.
type Expr interface {
	Node
	isExpr()
}

// Stmt marks nodes that represent lowered statements
// inside a block.
type Stmt interface {
	Node
	isStmt()
}

// Pat marks nodes that represent binding patterns,
// such as `mut iter`, `Some(x)` or `_`.
type Pat interface {
	Node
	isPat()
}

// Span locates a node within the dumped source as a [Start,End]
// byte-offset pair. Every node embeds one.
type Span struct {
	Start int
	End   int
}

// NodeSpan returns the span itself. Embedding Span into a node type
// satisfies the Node span accessor.
func (s Span) NodeSpan() Span { return s }
