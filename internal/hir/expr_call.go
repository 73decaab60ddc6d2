package hir

// Path represents a possibly qualified reference to a declared entity,
// e.g. `iter`, `Some` or `IntoIterator::into_iter`. The front end keeps
// the spelling verbatim, segments joined with "::".
//
//	IntoIterator::into_iter // Name: "IntoIterator::into_iter"
type Path struct {
	Span
	Name string
}

// Call represents application of a callee to positional arguments.
//
//	Iterator::next(iter) // Fun: <Path>, Args: [<Path>]
type Call struct {
	Span
	Fun  Expr
	Args []Expr
}

// StructLit represents a struct literal with named field initializers.
//
//	Range { start: 0, end: 10 } // Name: "Range", Fields: 2 entries
type StructLit struct {
	Span
	Name   string
	Fields []FieldInit
}

// FieldInit is a single `name: value` entry of a StructLit.
type FieldInit struct {
	Span
	Name  string
	Value Expr
}

// Lit represents a literal value kept as its source text.
type Lit struct {
	Span
	Value string
}

func (*Path) isNode()      {}
func (*Path) isExpr()      {}
func (*Call) isNode()      {}
func (*Call) isExpr()      {}
func (*StructLit) isNode() {}
func (*StructLit) isExpr() {}
func (*Lit) isNode()       {}
func (*Lit) isExpr()       {}
