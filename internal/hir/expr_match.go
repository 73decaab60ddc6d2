package hir

// Match represents a lowered match over a subject expression. Arms are
// kept in source order; the front end guarantees at least one.
//
//	match Iterator::next(iter) { Some(v) => …, None => break }
type Match struct {
	Span
	Subject Expr
	Arms    []Arm
}

// Arm is a single `pattern => body` entry of a Match.
type Arm struct {
	Span
	Pat  Pat
	Body Expr
}

func (*Match) isNode() {}
func (*Match) isExpr() {}
