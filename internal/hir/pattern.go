package hir

// BindingPat introduces a named binding, optionally mutable.
//
//	mut iter // Name: "iter", Mut: true
type BindingPat struct {
	Span
	Name string
	Mut  bool
}

// EnumPat matches an enum variant by path with positional element
// patterns.
//
//	Some(v) // Name: "Some", Elems: [<BindingPat v>]
//	None    // Name: "None", Elems: nil
type EnumPat struct {
	Span
	Name  string
	Elems []Pat
}

// WildcardPat matches anything and binds nothing.
type WildcardPat struct {
	Span
}

func (*BindingPat) isNode()  {}
func (*BindingPat) isPat()   {}
func (*EnumPat) isNode()     {}
func (*EnumPat) isPat()      {}
func (*WildcardPat) isNode() {}
func (*WildcardPat) isPat()  {}
