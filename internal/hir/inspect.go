package hir

// Inspect traverses the tree rooted at n depth-first, calling f for
// each non-nil node. Children of n are visited only when f(n) returns
// true.
func Inspect(n Node, f func(Node) bool) {
	if n == nil || !f(n) {
		return
	}

	switch v := n.(type) {
	case *Path, *Lit, *Break, *BindingPat, *WildcardPat:
		// Leaves.

	case *Call:
		Inspect(v.Fun, f)
		for _, arg := range v.Args {
			Inspect(arg, f)
		}

	case *StructLit:
		for _, field := range v.Fields {
			Inspect(field.Value, f)
		}

	case *Match:
		Inspect(v.Subject, f)
		for _, arm := range v.Arms {
			Inspect(arm.Pat, f)
			Inspect(arm.Body, f)
		}

	case *Loop:
		if v.Body != nil {
			Inspect(v.Body, f)
		}

	case *If:
		Inspect(v.Cond, f)
		if v.Then != nil {
			Inspect(v.Then, f)
		}
		if v.Else != nil {
			Inspect(v.Else, f)
		}

	case *Block:
		for _, s := range v.Stmts {
			Inspect(s, f)
		}
		if v.Tail != nil {
			Inspect(v.Tail, f)
		}

	case *DropTemps:
		Inspect(v.X, f)

	case *Assign:
		Inspect(v.Lhs, f)
		Inspect(v.Rhs, f)

	case *Local:
		Inspect(v.Pat, f)
		if v.Init != nil {
			Inspect(v.Init, f)
		}

	case *ExprStmt:
		Inspect(v.X, f)

	case *EnumPat:
		for _, elem := range v.Elems {
			Inspect(elem, f)
		}
	}
}
