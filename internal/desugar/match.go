package desugar

import (
	"github.com/sirkon/forsight/internal/hir"
)

// Matcher recognizes the canonical bounded-range loop expansion under a
// fixed identifier vocabulary.
type Matcher struct {
	sp Spellings
}

// NewMatcher returns a matcher over the given vocabulary.
func NewMatcher(sp Spellings) *Matcher {
	return &Matcher{sp: sp}
}

// Match reports whether root is the canonical expansion of a
// `for value in start..end { body }` loop and, if so, returns the
// environment of captured bindings. Failure is the ordinary outcome
// for most trees, there is no error channel here: any deviation from
// the expected shape means (nil, false) with nothing else observable.
//
// The guards run left to right mirroring the expansion structure. Once
// a node is interpreted under an assumed kind it is never reconsidered
// under another one.
func (m *Matcher) Match(root hir.Node) (*Environment, bool) {
	env := newEnvironment()

	// Temp-dropping wrapper around the whole construct.
	wrapper, ok := root.(*hir.DropTemps)
	if !ok {
		return nil, false
	}

	outer, ok := wrapper.X.(*hir.Match)
	if !ok {
		return nil, false
	}
	if len(outer.Arms) != 2 {
		return nil, false
	}

	// Head: into-iterator entry point applied to a two-field range
	// literal. Field contents stay unchecked, the shape is recognized
	// for any bounds.
	head, ok := outer.Subject.(*hir.Call)
	if !ok {
		return nil, false
	}
	if !m.pathIs(head.Fun, m.sp.IntoIter) {
		return nil, false
	}
	if len(head.Args) != 1 {
		return nil, false
	}
	rng, ok := head.Args[0].(*hir.StructLit)
	if !ok {
		return nil, false
	}
	if rng.Name != m.sp.Range || len(rng.Fields) != 2 {
		return nil, false
	}

	// The loop-control arm: a mutable binding with the compiler-chosen
	// spelling, wrapping the loop itself.
	ctrl, ok := outer.Arms[0].Pat.(*hir.BindingPat)
	if !ok {
		return nil, false
	}
	if !ctrl.Mut || ctrl.Name != m.sp.IterVar {
		return nil, false
	}
	if !env.bind(RoleIter, ctrl.Name) {
		return nil, false
	}

	loop, ok := outer.Arms[0].Body.(*hir.Loop)
	if !ok || loop.Body == nil {
		return nil, false
	}
	if len(loop.Body.Stmts) != 4 {
		return nil, false
	}
	if loop.Label != "" && !env.bind(RoleLabel, loop.Label) {
		return nil, false
	}

	if !m.matchNextDecl(loop.Body.Stmts[0], env) {
		return nil, false
	}
	if !m.matchAdvance(loop.Body.Stmts[1], loop.Label, env) {
		return nil, false
	}
	if !m.matchValueDecl(loop.Body.Stmts[2], env) {
		return nil, false
	}
	if !m.matchPayload(loop.Body.Stmts[3], env) {
		return nil, false
	}

	return env, true
}

// matchNextDecl expects `let mut __next;` — mutable, uninitialized,
// compiler-chosen spelling.
func (m *Matcher) matchNextDecl(s hir.Stmt, env *Environment) bool {
	decl, ok := s.(*hir.Local)
	if !ok || decl.Init != nil {
		return false
	}
	pat, ok := decl.Pat.(*hir.BindingPat)
	if !ok {
		return false
	}
	if !pat.Mut || pat.Name != m.sp.NextVar {
		return false
	}

	return env.bind(RoleNext, pat.Name)
}

// matchAdvance expects the advance-and-dispatch statement:
//
//	match Iterator::next(iter) {
//		Some(v) => __next = v,
//		None => break,
//	};
//
// The advance call argument must be spelled exactly as the control
// binding captured by the surrounding match arm.
func (m *Matcher) matchAdvance(s hir.Stmt, loopLabel string, env *Environment) bool {
	stmt, ok := s.(*hir.ExprStmt)
	if !ok {
		return false
	}
	dispatch, ok := stmt.X.(*hir.Match)
	if !ok {
		return false
	}
	if len(dispatch.Arms) != 2 {
		return false
	}

	advance, ok := dispatch.Subject.(*hir.Call)
	if !ok {
		return false
	}
	if !m.pathIs(advance.Fun, m.sp.Advance) {
		return false
	}
	if len(advance.Args) != 1 {
		return false
	}
	arg, ok := advance.Args[0].(*hir.Path)
	if !ok {
		return false
	}
	if !env.bind(RoleIter, arg.Name) {
		return false
	}

	// Arm 0: Some(v) => __next = v. The pattern's single element is
	// accepted as is, only the assignment target is pinned down.
	some, ok := dispatch.Arms[0].Pat.(*hir.EnumPat)
	if !ok {
		return false
	}
	if some.Name != m.sp.Some || len(some.Elems) != 1 {
		return false
	}
	store, ok := dispatch.Arms[0].Body.(*hir.Assign)
	if !ok {
		return false
	}
	target, ok := store.Lhs.(*hir.Path)
	if !ok {
		return false
	}
	if !env.bind(RoleNext, target.Name) {
		return false
	}

	// Arm 1: None => break, out of this very loop.
	none, ok := dispatch.Arms[1].Pat.(*hir.EnumPat)
	if !ok {
		return false
	}
	if none.Name != m.sp.None || len(none.Elems) != 0 {
		return false
	}
	brk, ok := dispatch.Arms[1].Body.(*hir.Break)
	if !ok {
		return false
	}
	if brk.Label != "" && brk.Label != loopLabel {
		return false
	}

	return true
}

// matchValueDecl expects `let y = __next;` — the user's per-iteration
// binding, immutable, initialized straight from the scratch variable.
func (m *Matcher) matchValueDecl(s hir.Stmt, env *Environment) bool {
	decl, ok := s.(*hir.Local)
	if !ok || decl.Init == nil {
		return false
	}
	pat, ok := decl.Pat.(*hir.BindingPat)
	if !ok || pat.Mut {
		return false
	}
	src, ok := decl.Init.(*hir.Path)
	if !ok {
		return false
	}
	if !env.bind(RoleNext, src.Name) {
		return false
	}

	return env.bind(RoleValue, pat.Name)
}

// matchPayload expects the trailing block holding `let z = y;` and the
// loop body's true payload as its tail expression.
func (m *Matcher) matchPayload(s hir.Stmt, env *Environment) bool {
	stmt, ok := s.(*hir.ExprStmt)
	if !ok {
		return false
	}
	block, ok := stmt.X.(*hir.Block)
	if !ok {
		return false
	}
	if len(block.Stmts) != 1 || block.Tail == nil {
		return false
	}

	decl, ok := block.Stmts[0].(*hir.Local)
	if !ok || decl.Init == nil {
		return false
	}
	pat, ok := decl.Pat.(*hir.BindingPat)
	if !ok || pat.Mut {
		return false
	}
	src, ok := decl.Init.(*hir.Path)
	if !ok {
		return false
	}
	if !env.bind(RoleValue, src.Name) {
		return false
	}
	if !env.bind(RoleInner, pat.Name) {
		return false
	}

	env.payload = block.Tail

	return true
}

func (m *Matcher) pathIs(e hir.Expr, name string) bool {
	p, ok := e.(*hir.Path)
	return ok && p.Name == name
}
