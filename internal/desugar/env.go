package desugar

import (
	"sort"

	"github.com/sirkon/forsight/internal/hir"
)

// Role names a semantically meaningful capture produced by a successful
// recognition.
type Role string

const (
	// RoleIter is the loop-control binding introduced by the expansion.
	RoleIter Role = "iter"

	// RoleNext is the per-step scratch binding the advance result is
	// assigned into.
	RoleNext Role = "next"

	// RoleValue is the user's per-iteration binding.
	RoleValue Role = "value"

	// RoleInner is the user's immediate rebinding of the value inside
	// the payload block.
	RoleInner Role = "inner"

	// RoleLabel is the loop label, captured only for labeled loops.
	RoleLabel Role = "label"
)

// Environment accumulates captured identifiers for a single
// recognition attempt. It is append-only: once a role is bound,
// binding it again only re-validates equality with the prior capture.
// A failed attempt drops the whole environment, so callers never
// observe partial bindings.
type Environment struct {
	idents  map[Role]string
	payload hir.Expr
}

func newEnvironment() *Environment {
	return &Environment{idents: make(map[Role]string)}
}

// bind records ident under role. For an already bound role it reports
// whether ident agrees with the existing capture and never overwrites.
func (e *Environment) bind(role Role, ident string) bool {
	if prev, ok := e.idents[role]; ok {
		return prev == ident
	}
	e.idents[role] = ident

	return true
}

// Ident returns the identifier captured for role.
func (e *Environment) Ident(role Role) (string, bool) {
	v, ok := e.idents[role]
	return v, ok
}

// Payload returns the loop body's true payload expression.
func (e *Environment) Payload() hir.Expr { return e.payload }

// Roles returns all bound roles in a stable order.
func (e *Environment) Roles() []Role {
	out := make([]Role, 0, len(e.idents))
	for role := range e.idents {
		out = append(out, role)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
