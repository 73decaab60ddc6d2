package report

import (
	"github.com/sirkon/rbtree"

	"github.com/sirkon/forsight/internal/desugar"
	"github.com/sirkon/forsight/internal/hir"
)

// NewSpanIndex returns an empty index of recognized regions.
func NewSpanIndex() *SpanIndex {
	return &SpanIndex{tree: rbtree.New[*indexedSpan]()}
}

// SpanIndex holds recognized-loop environments keyed by their source
// spans. It serves positional queries for the suppression consumer.
type SpanIndex struct {
	tree *rbtree.Tree[*indexedSpan]
}

// GetByPos returns the environment of the most specific (innermost)
// recognized region covering pos.
func (x *SpanIndex) GetByPos(pos int) *desugar.Environment {
	probe := &indexedSpan{start: pos, end: pos}
	res := x.tree.Search(probe)
	if res == nil {
		return nil
	}
	return descendSearch(res, pos)
}

// Covers reports whether pos falls inside any recognized region.
func (x *SpanIndex) Covers(pos int) bool {
	return x.GetByPos(pos) != nil
}

// Add registers an environment under its source span.
// The RB-tree orders only disjoint spans; any overlap is reported back
// via InsertReturn, and we resolve it into a strict containment
// hierarchy. All ordering/balancing is handled by the underlying
// rbtree.
func (x *SpanIndex) Add(env *desugar.Environment, s hir.Span) {
	span := &indexedSpan{start: s.Start, end: s.End, env: env}
	attachInto(x.tree, span)
}

// indexedSpan stores a [start,end] span for an environment and, if
// needed, a nested RB-tree for child spans fully contained in this
// span.
type indexedSpan struct {
	start int
	end   int

	env      *desugar.Environment
	children *rbtree.Tree[*indexedSpan]
}

// Cmp defines ordering for the RB-tree as "disjoint by position".
// - return -1 if this span is strictly before other (ends before other's start)
// - return  1 if this span is strictly after  other (starts after other's end)
// - return  0 if spans overlap in any way (including containment).
//
// NOTE: We rely on an *invariant of the input*: any two overlapping
// spans must be in a strict containment relationship (no partial
// overlaps). Recognized regions are subtree spans of a single tree, so
// the invariant holds by construction. The RB-tree then gives us a
// handle (`InsertReturn`) to the overlapping node so we can perform
// the containment-structure fix-up ourselves.
func (n *indexedSpan) Cmp(other *indexedSpan) int {
	if n.end < other.start { // strictly before
		return -1
	}
	if n.start > other.end { // strictly after
		return 1
	}
	return 0 // overlapping (containment or equal boundaries)
}

func contains(a, b *indexedSpan) bool {
	return a.start <= b.start && a.end >= b.end
}

// attachInto inserts span s into RB-tree t, using the following containment rules:
//   - If t has no overlapping node, s is inserted as a sibling in t.
//   - If an overlapping node r exists and s contains r, mutate r in-place to become s
//     (so the pointer already present in the tree now represents s), and then re-attach
//     the old r as a child of the new s. This avoids needing a "Replace" operation.
//   - If r contains s, recursively attach s into r.children.
//
// Under the no-partial-overlap invariant, these are the only cases we must handle.
func attachInto(t *rbtree.Tree[*indexedSpan], s *indexedSpan) {
	r := t.InsertReturn(s)
	if r == s {
		// Disjoint: brand new top-level entry.
		return
	}

	// Overlap found. Decide by containment.
	if contains(s, r) {
		// s — superspan, overwrite r in-place.
		old := *r
		*r = *s

		if r.children == nil {
			r.children = rbtree.New[*indexedSpan]()
		}
		attachInto(r.children, &old)
		return
	}

	if contains(r, s) {
		// New span is a subspan of the existing node `r` — descend.
		if r.children == nil {
			r.children = rbtree.New[*indexedSpan]()
		}

		n := *s
		*s = *r

		attachInto(s.children, &n)
		return
	}

	panic("attachInto: partial-overlap spans are not supported")
}

func descendSearch(n *indexedSpan, pos int) *desugar.Environment {
	if n == nil {
		return nil
	}
	if n.children == nil {
		return n.env
	}
	probe := &indexedSpan{start: pos, end: pos}
	child := n.children.Search(probe)
	if child == nil {
		return n.env
	}
	if v := descendSearch(child, pos); v != nil {
		return v
	}
	return n.env
}
