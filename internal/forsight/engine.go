package forsight

import (
	"fmt"

	"github.com/sirkon/forsight/internal/desugar"
	"github.com/sirkon/forsight/internal/hir"
	"github.com/sirkon/forsight/internal/hiryaml"
	"github.com/sirkon/forsight/internal/looprules"
	"github.com/sirkon/forsight/internal/report"
)

// Engine recognizes compiler-expanded range loops in lowered trees and
// keeps the recognized regions queryable for a suppression consumer.
type Engine struct {
	matcher  *desugar.Matcher
	reporter *report.Reporter
	index    *report.SpanIndex
}

// New returns an engine over the given vocabulary, reporting into r.
func New(sp desugar.Spellings, r *report.Reporter) *Engine {
	return &Engine{
		matcher:  desugar.NewMatcher(sp),
		reporter: r,
		index:    report.NewSpanIndex(),
	}
}

// AnalyzeDump decodes one dump and analyzes its tree. Decode failures
// are recorded under the decode phase, they never reach the matcher.
func (e *Engine) AnalyzeDump(file string, data []byte) int {
	root, err := hiryaml.Decode(data)
	if err != nil {
		e.reporter.Phase(report.ReportDecode).Report(
			looprules.DumpSyntax(),
			err.Error(),
			file,
			hir.Span{},
		)
		return 0
	}

	return e.Analyze(file, root)
}

// Analyze walks the tree, applies the recognizer at every node and
// records each recognized expansion. It returns the recognition count.
//
// The walk does not stop below a recognized region: the payload of one
// expanded loop may contain another.
func (e *Engine) Analyze(file string, root hir.Node) int {
	rep := e.reporter.Phase(report.ReportMatch)

	var found int
	hir.Inspect(root, func(n hir.Node) bool {
		env, ok := e.matcher.Match(n)
		if !ok {
			return true
		}

		found++
		e.index.Add(env, n.NodeSpan())

		value, _ := env.Ident(desugar.RoleValue)
		rep.Report(
			looprules.RangeLoopRecognized(),
			fmt.Sprintf("compiler-expanded range loop binding %q", value),
			file,
			n.NodeSpan(),
		)

		return true
	})

	return found
}

// Suppress decides whether a consumer diagnostic at pos falls inside a
// recognized expansion. A positive decision is recorded under the
// suppress phase.
func (e *Engine) Suppress(file string, pos int) bool {
	env := e.index.GetByPos(pos)
	if env == nil {
		return false
	}

	value, _ := env.Ident(desugar.RoleValue)
	e.reporter.Phase(report.ReportSuppress).Report(
		looprules.CounterLintSuppressed(),
		fmt.Sprintf("diagnostic falls inside the expanded loop binding %q", value),
		file,
		hir.Span{Start: pos, End: pos},
	)

	return true
}

// Index exposes the recognized-region index.
func (e *Engine) Index() *report.SpanIndex { return e.index }
