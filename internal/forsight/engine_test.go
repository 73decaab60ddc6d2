package forsight

import (
	"strings"
	"testing"

	"github.com/sirkon/forsight/internal/desugar"
	"github.com/sirkon/forsight/internal/looprules"
	"github.com/sirkon/forsight/internal/report"
)

// canonicalDump is the lowered tree of
//
//	for y in 0..10 { let z = y; process(z) }
//
// wrapped into a surrounding block the way whole-function dumps are.
const canonicalDump = `
kind: block
span: [0, 300]
stmts:
  - kind: expr
    span: [0, 200]
    x:
      kind: droptemps
      span: [0, 200]
      expr:
        kind: match
        span: [0, 200]
        subject:
          kind: call
          span: [6, 40]
          fun: {kind: path, name: "IntoIterator::into_iter"}
          args:
            - kind: struct
              span: [30, 39]
              name: Range
              fields:
                - {name: start, value: {kind: lit, value: "0"}}
                - {name: end, value: {kind: lit, value: "10"}}
        arms:
          - pat: {kind: binding, name: iter, mut: true}
            body:
              kind: loop
              span: [45, 195]
              block:
                kind: block
                span: [50, 190]
                stmts:
                  - kind: local
                    pat: {kind: binding, name: __next, mut: true}
                  - kind: expr
                    x:
                      kind: match
                      span: [60, 120]
                      subject:
                        kind: call
                        fun: {kind: path, name: "Iterator::next"}
                        args: [{kind: path, name: iter}]
                      arms:
                        - pat: {kind: enum, name: Some, elems: [{kind: binding, name: val}]}
                          body:
                            kind: assign
                            lhs: {kind: path, name: __next}
                            rhs: {kind: path, name: val}
                        - pat: {kind: enum, name: None}
                          body: {kind: break}
                  - kind: local
                    pat: {kind: binding, name: y}
                    init: {kind: path, name: __next}
                  - kind: expr
                    x:
                      kind: block
                      span: [130, 188]
                      stmts:
                        - kind: local
                          pat: {kind: binding, name: z}
                          init: {kind: path, name: y}
                      tail:
                        kind: call
                        fun: {kind: path, name: process}
                        args: [{kind: path, name: z}]
          - pat: {kind: wildcard}
            body: {kind: block}
  - kind: expr
    span: [210, 290]
    x:
      kind: call
      span: [210, 290]
      fun: {kind: path, name: log}
      args: [{kind: lit, value: "done"}]
`

func TestEngineAnalyzeDump(t *testing.T) {
	var rep report.Reporter
	eng := New(desugar.DefaultSpellings(), &rep)

	if got := eng.AnalyzeDump("loop.yaml", []byte(canonicalDump)); got != 1 {
		t.Fatalf("expected exactly 1 recognition, got %d", got)
	}

	reps := rep.Reports()
	if len(reps) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reps))
	}
	if reps[0].Phase != report.ReportMatch {
		t.Errorf("phase = %v, want %v", reps[0].Phase, report.ReportMatch)
	}
	if reps[0].RuleCode != looprules.RangeLoopRecognized() {
		t.Errorf("rule = %v, want %v", reps[0].RuleCode, looprules.RangeLoopRecognized())
	}
	if reps[0].Span.Start != 0 || reps[0].Span.End != 200 {
		t.Errorf("span = %v, want 0..200", reps[0].Span)
	}
	if !strings.Contains(reps[0].Message, `"y"`) {
		t.Errorf("message must name the value binding, got %q", reps[0].Message)
	}

	// Suppression inside and outside the recognized region.
	if !eng.Suppress("loop.yaml", 100) {
		t.Error("position 100 must be suppressed")
	}
	if eng.Suppress("loop.yaml", 250) {
		t.Error("position 250 must not be suppressed")
	}

	reps = rep.Reports()
	if len(reps) != 2 {
		t.Fatalf("expected 2 reports after suppression, got %d", len(reps))
	}
	if reps[1].Phase != report.ReportSuppress {
		t.Errorf("phase = %v, want %v", reps[1].Phase, report.ReportSuppress)
	}
	if reps[1].RuleCode != looprules.CounterLintSuppressed() {
		t.Errorf("rule = %v, want %v", reps[1].RuleCode, looprules.CounterLintSuppressed())
	}
}

func TestEngineAnalyzeDumpBroken(t *testing.T) {
	var rep report.Reporter
	eng := New(desugar.DefaultSpellings(), &rep)

	if got := eng.AnalyzeDump("broken.yaml", []byte("just a scalar")); got != 0 {
		t.Fatalf("expected no recognitions, got %d", got)
	}

	reps := rep.Reports()
	if len(reps) != 1 {
		t.Fatalf("expected 1 report, got %d", len(reps))
	}
	if reps[0].Phase != report.ReportDecode {
		t.Errorf("phase = %v, want %v", reps[0].Phase, report.ReportDecode)
	}
	if reps[0].RuleCode != looprules.DumpSyntax() {
		t.Errorf("rule = %v, want %v", reps[0].RuleCode, looprules.DumpSyntax())
	}
}

func TestEngineForeignTree(t *testing.T) {
	const dump = `
kind: block
stmts:
  - kind: expr
    x:
      kind: call
      fun: {kind: path, name: process}
      args: []
`

	var rep report.Reporter
	eng := New(desugar.DefaultSpellings(), &rep)

	if got := eng.AnalyzeDump("plain.yaml", []byte(dump)); got != 0 {
		t.Fatalf("expected no recognitions, got %d", got)
	}
	if len(rep.Reports()) != 0 {
		t.Fatal("foreign trees must produce no reports")
	}
}
