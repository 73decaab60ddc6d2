package report

import (
	"strings"
	"sync"
	"testing"

	"github.com/sirkon/forsight/internal/hir"
	"github.com/sirkon/forsight/internal/looprules"
)

func TestReporter_ReportPhases(t *testing.T) {
	tests := []struct {
		name    string
		phase   ReportPhase
		rule    looprules.Rule
		message string
		file    string
		span    hir.Span
	}{
		{
			name:    "decode-phase dump syntax",
			phase:   ReportDecode,
			rule:    looprules.DumpSyntax(),
			message: "node mapping expected at line 3",
			file:    "broken.yaml",
			span:    hir.Span{},
		},
		{
			name:    "match-phase recognition",
			phase:   ReportMatch,
			rule:    looprules.RangeLoopRecognized(),
			message: `compiler-expanded range loop binding "y"`,
			file:    "loop.yaml",
			span:    hir.Span{Start: 0, End: 200},
		},
		{
			name:    "suppress-phase decision",
			phase:   ReportSuppress,
			rule:    looprules.CounterLintSuppressed(),
			message: `diagnostic falls inside the expanded loop binding "y"`,
			file:    "loop.yaml",
			span:    hir.Span{Start: 100, End: 100},
		},
	}

	var r Reporter

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phase := r.Phase(tt.phase)
			phase.Report(tt.rule, tt.message, tt.file, tt.span)
		})
	}

	reps := r.Reports()
	if len(reps) != len(tests) {
		t.Fatalf("expected %d reports, got %d", len(tests), len(reps))
	}

	for i, rep := range reps {
		want := tests[i]
		if rep.Phase != want.phase {
			t.Errorf("[%s] phase mismatch: got %v, want %v", want.name, rep.Phase, want.phase)
		}
		if rep.RuleCode != want.rule {
			t.Errorf("[%s] rule mismatch: got %v, want %v", want.name, rep.RuleCode, want.rule)
		}
		if rep.Message != want.message {
			t.Errorf("[%s] message mismatch: got %q, want %q", want.name, rep.Message, want.message)
		}
		if rep.File != want.file || rep.Span != want.span {
			t.Errorf("[%s] position mismatch: got %s:%v, want %s:%v",
				want.name, rep.File, rep.Span, want.file, want.span)
		}
	}

	var out strings.Builder
	r.Summary(&out)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != len(tests) {
		t.Fatalf("summary must hold %d lines, got %d", len(tests), len(lines))
	}
	if lines[1] != `[match] FOR000: RangeLoopRecognized: compiler-expanded range loop binding "y" (loop.yaml:0..200)` {
		t.Fatalf("unexpected summary line: %s", lines[1])
	}
}

func TestReporter_ConcurrencySafety(t *testing.T) {
	const n = 500
	var (
		r  Reporter
		wg sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Report(Report{
				Phase:    ReportMatch,
				RuleCode: looprules.RangeLoopRecognized(),
				Message:  "parallel add",
				File:     "loop.yaml",
				Span:     hir.Span{Start: i, End: i},
			})
		}(i)
	}
	wg.Wait()

	reps := r.Reports()
	if len(reps) != n {
		t.Fatalf("expected %d reports, got %d", n, len(reps))
	}
	reps[0].Message = "changed"
	reps2 := r.Reports()
	if reps2[0].Message == "changed" {
		t.Fatalf("Reports() returned shared slice, expected copy")
	}
}
