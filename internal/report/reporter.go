package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirkon/forsight/internal/hir"
	"github.com/sirkon/forsight/internal/looprules"
)

// Reporter collects and classifies facts discovered during analysis.
type Reporter struct {
	mu      sync.Mutex
	reports []Report
}

// Report represents a single record.
type Report struct {
	Phase    ReportPhase
	RuleCode looprules.Rule
	File     string
	Span     hir.Span
	Message  string
}

// ReportPhase marks the analysis stage where a record was produced.
type ReportPhase int

const (
	reportPhaseInvalid ReportPhase = iota
	ReportDecode                   // dump decoding phase
	ReportMatch                    // shape recognition phase
	ReportSuppress                 // consumer suppression phase
)

func (p ReportPhase) String() string {
	switch p {
	case ReportDecode:
		return "decode"
	case ReportMatch:
		return "match"
	case ReportSuppress:
		return "suppress"
	default:
		return fmt.Sprintf("unknown-phase(%d)", p)
	}
}

// ReporterPhase binds a Reporter to a fixed phase.
// It is used during an entire analysis pass to record facts without
// specifying the phase repeatedly.
type ReporterPhase struct {
	parent *Reporter
	phase  ReportPhase
}

// Phase returns a pointer to a phase-bound reporter that automatically
// sets the given phase for all records produced through it.
func (r *Reporter) Phase(p ReportPhase) *ReporterPhase {
	return &ReporterPhase{parent: r, phase: p}
}

// Report adds a new record to the reporter.
func (r *Reporter) Report(rep Report) {
	r.mu.Lock()
	r.reports = append(r.reports, rep)
	r.mu.Unlock()
}

// Report records a new fact under the bound phase.
func (rp *ReporterPhase) Report(rule looprules.Rule, message string, file string, span hir.Span) {
	rp.parent.Report(Report{
		Phase:    rp.phase,
		RuleCode: rule,
		File:     file,
		Span:     span,
		Message:  message,
	})
}

// Reports returns a snapshot of all collected records.
func (r *Reporter) Reports() []Report {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Report, len(r.reports))
	copy(out, r.reports)
	return out
}

// Summary writes all collected records in a compact, human-readable
// form.
func (r *Reporter) Summary(w io.Writer) {
	for _, rep := range r.Reports() {
		fmt.Fprintf(w, "[%s] %s: %s (%s:%d..%d)\n",
			rep.Phase,
			rep.RuleCode,
			rep.Message,
			rep.File,
			rep.Span.Start,
			rep.Span.End)
	}
}
