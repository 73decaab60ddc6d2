// Package report collects recognition facts and answers positional
// queries over them.
//
// The Reporter accumulates rule-coded records per analysis phase. The
// SpanIndex keeps recognized regions in a containment hierarchy so a
// consumer lint can ask whether a diagnostic position falls inside a
// recognized compiler-generated construct.
package report
