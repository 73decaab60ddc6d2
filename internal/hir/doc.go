// Package hir defines structural types used to describe lowered
// (desugared) source trees as they arrive from an external front end.
//
// The entities in this package provide a consistent vocabulary for
// representing lowered constructs—expressions, statements, patterns—
// within concrete source spans. Higher-level recognizers use these
// definitions to locate compiler-generated shapes during analysis.
package hir
