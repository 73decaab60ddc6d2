// Package hiryaml decodes lowered-tree dumps produced by an external
// front end into the hir node model.
//
// A dump is a YAML document of nested mappings, each carrying a `kind`
// discriminator plus kind-specific fields and an optional
// `span: [start, end]` pair. Decoding is strict: an unknown kind or a
// field of the wrong shape is an error, never a silently skipped node.
package hiryaml
