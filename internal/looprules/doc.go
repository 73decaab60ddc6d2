// Package looprules defines the canonical rule codes (FOR-series)
// reported by forsight. Each rule represents a distinct recognition or
// suppression fact produced by the analysis pipeline.
//
// Rule numbering scheme:
//
//	000–099  Recognition of compiler-generated loop shapes
//	100–149  Suppression decisions derived from recognitions
//	900–999  Input handling
package looprules
