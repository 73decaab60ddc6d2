// Package desugar recognizes the canonical expansion a front end
// produces for bounded-range for loops.
//
// The recognizer is a single ordered guard chain over the lowered tree:
// every structural assumption (node kind, child count, identifier
// spelling, binding mutability) is asserted left to right, a captured
// binding environment is threaded through the chain, and the first
// failed guard aborts the whole attempt. There is no backtracking and
// no partial result.
package desugar
