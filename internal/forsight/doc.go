// Package forsight ties the dump decoder, the shape recognizer and the
// reporting layer into a single analysis engine.
package forsight
