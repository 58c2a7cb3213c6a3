// Package score holds the scoring domain: legal score bounds, game
// completion rules, and the in-progress session state.
//
// Allowed here:
// - pure score arithmetic (bounds, deuce, completion predicates)
// - session state and its mutation rules
//
// Not allowed here:
// - gesture handling, animation, rendering, persistence
package score
