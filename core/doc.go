// Package core contains app-wide contracts and state orchestration.
//
// Allowed here:
// - root model, screen routing, message contracts, key registry
// - shared chrome (header, status bar, footer) and styling
//
// Not allowed here:
// - scoring rules and session state (core/score)
// - gesture mechanics and motion (core/gesture)
// - concrete screen implementations (app)
package core
