// Package gesture contains the interaction state machines that sit between
// raw pointer/press events and session mutations: press-and-hold repeat,
// swipe-to-delete, and drag-to-dismiss, plus the motion and scheduling
// primitives that drive them.
//
// Everything here runs on the single interaction loop. Controllers are built
// against an injected Scheduler so tests drive time explicitly; no real
// timers live in this package.
package gesture
