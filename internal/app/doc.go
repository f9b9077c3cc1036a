// Package app provides the main Bubble Tea application model for
// lantern.
//
// It manages the UI state machine, handles user input, and holds the
// issue-list and issue-detail fetch snapshots that the render core
// resolves into views. The main type is Model, which implements the
// Bubble Tea interface (Init, Update, View). New is the composition
// root where the render decorator chain is assembled.
package app
