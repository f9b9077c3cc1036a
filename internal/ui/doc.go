// Package ui provides rendering for the lantern terminal UI.
//
// It contains the pure view functions that map a resolved fetch
// outcome to terminal output, the Lipgloss theme definitions, and the
// concrete decorators (theme, baseline, frame) that the composition
// root assembles into the render chain at startup. Rendering has no
// side effects and is separated from state management.
package ui
