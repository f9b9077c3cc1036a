package ui

import (
	"github.com/lanternhq/lantern/internal/render"
)

// Context carries the presentation settings a composed render reads.
// Outer decorators establish fields that inner renders consume.
type Context struct {
	Width  int
	Height int
	Theme  Theme
}

// View is the unit of composition for lantern screens.
type View = render.Render[Context]

// MinWidth is the absolute minimum terminal width we try to support.
const MinWidth = 30

// MinHeight is the absolute minimum terminal height we try to support.
const MinHeight = 8

// WithTheme establishes the theme in the context before the inner
// render runs.
func WithTheme(t Theme) render.Decorator[Context] {
	return func(inner View) View {
		return func(ctx Context) string {
			ctx.Theme = t
			return inner(ctx)
		}
	}
}

// WithBaseline clamps the context to the minimum supported terminal
// size so inner renders never see degenerate dimensions.
func WithBaseline() render.Decorator[Context] {
	return func(inner View) View {
		return func(ctx Context) string {
			if ctx.Width < MinWidth {
				ctx.Width = MinWidth
			}
			if ctx.Height < MinHeight {
				ctx.Height = MinHeight
			}
			return inner(ctx)
		}
	}
}

// WithFrame wraps the inner output in the theme's bordered box.
func WithFrame() render.Decorator[Context] {
	return func(inner View) View {
		return func(ctx Context) string {
			content := inner(ctx)
			boxWidth := ctx.Width - 2
			if boxWidth < MinWidth-2 {
				boxWidth = MinWidth - 2
			}
			return ctx.Theme.Box.Width(boxWidth).Render(content)
		}
	}
}

// Chain assembles the standard decorator stack: theme outermost so
// everything inside sees it, then the size baseline, then the frame.
// The composition root calls this once at startup and reuses the
// result for every frame.
func Chain(t Theme, frame bool) []render.Decorator[Context] {
	chain := []render.Decorator[Context]{WithTheme(t), WithBaseline()}
	if frame {
		chain = append(chain, WithFrame())
	}
	return chain
}
