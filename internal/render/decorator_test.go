package render

import (
	"strings"
	"testing"
)

type testCtx struct {
	Width int
	Tag   string
}

func TestComposeEmptyChainIsIdentity(t *testing.T) {
	leaf := Render[testCtx](func(ctx testCtx) string { return "leaf" })

	for _, chain := range [][]Decorator[testCtx]{nil, {}} {
		got := Compose(chain, leaf)(testCtx{})
		if got != "leaf" {
			t.Errorf("Compose with empty chain = %q, want %q", got, "leaf")
		}
	}
}

func TestComposeOrderingFirstIsOutermost(t *testing.T) {
	// Instrumented decorators record both wrap order (output nesting)
	// and invocation order at render time.
	var calls []string
	tag := func(name string) Decorator[testCtx] {
		return func(inner Render[testCtx]) Render[testCtx] {
			return func(ctx testCtx) string {
				calls = append(calls, name)
				return name + "(" + inner(ctx) + ")"
			}
		}
	}

	leaf := Render[testCtx](func(ctx testCtx) string {
		calls = append(calls, "leaf")
		return "content"
	})

	composed := Compose([]Decorator[testCtx]{tag("d1"), tag("d2"), tag("d3")}, leaf)
	got := composed(testCtx{})

	if got != "d1(d2(d3(content)))" {
		t.Errorf("Compose output = %q, want %q", got, "d1(d2(d3(content)))")
	}
	if strings.Join(calls, ",") != "d1,d2,d3,leaf" {
		t.Errorf("Call order = %v, want d1,d2,d3,leaf", calls)
	}
}

func TestComposeMatchesManualNesting(t *testing.T) {
	d1 := Decorator[testCtx](func(inner Render[testCtx]) Render[testCtx] {
		return func(ctx testCtx) string { return "theme[" + inner(ctx) + "]" }
	})
	d2 := Decorator[testCtx](func(inner Render[testCtx]) Render[testCtx] {
		return func(ctx testCtx) string { return "baseline[" + inner(ctx) + "]" }
	})
	leaf := Render[testCtx](func(ctx testCtx) string { return "content" })

	composed := Compose([]Decorator[testCtx]{d1, d2}, leaf)(testCtx{})
	manual := d1(d2(leaf))(testCtx{})

	if composed != manual {
		t.Errorf("Compose = %q, manual nesting = %q", composed, manual)
	}
	if composed != "theme[baseline[content]]" {
		t.Errorf("Compose = %q, want theme[baseline[content]]", composed)
	}
}

func TestComposeOuterContextReachesLeaf(t *testing.T) {
	// Outer decorators establish context the leaf consumes.
	setTag := Decorator[testCtx](func(inner Render[testCtx]) Render[testCtx] {
		return func(ctx testCtx) string {
			ctx.Tag = "dark"
			return inner(ctx)
		}
	})
	clampWidth := Decorator[testCtx](func(inner Render[testCtx]) Render[testCtx] {
		return func(ctx testCtx) string {
			if ctx.Width < 30 {
				ctx.Width = 30
			}
			return inner(ctx)
		}
	})
	leaf := Render[testCtx](func(ctx testCtx) string {
		if ctx.Tag != "dark" {
			t.Errorf("Leaf saw tag %q, want %q", ctx.Tag, "dark")
		}
		if ctx.Width != 30 {
			t.Errorf("Leaf saw width %d, want 30", ctx.Width)
		}
		return "ok"
	})

	got := Compose([]Decorator[testCtx]{setTag, clampWidth}, leaf)(testCtx{Width: 10})
	if got != "ok" {
		t.Errorf("Composed render = %q, want %q", got, "ok")
	}
}

func TestComposeDecoratorPanicPropagates(t *testing.T) {
	boom := Decorator[testCtx](func(inner Render[testCtx]) Render[testCtx] {
		return func(ctx testCtx) string {
			panic("decorator failure")
		}
	})
	var leafRan bool
	leaf := Render[testCtx](func(ctx testCtx) string {
		leafRan = true
		return "never"
	})

	composed := Compose([]Decorator[testCtx]{boom}, leaf)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic to propagate out of the composed render")
		}
		if r != "decorator failure" {
			t.Errorf("Panic value = %v, want 'decorator failure'", r)
		}
		if leafRan {
			t.Error("Leaf should not run after an outer decorator fails")
		}
	}()
	composed(testCtx{})
}

func TestComposeDoesNotMutateChain(t *testing.T) {
	wrap := func(name string) Decorator[testCtx] {
		return func(inner Render[testCtx]) Render[testCtx] {
			return func(ctx testCtx) string { return name + ":" + inner(ctx) }
		}
	}
	chain := []Decorator[testCtx]{wrap("a"), wrap("b")}
	leaf := Render[testCtx](func(ctx testCtx) string { return "x" })

	first := Compose(chain, leaf)(testCtx{})
	second := Compose(chain, leaf)(testCtx{})

	if first != second || first != "a:b:x" {
		t.Errorf("Repeated composition diverged: %q vs %q", first, second)
	}
}
