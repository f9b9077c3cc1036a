package render

// Render produces terminal output from a caller-defined context.
// The context parameter is how outer decorators hand settings (theme,
// clamped dimensions) down to inner decorators and the leaf, instead
// of ambient globals.
type Render[C any] func(ctx C) string

// Decorator maps an inner render to an outer one. Decorators must be
// stateless. If a decorator or the leaf panics, the panic propagates
// unchanged to whoever invokes the composed render; no partial output
// is produced.
type Decorator[C any] func(inner Render[C]) Render[C]

// Compose nests chain around leaf with the first element outermost,
// so Compose([d1, d2], leaf) behaves as d1(d2(leaf)). An empty or nil
// chain returns leaf unchanged.
func Compose[C any](chain []Decorator[C], leaf Render[C]) Render[C] {
	out := leaf
	for i := len(chain) - 1; i >= 0; i-- {
		out = chain[i](out)
	}
	return out
}
