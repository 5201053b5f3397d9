package trace

import "context"

type tracerKey struct{}

type parentKey struct{}

// FromContext returns the tracer tjc attached to ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx != nil {
		if t, ok := ctx.Value(tracerKey{}).(Tracer); ok {
			return t
		}
	}
	return Nop
}

// WithTracer returns ctx carrying t. A nil t stores Nop so FromContext
// never hands out nil.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	if t == nil {
		t = Nop
	}
	return context.WithValue(ctx, tracerKey{}, t)
}

// WithParent records the span that passes started under ctx nest in.
// CompileDir sets it to each file's span.
func WithParent(ctx context.Context, spanID uint64) context.Context {
	return context.WithValue(ctx, parentKey{}, spanID)
}

// Parent returns the span ID set by WithParent, or 0 for a root span.
func Parent(ctx context.Context) uint64 {
	if ctx == nil {
		return 0
	}
	id, _ := ctx.Value(parentKey{}).(uint64)
	return id
}
