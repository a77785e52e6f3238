package tracing

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// SpanHook opens one span per calculator layer. Nested layers become child
// spans of the layer that called them. Calculations run on a single
// goroutine, so a stack is enough to track nesting.
type SpanHook struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue

	mu    sync.Mutex
	ctx   context.Context
	stack []spanFrame
}

type spanFrame struct {
	name string
	ctx  context.Context
	span trace.Span
}

// NewSpanHook roots every span under ctx and tags it with attrs.
func NewSpanHook(ctx context.Context, tracer trace.Tracer, attrs ...attribute.KeyValue) *SpanHook {
	return &SpanHook{tracer: tracer, attrs: attrs, ctx: ctx}
}

func (h *SpanHook) Enter(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	parent := h.ctx
	if n := len(h.stack); n > 0 {
		parent = h.stack[n-1].ctx
	}
	ctx, span := h.tracer.Start(parent, name+"#calculate",
		trace.WithAttributes(append([]attribute.KeyValue{attribute.String("calculator.layer", name)}, h.attrs...)...),
	)
	h.stack = append(h.stack, spanFrame{name: name, ctx: ctx, span: span})
}

func (h *SpanHook) Exit(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	n := len(h.stack)
	if n == 0 || h.stack[n-1].name != name {
		return
	}
	h.stack[n-1].span.End()
	h.stack = h.stack[:n-1]
}

// SetRoot changes the context new top-level spans are parented to.
func (h *SpanHook) SetRoot(ctx context.Context, attrs ...attribute.KeyValue) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.ctx = ctx
	h.attrs = attrs
}

// Open returns how many spans are still open.
func (h *SpanHook) Open() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.stack)
}
