// Package route dispatches parsed queries to intent-specific handlers
// and wraps every outcome, including failures, in a uniform envelope.
package route

import (
	"context"
	"fmt"

	"github.com/shelfwise/shelfwise/internal/domain"
	"github.com/shelfwise/shelfwise/internal/domain/query"
	"github.com/shelfwise/shelfwise/internal/domain/query/intent"
	"github.com/shelfwise/shelfwise/internal/usecase/process"
)

// Handler executes the retrieval strategy for one intent.
type Handler func(ctx context.Context, pq query.Parsed) (any, error)

// Envelope is the uniform outcome of routing one query. Parsed is
// always populated; Result is set only on success, Err only on failure.
type Envelope struct {
	Success bool
	Parsed  query.Parsed
	Result  any
	Err     error
}

// Router parses raw queries and dispatches them by intent.
// All Register calls must complete before the first Route call;
// the handler table is read without synchronization afterwards.
type Router struct {
	processor *process.Processor
	handlers  map[intent.Intent]Handler
}

// New creates a Router with an empty handler table.
func New(processor *process.Processor) *Router {
	return &Router{
		processor: processor,
		handlers:  make(map[intent.Intent]Handler),
	}
}

// Register binds a handler to an intent, replacing any previous binding.
func (r *Router) Register(in intent.Intent, h Handler) {
	r.handlers[in] = h
}

// Route parses the raw query and invokes the handler registered for
// its intent. An unregistered intent or a handler error produces a
// failed envelope; Route itself never returns an error.
func (r *Router) Route(ctx context.Context, rawQuery string) Envelope {
	pq := r.processor.Process(rawQuery)

	h, ok := r.handlers[pq.Intent()]
	if !ok {
		return Envelope{
			Parsed: pq,
			Err:    fmt.Errorf("%w for intent %q", domain.ErrNoHandler, pq.Intent()),
		}
	}

	result, err := h(ctx, pq)
	if err != nil {
		return Envelope{
			Parsed: pq,
			Err:    fmt.Errorf("handle %q query: %w", pq.Intent(), err),
		}
	}

	return Envelope{Success: true, Parsed: pq, Result: result}
}
