package metrics

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
)

type Observer interface {
	ObserveRequest(method, operation string, status int, elapsed time.Duration)
}

type Metrics struct {
	observer Observer
}

func New(observer Observer) *Metrics {
	return &Metrics{observer: observer}
}

// Middleware labels requests by operation id so path parameters never blow up cardinality.
func (m *Metrics) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()
		next(ctx)

		operation := "unknown"
		if op := ctx.Operation(); op != nil {
			operation = op.OperationID
		}
		m.observer.ObserveRequest(ctx.Method(), operation, ctx.Status(), time.Since(start))
	}
}
