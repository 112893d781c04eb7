package domain

import (
	"context"

	querydom "oficina/internal/services/query/domain"
)

// ResponderPort is the external port for slot filling dispatch
type ResponderPort interface {
	// Respond decides the next step for an already parsed query
	Respond(ctx context.Context, q querydom.ParsedQuery) Directive

	// Enrich runs Parse and Respond and shapes the result for downstream
	// automation
	Enrich(ctx context.Context, text string) Enriched
}
