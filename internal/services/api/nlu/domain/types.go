// Package domain defines the nlu transport contracts
package domain

import (
	"context"

	querydom "oficina/internal/services/query/domain"
	responddom "oficina/internal/services/respond/domain"
)

// TextInput is the shared request body for every nlu endpoint
type TextInput struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// ServicePort is the contract the nlu handlers depend on
type ServicePort interface {
	Parse(ctx context.Context, in TextInput) (querydom.ParsedQuery, error)
	Respond(ctx context.Context, in TextInput) (responddom.Directive, error)
	Enrich(ctx context.Context, in TextInput) (responddom.Enriched, error)
}
