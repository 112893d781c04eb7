// Package service contains nlu workflows
package service

import (
	"context"

	"oficina/internal/services/api/nlu/domain"
	querydom "oficina/internal/services/query/domain"
	responddom "oficina/internal/services/respond/domain"
)

// Service defines the service contract for nlu
type Service interface{ domain.ServicePort }

// Svc implements the Service interface over the query and respond ports
type Svc struct {
	Parser    querydom.ParserPort
	Responder responddom.ResponderPort
}

// New creates a new nlu service
func New(parser querydom.ParserPort, responder responddom.ResponderPort) *Svc {
	if parser == nil {
		panic("nlu.Service requires a non nil ParserPort")
	}
	if responder == nil {
		panic("nlu.Service requires a non nil ResponderPort")
	}
	return &Svc{Parser: parser, Responder: responder}
}

// Parse runs the understanding pipeline over one utterance
func (s *Svc) Parse(ctx context.Context, in domain.TextInput) (querydom.ParsedQuery, error) {
	return s.Parser.Parse(ctx, in.Text), nil
}

// Respond parses the utterance and decides the next step
func (s *Svc) Respond(ctx context.Context, in domain.TextInput) (responddom.Directive, error) {
	q := s.Parser.Parse(ctx, in.Text)
	return s.Responder.Respond(ctx, q), nil
}

// Enrich shapes the full understanding for downstream automation
func (s *Svc) Enrich(ctx context.Context, in domain.TextInput) (responddom.Enriched, error) {
	return s.Responder.Enrich(ctx, in.Text), nil
}
