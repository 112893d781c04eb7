package domain

import "context"

// ParserPort is the external port for query understanding
type ParserPort interface {
	// Parse runs the full pipeline over one utterance. It never errors;
	// unrecognized input degrades to the unknown intent
	Parse(ctx context.Context, text string) ParsedQuery
}
