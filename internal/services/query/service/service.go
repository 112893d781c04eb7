// Package service implements the query understanding pipeline
package service

import (
	"context"
	"time"

	"oficina/internal/core/entity"
	"oficina/internal/core/intent"
	"oficina/internal/core/langpack"
	"oficina/internal/core/period"
	"oficina/internal/platform/logger"
	pstrings "oficina/internal/platform/strings"
	"oficina/internal/services/query/domain"
)

// Service implements domain.ParserPort by composing the classifier, the
// entity extractor and the period resolver over one shared pack
type Service struct {
	Classifier *intent.Classifier
	Extractor  *entity.Extractor
	Normalizer *entity.Normalizer
	Periods    *period.Resolver

	clock func() time.Time
}

// New constructs the query service over a compiled pack
func New(p *langpack.Pack) *Service {
	return NewWithClock(p, time.Now)
}

// NewWithClock pins the pipeline clock, for tests and replay
func NewWithClock(p *langpack.Pack, now func() time.Time) *Service {
	if p == nil {
		panic("query service requires a non nil pack")
	}
	if now == nil {
		now = time.Now
	}
	return &Service{
		Classifier: intent.New(p),
		Extractor:  entity.NewExtractor(p),
		Normalizer: entity.NewNormalizer(),
		Periods:    period.NewWithClock(now),
		clock:      now,
	}
}

// Parse satisfies domain.ParserPort
func (s *Service) Parse(ctx context.Context, text string) domain.ParsedQuery {
	res := s.Classifier.Classify(text)
	ents := s.Normalizer.Normalize(s.Extractor.Extract(text))

	var win *period.Window
	if w, ok := s.Periods.Resolve(text); ok {
		win = &w
	}

	// log counts per type, never raw values
	ev := logger.C(ctx).Debug().
		Str("preview", pstrings.Truncate(text, 64)).
		Str("intent", string(res.Intent)).
		Float64("confidence", res.Confidence)
	for t, vs := range ents {
		ev = ev.Int("entities_"+string(t), len(vs))
	}
	ev.Msg("query parsed")

	return domain.ParsedQuery{
		Intent:       res.Intent,
		Confidence:   res.Confidence,
		Alternatives: res.Alternatives,
		Entities:     ents,
		Period:       win,
		OriginalText: text,
		CreatedAt:    s.clock().UTC(),
	}
}
