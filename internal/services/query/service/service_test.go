package service

import (
	"context"
	"testing"
	"time"

	"oficina/internal/core/entity"
	"oficina/internal/core/intent"
	"oficina/internal/core/langpack"
	"oficina/internal/platform/testkit"
)

func TestNew_Guards(t *testing.T) {
	testkit.MustPanic(t, func() { New(nil) })
	p, err := langpack.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	testkit.MustNotPanic(t, func() { NewWithClock(p, nil) })
}

func mustService(t *testing.T) *Service {
	t.Helper()
	p, err := langpack.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	// wednesday anchor so weekday phrases resolve deterministically
	clock := func() time.Time { return time.Date(2025, 6, 11, 10, 0, 0, 0, time.Local) }
	return NewWithClock(p, clock)
}

func TestParse_PriceInquiry(t *testing.T) {
	s := mustService(t)

	q := s.Parse(context.Background(), "quanto custa a troca de óleo?")
	if q.Intent != intent.PriceInquiry {
		t.Fatalf("intent = %q", q.Intent)
	}
	if q.Confidence <= 0.3 {
		t.Fatalf("confidence = %v", q.Confidence)
	}
	if got := q.Entities.First(entity.Service); got != "troca de óleo" {
		t.Fatalf("service = %q", got)
	}
	if q.OriginalText != "quanto custa a troca de óleo?" {
		t.Fatalf("original text = %q", q.OriginalText)
	}
	if q.CreatedAt.IsZero() {
		t.Fatalf("createdAt not stamped")
	}
	if q.Period != nil {
		t.Fatalf("unexpected period: %+v", q.Period)
	}
}

func TestParse_SchedulingWithPeriod(t *testing.T) {
	s := mustService(t)

	q := s.Parse(context.Background(), "quero agendar troca de óleo amanhã às 10h")
	if q.Intent != intent.Scheduling {
		t.Fatalf("intent = %q", q.Intent)
	}
	if q.Period == nil {
		t.Fatalf("expected period for amanhã")
	}
	if q.Period.Start.Day() != 12 {
		t.Fatalf("period start = %v, want june 12", q.Period.Start)
	}
	if !q.Entities.Has(entity.RelativeDate) || !q.Entities.Has(entity.TimeOfDay) {
		t.Fatalf("entities = %v", q.Entities)
	}
}

func TestParse_NormalizesEntities(t *testing.T) {
	s := mustService(t)

	q := s.Parse(context.Background(), "buscar cliente com telefone (11) 99999-9999")
	if got := q.Entities.First(entity.Phone); got != "11999999999" {
		t.Fatalf("phone = %q, want digits only", got)
	}
}

func TestParse_UnknownDegradesGracefully(t *testing.T) {
	s := mustService(t)

	q := s.Parse(context.Background(), "xyzzy")
	if q.Intent != intent.Unknown || q.Confidence != 0 {
		t.Fatalf("got %+v", q)
	}
	if len(q.Entities) != 0 {
		t.Fatalf("entities = %v", q.Entities)
	}
}
