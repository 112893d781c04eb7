package service

import (
	"context"
	"testing"
	"time"

	"oficina/internal/core/entity"
	"oficina/internal/core/intent"
	"oficina/internal/core/langpack"
	"oficina/internal/platform/testkit"
	querydom "oficina/internal/services/query/domain"
	querysvc "oficina/internal/services/query/service"
	"oficina/internal/services/respond/domain"
)

func TestNew_Guards(t *testing.T) {
	p, err := langpack.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	testkit.MustPanic(t, func() { New(nil, querysvc.New(p)) })
	testkit.MustPanic(t, func() { New(p, nil) })
}

func mustResponder(t *testing.T) *Service {
	t.Helper()
	p, err := langpack.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	clock := func() time.Time { return time.Date(2025, 6, 11, 10, 0, 0, 0, time.Local) }
	parser := querysvc.NewWithClock(p, clock)
	return New(p, parser)
}

func TestRespond_LowConfidenceClarifies(t *testing.T) {
	s := mustResponder(t)

	q := querydom.ParsedQuery{Intent: intent.PriceInquiry, Confidence: 0.1}
	d := s.Respond(context.Background(), q)
	if d.Kind != domain.KindClarify {
		t.Fatalf("kind = %q, want clarify", d.Kind)
	}
	if d.Message == "" || len(d.Suggestions) == 0 {
		t.Fatalf("clarify directive missing message or suggestions: %+v", d)
	}
}

func TestRespond_PriceWithServiceDispatches(t *testing.T) {
	s := mustResponder(t)

	q := querydom.ParsedQuery{
		Intent:     intent.PriceInquiry,
		Confidence: 0.95,
		Entities:   entity.Entities{entity.Service: {"troca de óleo"}},
	}
	d := s.Respond(context.Background(), q)
	if d.Kind != domain.KindDispatch || d.Action != domain.ActionFetchPrice {
		t.Fatalf("directive = %+v", d)
	}
	if d.Entities.First(entity.Service) != "troca de óleo" {
		t.Fatalf("entities not carried: %+v", d.Entities)
	}
}

func TestRespond_PriceWithoutServiceAsksSlot(t *testing.T) {
	s := mustResponder(t)

	q := querydom.ParsedQuery{Intent: intent.PriceInquiry, Confidence: 0.95}
	d := s.Respond(context.Background(), q)
	if d.Kind != domain.KindAskSlot {
		t.Fatalf("kind = %q, want ask_slot", d.Kind)
	}
	if len(d.MissingSlots) != 1 || d.MissingSlots[0] != "service" {
		t.Fatalf("missing = %v", d.MissingSlots)
	}
	if len(d.Suggestions) == 0 {
		t.Fatalf("expected service suggestions")
	}
}

func TestRespond_SchedulingSlotGaps(t *testing.T) {
	s := mustResponder(t)

	q := querydom.ParsedQuery{
		Intent:     intent.Scheduling,
		Confidence: 0.9,
		Entities:   entity.Entities{entity.Service: {"revisão"}},
	}
	d := s.Respond(context.Background(), q)
	if d.Kind != domain.KindAskSlot {
		t.Fatalf("kind = %q", d.Kind)
	}
	if len(d.MissingSlots) != 2 {
		t.Fatalf("missing = %v, want date and time_of_day", d.MissingSlots)
	}
	if d.Message == "" {
		t.Fatalf("expected a composed ask message")
	}
}

func TestRespond_SchedulingCompleteDispatches(t *testing.T) {
	s := mustResponder(t)

	q := querydom.ParsedQuery{
		Intent:     intent.Scheduling,
		Confidence: 0.9,
		Entities: entity.Entities{
			entity.Service:      {"troca de óleo"},
			entity.RelativeDate: {"amanhã"},
			entity.TimeOfDay:    {"10h"},
		},
	}
	d := s.Respond(context.Background(), q)
	if d.Kind != domain.KindDispatch || d.Action != domain.ActionCreateBooking {
		t.Fatalf("directive = %+v", d)
	}
}

func TestRespond_CustomerLookup(t *testing.T) {
	s := mustResponder(t)

	with := querydom.ParsedQuery{
		Intent:     intent.CustomerLookup,
		Confidence: 0.8,
		Entities:   entity.Entities{entity.PersonName: {"João da Silva"}},
	}
	if d := s.Respond(context.Background(), with); d.Action != domain.ActionFindCustomer {
		t.Fatalf("directive = %+v", d)
	}

	without := querydom.ParsedQuery{Intent: intent.CustomerLookup, Confidence: 0.8}
	d := s.Respond(context.Background(), without)
	if d.Kind != domain.KindAskSlot || len(d.MissingSlots) != 1 {
		t.Fatalf("directive = %+v", d)
	}
}

func TestRespond_WorkOrderNeedsCaseNumber(t *testing.T) {
	s := mustResponder(t)

	with := querydom.ParsedQuery{
		Intent:     intent.WorkOrderStatus,
		Confidence: 0.8,
		Entities:   entity.Entities{entity.CaseNumber: {"1234"}},
	}
	if d := s.Respond(context.Background(), with); d.Action != domain.ActionFindWorkOrder {
		t.Fatalf("directive = %+v", d)
	}

	without := querydom.ParsedQuery{Intent: intent.WorkOrderStatus, Confidence: 0.8}
	if d := s.Respond(context.Background(), without); d.Kind != domain.KindAskSlot {
		t.Fatalf("directive = %+v", d)
	}
}

func TestRespond_GreetingHelpUnknown(t *testing.T) {
	s := mustResponder(t)

	cases := []struct {
		in   intent.Intent
		want domain.Kind
	}{
		{intent.Greeting, domain.KindGreeting},
		{intent.Help, domain.KindHelp},
		{intent.Unknown, domain.KindUnknown},
	}
	for _, c := range cases {
		d := s.Respond(context.Background(), querydom.ParsedQuery{Intent: c.in, Confidence: 0.5})
		if d.Kind != c.want {
			t.Fatalf("Respond(%q).Kind = %q, want %q", c.in, d.Kind, c.want)
		}
		if d.Message == "" {
			t.Fatalf("Respond(%q) missing message", c.in)
		}
	}
}

func TestEnrich_EndToEnd(t *testing.T) {
	s := mustResponder(t)

	out := s.Enrich(context.Background(), "quanto custa a troca de óleo?")
	if out.OriginalText != "quanto custa a troca de óleo?" {
		t.Fatalf("originalText = %q", out.OriginalText)
	}
	if out.NLP.Intent != intent.PriceInquiry {
		t.Fatalf("nlp intent = %q", out.NLP.Intent)
	}
	if out.Contexto.Kind != domain.KindDispatch || out.Contexto.Action != domain.ActionFetchPrice {
		t.Fatalf("contexto = %+v", out.Contexto)
	}
}

func TestEnrich_GreetingFlow(t *testing.T) {
	s := mustResponder(t)

	out := s.Enrich(context.Background(), "bom dia!")
	if out.NLP.Intent != intent.Greeting {
		t.Fatalf("intent = %q", out.NLP.Intent)
	}
	if out.Contexto.Kind != domain.KindGreeting {
		t.Fatalf("contexto kind = %q", out.Contexto.Kind)
	}
	if out.Contexto.Action != "" {
		t.Fatalf("greeting should not carry an action: %q", out.Contexto.Action)
	}
}
