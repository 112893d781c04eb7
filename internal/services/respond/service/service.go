// Package service implements the slot filling dispatcher
package service

import (
	"context"
	"fmt"
	"strings"

	"oficina/internal/core/entity"
	"oficina/internal/core/intent"
	"oficina/internal/core/langpack"
	"oficina/internal/platform/logger"
	querydom "oficina/internal/services/query/domain"
	"oficina/internal/services/respond/domain"
)

// ClarifyThreshold is the confidence below which the dispatcher asks the
// user to rephrase instead of acting
const ClarifyThreshold = 0.3

// Service implements domain.ResponderPort. Replies and suggestion lists come
// from the pack so message text stays data, not code
type Service struct {
	Pack   *langpack.Pack
	Parser querydom.ParserPort
}

// New constructs the respond service
func New(p *langpack.Pack, parser querydom.ParserPort) *Service {
	if p == nil {
		panic("respond service requires a non nil pack")
	}
	if parser == nil {
		panic("respond service requires a parser port")
	}
	return &Service{Pack: p, Parser: parser}
}

// Respond satisfies domain.ResponderPort
func (s *Service) Respond(ctx context.Context, q querydom.ParsedQuery) domain.Directive {
	d := s.decide(q)

	logger.C(ctx).Debug().
		Str("intent", string(q.Intent)).
		Float64("confidence", q.Confidence).
		Str("kind", string(d.Kind)).
		Str("action", string(d.Action)).
		Strs("missing", d.MissingSlots).
		Msg("directive decided")

	return d
}

func (s *Service) decide(q querydom.ParsedQuery) domain.Directive {
	if q.Confidence < ClarifyThreshold {
		return domain.Directive{
			Kind:        domain.KindClarify,
			Message:     s.Pack.Reply("clarify"),
			Suggestions: s.Pack.Suggest("generic"),
		}
	}

	switch q.Intent {
	case intent.PriceInquiry:
		if q.Entities.Has(entity.Service) {
			return s.dispatch(domain.ActionFetchPrice, q.Entities)
		}
		return domain.Directive{
			Kind:         domain.KindAskSlot,
			Message:      s.Pack.Reply("ask_service_price"),
			Suggestions:  s.Pack.Suggest("services"),
			MissingSlots: []string{"service"},
		}

	case intent.Scheduling:
		missing, display := s.schedulingGaps(q)
		if len(missing) == 0 {
			return s.dispatch(domain.ActionCreateBooking, q.Entities)
		}
		return domain.Directive{
			Kind:         domain.KindAskSlot,
			Message:      fmt.Sprintf(s.Pack.Reply("ask_scheduling"), strings.Join(display, ", ")),
			Suggestions:  s.Pack.Suggest("services"),
			MissingSlots: missing,
		}

	case intent.CustomerLookup:
		if q.Entities.Has(entity.PersonName) || q.Entities.Has(entity.TaxID) || q.Entities.Has(entity.Phone) {
			return s.dispatch(domain.ActionFindCustomer, q.Entities)
		}
		return domain.Directive{
			Kind:         domain.KindAskSlot,
			Message:      s.Pack.Reply("ask_customer"),
			Suggestions:  s.Pack.Suggest("customer"),
			MissingSlots: []string{"customer"},
		}

	case intent.StockInquiry:
		if q.Entities.Has(entity.Service) || q.Entities.Has(entity.VehicleModel) {
			return s.dispatch(domain.ActionCheckStock, q.Entities)
		}
		return domain.Directive{
			Kind:         domain.KindAskSlot,
			Message:      s.Pack.Reply("ask_stock"),
			MissingSlots: []string{"item"},
		}

	case intent.WorkOrderStatus:
		if q.Entities.Has(entity.CaseNumber) {
			return s.dispatch(domain.ActionFindWorkOrder, q.Entities)
		}
		return domain.Directive{
			Kind:         domain.KindAskSlot,
			Message:      s.Pack.Reply("ask_case_number"),
			MissingSlots: []string{"case_number"},
		}

	case intent.Greeting:
		return domain.Directive{
			Kind:        domain.KindGreeting,
			Message:     s.Pack.Reply("greeting"),
			Suggestions: s.Pack.Suggest("generic"),
		}

	case intent.Help:
		return domain.Directive{
			Kind:        domain.KindHelp,
			Message:     s.Pack.Reply("help"),
			Suggestions: s.Pack.Suggest("help"),
		}
	}

	return domain.Directive{
		Kind:        domain.KindUnknown,
		Message:     s.Pack.Reply("unknown"),
		Suggestions: s.Pack.Suggest("generic"),
	}
}

// schedulingGaps returns the missing booking slots as stable slot names plus
// their display names for the reply text
func (s *Service) schedulingGaps(q querydom.ParsedQuery) (missing, display []string) {
	if !q.Entities.Has(entity.Service) {
		missing = append(missing, "service")
		display = append(display, "o serviço")
	}
	if !q.Entities.Has(entity.RelativeDate) && q.Period == nil {
		missing = append(missing, "date")
		display = append(display, "a data")
	}
	if !q.Entities.Has(entity.TimeOfDay) {
		missing = append(missing, "time_of_day")
		display = append(display, "o horário")
	}
	return missing, display
}

func (s *Service) dispatch(a domain.Action, ents entity.Entities) domain.Directive {
	return domain.Directive{
		Kind:     domain.KindDispatch,
		Action:   a,
		Entities: ents.Clone(),
	}
}

// Enrich satisfies domain.ResponderPort
func (s *Service) Enrich(ctx context.Context, text string) domain.Enriched {
	q := s.Parser.Parse(ctx, text)
	d := s.decide(q)

	return domain.Enriched{
		OriginalText: q.OriginalText,
		NLP: domain.NLP{
			Intent:     q.Intent,
			Confidence: q.Confidence,
			Entities:   q.Entities,
			Period:     q.Period,
		},
		Contexto: domain.Contexto{
			Kind:         d.Kind,
			Action:       d.Action,
			MissingSlots: d.MissingSlots,
		},
	}
}
