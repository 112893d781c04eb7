// Package domain defines the respond service types and ports
package domain

import (
	"oficina/internal/core/entity"
	"oficina/internal/core/intent"
	"oficina/internal/core/period"
)

// Kind classifies what the caller should do with a Directive
type Kind string

const (
	KindClarify  Kind = "clarify"
	KindAskSlot  Kind = "ask_slot"
	KindDispatch Kind = "dispatch"
	KindGreeting Kind = "greeting"
	KindHelp     Kind = "help"
	KindUnknown  Kind = "unknown"
)

// Action names the backend operation a dispatch directive should trigger
type Action string

const (
	ActionFetchPrice    Action = "fetch_price"
	ActionCreateBooking Action = "create_booking"
	ActionFindCustomer  Action = "find_customer"
	ActionCheckStock    Action = "check_stock"
	ActionFindWorkOrder Action = "find_work_order"
)

// Directive is the slot filling decision for one parsed query. Dispatch
// directives carry an Action; ask_slot directives list the missing slots
type Directive struct {
	Kind         Kind            `json:"kind"`
	Message      string          `json:"message,omitempty"`
	Suggestions  []string        `json:"suggestions,omitempty"`
	MissingSlots []string        `json:"missingSlots,omitempty"`
	Action       Action          `json:"action,omitempty"`
	Entities     entity.Entities `json:"entities,omitempty"`
}

// NLP is the understanding section of an enriched payload
type NLP struct {
	Intent     intent.Intent   `json:"intent"`
	Confidence float64         `json:"confidence"`
	Entities   entity.Entities `json:"entities"`
	Period     *period.Window  `json:"period,omitempty"`
}

// Contexto is the dispatch hint handed to downstream automation
type Contexto struct {
	Kind         Kind     `json:"kind"`
	Action       Action   `json:"action,omitempty"`
	MissingSlots []string `json:"missingSlots,omitempty"`
}

// Enriched is the full payload for downstream consumers: the original text,
// everything the pipeline understood about it and the routing context
type Enriched struct {
	OriginalText string   `json:"originalText"`
	NLP          NLP      `json:"nlp"`
	Contexto     Contexto `json:"contexto"`
}
