// Package domain defines the query service types and ports
package domain

import (
	"time"

	"oficina/internal/core/entity"
	"oficina/internal/core/intent"
	"oficina/internal/core/period"
)

// ParsedQuery is the full understanding of one utterance: ranked intent,
// extracted entities in canonical form and the resolved period, if any
type ParsedQuery struct {
	Intent       intent.Intent        `json:"intent"`
	Confidence   float64              `json:"confidence"`
	Alternatives []intent.Alternative `json:"alternatives"`
	Entities     entity.Entities      `json:"entities"`
	Period       *period.Window       `json:"period,omitempty"`
	OriginalText string               `json:"originalText"`
	CreatedAt    time.Time            `json:"createdAt"`
}
