// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"oficina/internal/core/langpack"
	"oficina/internal/core/version"
	"oficina/internal/modkit/httpkit"
	pstrings "oficina/internal/platform/strings"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Pack        *langpack.Pack
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/health", h.health)
	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
	httpkit.Get(r, "/rulepack", h.rulepack)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"`
	Started string `json:"started"`
	Uptime  int64  `json:"uptime"`
}

// RulepackResponse reports the loaded rule pack and its shape
type RulepackResponse struct {
	Version     int     `json:"version"`
	Language    *string `json:"language,omitempty"`
	Domain      *string `json:"domain,omitempty"`
	Intents     int     `json:"intents"`
	EntityRules int     `json:"entity_rules"`
}

func (h *handlers) health(_ *http.Request) (any, error) {
	return HealthResponse{
		OK:      true,
		Service: h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	}, nil
}

func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

func (h *handlers) service(_ *http.Request) (any, error) {
	uptime := time.Since(h.deps.StartedAt)
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(uptime / time.Second),
	}, nil
}

func (h *handlers) rulepack(_ *http.Request) (any, error) {
	p := h.deps.Pack
	return RulepackResponse{
		Version:     p.Version,
		Language:    pstrings.Ptr(pstrings.EmptyToNil(p.Meta["language"])),
		Domain:      pstrings.Ptr(pstrings.EmptyToNil(p.Meta["domain"])),
		Intents:     len(p.Intents),
		EntityRules: len(p.Rules),
	}, nil
}
