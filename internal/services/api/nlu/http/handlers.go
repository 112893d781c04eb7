// Package http provides http transport for nlu
package http

import (
	stdhttp "net/http"

	"oficina/internal/modkit/httpkit"
	"oficina/internal/services/api/nlu/domain"
	svc "oficina/internal/services/api/nlu/service"
)

// Register mounts nlu endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.TextInput](r, "/parse", h.parse)
	httpkit.PostJSON[domain.TextInput](r, "/respond", h.respond)
	httpkit.PostJSON[domain.TextInput](r, "/enrich", h.enrich)
}

type handlers struct{ svc svc.Service }

func (h *handlers) parse(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Parse(r.Context(), in)
}

func (h *handlers) respond(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Respond(r.Context(), in)
}

func (h *handlers) enrich(r *stdhttp.Request, in domain.TextInput) (any, error) {
	return h.svc.Enrich(r.Context(), in)
}
