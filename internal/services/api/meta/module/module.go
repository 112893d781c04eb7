// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"net/http"
	"time"

	modkit "oficina/internal/modkit"
	"oficina/internal/modkit/httpkit"
	pstrings "oficina/internal/platform/strings"

	metahttp "oficina/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options.
// The shared rule pack comes in through deps
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	if deps.Pack == nil {
		panic("meta module: deps.Pack is required")
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		startedAt: time.Now(),
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		metahttp.Register(r, metahttp.Deps{
			ServiceName: "oficina-api",
			StartedAt:   m.startedAt,
			Pack:        deps.Pack,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(sr httpkit.Router) {
		for _, mw := range m.mws {
			sr.Use(mw)
		}
		m.register(m.subrouter(sr))
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return pstrings.MustString(m.name, "meta") }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return pstrings.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return nil }
