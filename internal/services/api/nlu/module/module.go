// Package module wires nlu into the API using modkit
package module

import (
	"net/http"

	modkit "oficina/internal/modkit"
	"oficina/internal/modkit/httpkit"
	pstrings "oficina/internal/platform/strings"
	nluhttp "oficina/internal/services/api/nlu/http"
	nlusvc "oficina/internal/services/api/nlu/service"
	querydom "oficina/internal/services/query/domain"
	responddom "oficina/internal/services/respond/domain"
)

// Ports exposed by the nlu module
type Ports struct {
	Parser    querydom.ParserPort
	Responder responddom.ResponderPort
}

// Module implements the modkit.Module interface
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws   []func(http.Handler) http.Handler
	ports any

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc nlusvc.Service
}

// New constructs an nlu module with the provided dependencies and options.
// The parser and responder ports are required wiring
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("nlu"), modkit.WithPrefix("/nlu")}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("nlu module: expected WithPorts(nlu/module.Ports)")
	}
	if ports.Parser == nil || ports.Responder == nil {
		panic("nlu module: Ports missing Parser or Responder")
	}

	svc := nlusvc.New(ports.Parser, ports.Responder)

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = ports

	external := b.Register
	m.register = func(r httpkit.Router) {
		nluhttp.Register(r, m.svc)
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
func (m *Module) Name() string { return pstrings.MustString(m.name, "nlu") }

// Prefix returns the mount prefix
func (m *Module) Prefix() string { return pstrings.MustPrefix(m.prefix) }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
