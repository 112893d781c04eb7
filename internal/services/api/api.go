// Package api provides the HTTP API for the application
package api

import (
	"oficina/internal/core/langpack"
	"oficina/internal/platform/config"
	"oficina/internal/platform/logger"
	phttp "oficina/internal/platform/net/http"

	"oficina/internal/modkit"
	"oficina/internal/modkit/httpkit"
	"oficina/internal/modkit/module"
	"oficina/internal/platform/net/middleware"

	metamod "oficina/internal/services/api/meta/module"
	nlumod "oficina/internal/services/api/nlu/module"
	querysvc "oficina/internal/services/query/service"
	respondsvc "oficina/internal/services/respond/service"
)

// Options are the API options
type Options struct {
	Config config.Conf
	Logger *logger.Logger
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// liveness probe outside the versioned prefix
	r.Use(middleware.Heartbeat("/health"))

	// one compiled pack shared by the whole pipeline
	pack, err := langpack.Load()
	if err != nil {
		logger.Get().Panic().Err(err).Msg("load language pack")
	}

	deps := modkit.Deps{
		Cfg:  opt.Config,
		Pack: pack,
	}

	parser := querysvc.New(pack)
	responder := respondsvc.New(pack, parser)

	mods := []module.Module{
		metamod.New(deps),
		nlumod.New(deps, modkit.WithPorts(nlumod.Ports{
			Parser:    parser,
			Responder: responder,
		})),
	}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStack(), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			m.MountRoutes(api)
		}
	})
}
