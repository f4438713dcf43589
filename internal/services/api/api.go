// Package api provides the HTTP API for the application
package api

import (
	gh "gitpulse/internal/adapters/github"
	"gitpulse/internal/platform/config"
	"gitpulse/internal/platform/logger"
	phttp "gitpulse/internal/platform/net/http"
	"gitpulse/internal/platform/net/middleware"

	"gitpulse/internal/modkit"
	"gitpulse/internal/modkit/httpkit"
	"gitpulse/internal/modkit/module"
	"gitpulse/internal/modkit/swaggerkit"

	activitymod "gitpulse/internal/services/api/activity/module"
	installationsmod "gitpulse/internal/services/api/installations/module"
	metamod "gitpulse/internal/services/api/meta/module"
	summarymod "gitpulse/internal/services/api/summary/module"
	sumdomain "gitpulse/internal/services/api/summary/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         *logger.Logger
	GitHub         *gh.Client
	Session        middleware.SessionPort
	Generator      sumdomain.GeneratorPort
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	// shared deps for modules
	deps := modkit.Deps{
		Cfg:    opt.Config,
		GitHub: opt.GitHub,
	}
	if opt.Logger != nil {
		deps.Log = *opt.Logger
	}

	// Construct installations first and hand its Lister to activity so
	// multi resolution can validate against the session's installations
	installations := installationsmod.New(deps)
	lister := module.MustPortsOf[installationsmod.Ports](installations).Lister

	activity := activitymod.New(
		deps,
		modkit.WithPorts(activitymod.Ports{Lister: lister}),
	)

	summary := summarymod.New(
		deps,
		modkit.WithPorts(summarymod.Ports{Generator: opt.Generator}),
	)

	mods := []module.Module{
		metamod.New(deps),
		installations,
		activity,
		summary,
	}

	// publish the mounted modules as doc tags so the served swagger JSON
	// reflects what this process actually exposes
	swaggerkit.Register(func(spec map[string]any) {
		tags := make([]any, 0, len(mods))
		for _, m := range mods {
			tags = append(tags, map[string]any{"name": m.Name()})
		}
		spec["tags"] = tags
	})

	// versioned API with a common middleware stack plus session parsing
	stack := append(httpkit.CommonStack(), httpkit.WithSession(opt.Session))

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		swaggerkit.Mount(r, opt.EnableSwagger)
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
	})
}
