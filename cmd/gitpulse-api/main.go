// @title         GitPulse API
// @version       0.1.0
// @description   GitHub App dashboard endpoints for installations and activity

package main

import (
	"context"
	"time"

	gh "gitpulse/internal/adapters/github"
	"gitpulse/internal/core/ghapp"
	"gitpulse/internal/modkit/httpkit"
	"gitpulse/internal/platform/config"
	"gitpulse/internal/platform/logger"
	phttp "gitpulse/internal/platform/net/http"

	"gitpulse/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	ghCfg := root.Prefix("GITHUB_") // upstream client lives under GITHUB_*

	// bring up logging early
	l := logger.Get()

	client := gh.NewClient(gh.Options{
		BaseURL:    ghCfg.MayString("API_URL", ""),
		UserAgent:  ghCfg.MayString("USER_AGENT", ""),
		Timeout:    time.Duration(ghCfg.MayInt("TIMEOUT_MS", 10000)) * time.Millisecond,
		MaxRetries: ghCfg.MayInt("MAX_RETRIES", 2),
	})

	// bearer tokens are GitHub OAuth user tokens; a session is the user
	// behind the token plus the token itself for upstream calls
	sessions := httpkit.NewPortFunc(func(token string) (*ghapp.Session, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		user, err := client.AuthenticatedUser(ctx, token)
		if err != nil {
			return nil, err
		}
		return &ghapp.Session{User: user, AccessToken: token}, nil
	})

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         apiCfg,
			Logger:         l,
			GitHub:         client,
			Session:        sessions,
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
