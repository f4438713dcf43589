// Package http provides http transport for installations
package http

import (
	stdhttp "net/http"

	"gitpulse/internal/core/ghapp"
	"gitpulse/internal/core/resolve"
	"gitpulse/internal/modkit/httpkit"
	pnet "gitpulse/internal/platform/net"
	svc "gitpulse/internal/services/api/installations/service"

	"gitpulse/internal/services/api/installations/domain"
)

// Register mounts installation endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// diagnostics works for anonymous callers too; query and cookie
	// sources resolve without a session
	httpkit.Get(r, "/current", h.current)

	httpkit.Protected(r, func(pr httpkit.Router) {
		httpkit.Get(pr, "/", h.list)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) list(r *stdhttp.Request) (any, error) {
	sess := httpkit.MustSession(r)
	list, err := h.svc.List(r.Context(), sess)
	if err != nil {
		return nil, err
	}
	return domain.ListResponse{Installations: list, Total: len(list)}, nil
}

func (h *handlers) current(r *stdhttp.Request) (any, error) {
	sess := pnet.Session(r.Context())

	// available installations inform the fallback; resolution still
	// answers without them when the upstream call fails or there is no
	// session to call with
	var available []ghapp.Installation
	if sess != nil && sess.AccessToken != "" {
		if list, err := h.svc.List(r.Context(), sess); err == nil {
			available = list
		}
	}

	res := resolve.Installation(resolve.Options{
		Request:           r,
		Session:           sess,
		Available:         available,
		UseFirstAvailable: true,
	})
	return domain.CurrentResponse{
		Resolved:  res,
		Available: ghapp.IDs(available),
	}, nil
}
