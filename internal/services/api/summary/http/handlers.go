// Package http provides http transport for summary
package http

import (
	stdhttp "net/http"
	"strconv"
	"strings"

	"gitpulse/internal/core/resolve"
	"gitpulse/internal/modkit/httpkit"
	"gitpulse/internal/services/api/summary/domain"
	svc "gitpulse/internal/services/api/summary/service"
)

// Register mounts summary endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Protected(r, func(pr httpkit.Router) {
		httpkit.PostJSON[domain.Request](pr, "/", h.generate)
	})
}

type handlers struct{ svc svc.Service }

func (h *handlers) generate(r *stdhttp.Request, in domain.Request) (any, error) {
	sess := httpkit.MustSession(r)

	// an explicit list in the body wins, CSV form second; otherwise fall
	// back to the request's resolvable installations
	if len(in.InstallationIDs) == 0 && in.InstallationIDsCSV != "" {
		in.InstallationIDs = splitCSV(in.InstallationIDsCSV)
	}
	if len(in.InstallationIDs) == 0 {
		in.InstallationIDs = resolve.Installations(resolve.MultiOptions{
			Request: r,
			Session: sess,
		})
	}
	return h.svc.Generate(r.Context(), in)
}

// splitCSV parses an already-validated comma_ints string
func splitCSV(raw string) []int64 {
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		if id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64); err == nil {
			out = append(out, id)
		}
	}
	return out
}
