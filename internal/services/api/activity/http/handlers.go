// Package http provides http transport for activity
package http

import (
	stdhttp "net/http"
	"strconv"

	"gitpulse/internal/core/ghapp"
	"gitpulse/internal/core/resolve"
	"gitpulse/internal/modkit/httpkit"
	instdomain "gitpulse/internal/services/api/installations/domain"
	svc "gitpulse/internal/services/api/activity/service"
)

// Register mounts activity endpoints on the given router
func Register(r httpkit.Router, s svc.Service, lister instdomain.ListerPort) {
	h := &handlers{svc: s, lister: lister}

	httpkit.Protected(r, func(pr httpkit.Router) {
		httpkit.Get(pr, "/events", h.events)
		httpkit.Get(pr, "/repos", h.repos)
	})
}

type handlers struct {
	svc    svc.Service
	lister instdomain.ListerPort
}

// available fetches the session user's installations, treating upstream
// failures as an empty list so resolution still answers from the request
func (h *handlers) available(r *stdhttp.Request, sess *ghapp.Session) []ghapp.Installation {
	if h.lister == nil || sess == nil {
		return nil
	}
	list, err := h.lister.List(r.Context(), sess)
	if err != nil {
		return nil
	}
	return list
}

func (h *handlers) events(r *stdhttp.Request) (any, error) {
	sess := httpkit.MustSession(r)

	id, err := resolve.Require(resolve.Options{
		Request:           r,
		Session:           sess,
		Available:         h.available(r, sess),
		UseFirstAvailable: true,
	})
	if err != nil {
		return nil, err
	}

	page := atoiOr(r.URL.Query().Get("page"), 1)
	perPage := atoiOr(r.URL.Query().Get("per_page"), 30)
	return h.svc.Events(r.Context(), sess, id, page, perPage)
}

func (h *handlers) repos(r *stdhttp.Request) (any, error) {
	sess := httpkit.MustSession(r)

	ids := resolve.Installations(resolve.MultiOptions{
		Request:                  r,
		Session:                  sess,
		Available:                h.available(r, sess),
		UseFirstAvailable:        true,
		ValidateAgainstAvailable: true,
	})
	return h.svc.Repos(r.Context(), sess, ids)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
