// Package swaggerkit mounts the Swagger UI and the generated JSON document
// for the dashboard API under /api/docs
package swaggerkit

import (
	"net/http"

	phttp "gitpulse/internal/platform/net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

const (
	docsPrefix  = "/api/docs"
	docJSONPath = docsPrefix + "/doc.json"
)

// Mount wires the docs routes when enabled; a bare /api/docs redirects into
// the UI so browsers land on the index
func Mount(r phttp.Router, enabled bool) {
	if !enabled {
		return
	}
	r.Get(docsPrefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, docsPrefix+"/", http.StatusPermanentRedirect)
	})
	r.Get(docJSONPath, serveDocJSON())
	r.Handle(docsPrefix+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName("api"),
		httpSwagger.URL(docJSONPath),
	))
}
