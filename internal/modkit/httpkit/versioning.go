package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI scopes mount under /api/{version}; the middleware applies to that
// scope only, so /healthz and docs outside it stay unwrapped. A leading slash
// on version is tolerated
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	prefix := "/api/" + strings.TrimPrefix(version, "/")
	MountUnder(r, prefix, mw, mount)
}

// MountAPIV1 is MountAPI pinned to v1, the only version the dashboard speaks
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
