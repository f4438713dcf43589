package swaggerkit

import (
	"encoding/json"
	"net/http"

	"gitpulse/internal/platform/config"
)

// SpecMutator lets modules tweak the served swagger spec
type SpecMutator func(map[string]any)

// mutators is the in process registry for spec mutators
var mutators []SpecMutator

// docReader is a seam so tests can inject a different base document
var docReader = func() string {
	return `{"openapi":"3.0.3","info":{"title":"GitPulse API","version":"0.0.0"},"paths":{}}`
}

// Register adds a spec mutator for swagger JSON
// call this from module init so it is wired automatically
func Register(m SpecMutator) {
	if m != nil {
		mutators = append(mutators, m)
	}
}

// serveDocJSON serves swagger JSON and lets modules adjust details
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := docReader()

		var spec map[string]any
		if err := json.Unmarshal([]byte(raw), &spec); err != nil {
			http.Error(w, "spec parse error", http.StatusInternalServerError)
			return
		}

		// OAS3 base url lives in servers, not BasePath
		ensureServers(spec, "/api/v1")

		// optional global tweaks go here
		cfg := config.New().Prefix("CORE_API_")
		if v := cfg.MayString("DOCS_TITLE_SUFFIX", ""); v != "" {
			if info, ok := spec["info"].(map[string]any); ok {
				if title, ok := info["title"].(string); ok {
					info["title"] = title + " " + v
				}
			}
		}

		ensureErrorResponseDefinition(spec)

		// every operation advertises the binder 400 and the fallback 500
		addDefaultResponse(spec, "400", errorExample("Bad Request",
			"Invalid installation_id parameter", "VALIDATION_ERROR"))
		addDefaultResponse(spec, "500", errorExample("Internal Server Error",
			"An unexpected error occurred", "UNKNOWN_ERROR"))

		for _, m := range mutators {
			m(spec)
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(spec)
	}
}

// ensureServers makes sure the spec has a servers array
func ensureServers(spec map[string]any, url string) {
	if _, ok := spec["openapi"]; !ok {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{
			map[string]any{"url": url},
		}
	}
}

// ensureErrorResponseDefinition creates the error model served at runtime
// kept minimal so it does not drift from the wire
func ensureErrorResponseDefinition(spec map[string]any) {
	comps, ok := spec["components"].(map[string]any)
	if !ok {
		comps = map[string]any{}
		spec["components"] = comps
	}
	schemas, ok := comps["schemas"].(map[string]any)
	if !ok {
		schemas = map[string]any{}
		comps["schemas"] = schemas
	}
	if _, ok := schemas["ErrorResponse"]; ok {
		return
	}
	schemas["ErrorResponse"] = map[string]any{
		"type":        "object",
		"description": "Standard error response",
		"properties": map[string]any{
			"error":             map[string]any{"type": "string"},
			"code":              map[string]any{"type": "string"},
			"details":           map[string]any{"type": "string"},
			"requestId":         map[string]any{"type": "string"},
			"signOutRequired":   map[string]any{"type": "boolean"},
			"needsInstallation": map[string]any{"type": "boolean"},
			"resetAt":           map[string]any{"type": "string", "format": "date-time"},
			"metadata":          map[string]any{"type": "object"},
		},
		"required": []any{"error", "code"},
	}
}

// errorExample builds a canned ErrorResponse payload for a default response
func errorExample(description, message, code string) map[string]any {
	return map[string]any{
		"description": description,
		"content": map[string]any{
			"application/json": map[string]any{
				"schema": map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": map[string]any{
					"error":     message,
					"code":      code,
					"requestId": "9d6e6f2a-0c4d-4b56-8a32-17d4f0a8f3c1",
				},
			},
		},
	}
}

// addDefaultResponse walks every operation and injects the response under
// status when the operation does not declare one itself
func addDefaultResponse(spec map[string]any, status string, resp map[string]any) {
	paths, ok := spec["paths"].(map[string]any)
	if !ok {
		return
	}
	for _, p := range paths {
		node, ok := p.(map[string]any)
		if !ok {
			continue
		}
		for _, opAny := range node {
			op, ok := opAny.(map[string]any)
			if !ok {
				continue
			}
			responses, ok := op["responses"].(map[string]any)
			if !ok {
				responses = map[string]any{}
				op["responses"] = responses
			}
			if _, exists := responses[status]; !exists {
				responses[status] = resp
			}
		}
	}
}
