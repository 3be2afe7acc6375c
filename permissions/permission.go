package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission describes how the session gate treats one route. Skip routes are public.
// Redirect routes send an unauthenticated browser to the login page instead of a 401.
type Permission struct {
	Path     string `json:"path"`
	Method   string `json:"method"`
	Skip     bool   `json:"skip"`
	Redirect bool   `json:"redirect"`
}

// PermissionData is the route table. Skip at the top level opens every route.
type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	byRoute map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// FindPermissions returns the rule for the route pattern, or the zero rule (session
// required, JSON 401) when none is listed.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	return r.byRoute[routeKey(method, path)]
}

// Get parses the embedded route table. It returns nil when the table is malformed, which
// the session gate treats as every route requiring a session.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Loaded route permissions")

	return permissions
}

// Parse decodes a route table and rejects entries with an unknown method or a repeated route.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	permissions.byRoute = make(map[string]Permission, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		if !knownMethod(endpoint.Method) {
			return nil, fmt.Errorf("route %s: unknown method %q", endpoint.Path, endpoint.Method)
		}

		key := routeKey(endpoint.Method, endpoint.Path)
		if _, dup := permissions.byRoute[key]; dup {
			return nil, fmt.Errorf("route %s listed twice", key)
		}

		permissions.byRoute[key] = endpoint
	}

	return &permissions, nil
}

func knownMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}
