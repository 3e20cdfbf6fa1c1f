// Package permissions holds the role table for every /v1 route. Paths are chi route
// patterns, e.g. "/v1/customers/{id}".
package permissions

import (
	_ "embed"
	"encoding/json"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

var consoleRoles = []string{"ADMIN", "TRABAJADOR"}

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether any of roles may call the endpoint. An endpoint without roles is
// open to every authenticated operator.
func (p Permission) Allows(roles []string) bool {
	if p.Skip || len(p.Permissions) == 0 {
		return true
	}

	return slices.ContainsFunc(roles, func(role string) bool {
		return slices.Contains(p.Permissions, role)
	})
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`

	index map[string]Permission
}

func key(path, method string) string {
	return strings.ToUpper(method) + " " + path
}

// FindPermissions returns the entry for a route pattern, or the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index == nil {
		r.buildIndex()
	}

	return r.index[key(path, method)]
}

func (r *PermissionData) buildIndex() {
	r.index = make(map[string]Permission, len(r.Endpoints))

	for _, endpoint := range r.Endpoints {
		for _, role := range endpoint.Permissions {
			if !slices.Contains(consoleRoles, role) {
				log.Warn().Str("path", endpoint.Path).Str("role", role).Msg("Unknown role in permissions")
			}
		}

		k := key(endpoint.Path, endpoint.Method)
		if _, ok := r.index[k]; ok {
			log.Warn().Str("endpoint", k).Msg("Duplicate permission entry, keeping the first one")

			continue
		}

		r.index[k] = endpoint
	}
}

func Get() *PermissionData {
	var permissions PermissionData

	err := json.Unmarshal(permissionsData, &permissions)
	if err != nil {
		log.Err(err).Msg("Failed to decode embedded permissions")

		return nil
	}

	permissions.buildIndex()

	log.Info().Int("endpoints", len(permissions.index)).Msg("Successfully loaded embedded permissions")

	return &permissions
}
