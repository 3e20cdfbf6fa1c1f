package permissions_test

import (
	"deportur/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	tests := []struct {
		path    string
		method  string
		worker  bool
		skipped bool
	}{
		{path: "/v1/auth/login", method: http.MethodGet, worker: true, skipped: true},
		{path: "/v1/dashboard", method: http.MethodGet},
		{path: "/v1/customers", method: http.MethodGet, worker: true},
		{path: "/v1/customers/{id}", method: http.MethodDelete, worker: true},
		{path: "/v1/price-policies", method: http.MethodGet, worker: true},
		{path: "/v1/price-policies", method: http.MethodPost},
		{path: "/v1/price-policies/{id}/status", method: http.MethodPatch},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.path, permission.Path)
			assert.Equal(t, tt.skipped, permission.Skip)
			assert.True(t, permission.Allows([]string{"ADMIN"}))
			assert.Equal(t, tt.worker, permission.Allows([]string{"TRABAJADOR"}))
		})
	}
}

func TestFindPermissions_Unknown(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	permission := data.FindPermissions("/v1/unknown", http.MethodGet)
	assert.Empty(t, permission.Path)
	assert.True(t, permission.Allows(nil))
}

func TestFindPermissions_LazyIndex(t *testing.T) {
	data := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Path: "/v1/activities", Method: http.MethodGet, Permissions: []string{"ADMIN"}},
	}}

	permission := data.FindPermissions("/v1/activities", "get")
	assert.False(t, permission.Allows([]string{"TRABAJADOR"}))
	assert.True(t, permission.Allows([]string{"TRABAJADOR", "ADMIN"}))
}
