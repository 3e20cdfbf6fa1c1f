package middleware

import (
	"deportur/config"
	"deportur/infras/jwt"
	jwtMocks "deportur/infras/jwt/mocks"
	otelMocks "deportur/infras/otel/mocks"
	"deportur/permissions"
	"deportur/shared/constant"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type captured struct {
	userID    string
	role      string
	sessionID string
	token     string
}

func newAuthRouter(t *testing.T, cfg *config.Config) (http.Handler, *jwtMocks.MockJWT, *captured) {
	t.Helper()

	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)
	authRole := NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), permissions.Get(), cfg)

	seen := &captured{}
	record := func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		seen.userID, _ = ctx.Value(constant.ContextKeyUserID).(string)
		seen.role, _ = ctx.Value(constant.ContextKeyUserRole).(string)
		seen.sessionID, _ = ctx.Value(constant.ContextKeySessionID).(string)
		seen.token, _ = ctx.Value(constant.ContextKeyToken).(string)

		w.WriteHeader(http.StatusNoContent)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(v1 chi.Router) {
		v1.Use(authRole.APIKey, authRole.Auth, authRole.RBAC)
		v1.Get("/dashboard", record)
		v1.Get("/activities", record)
		v1.Get("/auth/login", record)
		v1.Route("/customers", func(customers chi.Router) {
			customers.Get("/", record)
			customers.Get("/{id}", record)
		})
	})

	return router, jwtService, seen
}

func request(router http.Handler, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	return recorder
}

func TestAuth_RejectsMissingOrMalformedHeader(t *testing.T) {
	router, _, _ := newAuthRouter(t, &config.Config{})

	recorder := request(router, "/v1/customers", nil)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Missing authorization header")

	recorder = request(router, "/v1/customers", map[string]string{constant.RequestHeaderAuthorization: "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid authorization header format")
}

func TestAuth_TokenValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "expired", err: jwt.ErrExpiredToken, expected: "expired"},
		{name: "invalid", err: jwt.ErrInvalidToken, expected: "Invalid token"},
		{name: "bad claims", err: jwt.ErrInvalidClaim, expected: "Invalid token claims"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, jwtService, _ := newAuthRouter(t, &config.Config{})

			jwtService.EXPECT().ValidateToken("abc").Return(nil, tt.err)

			recorder := request(router, "/v1/customers", map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"})
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.expected)
		})
	}
}

func TestAuth_RequiresConsoleRole(t *testing.T) {
	router, jwtService, _ := newAuthRouter(t, &config.Config{})

	jwtService.EXPECT().ValidateToken("abc").Return(&jwt.Claims{Subject: "auth0|1", Roles: []string{"CLIENTE"}}, nil)

	recorder := request(router, "/v1/customers", map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"})
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestAuth_StoresOperatorInContext(t *testing.T) {
	t.Run("session id from header", func(t *testing.T) {
		router, jwtService, seen := newAuthRouter(t, &config.Config{})

		jwtService.EXPECT().ValidateToken("abc").Return(&jwt.Claims{Subject: "auth0|7", Roles: []string{constant.RoleWorker}}, nil)

		recorder := request(router, "/v1/customers/3", map[string]string{
			constant.RequestHeaderAuthorization: "Bearer abc",
			constant.RequestHeaderSessionID:     "tab-1",
		})

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, "auth0|7", seen.userID)
		assert.Equal(t, constant.RoleWorker, seen.role)
		assert.Equal(t, "auth0|7#tab-1", seen.sessionID)
		assert.Equal(t, "abc", seen.token)
	})

	t.Run("session id falls back to subject", func(t *testing.T) {
		router, jwtService, seen := newAuthRouter(t, &config.Config{})

		jwtService.EXPECT().ValidateToken("abc").Return(&jwt.Claims{Subject: "auth0|7", Roles: []string{constant.RoleAdmin}}, nil)

		recorder := request(router, "/v1/customers", map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"})

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Equal(t, constant.RoleAdmin, seen.role)
		assert.Equal(t, "auth0|7", seen.sessionID)
	})
}

func TestAuth_SessionBoundToSubject(t *testing.T) {
	t.Run("a colleague's subject is rejected", func(t *testing.T) {
		router, jwtService, _ := newAuthRouter(t, &config.Config{})

		jwtService.EXPECT().ValidateToken("mallory").Return(&jwt.Claims{Subject: "auth0|mallory", Roles: []string{constant.RoleWorker}}, nil)

		recorder := request(router, "/v1/customers", map[string]string{
			constant.RequestHeaderAuthorization: "Bearer mallory",
			constant.RequestHeaderSessionID:     "auth0|alice",
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("same tab id resolves to different sessions per operator", func(t *testing.T) {
		router, jwtService, seen := newAuthRouter(t, &config.Config{})

		gomock.InOrder(
			jwtService.EXPECT().ValidateToken("alice").Return(&jwt.Claims{Subject: "auth0|alice", Roles: []string{constant.RoleAdmin}}, nil),
			jwtService.EXPECT().ValidateToken("mallory").Return(&jwt.Claims{Subject: "auth0|mallory", Roles: []string{constant.RoleWorker}}, nil),
		)

		request(router, "/v1/customers", map[string]string{
			constant.RequestHeaderAuthorization: "Bearer alice",
			constant.RequestHeaderSessionID:     "main",
		})
		alice := seen.sessionID

		request(router, "/v1/customers", map[string]string{
			constant.RequestHeaderAuthorization: "Bearer mallory",
			constant.RequestHeaderSessionID:     "main",
		})

		assert.Equal(t, "auth0|alice#main", alice)
		assert.Equal(t, "auth0|mallory#main", seen.sessionID)
	})
}

func TestAuth_SkippedEndpoint(t *testing.T) {
	router, _, _ := newAuthRouter(t, &config.Config{})

	recorder := request(router, "/v1/auth/login", nil)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestRBAC_RestrictsAdminEndpoints(t *testing.T) {
	tests := []struct {
		name         string
		roles        []string
		expectedCode int
	}{
		{name: "worker is denied", roles: []string{constant.RoleWorker}, expectedCode: http.StatusForbidden},
		{name: "admin is allowed", roles: []string{constant.RoleAdmin}, expectedCode: http.StatusNoContent},
		{name: "admin among other roles", roles: []string{constant.RoleWorker, constant.RoleAdmin}, expectedCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, jwtService, _ := newAuthRouter(t, &config.Config{})

			jwtService.EXPECT().ValidateToken("abc").Return(&jwt.Claims{Subject: "auth0|7", Roles: tt.roles}, nil)

			recorder := request(router, "/v1/dashboard", map[string]string{constant.RequestHeaderAuthorization: "Bearer abc"})
			assert.Equal(t, tt.expectedCode, recorder.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	t.Run("valid key skips token checks", func(t *testing.T) {
		router, _, seen := newAuthRouter(t, cfg)

		recorder := request(router, "/v1/activities", map[string]string{constant.RequestHeaderAPIKey: "internal-key"})
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, seen.userID)
	})

	t.Run("wrong key is forbidden", func(t *testing.T) {
		router, _, _ := newAuthRouter(t, cfg)

		recorder := request(router, "/v1/activities", map[string]string{constant.RequestHeaderAPIKey: "guess"})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("unset key rejects every caller", func(t *testing.T) {
		router, _, _ := newAuthRouter(t, &config.Config{})

		recorder := request(router, "/v1/activities", map[string]string{constant.RequestHeaderAPIKey: "anything"})
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
}
