package service_test

import (
	"context"
	"deportur/config"
	"deportur/infras/otel/mocks"
	"deportur/internal/domains/auth/model/dto"
	"deportur/internal/domains/auth/service"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/session"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.AuthorizeURL = "https://deportur.example.auth0.com/authorize"
	cfg.Auth.LogoutURL = "https://deportur.example.auth0.com/v2/logout"
	cfg.Auth.ClientID = "console"
	cfg.Auth.RedirectURL = "https://console.deportur.test"
	cfg.Auth.Audience = "deportur-api"

	return cfg
}

func TestAuth_Me(t *testing.T) {
	svc := service.New(session.NewMemoryStore(time.Hour), authConfig(), mocks.NewOtel())

	t.Run("signed in admin", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "auth0|42")
		ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, "ana@deportur.com")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleAdmin)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRoles, []string{constant.RoleAdmin, constant.RoleWorker})

		operator, err := svc.Me(ctx)
		require.NoError(t, err)
		assert.Equal(t, "auth0|42", operator.ID)
		assert.True(t, operator.IsAdmin)
		assert.True(t, operator.HasRole(constant.RoleWorker))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := svc.Me(context.Background())
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
	})
}

func TestAuth_LoginURL(t *testing.T) {
	svc := service.New(session.NewMemoryStore(time.Hour), authConfig(), mocks.NewOtel())

	res, err := svc.LoginURL(context.Background(), dto.LoginRequest{ReturnTo: "/reservas"})
	require.NoError(t, err)

	parsed, err := url.Parse(res.URL)
	require.NoError(t, err)
	assert.Equal(t, "/authorize", parsed.Path)
	assert.Equal(t, "code", parsed.Query().Get("response_type"))
	assert.Equal(t, "console", parsed.Query().Get("client_id"))
	assert.Equal(t, "deportur-api", parsed.Query().Get("audience"))
	assert.Equal(t, "/reservas", parsed.Query().Get("state"))
}

func TestAuth_LoginURLNotConfigured(t *testing.T) {
	svc := service.New(session.NewMemoryStore(time.Hour), &config.Config{}, mocks.NewOtel())

	_, err := svc.LoginURL(context.Background(), dto.LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, failure.GetCode(err))
}

func TestAuth_LogoutClearsSession(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	svc := service.New(store, authConfig(), mocks.NewOtel())
	ctx := context.WithValue(context.Background(), constant.ContextKeySessionID, "operator-1")

	require.NoError(t, store.Save(ctx, "operator-1", "customers", map[string]int{"page": 1}))

	res, err := svc.Logout(ctx)
	require.NoError(t, err)
	assert.Contains(t, res.URL, "returnTo=https%3A%2F%2Fconsole.deportur.test")

	var state map[string]int

	found, err := store.Load(ctx, "operator-1", "customers", &state)
	require.NoError(t, err)
	assert.False(t, found)
}
