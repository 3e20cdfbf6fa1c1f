package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/config"
	"deportur/infras/otel"
	"deportur/internal/domains/auth/model/dto"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/session"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

const loginScope = "openid profile email"

var errSignInNotConfigured = failure.New(http.StatusServiceUnavailable, "Sign-in is not configured.")

// Auth exposes the operator identity. Sign-in itself happens at the identity provider.
type Auth interface {
	Me(ctx context.Context) (dto.Operator, error)
	LoginURL(ctx context.Context, req dto.LoginRequest) (dto.RedirectResponse, error)
	Logout(ctx context.Context) (dto.RedirectResponse, error)
}

type serviceImpl struct {
	store session.Store
	cfg   *config.Config
	otel  otel.Otel
}

func New(store session.Store, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		store: store,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) Me(ctx context.Context) (res dto.Operator, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Me")
	defer scope.End()
	defer scope.TraceIfError(err)

	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == constant.Empty {
		return res, failure.Unauthorized("You are not signed in.") //nolint:wrapcheck
	}

	res.ID = userID
	res.Email, _ = ctx.Value(constant.ContextKeyUserEmail).(string)
	res.Name, _ = ctx.Value(constant.ContextKeyUserName).(string)
	res.Role, _ = ctx.Value(constant.ContextKeyUserRole).(string)
	res.Roles, _ = ctx.Value(constant.ContextKeyUserRoles).([]string)
	res.IsAdmin = res.Role == constant.RoleAdmin

	if res.Roles == nil {
		res.Roles = []string{}
	}

	return res, nil
}

// LoginURL builds the authorize URL of the identity provider. The return page travels in
// the state parameter.
func (s *serviceImpl) LoginURL(ctx context.Context, req dto.LoginRequest) (res dto.RedirectResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.LoginURL")
	defer scope.End()
	defer scope.TraceIfError(err)

	authorizeURL, err := url.Parse(s.cfg.Auth.AuthorizeURL)
	if err != nil || s.cfg.Auth.AuthorizeURL == constant.Empty {
		log.Error().Err(err).Msg("authorize url is not configured")

		return res, errSignInNotConfigured
	}

	query := authorizeURL.Query()
	query.Set("response_type", "code")
	query.Set("client_id", s.cfg.Auth.ClientID)
	query.Set("redirect_uri", s.cfg.Auth.RedirectURL)
	query.Set("scope", loginScope)

	if s.cfg.Auth.Audience != constant.Empty {
		query.Set("audience", s.cfg.Auth.Audience)
	}

	if req.ReturnTo != constant.Empty {
		query.Set("state", req.ReturnTo)
	}

	authorizeURL.RawQuery = query.Encode()

	return dto.RedirectResponse{URL: authorizeURL.String()}, nil
}

// Logout drops every screen and wizard of the session and returns the provider logout URL.
func (s *serviceImpl) Logout(ctx context.Context) (res dto.RedirectResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Logout")
	defer scope.End()
	defer scope.TraceIfError(err)

	if sessionID, idErr := session.ID(ctx); idErr == nil {
		if err = s.store.Clear(ctx, sessionID); err != nil {
			log.Error().Err(err).Msg("failed to clear session")

			return res, fmt.Errorf("failed to clear session: %w", err)
		}
	}

	if s.cfg.Auth.LogoutURL == constant.Empty {
		return res, nil
	}

	logoutURL, err := url.Parse(s.cfg.Auth.LogoutURL)
	if err != nil {
		log.Error().Err(err).Msg("invalid logout url")

		return res, errSignInNotConfigured
	}

	query := logoutURL.Query()
	query.Set("client_id", s.cfg.Auth.ClientID)

	if s.cfg.Auth.RedirectURL != constant.Empty {
		query.Set("returnTo", s.cfg.Auth.RedirectURL)
	}

	logoutURL.RawQuery = query.Encode()

	return dto.RedirectResponse{URL: logoutURL.String()}, nil
}
