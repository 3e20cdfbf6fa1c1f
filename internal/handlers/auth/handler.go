package auth

import (
	"deportur/infras/otel"
	"deportur/internal/domains/auth/model/dto"
	"deportur/internal/domains/auth/service"
	"deportur/shared/constant"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramReturnTo = "return_to"

type Handler struct {
	service service.Auth
	otel    otel.Otel
}

func New(service service.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Get("/me", handler.Me)
		r.Get("/login", handler.Login)
		r.Get("/logout", handler.Logout)
	})
}

// Me returns the signed in operator
// @Summary Current operator
// @Description Returns the identity and roles carried by the bearer token.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[dto.Operator]
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	operator, err := handler.service.Me(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get operator")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, operator)
}

// Login redirects to the identity provider
// @Summary Sign in
// @Description Redirects to the authorize page of the identity provider.
// @Tags Auth
// @Param return_to query string false "Console page to open after signing in"
// @Success 302
// @Failure 503 {object} response.Error
// @Router /v1/auth/login [get]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{ReturnTo: r.URL.Query().Get(paramReturnTo)}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	redirect, err := handler.service.LoginURL(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build login url")

		response.WithError(w, err)

		return
	}

	http.Redirect(w, r, redirect.URL, http.StatusFound)
}

// Logout clears the session and redirects to the provider logout page
// @Summary Sign out
// @Description Drops the screen and wizard state of the session. Redirects to the provider logout page when one is configured.
// @Tags Auth
// @Produce json
// @Success 302
// @Success 200 {object} response.Message
// @Router /v1/auth/logout [get]
// @Security BearerAuth
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Logout")
	defer scope.End()

	redirect, err := handler.service.Logout(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to log out")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("User " + user + " logged out")

	if redirect.URL == constant.Empty {
		response.WithMessage(w, http.StatusOK, "Logged out")

		return
	}

	http.Redirect(w, r, redirect.URL, http.StatusFound)
}
