package pricepolicy

import (
	"context"
	"deportur/internal/domains/pricepolicy/model/dto"
	"deportur/internal/domains/pricepolicy/wizard"
	"deportur/internal/handlers/screen"
	"deportur/shared/constant"
	"deportur/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

func (handler *Handler) wizardRouter(router chi.Router) {
	router.Get("/", handler.GetWizard)
	router.Delete("/", handler.ResetWizard)
	router.Post("/edit/{id}", handler.EditWithWizard)
	router.Put("/basic", handler.SetWizardBasic)
	router.Put("/conditions", handler.SetWizardConditions)
	router.Put("/scope", handler.SetWizardScope)
	router.Post("/next", handler.NextWizardStep)
	router.Post("/back", handler.PreviousWizardStep)
	router.Post("/submit", handler.SubmitWizard)
}

// GetWizard returns the price policy wizard of the session.
// @Summary Price policy wizard
// @Tags PricePolicyWizard
// @Produce json
// @Success 200 {object} response.Data[wizard.View]
// @Router /v1/price-policies/wizard [get]
// @Security BearerAuth
func (handler *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "GetWizard", handler.wizard.Current)
}

// ResetWizard discards the policy being built.
// @Summary Reset the price policy wizard
// @Tags PricePolicyWizard
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/price-policies/wizard [delete]
// @Security BearerAuth
func (handler *Handler) ResetWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetWizard")
	defer scope.End()

	if err := handler.wizard.Reset(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset price policy wizard")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Price policy wizard reset")
}

// EditWithWizard loads an existing policy into the wizard.
// @Summary Edit a price policy with the wizard
// @Tags PricePolicyWizard
// @Produce json
// @Param id path integer true "Price policy ID"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 404 {object} response.Error
// @Router /v1/price-policies/wizard/edit/{id} [post]
// @Security BearerAuth
func (handler *Handler) EditWithWizard(w http.ResponseWriter, r *http.Request) {
	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.step(w, r, "EditWithWizard", func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.Edit(ctx, id)
	})
}

// SetWizardBasic stores the name, type and percentage. Checks run on next.
// @Summary Set wizard basic data
// @Tags PricePolicyWizard
// @Accept json
// @Produce json
// @Param request body dto.BasicRequest true "Basic data"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error
// @Router /v1/price-policies/wizard/basic [put]
// @Security BearerAuth
func (handler *Handler) SetWizardBasic(w http.ResponseWriter, r *http.Request) {
	req := dto.BasicRequest{}

	stepBody(handler, w, r, "SetWizardBasic", &req, func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.SetBasic(ctx, req)
	})
}

// SetWizardConditions stores the date window, day range and loyalty tier.
// @Summary Set wizard conditions
// @Tags PricePolicyWizard
// @Accept json
// @Produce json
// @Param request body dto.ConditionsRequest true "Conditions"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error
// @Router /v1/price-policies/wizard/conditions [put]
// @Security BearerAuth
func (handler *Handler) SetWizardConditions(w http.ResponseWriter, r *http.Request) {
	req := dto.ConditionsRequest{}

	stepBody(handler, w, r, "SetWizardConditions", &req, func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.SetConditions(ctx, req)
	})
}

// SetWizardScope stores the destination, equipment type or equipment the policy applies to.
// @Summary Set wizard scope
// @Tags PricePolicyWizard
// @Accept json
// @Produce json
// @Param request body dto.ScopeRequest true "Scope"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error
// @Router /v1/price-policies/wizard/scope [put]
// @Security BearerAuth
func (handler *Handler) SetWizardScope(w http.ResponseWriter, r *http.Request) {
	req := dto.ScopeRequest{}

	stepBody(handler, w, r, "SetWizardScope", &req, func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.SetScope(ctx, req)
	})
}

// NextWizardStep validates the current step and moves forward.
// @Summary Next wizard step
// @Tags PricePolicyWizard
// @Produce json
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error "The current step is incomplete"
// @Router /v1/price-policies/wizard/next [post]
// @Security BearerAuth
func (handler *Handler) NextWizardStep(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "NextWizardStep", handler.wizard.Next)
}

// PreviousWizardStep moves back one step without validating.
// @Summary Previous wizard step
// @Tags PricePolicyWizard
// @Produce json
// @Success 200 {object} response.Data[wizard.View]
// @Router /v1/price-policies/wizard/back [post]
// @Security BearerAuth
func (handler *Handler) PreviousWizardStep(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "PreviousWizardStep", handler.wizard.Back)
}

// SubmitWizard creates the policy, or updates it when the wizard was opened for editing.
// @Summary Submit the price policy wizard
// @Tags PricePolicyWizard
// @Produce json
// @Success 200 {object} response.Data[model.PricePolicy]
// @Failure 400 {object} response.Error
// @Router /v1/price-policies/wizard/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitWizard")
	defer scope.End()

	policy, err := handler.wizard.Submit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit price policy wizard")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Price policy saved from wizard by user " + user)

	response.WithJSON(w, http.StatusOK, policy)
}

func (handler *Handler) step(w http.ResponseWriter, r *http.Request, operation string, apply func(ctx context.Context) (wizard.View, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	view, err := apply(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("operation", operation).Msg("price policy wizard step failed")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

func stepBody[T any](handler *Handler, w http.ResponseWriter, r *http.Request, operation string, req *T, apply func(ctx context.Context) (wizard.View, error)) {
	if err := screen.Decode(r, req); err != nil {
		log.Error().Err(err).Str("operation", operation).Msg("failed to decode request body")
		response.WithError(w, err)

		return
	}

	handler.step(w, r, operation, apply)
}
