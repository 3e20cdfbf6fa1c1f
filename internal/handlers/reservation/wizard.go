package reservation

import (
	"context"
	"deportur/internal/domains/reservation/model/dto"
	"deportur/internal/domains/reservation/wizard"
	"deportur/internal/handlers/screen"
	"deportur/shared/constant"
	"deportur/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramEquipmentID = "equipmentId"

func (handler *Handler) wizardRouter(router chi.Router) {
	router.Get("/", handler.GetWizard)
	router.Delete("/", handler.ResetWizard)
	router.Put("/client", handler.SetWizardClient)
	router.Put("/destination", handler.SetWizardSchedule)
	router.Put("/lines", handler.SetWizardLine)
	router.Delete("/lines/{equipmentId}", handler.RemoveWizardLine)
	router.Post("/next", handler.NextWizardStep)
	router.Post("/back", handler.PreviousWizardStep)
	router.Post("/submit", handler.SubmitWizard)
}

// GetWizard returns the reservation wizard of the session.
// @Summary Reservation wizard
// @Tags ReservationWizard
// @Produce json
// @Success 200 {object} response.Data[wizard.View]
// @Router /v1/reservations/wizard [get]
// @Security BearerAuth
func (handler *Handler) GetWizard(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "GetWizard", handler.wizard.Current)
}

// ResetWizard discards the reservation being built.
// @Summary Reset the reservation wizard
// @Tags ReservationWizard
// @Produce json
// @Success 200 {object} response.Message
// @Router /v1/reservations/wizard [delete]
// @Security BearerAuth
func (handler *Handler) ResetWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetWizard")
	defer scope.End()

	if err := handler.wizard.Reset(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset reservation wizard")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reservation wizard reset")
}

// SetWizardClient picks the customer of the reservation.
// @Summary Set wizard customer
// @Tags ReservationWizard
// @Accept json
// @Produce json
// @Param request body dto.WizardClientRequest true "Customer"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/wizard/client [put]
// @Security BearerAuth
func (handler *Handler) SetWizardClient(w http.ResponseWriter, r *http.Request) {
	req := dto.WizardClientRequest{}

	stepBody(handler, w, r, "SetWizardClient", &req, func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.SetClient(ctx, req)
	})
}

// SetWizardSchedule picks the destination and the rental dates. Availability is checked as
// soon as both dates are known.
// @Summary Set wizard destination and dates
// @Tags ReservationWizard
// @Accept json
// @Produce json
// @Param request body dto.WizardScheduleRequest true "Destination and dates"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/wizard/destination [put]
// @Security BearerAuth
func (handler *Handler) SetWizardSchedule(w http.ResponseWriter, r *http.Request) {
	req := dto.WizardScheduleRequest{}

	stepBody(handler, w, r, "SetWizardSchedule", &req, func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.SetSchedule(ctx, req)
	})
}

// SetWizardLine adds equipment to the reservation or changes its quantity.
// @Summary Add or update a wizard line
// @Tags ReservationWizard
// @Accept json
// @Produce json
// @Param request body dto.WizardLineRequest true "Equipment line"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/reservations/wizard/lines [put]
// @Security BearerAuth
func (handler *Handler) SetWizardLine(w http.ResponseWriter, r *http.Request) {
	req := dto.WizardLineRequest{}

	stepBody(handler, w, r, "SetWizardLine", &req, func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.SetLine(ctx, req)
	})
}

// RemoveWizardLine drops equipment from the reservation.
// @Summary Remove a wizard line
// @Tags ReservationWizard
// @Produce json
// @Param equipmentId path integer true "Equipment ID"
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error
// @Router /v1/reservations/wizard/lines/{equipmentId} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveWizardLine(w http.ResponseWriter, r *http.Request) {
	id, err := screen.ParamID(r, paramEquipmentID)
	if err != nil {
		response.WithError(w, err)

		return
	}

	handler.step(w, r, "RemoveWizardLine", func(ctx context.Context) (wizard.View, error) {
		return handler.wizard.RemoveLine(ctx, id)
	})
}

// NextWizardStep validates the current step and moves forward.
// @Summary Next wizard step
// @Tags ReservationWizard
// @Produce json
// @Success 200 {object} response.Data[wizard.View]
// @Failure 400 {object} response.Error "The current step is incomplete"
// @Router /v1/reservations/wizard/next [post]
// @Security BearerAuth
func (handler *Handler) NextWizardStep(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "NextWizardStep", handler.wizard.Next)
}

// PreviousWizardStep moves back one step without validating.
// @Summary Previous wizard step
// @Tags ReservationWizard
// @Produce json
// @Success 200 {object} response.Data[wizard.View]
// @Router /v1/reservations/wizard/back [post]
// @Security BearerAuth
func (handler *Handler) PreviousWizardStep(w http.ResponseWriter, r *http.Request) {
	handler.step(w, r, "PreviousWizardStep", handler.wizard.Back)
}

// SubmitWizard creates the reservation. The wizard is kept when the backend rejects it.
// @Summary Submit the reservation wizard
// @Tags ReservationWizard
// @Produce json
// @Success 201 {object} response.Data[model.Reservation]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/wizard/submit [post]
// @Security BearerAuth
func (handler *Handler) SubmitWizard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitWizard")
	defer scope.End()

	reservation, err := handler.wizard.Submit(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit reservation wizard")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created from wizard by user " + user)

	response.WithJSON(w, http.StatusCreated, reservation)
}

func (handler *Handler) step(w http.ResponseWriter, r *http.Request, operation string, apply func(ctx context.Context) (wizard.View, error)) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	view, err := apply(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("operation", operation).Msg("reservation wizard step failed")

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
