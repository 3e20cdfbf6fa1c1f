package reservation

import (
	"context"
	"deportur/infras/otel"
	"deportur/internal/domains/reservation/model"
	"deportur/internal/domains/reservation/model/dto"
	"deportur/internal/domains/reservation/service"
	"deportur/internal/domains/reservation/wizard"
	"deportur/internal/handlers/screen"
	"deportur/shared/constant"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	list    screen.Handler[model.Reservation]
	service service.Reservation
	wizard  wizard.Wizard
	otel    otel.Otel
}

func New(service service.Reservation, wizard wizard.Wizard, otel otel.Otel) Handler {
	return Handler{
		list:    screen.New[model.Reservation](service, otel),
		service: service,
		wizard:  wizard,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/"+model.ScreenName, func(routerGroup chi.Router) {
		handler.list.Router(routerGroup)
		routerGroup.Route("/wizard", handler.wizardRouter)
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Put("/{id}", handler.UpdateReservation)
		routerGroup.Patch("/{id}/confirm", handler.ConfirmReservation)
		routerGroup.Patch("/{id}/status", handler.ChangeReservationStatus)
		routerGroup.Patch("/{id}/cancel", handler.CancelReservation)
	})
}

// CreateReservation registers a new reservation.
// @Summary Create a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.ReservationRequest true "Reservation"
// @Success 201 {object} response.Data[model.Reservation]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations [post]
// @Security BearerAuth
func (handler *Handler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.ReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, reservation)
}

// GetReservationByID returns the current backend copy of a reservation.
// @Summary Get a reservation
// @Tags Reservation
// @Produce json
// @Param id path integer true "Reservation ID"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 404 {object} response.Error
// @Router /v1/reservations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get reservation by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation replaces the editable fields of a reservation.
// @Summary Update a reservation
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path integer true "Reservation ID"
// @Param request body dto.ReservationRequest true "Reservation"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.ReservationRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Reservation updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, reservation)
}

// ConfirmReservation moves a pending reservation to confirmed.
// @Summary Confirm a reservation
// @Tags Reservation
// @Produce json
// @Param id path integer true "Reservation ID"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Reservation is not pending"
// @Router /v1/reservations/{id}/confirm [patch]
// @Security BearerAuth
func (handler *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "ConfirmReservation", handler.service.Confirm)
}

// ChangeReservationStatus moves a reservation to the status in the query.
// @Summary Change the status of a reservation
// @Tags Reservation
// @Produce json
// @Param id path integer true "Reservation ID"
// @Param status query string true "PENDIENTE, CONFIRMADA, EN_PROGRESO, FINALIZADA or CANCELADA"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Transition not allowed"
// @Router /v1/reservations/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) ChangeReservationStatus(w http.ResponseWriter, r *http.Request) {
	status := model.Status(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get(constant.RequestParamStatus))))

	handler.transition(w, r, "ChangeReservationStatus", func(ctx context.Context, id int64) (model.Reservation, error) {
		return handler.service.ChangeStatus(ctx, id, status)
	})
}

// CancelReservation cancels a reservation. The row stays on the list with its new status.
// @Summary Cancel a reservation
// @Tags Reservation
// @Produce json
// @Param id path integer true "Reservation ID"
// @Success 200 {object} response.Data[model.Reservation]
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/reservations/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "CancelReservation", handler.service.Cancel)
}

func (handler *Handler) transition(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	apply func(ctx context.Context, id int64) (model.Reservation, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	reservation, err := apply(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Str("operation", operation).Msg("failed to change reservation status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent(fmt.Sprintf("%s on reservation %d by user %s", operation, id, user))

	response.WithJSON(w, http.StatusOK, reservation)
}
