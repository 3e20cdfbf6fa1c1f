package destination

import (
	"deportur/infras/otel"
	"deportur/internal/domains/destination/model"
	"deportur/internal/domains/destination/model/dto"
	"deportur/internal/domains/destination/service"
	"deportur/internal/handlers/screen"
	"deportur/shared/constant"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	list    screen.Handler[model.Destination]
	service service.Destination
	otel    otel.Otel
}

func New(service service.Destination, otel otel.Otel) Handler {
	return Handler{
		list:    screen.New[model.Destination](service, otel),
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/"+model.ScreenName, func(routerGroup chi.Router) {
		handler.list.Router(routerGroup)
		routerGroup.Post("/", handler.CreateDestination)
		routerGroup.Get("/{id}", handler.GetDestinationByID)
		routerGroup.Put("/{id}", handler.UpdateDestination)
	})
}

// CreateDestination registers a new destination.
// @Summary Create a destination
// @Tags Destination
// @Accept json
// @Produce json
// @Param request body dto.DestinationRequest true "Destination"
// @Success 201 {object} response.Data[model.Destination]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/destinations [post]
// @Security BearerAuth
func (handler *Handler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDestination")
	defer scope.End()

	req := dto.DestinationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	destination, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create destination")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, destination)
}

// GetDestinationByID returns the current backend copy of a destination.
// @Summary Get a destination
// @Tags Destination
// @Produce json
// @Param id path integer true "Destination ID"
// @Success 200 {object} response.Data[model.Destination]
// @Failure 404 {object} response.Error
// @Router /v1/destinations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDestinationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinationByID")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	destination, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get destination by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, destination)
}

// UpdateDestination replaces the editable fields of a destination.
// @Summary Update a destination
// @Tags Destination
// @Accept json
// @Produce json
// @Param id path integer true "Destination ID"
// @Param request body dto.DestinationRequest true "Destination"
// @Success 200 {object} response.Data[model.Destination]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/destinations/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDestination")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.DestinationRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	destination, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update destination")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Destination updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, destination)
}
