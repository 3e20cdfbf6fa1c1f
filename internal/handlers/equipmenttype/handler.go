package equipmenttype

import (
	"deportur/infras/otel"
	"deportur/internal/domains/equipmenttype/model"
	"deportur/internal/domains/equipmenttype/model/dto"
	"deportur/internal/domains/equipmenttype/service"
	"deportur/internal/handlers/screen"
	"deportur/shared/constant"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	list    screen.Handler[model.EquipmentType]
	service service.EquipmentType
	otel    otel.Otel
}

func New(service service.EquipmentType, otel otel.Otel) Handler {
	return Handler{
		list:    screen.New[model.EquipmentType](service, otel),
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/"+model.ScreenName, func(routerGroup chi.Router) {
		handler.list.Router(routerGroup)
		routerGroup.Post("/", handler.CreateEquipmentType)
		routerGroup.Get("/{id}", handler.GetEquipmentTypeByID)
		routerGroup.Put("/{id}", handler.UpdateEquipmentType)
	})
}

// CreateEquipmentType registers a new equipment type.
// @Summary Create an equipment type
// @Tags EquipmentType
// @Accept json
// @Produce json
// @Param request body dto.EquipmentTypeRequest true "Equipment type"
// @Success 201 {object} response.Data[model.EquipmentType]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/equipment-types [post]
// @Security BearerAuth
func (handler *Handler) CreateEquipmentType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEquipmentType")
	defer scope.End()

	req := dto.EquipmentTypeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	equipmentType, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create equipment type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Equipment type created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, equipmentType)
}

// GetEquipmentTypeByID returns the current backend copy of an equipment type.
// @Summary Get an equipment type
// @Tags EquipmentType
// @Produce json
// @Param id path integer true "Equipment type ID"
// @Success 200 {object} response.Data[model.EquipmentType]
// @Failure 404 {object} response.Error
// @Router /v1/equipment-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEquipmentTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipmentTypeByID")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	equipmentType, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get equipment type by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, equipmentType)
}

// UpdateEquipmentType replaces the editable fields of an equipment type.
// @Summary Update an equipment type
// @Tags EquipmentType
// @Accept json
// @Produce json
// @Param id path integer true "Equipment type ID"
// @Param request body dto.EquipmentTypeRequest true "Equipment type"
// @Success 200 {object} response.Data[model.EquipmentType]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/equipment-types/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEquipmentType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEquipmentType")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.EquipmentTypeRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	equipmentType, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update equipment type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Equipment type updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, equipmentType)
}
