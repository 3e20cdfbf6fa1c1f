package equipment

import (
	"deportur/infras/otel"
	"deportur/internal/domains/equipment/model"
	"deportur/internal/domains/equipment/model/dto"
	"deportur/internal/domains/equipment/service"
	"deportur/internal/handlers/screen"
	"deportur/shared"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formImage          = "imagen"
	paramDestinationID = "destination_id"
)

type Handler struct {
	list    screen.Handler[model.Equipment]
	service service.Equipment
	otel    otel.Otel
}

func New(service service.Equipment, otel otel.Otel) Handler {
	return Handler{
		list:    screen.New[model.Equipment](service, otel),
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/"+model.ScreenName, func(routerGroup chi.Router) {
		handler.list.Router(routerGroup)
		routerGroup.Post("/", handler.CreateEquipment)
		routerGroup.Get("/{id}", handler.GetEquipmentByID)
		routerGroup.Put("/{id}", handler.UpdateEquipment)
		routerGroup.Post("/{id}/image", handler.UploadEquipmentImage)
		routerGroup.Get("/available", handler.GetAvailableEquipment)
		routerGroup.Get("/availability", handler.CheckEquipmentAvailability)
	})
}

// CreateEquipment registers a new piece of equipment.
// @Summary Create equipment
// @Tags Equipment
// @Accept json
// @Produce json
// @Param request body dto.EquipmentRequest true "Equipment"
// @Success 201 {object} response.Data[model.Equipment]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/equipment [post]
// @Security BearerAuth
func (handler *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEquipment")
	defer scope.End()

	req := dto.EquipmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	equipment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create equipment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Equipment created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, equipment)
}

// GetEquipmentByID returns the current backend copy of a piece of equipment.
// @Summary Get equipment
// @Tags Equipment
// @Produce json
// @Param id path integer true "Equipment ID"
// @Success 200 {object} response.Data[model.Equipment]
// @Failure 404 {object} response.Error
// @Router /v1/equipment/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetEquipmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipmentByID")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	equipment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get equipment by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, equipment)
}

// UpdateEquipment replaces the editable fields of a piece of equipment.
// @Summary Update equipment
// @Tags Equipment
// @Accept json
// @Produce json
// @Param id path integer true "Equipment ID"
// @Param request body dto.EquipmentRequest true "Equipment"
// @Success 200 {object} response.Data[model.Equipment]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/equipment/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEquipment")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.EquipmentRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	equipment, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update equipment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Equipment updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, equipment)
}

// UploadEquipmentImage stores a new image and points the equipment at it.
// @Summary Upload an equipment image
// @Description Accepts a multipart file in "imagen" (or "image") or a JSON body with a base64 data URI. PNG, JPEG and WEBP up to 5 MB.
// @Tags Equipment
// @Accept multipart/form-data,json
// @Produce json
// @Param id path integer true "Equipment ID"
// @Param imagen formData file false "Image file"
// @Param request body dto.ImageRequest false "Image as data URI"
// @Success 200 {object} response.Data[model.Equipment]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 503 {object} response.Error "Image storage is not configured"
// @Router /v1/equipment/{id}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadEquipmentImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadEquipmentImage")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	upload, err := imageUpload(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read image")

		response.WithError(w, err)

		return
	}

	equipment, err := handler.service.UploadImage(ctx, id, upload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to upload equipment image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Equipment image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, equipment)
}

func imageUpload(r *http.Request) (dto.ImageUpload, error) {
	if !strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeMultipartFormData) {
		req := dto.ImageRequest{}

		if err := validator.Validate(r.Body, &req); err != nil {
			return dto.ImageUpload{}, err //nolint:wrapcheck
		}

		upload, err := req.ToUpload()
		if err != nil {
			return dto.ImageUpload{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		return upload, nil
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return dto.ImageUpload{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	for _, field := range []string{formImage, constant.FormImage} {
		file, header, err := r.FormFile(field)
		if errors.Is(err, http.ErrMissingFile) {
			continue
		}

		if err != nil {
			return dto.ImageUpload{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		file.Close()

		upload, err := dto.ImageFromMultipart(header)
		if err != nil {
			return dto.ImageUpload{}, failure.BadRequest(err) //nolint:wrapcheck
		}

		return upload, nil
	}

	return dto.ImageUpload{}, failure.BadRequestFromString("imagen is required") //nolint:wrapcheck
}

// GetAvailableEquipment lists the equipment of a destination free over a date range.
// @Summary Available equipment
// @Tags Equipment
// @Produce json
// @Param destination_id query integer true "Destination ID"
// @Param start_date query string true "First day (YYYY-MM-DD)"
// @Param end_date query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]model.Equipment]
// @Failure 400 {object} response.Error
// @Router /v1/equipment/available [get]
// @Security BearerAuth
func (handler *Handler) GetAvailableEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableEquipment")
	defer scope.End()

	req, err := availabilityRequest(r.URL.Query())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	equipment, err := handler.service.Available(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available equipment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, equipment)
}

// CheckEquipmentAvailability summarises the availability of a destination over a date range.
// @Summary Availability summary
// @Tags Equipment
// @Produce json
// @Param destination_id query integer true "Destination ID"
// @Param start_date query string true "First day (YYYY-MM-DD)"
// @Param end_date query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[model.Availability]
// @Failure 400 {object} response.Error
// @Router /v1/equipment/availability [get]
// @Security BearerAuth
func (handler *Handler) CheckEquipmentAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckEquipmentAvailability")
	defer scope.End()

	req, err := availabilityRequest(r.URL.Query())
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	availability, err := handler.service.CheckAvailability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check equipment availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, availability)
}

func availabilityRequest(values url.Values) (dto.AvailabilityRequest, error) {
	req := dto.AvailabilityRequest{
		Start: values.Get(constant.RequestParamStartDate),
		End:   values.Get(constant.RequestParamEndDate),
	}

	if raw := values.Get(paramDestinationID); raw != constant.Empty {
		id, err := shared.ConvertStringToInt64(raw)
		if err != nil {
			return req, failure.BadRequestFromString(paramDestinationID + " must be a positive number") //nolint:wrapcheck
		}

		req.DestinationID = id
	}

	return req, nil
}
