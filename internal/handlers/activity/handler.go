package activity

import (
	"deportur/infras/otel"
	"deportur/internal/domains/activity/service"
	"deportur/shared/constant"
	gDto "deportur/shared/dto"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Activity
	otel    otel.Otel
}

func New(service service.Activity, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/activities", handler.GetActivities)
}

// GetActivities lists what operators changed, newest first.
// @Summary Activity log
// @Tags Activity
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param entity query string false "Filter by entity"
// @Param action query string false "Filter by action"
// @Param user query string false "Filter by operator"
// @Success 200 {object} response.Data[dto.GetActivitiesResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 503 {object} response.Error "Activity log disabled"
// @Router /v1/activities [get]
// @Security BearerAuth
func (handler *Handler) GetActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActivities")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if err := validator.ValidateStruct(&queryParams); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := r.URL.Query()
	filter := service.Filter{
		Entity: strings.TrimSpace(query.Get(constant.RequestParamEntity)),
		Action: strings.ToLower(strings.TrimSpace(query.Get(constant.RequestParamAction))),
		Actor:  strings.TrimSpace(query.Get(constant.RequestParamUser)),
	}

	activities, err := handler.service.List(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get activities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, activities)
}
