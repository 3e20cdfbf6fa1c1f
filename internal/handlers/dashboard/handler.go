package dashboard

import (
	"deportur/infras/otel"
	"deportur/internal/domains/dashboard/service"
	"deportur/shared"
	"deportur/shared/constant"
	"deportur/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)
}

// GetDashboard returns the business metrics.
// @Summary Dashboard metrics
// @Description Totals per entity, reservations per status and destination, customers per loyalty tier.
// @Tags Dashboard
// @Produce json
// @Param refresh query boolean false "Skip the metrics cache"
// @Success 200 {object} response.Data[model.Dashboard]
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	refresh := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamRefresh))

	dashboard, err := handler.service.Get(ctx, refresh != nil && *refresh)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, dashboard)
}
