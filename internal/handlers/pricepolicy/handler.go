package pricepolicy

import (
	"deportur/infras/otel"
	"deportur/internal/domains/pricepolicy/model"
	"deportur/internal/domains/pricepolicy/model/dto"
	"deportur/internal/domains/pricepolicy/service"
	"deportur/internal/domains/pricepolicy/wizard"
	"deportur/internal/handlers/screen"
	"deportur/shared"
	"deportur/shared/constant"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	list    screen.Handler[model.PricePolicy]
	service service.PricePolicy
	wizard  wizard.Wizard
	otel    otel.Otel
}

func New(service service.PricePolicy, wizard wizard.Wizard, otel otel.Otel) Handler {
	return Handler{
		list:    screen.New[model.PricePolicy](service, otel),
		service: service,
		wizard:  wizard,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/"+model.ScreenName, func(routerGroup chi.Router) {
		handler.list.Router(routerGroup)
		routerGroup.Route("/wizard", handler.wizardRouter)
		routerGroup.Post("/", handler.CreatePricePolicy)
		routerGroup.Get("/{id}", handler.GetPricePolicyByID)
		routerGroup.Put("/{id}", handler.UpdatePricePolicy)
		routerGroup.Patch("/{id}/status", handler.SetPricePolicyStatus)
	})
}

// CreatePricePolicy registers a new price policy.
// @Summary Create a price policy
// @Tags PricePolicy
// @Accept json
// @Produce json
// @Param request body dto.PricePolicyRequest true "Price policy"
// @Success 201 {object} response.Data[model.PricePolicy]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/price-policies [post]
// @Security BearerAuth
func (handler *Handler) CreatePricePolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePricePolicy")
	defer scope.End()

	req := dto.PricePolicyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	policy, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create price policy")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Price policy created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, policy)
}

// GetPricePolicyByID returns the current backend copy of a price policy.
// @Summary Get a price policy
// @Tags PricePolicy
// @Produce json
// @Param id path integer true "Price policy ID"
// @Success 200 {object} response.Data[model.PricePolicy]
// @Failure 404 {object} response.Error
// @Router /v1/price-policies/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetPricePolicyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPricePolicyByID")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	policy, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get price policy by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, policy)
}

// UpdatePricePolicy replaces the editable fields of a price policy.
// @Summary Update a price policy
// @Tags PricePolicy
// @Accept json
// @Produce json
// @Param id path integer true "Price policy ID"
// @Param request body dto.PricePolicyRequest true "Price policy"
// @Success 200 {object} response.Data[model.PricePolicy]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/price-policies/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdatePricePolicy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePricePolicy")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.PricePolicyRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	policy, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update price policy")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Price policy updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, policy)
}

// SetPricePolicyStatus activates or deactivates a price policy.
// @Summary Toggle a price policy
// @Tags PricePolicy
// @Produce json
// @Param id path integer true "Price policy ID"
// @Param active query boolean true "New status"
// @Success 200 {object} response.Data[model.PricePolicy]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/price-policies/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetPricePolicyStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetPricePolicyStatus")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.StatusRequest{Active: shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamActive))}

	policy, err := handler.service.SetStatus(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to change price policy status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Price policy status changed by user " + user)

	response.WithJSON(w, http.StatusOK, policy)
}
