package customer

import (
	"deportur/infras/otel"
	"deportur/internal/domains/customer/model"
	"deportur/internal/domains/customer/model/dto"
	"deportur/internal/domains/customer/service"
	"deportur/internal/handlers/screen"
	"deportur/shared/constant"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const paramDocument = "document"

type Handler struct {
	list    screen.Handler[model.Customer]
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		list:    screen.New[model.Customer](service, otel),
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/"+model.ScreenName, func(routerGroup chi.Router) {
		handler.list.Router(routerGroup)
		routerGroup.Post("/", handler.CreateCustomer)
		routerGroup.Get("/document/{document}", handler.GetCustomerByDocument)
		routerGroup.Get("/{id}", handler.GetCustomerByID)
		routerGroup.Put("/{id}", handler.UpdateCustomer)
	})
}

// CreateCustomer registers a new customer.
// @Summary Create a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param request body dto.CustomerRequest true "Customer"
// @Success 201 {object} response.Data[model.Customer]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Document already registered"
// @Router /v1/customers [post]
// @Security BearerAuth
func (handler *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	customer, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, customer)
}

// GetCustomerByID returns the current backend copy of a customer.
// @Summary Get a customer
// @Tags Customer
// @Produce json
// @Param id path integer true "Customer ID"
// @Success 200 {object} response.Data[model.Customer]
// @Failure 404 {object} response.Error
// @Router /v1/customers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	customer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get customer by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}

// GetCustomerByDocument looks a customer up by identity document.
// @Summary Find a customer by document
// @Tags Customer
// @Produce json
// @Param document path string true "Identity document"
// @Success 200 {object} response.Data[model.Customer]
// @Failure 404 {object} response.Error
// @Router /v1/customers/document/{document} [get]
// @Security BearerAuth
func (handler *Handler) GetCustomerByDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByDocument")
	defer scope.End()

	document := strings.TrimSpace(chi.URLParam(r, paramDocument))

	customer, err := handler.service.GetByDocument(ctx, document)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer by document")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}

// UpdateCustomer replaces the editable fields of a customer.
// @Summary Update a customer
// @Tags Customer
// @Accept json
// @Produce json
// @Param id path integer true "Customer ID"
// @Param request body dto.CustomerRequest true "Customer"
// @Success 200 {object} response.Data[model.Customer]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/customers/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id, err := screen.ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CustomerRequest{}

	if err = validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	customer, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer updated successfully by user " + user)

	response.WithJSON(w, http.StatusOK, customer)
}
