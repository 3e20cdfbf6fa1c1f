// Package screen serves the list screen endpoints every entity shares: the filtered view,
// its export, row selection and the delete confirmation flow.
package screen

import (
	"deportur/infras/otel"
	"deportur/shared"
	"deportur/shared/constant"
	gDto "deportur/shared/dto"
	"deportur/shared/export"
	"deportur/shared/failure"
	"deportur/shared/listing"
	"deportur/shared/timezone"
	"deportur/shared/validator"
	"deportur/transport/http/response"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler[T any] struct {
	service listing.Service[T]
	otel    otel.Otel
}

func New[T any](service listing.Service[T], otel otel.Otel) Handler[T] {
	return Handler[T]{
		service: service,
		otel:    otel,
	}
}

// Router mounts the shared screen routes. Entity handlers add their own routes to the
// same group.
func (handler *Handler[T]) Router(router chi.Router) {
	router.Get("/", handler.List)
	router.Get("/export", handler.Export)
	router.Put("/selection", handler.Select)
	router.Delete("/selection", handler.ClearSelection)
	router.Get("/selected", handler.Selected)
	router.Delete("/selected", handler.DeleteSelected)
	router.Delete("/{id}", handler.Delete)
}

func (handler *Handler[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelHandlerScopeName, handler.service.Schema().Name, operation)
}

// List returns the filtered list screen.
// @Summary List screen
// @Description Returns the rows matching the search text and filters. The collection is fetched once per session; refresh=true reloads it. Filters that are not sent keep their previous value.
// @Tags Screen
// @Produce json
// @Param entity path string true "Screen" Enums(customers, destinations, equipment-types, equipment, reservations, price-policies)
// @Param search query string false "Case-insensitive search text"
// @Param refresh query boolean false "Reload the collection from the backend"
// @Success 200 {object} response.Data[listing.View[any]]
// @Failure 401 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/{entity} [get]
// @Security BearerAuth
func (handler *Handler[T]) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.spanName("List"))
	defer scope.End()

	var query *listing.Query

	if parsed, present := handler.service.Schema().QueryFromValues(r.URL.Query()); present {
		query = &parsed
	}

	refresh := shared.ConvertStringToBool(r.URL.Query().Get(constant.RequestParamRefresh))

	view, err := handler.service.List(ctx, query, refresh != nil && *refresh)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list screen")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, view)
}

// Export downloads the visible rows as a spreadsheet.
// @Summary Export screen
// @Description Exports the rows currently matching the screen filters as an XLSX workbook.
// @Tags Screen
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param entity path string true "Screen" Enums(customers, destinations, equipment-types, equipment, reservations, price-policies)
// @Success 200 {file} file
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/{entity}/export [get]
// @Security BearerAuth
func (handler *Handler[T]) Export(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.spanName("Export"))
	defer scope.End()

	data, err := handler.service.Export(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export screen")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, constant.ContentTypeXLSX, export.FileName(handler.service.Schema().Name, timezone.Now()), data)
}

// Select stages a row for the edit and delete actions.
// @Summary Select row
// @Tags Screen
// @Accept json
// @Produce json
// @Param entity path string true "Screen" Enums(customers, destinations, equipment-types, equipment, reservations, price-policies)
// @Param request body gDto.SelectionRequest true "Row to select"
// @Success 200 {object} response.Data[any]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/{entity}/selection [put]
// @Security BearerAuth
func (handler *Handler[T]) Select(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.spanName("Select"))
	defer scope.End()

	req := gDto.SelectionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	item, err := handler.service.Select(ctx, req.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", req.ID).Msg("failed to select row")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// ClearSelection drops the staged row.
// @Summary Clear selection
// @Tags Screen
// @Produce json
// @Param entity path string true "Screen" Enums(customers, destinations, equipment-types, equipment, reservations, price-policies)
// @Success 200 {object} response.Message
// @Router /v1/{entity}/selection [delete]
// @Security BearerAuth
func (handler *Handler[T]) ClearSelection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.spanName("ClearSelection"))
	defer scope.End()

	if err := handler.service.ClearSelection(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear selection")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Selection cleared")
}

// Selected returns the staged row.
// @Summary Selected row
// @Tags Screen
// @Produce json
// @Param entity path string true "Screen" Enums(customers, destinations, equipment-types, equipment, reservations, price-policies)
// @Success 200 {object} response.Data[any]
// @Failure 400 {object} response.Error "Nothing is selected"
// @Router /v1/{entity}/selected [get]
// @Security BearerAuth
func (handler *Handler[T]) Selected(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.spanName("Selected"))
	defer scope.End()

	item, err := handler.service.Selected(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get selected row")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// DeleteSelected deletes the staged row.
// @Summary Delete selected row
// @Description Without confirm the call answers 428 with the confirmation prompt; confirm=false declines and confirm=true deletes.
// @Tags Screen
// @Produce json
// @Param entity path string true "Screen" Enums(customers, destinations, equipment-types, equipment, reservations, price-policies)
// @Param confirm query boolean false "Operator answer to the confirmation prompt"
// @Success 200 {object} response.Data[listing.DeleteOutcome]
// @Failure 400 {object} response.Error
// @Failure 428 {object} response.Error
// @Router /v1/{entity}/selected [delete]
// @Security BearerAuth
func (handler *Handler[T]) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.spanName("DeleteSelected"))
	defer scope.End()

	decision := listing.ParseDecision(r.URL.Query().Get(constant.RequestParamConfirm))

	outcome, err := handler.service.DeleteSelected(ctx, decision)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete selected row")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, outcome)
}

// Delete deletes a row by id.
// @Summary Delete row
// @Description Without confirm the call answers 428 with the confirmation prompt; confirm=false declines and confirm=true deletes.
// @Tags Screen
// @Produce json
// @Param entity path string true "Screen" Enums(customers, destinations, equipment-types, equipment, reservations, price-policies)
// @Param id path integer true "Row ID"
// @Param confirm query boolean false "Operator answer to the confirmation prompt"
// @Success 200 {object} response.Data[listing.DeleteOutcome]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 428 {object} response.Error
// @Router /v1/{entity}/{id} [delete]
// @Security BearerAuth
func (handler *Handler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, handler.spanName("Delete"))
	defer scope.End()

	id, err := ParamID(r, constant.RequestParamID)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	decision := listing.ParseDecision(r.URL.Query().Get(constant.RequestParamConfirm))

	outcome, err := handler.service.Delete(ctx, id, decision)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete row")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if outcome.Deleted {
		scope.AddEvent(fmt.Sprintf("Row %d deleted by user %s", id, user))
	}

	response.WithJSON(w, http.StatusOK, outcome)
}

// ParamID reads a positive numeric path parameter.
func ParamID(r *http.Request, name string) (int64, error) {
	id, err := shared.ConvertStringToInt64(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString(name + " must be a positive number") //nolint:wrapcheck
	}

	return id, nil
}

// Decode reads a JSON body without validating it, for requests whose checks run later.
func Decode[T any](r *http.Request, data *T) error {
	if err := json.NewDecoder(r.Body).Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}
