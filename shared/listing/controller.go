package listing

import (
	"context"
	"deportur/infras/otel"
	"deportur/shared/constant"
	"deportur/shared/export"
	"deportur/shared/failure"
	"deportur/shared/session"
	"deportur/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Source loads and deletes the rows of a screen on the backend.
type Source[T any] interface {
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id int64) error
}

// Service is the list screen surface every entity exposes.
type Service[T any] interface {
	Schema() Schema[T]
	List(ctx context.Context, query *Query, refresh bool) (View[T], error)
	Find(ctx context.Context, id int64) (T, error)
	Select(ctx context.Context, id int64) (T, error)
	Selected(ctx context.Context) (T, error)
	ClearSelection(ctx context.Context) error
	Invalidate(ctx context.Context) error
	Delete(ctx context.Context, id int64, decision Decision) (DeleteOutcome, error)
	DeleteSelected(ctx context.Context, decision Decision) (DeleteOutcome, error)
	Export(ctx context.Context) ([]byte, error)
}

// Controller runs the list screen of one entity for every operator session.
type Controller[T any] struct {
	schema   Schema[T]
	source   Source[T]
	store    session.Store
	otel     otel.Otel
	onDelete func(ctx context.Context, item T)
}

func NewController[T any](schema Schema[T], source Source[T], store session.Store, otel otel.Otel) *Controller[T] {
	return &Controller[T]{
		schema: schema,
		source: source,
		store:  store,
		otel:   otel,
	}
}

// OnDelete registers fn to run after a confirmed delete succeeded.
func (c *Controller[T]) OnDelete(fn func(ctx context.Context, item T)) *Controller[T] {
	c.onDelete = fn

	return c
}

func (c *Controller[T]) Schema() Schema[T] {
	return c.schema
}

// List returns the filtered view. The collection is fetched on first use and when refresh
// is set; a nil query keeps the stored filters.
func (c *Controller[T]) List(ctx context.Context, query *Query, refresh bool) (res View[T], err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.spanName("List"))
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, screen, err := c.open(ctx)
	if err != nil {
		return res, err
	}

	if refresh || !screen.Loaded() {
		if err = c.load(ctx, screen); err != nil {
			return res, err
		}
	}

	if query != nil {
		screen.SetQuery(*query)
	}

	if err = c.save(ctx, sessionID, screen); err != nil {
		return res, err
	}

	return screen.View(), nil
}

// Filtered returns the rows currently visible to the operator.
func (c *Controller[T]) Filtered(ctx context.Context) ([]T, error) {
	sessionID, screen, err := c.openLoaded(ctx)
	if err != nil {
		return nil, err
	}

	if err = c.save(ctx, sessionID, screen); err != nil {
		return nil, err
	}

	return screen.Filtered(), nil
}

// Find returns a loaded row by id.
func (c *Controller[T]) Find(ctx context.Context, id int64) (item T, err error) {
	sessionID, screen, err := c.openLoaded(ctx)
	if err != nil {
		return item, err
	}

	if err = c.save(ctx, sessionID, screen); err != nil {
		return item, err
	}

	item, ok := screen.Find(id)
	if !ok {
		return item, failure.NotFound(fmt.Sprintf("%s %d not found", c.schema.Entity, id)) // nolint:wrapcheck
	}

	return item, nil
}

func (c *Controller[T]) Select(ctx context.Context, id int64) (item T, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.spanName("Select"))
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, screen, err := c.openLoaded(ctx)
	if err != nil {
		return item, err
	}

	if !screen.Select(id) {
		return item, failure.NotFound(fmt.Sprintf("%s %d not found", c.schema.Entity, id)) // nolint:wrapcheck
	}

	if err = c.save(ctx, sessionID, screen); err != nil {
		return item, err
	}

	item, _ = screen.Selected()

	return item, nil
}

func (c *Controller[T]) Selected(ctx context.Context) (item T, err error) {
	sessionID, screen, err := c.open(ctx)
	if err != nil {
		return item, err
	}

	item, ok := screen.Selected()
	if !ok {
		return item, failure.NotFound(fmt.Sprintf("no %s selected", c.schema.Entity)) // nolint:wrapcheck
	}

	log.Trace().Str("session", sessionID).Str("screen", c.schema.Name).Msg("selected row read")

	return item, nil
}

func (c *Controller[T]) ClearSelection(ctx context.Context) error {
	sessionID, screen, err := c.open(ctx)
	if err != nil {
		return err
	}

	screen.ClearSelection()

	return c.save(ctx, sessionID, screen)
}

// Invalidate makes the next read refetch the collection, keeping filters and selection.
func (c *Controller[T]) Invalidate(ctx context.Context) error {
	sessionID, screen, err := c.open(ctx)
	if err != nil {
		return err
	}

	screen.Stale()

	return c.save(ctx, sessionID, screen)
}

// Delete runs the confirmation flow for the row with id. A pending decision returns a
// 428 failure carrying the prompt and leaves everything untouched.
func (c *Controller[T]) Delete(ctx context.Context, id int64, decision Decision) (res DeleteOutcome, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.spanName("Delete"))
	defer scope.End()
	defer scope.TraceIfError(err)

	sessionID, screen, err := c.openLoaded(ctx)
	if err != nil {
		return res, err
	}

	item, ok := screen.Find(id)
	if !ok {
		return res, failure.NotFound(fmt.Sprintf("%s %d not found", c.schema.Entity, id)) // nolint:wrapcheck
	}

	res.ID = id
	label := c.schema.Label(item)

	switch decision {
	case DecisionPending:
		return res, failure.PreconditionRequired(fmt.Sprintf("Delete %s %q? Repeat the request with confirm=true to proceed.", c.schema.Entity, label)) // nolint:wrapcheck
	case DecisionDeclined:
		res.Message = fmt.Sprintf("Deletion of %s %q cancelled", c.schema.Entity, label)

		return res, c.save(ctx, sessionID, screen)
	case DecisionConfirmed:
	}

	if err = c.source.Delete(ctx, id); err != nil {
		log.Error().Err(err).Int64("id", id).Str("screen", c.schema.Name).Msg("failed to delete row")

		return res, fmt.Errorf("failed to delete %s: %w", c.schema.Entity, err)
	}

	if c.schema.KeepOnDelete {
		screen.ClearSelection()
		screen.Stale()
	} else {
		screen.Remove(id)
	}

	if err = c.save(ctx, sessionID, screen); err != nil {
		return res, err
	}

	res.Deleted = true
	res.Message = fmt.Sprintf("%s %q deleted", c.schema.Entity, label)

	if c.onDelete != nil {
		c.onDelete(ctx, item)
	}

	return res, nil
}

// DeleteSelected runs Delete for the selected row.
func (c *Controller[T]) DeleteSelected(ctx context.Context, decision Decision) (DeleteOutcome, error) {
	item, err := c.Selected(ctx)
	if err != nil {
		return DeleteOutcome{}, err
	}

	return c.Delete(ctx, c.schema.Key(item), decision)
}

// Export renders the visible rows as a workbook.
func (c *Controller[T]) Export(ctx context.Context) (data []byte, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, c.spanName("Export"))
	defer scope.End()
	defer scope.TraceIfError(err)

	items, err := c.Filtered(ctx)
	if err != nil {
		return nil, err
	}

	data, err = export.XLSX(c.schema.Name, c.schema.Columns, items)
	if err != nil {
		log.Error().Err(err).Str("screen", c.schema.Name).Msg("failed to export rows")

		return nil, fmt.Errorf("failed to export %s: %w", c.schema.Name, err)
	}

	return data, nil
}

func (c *Controller[T]) open(ctx context.Context) (string, *Screen[T], error) {
	sessionID, err := session.ID(ctx)
	if err != nil {
		return constant.Empty, nil, failure.Unauthorized(err.Error()) // nolint:wrapcheck
	}

	screen := &Screen[T]{Schema: c.schema}

	if _, err = c.store.Load(ctx, sessionID, c.schema.Name, &screen.State); err != nil {
		log.Error().Err(err).Str("screen", c.schema.Name).Msg("failed to load screen state")

		return constant.Empty, nil, fmt.Errorf("failed to load %s screen: %w", c.schema.Name, err)
	}

	return sessionID, screen, nil
}

func (c *Controller[T]) openLoaded(ctx context.Context) (string, *Screen[T], error) {
	sessionID, screen, err := c.open(ctx)
	if err != nil {
		return constant.Empty, nil, err
	}

	if !screen.Loaded() {
		if err = c.load(ctx, screen); err != nil {
			return constant.Empty, nil, err
		}
	}

	return sessionID, screen, nil
}

func (c *Controller[T]) load(ctx context.Context, screen *Screen[T]) error {
	items, err := c.source.List(ctx)
	if err != nil {
		log.Error().Err(err).Str("screen", c.schema.Name).Msg("failed to fetch rows")

		return fmt.Errorf("failed to fetch %s: %w", c.schema.Name, err)
	}

	screen.Load(items, timezone.Now())

	return nil
}

func (c *Controller[T]) save(ctx context.Context, sessionID string, screen *Screen[T]) error {
	if err := c.store.Save(ctx, sessionID, c.schema.Name, screen.State); err != nil {
		log.Error().Err(err).Str("screen", c.schema.Name).Msg("failed to save screen state")

		return fmt.Errorf("failed to save %s screen: %w", c.schema.Name, err)
	}

	return nil
}

func (c *Controller[T]) spanName(operation string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelServiceScopeName, c.schema.Name, operation)
}
