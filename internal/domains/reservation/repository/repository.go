package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deportur/infras/backend"
	"deportur/internal/domains/reservation/model"
	"net/http"
	"net/url"
)

type Reservation interface {
	List(ctx context.Context) ([]model.Reservation, error)
	Get(ctx context.Context, id int64) (model.Reservation, error)
	Create(ctx context.Context, input model.Input) (model.Reservation, error)
	Update(ctx context.Context, id int64, input model.Input) (model.Reservation, error)
	// ChangeStatus sets the status through the backend's estado endpoint.
	ChangeStatus(ctx context.Context, id int64, status model.Status) (model.Reservation, error)
	Cancel(ctx context.Context, id int64) (model.Reservation, error)
	// Delete cancels the reservation. The backend keeps reservations for history.
	Delete(ctx context.Context, id int64) error
}

const statusParam = "estado"

type repositoryImpl struct {
	client   backend.Client
	resource backend.Resource[model.Reservation]
}

func New(client backend.Client) Reservation {
	return &repositoryImpl{
		client:   client,
		resource: backend.NewResource[model.Reservation](client, model.ResourcePath),
	}
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.Reservation, error) {
	return r.resource.List(ctx) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Reservation, error) {
	return r.resource.Get(ctx, id) //nolint:wrapcheck
}

func (r *repositoryImpl) Create(ctx context.Context, input model.Input) (model.Reservation, error) {
	return r.resource.Create(ctx, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, input model.Input) (model.Reservation, error) {
	return r.resource.Update(ctx, id, input) //nolint:wrapcheck
}

func (r *repositoryImpl) ChangeStatus(ctx context.Context, id int64, status model.Status) (model.Reservation, error) {
	query := url.Values{statusParam: {string(status)}}

	return backend.Send[model.Reservation](ctx, r.client, http.MethodPut, r.resource.Path(id, statusParam), query, nil) //nolint:wrapcheck
}

func (r *repositoryImpl) Cancel(ctx context.Context, id int64) (model.Reservation, error) {
	return backend.Send[model.Reservation](ctx, r.client, http.MethodPatch, r.resource.Path(id, "cancelar"), nil, nil) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	_, err := r.Cancel(ctx, id)

	return err
}
