package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deportur/infras/backend"
	"deportur/internal/domains/equipment/model"
	gModel "deportur/shared/model"
	"net/url"
	"strconv"
)

type Equipment interface {
	List(ctx context.Context) ([]model.Equipment, error)
	Get(ctx context.Context, id int64) (model.Equipment, error)
	Create(ctx context.Context, input model.Input) (model.Equipment, error)
	Update(ctx context.Context, id int64, input model.Input) (model.Equipment, error)
	Delete(ctx context.Context, id int64) error
	Available(ctx context.Context, destinationID int64, start, end gModel.Date) ([]model.Equipment, error)
	CheckAvailability(ctx context.Context, destinationID int64, start, end gModel.Date) (model.Availability, error)
}

type repositoryImpl struct {
	client   backend.Client
	resource backend.Resource[model.Equipment]
}

func New(client backend.Client) Equipment {
	return &repositoryImpl{
		client:   client,
		resource: backend.NewResource[model.Equipment](client, model.ResourcePath),
	}
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.Equipment, error) {
	return r.resource.List(ctx) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Equipment, error) {
	return r.resource.Get(ctx, id) //nolint:wrapcheck
}

func (r *repositoryImpl) Create(ctx context.Context, input model.Input) (model.Equipment, error) {
	return r.resource.Create(ctx, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, input model.Input) (model.Equipment, error) {
	return r.resource.Update(ctx, id, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.resource.Delete(ctx, id) //nolint:wrapcheck
}

func (r *repositoryImpl) Available(ctx context.Context, destinationID int64, start, end gModel.Date) ([]model.Equipment, error) {
	return backend.Get[[]model.Equipment](ctx, r.client, r.resource.Path("disponibles"), rangeQuery(destinationID, start, end)) //nolint:wrapcheck
}

func (r *repositoryImpl) CheckAvailability(ctx context.Context, destinationID int64, start, end gModel.Date) (model.Availability, error) {
	return backend.Get[model.Availability](ctx, r.client, r.resource.Path("verificar-disponibilidad"), rangeQuery(destinationID, start, end)) //nolint:wrapcheck
}

func rangeQuery(destinationID int64, start, end gModel.Date) url.Values {
	return url.Values{
		"destino": {strconv.FormatInt(destinationID, 10)},
		"inicio":  {start.String()},
		"fin":     {end.String()},
	}
}
