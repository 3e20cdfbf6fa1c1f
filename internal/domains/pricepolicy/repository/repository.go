package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deportur/infras/backend"
	"deportur/internal/domains/pricepolicy/model"
	"net/http"
	"net/url"
	"strconv"
)

type PricePolicy interface {
	List(ctx context.Context) ([]model.PricePolicy, error)
	Get(ctx context.Context, id int64) (model.PricePolicy, error)
	Create(ctx context.Context, input model.Input) (model.PricePolicy, error)
	Update(ctx context.Context, id int64, input model.Input) (model.PricePolicy, error)
	SetActive(ctx context.Context, id int64, active bool) (model.PricePolicy, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	client   backend.Client
	resource backend.Resource[model.PricePolicy]
}

func New(client backend.Client) PricePolicy {
	return &repositoryImpl{
		client:   client,
		resource: backend.NewResource[model.PricePolicy](client, model.ResourcePath),
	}
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.PricePolicy, error) {
	return r.resource.List(ctx) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.PricePolicy, error) {
	return r.resource.Get(ctx, id) //nolint:wrapcheck
}

func (r *repositoryImpl) Create(ctx context.Context, input model.Input) (model.PricePolicy, error) {
	return r.resource.Create(ctx, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, input model.Input) (model.PricePolicy, error) {
	return r.resource.Update(ctx, id, input) //nolint:wrapcheck
}

func (r *repositoryImpl) SetActive(ctx context.Context, id int64, active bool) (model.PricePolicy, error) {
	query := url.Values{"activo": {strconv.FormatBool(active)}}

	return backend.Send[model.PricePolicy](ctx, r.client, http.MethodPatch, r.resource.Path(id, "estado"), query, nil) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.resource.Delete(ctx, id) //nolint:wrapcheck
}
