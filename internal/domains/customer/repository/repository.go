package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deportur/infras/backend"
	"deportur/internal/domains/customer/model"
	"net/url"
)

type Customer interface {
	List(ctx context.Context) ([]model.Customer, error)
	Get(ctx context.Context, id int64) (model.Customer, error)
	GetByDocument(ctx context.Context, document string) (model.Customer, error)
	Create(ctx context.Context, input model.Input) (model.Customer, error)
	Update(ctx context.Context, id int64, input model.Input) (model.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	client   backend.Client
	resource backend.Resource[model.Customer]
}

func New(client backend.Client) Customer {
	return &repositoryImpl{
		client:   client,
		resource: backend.NewResource[model.Customer](client, model.ResourcePath),
	}
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.Customer, error) {
	return r.resource.List(ctx) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.Customer, error) {
	return r.resource.Get(ctx, id) //nolint:wrapcheck
}

func (r *repositoryImpl) GetByDocument(ctx context.Context, document string) (model.Customer, error) {
	return backend.Get[model.Customer](ctx, r.client, r.resource.Path("documento", url.PathEscape(document)), nil) //nolint:wrapcheck
}

func (r *repositoryImpl) Create(ctx context.Context, input model.Input) (model.Customer, error) {
	return r.resource.Create(ctx, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, input model.Input) (model.Customer, error) {
	return r.resource.Update(ctx, id, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.resource.Delete(ctx, id) //nolint:wrapcheck
}
