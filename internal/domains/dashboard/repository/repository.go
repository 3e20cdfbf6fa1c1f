package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deportur/infras/backend"
	"deportur/internal/domains/dashboard/model"
)

type Dashboard interface {
	Metrics(ctx context.Context) (model.Metrics, error)
}

type repositoryImpl struct {
	client backend.Client
}

func New(client backend.Client) Dashboard {
	return &repositoryImpl{client: client}
}

func (r *repositoryImpl) Metrics(ctx context.Context) (model.Metrics, error) {
	return backend.Get[model.Metrics](ctx, r.client, model.ResourcePath, nil) //nolint:wrapcheck
}
