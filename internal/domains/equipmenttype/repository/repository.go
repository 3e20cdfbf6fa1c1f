package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -equipmenttype=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"deportur/infras/backend"
	"deportur/internal/domains/equipmenttype/model"
)

type EquipmentType interface {
	List(ctx context.Context) ([]model.EquipmentType, error)
	Get(ctx context.Context, id int64) (model.EquipmentType, error)
	Create(ctx context.Context, input model.Input) (model.EquipmentType, error)
	Update(ctx context.Context, id int64, input model.Input) (model.EquipmentType, error)
	Delete(ctx context.Context, id int64) error
}

type repositoryImpl struct {
	resource backend.Resource[model.EquipmentType]
}

func New(client backend.Client) EquipmentType {
	return &repositoryImpl{
		resource: backend.NewResource[model.EquipmentType](client, model.ResourcePath),
	}
}

func (r *repositoryImpl) List(ctx context.Context) ([]model.EquipmentType, error) {
	return r.resource.List(ctx) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id int64) (model.EquipmentType, error) {
	return r.resource.Get(ctx, id) //nolint:wrapcheck
}

func (r *repositoryImpl) Create(ctx context.Context, input model.Input) (model.EquipmentType, error) {
	return r.resource.Create(ctx, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Update(ctx context.Context, id int64, input model.Input) (model.EquipmentType, error) {
	return r.resource.Update(ctx, id, input) //nolint:wrapcheck
}

func (r *repositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.resource.Delete(ctx, id) //nolint:wrapcheck
}
