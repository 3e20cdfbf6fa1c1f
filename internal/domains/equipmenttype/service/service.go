package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activitySvc "deportur/internal/domains/activity/service"
	"deportur/internal/domains/equipmenttype/model"
	"deportur/internal/domains/equipmenttype/model/dto"
	"deportur/internal/domains/equipmenttype/repository"
	"deportur/shared/constant"
	"deportur/shared/listing"
	"deportur/shared/session"
	"deportur/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

type EquipmentType interface {
	listing.Service[model.EquipmentType]
	Get(ctx context.Context, id int64) (model.EquipmentType, error)
	Create(ctx context.Context, req dto.EquipmentTypeRequest) (model.EquipmentType, error)
	Update(ctx context.Context, id int64, req dto.EquipmentTypeRequest) (model.EquipmentType, error)
}

type serviceImpl struct {
	*listing.Controller[model.EquipmentType]
	repo     repository.EquipmentType
	activity activitySvc.Activity
	otel     otel.Otel
}

func New(repo repository.EquipmentType, store session.Store, activity activitySvc.Activity, otel otel.Otel) EquipmentType {
	svc := &serviceImpl{
		repo:     repo,
		activity: activity,
		otel:     otel,
	}

	svc.Controller = listing.NewController(model.Schema(), repo, store, otel).OnDelete(svc.deleted)

	return svc
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.EquipmentType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipmenttype.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get equipment type")

		return res, fmt.Errorf("failed to get equipment type: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.EquipmentTypeRequest) (res model.EquipmentType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipmenttype.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req.ToInput())
	if err != nil {
		log.Error().Err(err).Msg("failed to create equipment type")

		return res, fmt.Errorf("failed to create equipment type: %w", err)
	}

	s.changed(ctx, activityModel.ActionCreate, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.EquipmentTypeRequest) (res model.EquipmentType, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipmenttype.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Update(ctx, id, req.ToInput())
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update equipment type")

		return res, fmt.Errorf("failed to update equipment type: %w", err)
	}

	s.changed(ctx, activityModel.ActionUpdate, res)

	return res, nil
}

func (s *serviceImpl) changed(ctx context.Context, action activityModel.Action, equipmentType model.EquipmentType) {
	if err := s.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate equipment type list")
	}

	s.activity.Record(ctx, activityDto.Entry{
		Action:   action,
		Entity:   model.EntityName,
		EntityID: equipmentType.ID,
		Summary:  equipmentType.Name,
	})
}

func (s *serviceImpl) deleted(ctx context.Context, equipmentType model.EquipmentType) {
	s.activity.Record(ctx, activityDto.Entry{
		Action:   activityModel.ActionDelete,
		Entity:   model.EntityName,
		EntityID: equipmentType.ID,
		Summary:  equipmentType.Name,
	})
}
