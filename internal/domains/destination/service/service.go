package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activitySvc "deportur/internal/domains/activity/service"
	"deportur/internal/domains/destination/model"
	"deportur/internal/domains/destination/model/dto"
	"deportur/internal/domains/destination/repository"
	"deportur/shared/constant"
	"deportur/shared/listing"
	"deportur/shared/session"
	"deportur/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Destination interface {
	listing.Service[model.Destination]
	Get(ctx context.Context, id int64) (model.Destination, error)
	Create(ctx context.Context, req dto.DestinationRequest) (model.Destination, error)
	Update(ctx context.Context, id int64, req dto.DestinationRequest) (model.Destination, error)
}

type serviceImpl struct {
	*listing.Controller[model.Destination]
	repo     repository.Destination
	activity activitySvc.Activity
	otel     otel.Otel
}

func New(repo repository.Destination, store session.Store, activity activitySvc.Activity, otel otel.Otel) Destination {
	svc := &serviceImpl{
		repo:     repo,
		activity: activity,
		otel:     otel,
	}

	svc.Controller = listing.NewController(model.Schema(), repo, store, otel).OnDelete(svc.deleted)

	return svc
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Destination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get destination")

		return res, fmt.Errorf("failed to get destination: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.DestinationRequest) (res model.Destination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req.ToInput())
	if err != nil {
		log.Error().Err(err).Msg("failed to create destination")

		return res, fmt.Errorf("failed to create destination: %w", err)
	}

	s.changed(ctx, activityModel.ActionCreate, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.DestinationRequest) (res model.Destination, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Update(ctx, id, req.ToInput())
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update destination")

		return res, fmt.Errorf("failed to update destination: %w", err)
	}

	s.changed(ctx, activityModel.ActionUpdate, res)

	return res, nil
}

func (s *serviceImpl) changed(ctx context.Context, action activityModel.Action, destination model.Destination) {
	if err := s.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate destination list")
	}

	s.activity.Record(ctx, activityDto.Entry{
		Action:   action,
		Entity:   model.EntityName,
		EntityID: destination.ID,
		Summary:  destination.Name,
	})
}

func (s *serviceImpl) deleted(ctx context.Context, destination model.Destination) {
	s.activity.Record(ctx, activityDto.Entry{
		Action:   activityModel.ActionDelete,
		Entity:   model.EntityName,
		EntityID: destination.ID,
		Summary:  destination.Name,
	})
}
