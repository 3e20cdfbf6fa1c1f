package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activitySvc "deportur/internal/domains/activity/service"
	"deportur/internal/domains/pricepolicy/model"
	"deportur/internal/domains/pricepolicy/model/dto"
	"deportur/internal/domains/pricepolicy/repository"
	"deportur/shared/constant"
	"deportur/shared/listing"
	"deportur/shared/session"
	"deportur/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

type PricePolicy interface {
	listing.Service[model.PricePolicy]
	Get(ctx context.Context, id int64) (model.PricePolicy, error)
	Create(ctx context.Context, req dto.PricePolicyRequest) (model.PricePolicy, error)
	Update(ctx context.Context, id int64, req dto.PricePolicyRequest) (model.PricePolicy, error)
	SetStatus(ctx context.Context, id int64, req dto.StatusRequest) (model.PricePolicy, error)
}

type serviceImpl struct {
	*listing.Controller[model.PricePolicy]
	repo     repository.PricePolicy
	activity activitySvc.Activity
	otel     otel.Otel
}

func New(repo repository.PricePolicy, store session.Store, activity activitySvc.Activity, otel otel.Otel) PricePolicy {
	svc := &serviceImpl{
		repo:     repo,
		activity: activity,
		otel:     otel,
	}

	svc.Controller = listing.NewController(model.Schema(), repo, store, otel).OnDelete(svc.deleted)

	return svc
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.PricePolicy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicy.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get price policy")

		return res, fmt.Errorf("failed to get price policy: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.PricePolicyRequest) (res model.PricePolicy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicy.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req.ToInput())
	if err != nil {
		log.Error().Err(err).Msg("failed to create price policy")

		return res, fmt.Errorf("failed to create price policy: %w", err)
	}

	s.changed(ctx, activityModel.ActionCreate, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.PricePolicyRequest) (res model.PricePolicy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicy.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Update(ctx, id, req.ToInput())
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update price policy")

		return res, fmt.Errorf("failed to update price policy: %w", err)
	}

	s.changed(ctx, activityModel.ActionUpdate, res)

	return res, nil
}

// SetStatus activates or deactivates a policy without touching its other fields.
func (s *serviceImpl) SetStatus(ctx context.Context, id int64, req dto.StatusRequest) (res model.PricePolicy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricePolicy.SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.SetActive(ctx, id, *req.Active)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Bool("active", *req.Active).Msg("failed to change price policy status")

		return res, fmt.Errorf("failed to change price policy status: %w", err)
	}

	action := activityModel.ActionDeactivate
	if *req.Active {
		action = activityModel.ActionActivate
	}

	s.changed(ctx, action, res)

	return res, nil
}

func (s *serviceImpl) changed(ctx context.Context, action activityModel.Action, policy model.PricePolicy) {
	if err := s.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate price policy list")
	}

	s.activity.Record(ctx, activityDto.Entry{
		Action:   action,
		Entity:   model.EntityName,
		EntityID: policy.ID,
		Summary:  policy.Name,
	})
}

func (s *serviceImpl) deleted(ctx context.Context, policy model.PricePolicy) {
	s.activity.Record(ctx, activityDto.Entry{
		Action:   activityModel.ActionDelete,
		Entity:   model.EntityName,
		EntityID: policy.ID,
		Summary:  policy.Name,
	})
}
