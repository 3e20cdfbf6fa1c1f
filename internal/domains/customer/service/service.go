package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activitySvc "deportur/internal/domains/activity/service"
	"deportur/internal/domains/customer/model"
	"deportur/internal/domains/customer/model/dto"
	"deportur/internal/domains/customer/repository"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/listing"
	"deportur/shared/session"
	"deportur/shared/validator"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

type Customer interface {
	listing.Service[model.Customer]
	Get(ctx context.Context, id int64) (model.Customer, error)
	GetByDocument(ctx context.Context, document string) (model.Customer, error)
	Create(ctx context.Context, req dto.CustomerRequest) (model.Customer, error)
	Update(ctx context.Context, id int64, req dto.CustomerRequest) (model.Customer, error)
}

type serviceImpl struct {
	*listing.Controller[model.Customer]
	repo     repository.Customer
	activity activitySvc.Activity
	otel     otel.Otel
}

func New(repo repository.Customer, store session.Store, activity activitySvc.Activity, otel otel.Otel) Customer {
	svc := &serviceImpl{
		repo:     repo,
		activity: activity,
		otel:     otel,
	}

	svc.Controller = listing.NewController(model.Schema(), repo, store, otel).OnDelete(svc.deleted)

	return svc
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) GetByDocument(ctx context.Context, document string) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.GetByDocument")
	defer scope.End()
	defer scope.TraceIfError(err)

	document = strings.TrimSpace(document)
	if document == constant.Empty {
		return res, failure.BadRequestFromString("documento is required") //nolint:wrapcheck
	}

	res, err = s.repo.GetByDocument(ctx, document)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer by document")

		return res, fmt.Errorf("failed to get customer by document: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CustomerRequest) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req.ToInput())
	if err != nil {
		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	s.changed(ctx, activityModel.ActionCreate, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.CustomerRequest) (res model.Customer, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".customer.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Update(ctx, id, req.ToInput())
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update customer")

		return res, fmt.Errorf("failed to update customer: %w", err)
	}

	s.changed(ctx, activityModel.ActionUpdate, res)

	return res, nil
}

func (s *serviceImpl) changed(ctx context.Context, action activityModel.Action, customer model.Customer) {
	if err := s.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate customer list")
	}

	s.activity.Record(ctx, activityDto.Entry{
		Action:   action,
		Entity:   model.EntityName,
		EntityID: customer.ID,
		Summary:  customer.FullName(),
	})
}

func (s *serviceImpl) deleted(ctx context.Context, customer model.Customer) {
	s.activity.Record(ctx, activityDto.Entry{
		Action:   activityModel.ActionDelete,
		Entity:   model.EntityName,
		EntityID: customer.ID,
		Summary:  customer.FullName(),
	})
}
