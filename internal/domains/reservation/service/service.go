package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activitySvc "deportur/internal/domains/activity/service"
	"deportur/internal/domains/reservation/model"
	"deportur/internal/domains/reservation/model/dto"
	"deportur/internal/domains/reservation/repository"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/listing"
	"deportur/shared/session"
	"deportur/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Reservation interface {
	listing.Service[model.Reservation]
	Get(ctx context.Context, id int64) (model.Reservation, error)
	Create(ctx context.Context, req dto.ReservationRequest) (model.Reservation, error)
	Update(ctx context.Context, id int64, req dto.ReservationRequest) (model.Reservation, error)
	Confirm(ctx context.Context, id int64) (model.Reservation, error)
	ChangeStatus(ctx context.Context, id int64, status model.Status) (model.Reservation, error)
	Cancel(ctx context.Context, id int64) (model.Reservation, error)
}

type serviceImpl struct {
	*listing.Controller[model.Reservation]
	repo     repository.Reservation
	activity activitySvc.Activity
	otel     otel.Otel
}

func New(repo repository.Reservation, store session.Store, activity activitySvc.Activity, otel otel.Otel) Reservation {
	svc := &serviceImpl{
		repo:     repo,
		activity: activity,
		otel:     otel,
	}

	svc.Controller = listing.NewController(model.Schema(), repo, store, otel).OnDelete(svc.cancelled)

	return svc
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.ReservationRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req.ToInput())
	if err != nil {
		log.Error().Err(err).Int64("customer", req.CustomerID).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	s.changed(ctx, activityModel.ActionCreate, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.ReservationRequest) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Update(ctx, id, req.ToInput())
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update reservation")

		return res, fmt.Errorf("failed to update reservation: %w", err)
	}

	s.changed(ctx, activityModel.ActionUpdate, res)

	return res, nil
}

// Confirm moves a pending reservation to confirmed.
func (s *serviceImpl) Confirm(ctx context.Context, id int64) (model.Reservation, error) {
	return s.ChangeStatus(ctx, id, model.StatusConfirmed)
}

func (s *serviceImpl) ChangeStatus(ctx context.Context, id int64, status model.Status) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.ChangeStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !status.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("Unknown reservation status %q.", status)) //nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if !current.Status.CanMoveTo(status) {
		return res, failure.Conflict(fmt.Sprintf("A reservation that is %s cannot be set to %s.", //nolint:wrapcheck
			current.Status.Label(), status.Label()))
	}

	res, err = s.repo.ChangeStatus(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Str("status", string(status)).Msg("failed to change reservation status")

		return res, fmt.Errorf("failed to change reservation status: %w", err)
	}

	s.changed(ctx, statusAction(status), res)

	return res, nil
}

func statusAction(status model.Status) activityModel.Action {
	switch status {
	case model.StatusConfirmed:
		return activityModel.ActionConfirm
	case model.StatusCancelled:
		return activityModel.ActionCancel
	case model.StatusPending, model.StatusInProgress, model.StatusFinished:
		return activityModel.ActionUpdate
	default:
		return activityModel.ActionUpdate
	}
}

func (s *serviceImpl) Cancel(ctx context.Context, id int64) (res model.Reservation, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Cancel(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to cancel reservation")

		return res, fmt.Errorf("failed to cancel reservation: %w", err)
	}

	s.changed(ctx, activityModel.ActionCancel, res)

	return res, nil
}

func (s *serviceImpl) changed(ctx context.Context, action activityModel.Action, reservation model.Reservation) {
	if err := s.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate reservation list")
	}

	s.activity.Record(ctx, activityDto.Entry{
		Action:   action,
		Entity:   model.EntityName,
		EntityID: reservation.ID,
		Summary:  reservation.Summary(),
	})
}

func (s *serviceImpl) cancelled(ctx context.Context, reservation model.Reservation) {
	s.activity.Record(ctx, activityDto.Entry{
		Action:   activityModel.ActionCancel,
		Entity:   model.EntityName,
		EntityID: reservation.ID,
		Summary:  reservation.Summary(),
	})
}
