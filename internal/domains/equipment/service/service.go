package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/infras/otel"
	"deportur/infras/s3"
	activityModel "deportur/internal/domains/activity/model"
	activityDto "deportur/internal/domains/activity/model/dto"
	activitySvc "deportur/internal/domains/activity/service"
	"deportur/internal/domains/equipment/model"
	"deportur/internal/domains/equipment/model/dto"
	"deportur/internal/domains/equipment/repository"
	"deportur/shared/constant"
	"deportur/shared/failure"
	"deportur/shared/listing"
	"deportur/shared/session"
	"deportur/shared/validator"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Equipment interface {
	listing.Service[model.Equipment]
	Get(ctx context.Context, id int64) (model.Equipment, error)
	Create(ctx context.Context, req dto.EquipmentRequest) (model.Equipment, error)
	Update(ctx context.Context, id int64, req dto.EquipmentRequest) (model.Equipment, error)
	UploadImage(ctx context.Context, id int64, upload dto.ImageUpload) (model.Equipment, error)
	Available(ctx context.Context, req dto.AvailabilityRequest) ([]model.Equipment, error)
	CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (model.Availability, error)
}

type serviceImpl struct {
	*listing.Controller[model.Equipment]
	repo     repository.Equipment
	s3       s3.S3
	activity activitySvc.Activity
	otel     otel.Otel
}

func New(repo repository.Equipment, store session.Store, storage s3.S3, activity activitySvc.Activity, otel otel.Otel) Equipment {
	svc := &serviceImpl{
		repo:     repo,
		s3:       storage,
		activity: activity,
		otel:     otel,
	}

	svc.Controller = listing.NewController(model.Schema(), repo, store, otel).OnDelete(svc.deleted)

	return svc
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res model.Equipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get equipment")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.EquipmentRequest) (res model.Equipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Create(ctx, req.ToInput())
	if err != nil {
		log.Error().Err(err).Msg("failed to create equipment")

		return res, fmt.Errorf("failed to create equipment: %w", err)
	}

	s.changed(ctx, activityModel.ActionCreate, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.EquipmentRequest) (res model.Equipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	res, err = s.repo.Update(ctx, id, req.ToInput())
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update equipment")

		return res, fmt.Errorf("failed to update equipment: %w", err)
	}

	s.changed(ctx, activityModel.ActionUpdate, res)

	return res, nil
}

// UploadImage stores the image and points the item at it. The previous image is removed
// once the item no longer references it.
func (s *serviceImpl) UploadImage(ctx context.Context, id int64, upload dto.ImageUpload) (res model.Equipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.UploadImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&upload); err != nil {
		return res, err //nolint:wrapcheck
	}

	current, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to get equipment")

		return res, fmt.Errorf("failed to get equipment: %w", err)
	}

	imageURL, err := s.s3.UploadFile(ctx, model.ImageDir, uuid.NewString()+upload.Extension(), upload.ContentType, upload.Data)
	if err != nil {
		if errors.Is(err, s3.ErrNotConfigured) {
			return res, failure.New(http.StatusServiceUnavailable, "Image uploads are not available.") //nolint:wrapcheck
		}

		log.Error().Err(err).Int64("id", id).Msg("failed to upload equipment image")

		return res, fmt.Errorf("failed to upload equipment image: %w", err)
	}

	input := model.InputFromModel(current)
	input.ImageURL = &imageURL

	res, err = s.repo.Update(ctx, id, input)
	if err != nil {
		log.Error().Err(err).Int64("id", id).Msg("failed to update equipment image")

		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), imageURL); delErr != nil {
			log.Warn().Err(delErr).Str("url", imageURL).Msg("failed to delete orphan equipment image")
		}

		return res, fmt.Errorf("failed to update equipment image: %w", err)
	}

	if current.ImageURL != constant.Empty && current.ImageURL != imageURL {
		if delErr := s.s3.DeleteFile(context.WithoutCancel(ctx), current.ImageURL); delErr != nil {
			log.Warn().Err(delErr).Str("url", current.ImageURL).Msg("failed to delete previous equipment image")
		}
	}

	s.changed(ctx, activityModel.ActionUpload, res)

	return res, nil
}

func (s *serviceImpl) Available(ctx context.Context, req dto.AvailabilityRequest) (res []model.Equipment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.Available")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	start, end := req.Range()

	res, err = s.repo.Available(ctx, req.DestinationID, start, end)
	if err != nil {
		log.Error().Err(err).Int64("destination", req.DestinationID).Msg("failed to get available equipment")

		return res, fmt.Errorf("failed to get available equipment: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, req dto.AvailabilityRequest) (res model.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".equipment.CheckAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	start, end := req.Range()

	res, err = s.repo.CheckAvailability(ctx, req.DestinationID, start, end)
	if err != nil {
		log.Error().Err(err).Int64("destination", req.DestinationID).Msg("failed to check equipment availability")

		return res, fmt.Errorf("failed to check equipment availability: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) changed(ctx context.Context, action activityModel.Action, equipment model.Equipment) {
	if err := s.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate equipment list")
	}

	s.activity.Record(ctx, activityDto.Entry{
		Action:   action,
		Entity:   model.EntityName,
		EntityID: equipment.ID,
		Summary:  equipment.Name,
	})
}

func (s *serviceImpl) deleted(ctx context.Context, equipment model.Equipment) {
	s.activity.Record(ctx, activityDto.Entry{
		Action:   activityModel.ActionDelete,
		Entity:   model.EntityName,
		EntityID: equipment.ID,
		Summary:  equipment.Name,
	})
}
