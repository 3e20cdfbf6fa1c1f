package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/config"
	"deportur/infras/kafka"
	"deportur/infras/metrics"
	"deportur/infras/otel"
	"deportur/internal/domains/activity/model"
	"deportur/internal/domains/activity/model/dto"
	"deportur/internal/domains/activity/repository"
	"deportur/shared/constant"
	gDto "deportur/shared/dto"
	"deportur/shared/failure"
	"deportur/shared/timezone"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
)

const systemActor = "system"

var sortableColumns = []string{model.FieldCreatedAt, model.FieldEntity, model.FieldAction, model.FieldActor}

type Activity interface {
	// Record stores and publishes entry in the background. Failures are logged only.
	Record(ctx context.Context, entry dto.Entry)
	List(ctx context.Context, params gDto.QueryParams, filter Filter) (dto.GetActivitiesResponse, error)
	// Wait blocks until every pending Record has finished.
	Wait()
}

// Filter narrows the activity list. Empty values are inactive.
type Filter struct {
	Entity string
	Action string
	Actor  string
}

func (f Filter) group() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Entity != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldEntity, Operator: gDto.FilterOperatorEq, Value: f.Entity})
	}

	if f.Action != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldAction, Operator: gDto.FilterOperatorEq, Value: f.Action})
	}

	if f.Actor != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{Field: model.FieldActor, Operator: gDto.FilterOperatorLike, Value: f.Actor})
	}

	return group
}

type serviceImpl struct {
	repo    repository.Activity
	kafka   kafka.Client
	metrics *metrics.Metrics
	cfg     *config.Config
	otel    otel.Otel
	pending sync.WaitGroup
}

func New(repo repository.Activity, kafka kafka.Client, metrics *metrics.Metrics, cfg *config.Config, otel otel.Otel) Activity {
	return &serviceImpl{
		repo:    repo,
		kafka:   kafka,
		metrics: metrics,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Record(ctx context.Context, entry dto.Entry) {
	activity := entry.ToModel(actor(ctx), timezone.Now())
	detached := context.WithoutCancel(ctx)

	s.pending.Add(1)

	go func() {
		defer s.pending.Done()

		err := s.store(detached, activity)
		s.metrics.ObserveActivity(activity.Entity, string(activity.Action), err)
	}()
}

func (s *serviceImpl) Wait() {
	s.pending.Wait()
}

func (s *serviceImpl) store(ctx context.Context, activity model.Activity) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".activity.Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.repo.Enabled() {
		if err = s.repo.Insert(ctx, activity); err != nil {
			log.Error().Err(err).Str("entity", activity.Entity).Str("action", string(activity.Action)).Msg("failed to store activity")

			return fmt.Errorf("failed to store activity: %w", err)
		}
	}

	var event dto.Event
	event.FromModel(activity)

	message := kafka.Message{
		Key:   activity.Entity + ":" + strconv.FormatInt(activity.EntityID, 10),
		Value: event,
	}

	if err = s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.Activity, []kafka.Message{message}); err != nil {
		log.Error().Err(err).Str("entity", activity.Entity).Str("action", string(activity.Action)).Msg("failed to publish activity")

		return fmt.Errorf("failed to publish activity: %w", err)
	}

	return nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams, filter Filter) (res dto.GetActivitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".activity.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !s.repo.Enabled() {
		return res, failure.New(http.StatusServiceUnavailable, "The activity log is not available.") // nolint:wrapcheck
	}

	params.RestrictSort(sortableColumns, model.FieldCreatedAt)
	group := filter.group()

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count activities")

		return res, fmt.Errorf("failed to count activities: %w", err)
	}

	activities, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get activities")

		return res, fmt.Errorf("failed to get activities: %w", err)
	}

	res.FromModels(activities, total, params.Limit)

	return res, nil
}

func actor(ctx context.Context) string {
	if email, _ := ctx.Value(constant.ContextKeyUserEmail).(string); email != constant.Empty {
		return email
	}

	if user, _ := ctx.Value(constant.ContextKeyUserID).(string); user != constant.Empty {
		return user
	}

	return systemActor
}
