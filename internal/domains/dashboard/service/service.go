package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"deportur/config"
	"deportur/infras/otel"
	"deportur/internal/domains/dashboard/model"
	"deportur/internal/domains/dashboard/repository"
	"deportur/shared/cache"
	"deportur/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Get(ctx context.Context, refresh bool) (model.Dashboard, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	cache cache.RedisCache
	ttl   int
	otel  otel.Otel
}

// New keeps metrics in the shared cache for CACHE_TTL seconds when a cache is configured.
func New(repo repository.Dashboard, redisCache cache.RedisCache, cfg *config.Config, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:  repo,
		cache: redisCache,
		ttl:   cfg.Cache.TTL,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, refresh bool) (res model.Dashboard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !refresh && s.cached() {
		var metrics model.Metrics
		if err = s.cache.Get(ctx, model.CacheKey, &metrics); err == nil {
			return model.NewDashboard(metrics, true), nil
		}

		log.Debug().Err(err).Msg("dashboard metrics not cached")
	}

	metrics, err := s.repo.Metrics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard metrics")

		return res, fmt.Errorf("failed to get dashboard metrics: %w", err)
	}

	if s.cached() {
		if cacheErr := s.cache.Save(ctx, model.CacheKey, metrics, s.ttl); cacheErr != nil {
			log.Warn().Err(cacheErr).Msg("failed to cache dashboard metrics")
		}
	}

	return model.NewDashboard(metrics, false), nil
}

func (s *serviceImpl) cached() bool {
	return s.cache != nil && s.ttl > 0
}
