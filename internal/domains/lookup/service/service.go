package service

import (
	"context"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/lookup/model"
	"rentdesk/internal/domains/lookup/model/dto"
	"rentdesk/internal/domains/lookup/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Lookup interface {
	Statuses(ctx context.Context, kind model.Kind) ([]dto.Option, error)
	Companies(ctx context.Context) ([]dto.Option, error)
}

type serviceImpl struct {
	repo  repository.Lookup
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Lookup, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Lookup {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Statuses(ctx context.Context, kind model.Kind) (res []dto.Option, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Statuses")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, ok := model.Tables[kind]; !ok {
		return nil, failure.NotFound("unknown status table") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyLookup, string(kind))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for statuses")

		return res, nil
	}

	statuses, err := s.repo.Statuses(ctx, kind)
	if err != nil {
		log.Error().Err(err).Str("kind", string(kind)).Msg("failed to get statuses")

		return nil, failure.Persistence(err)
	}

	res = dto.FromStatuses(statuses)
	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) Companies(ctx context.Context) (res []dto.Option, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Companies")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(constant.CacheKeyLookup, model.EntityCompany)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for companies")

		return res, nil
	}

	companies, err := s.repo.Companies(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get companies")

		return nil, failure.Persistence(err)
	}

	res = dto.FromCompanies(companies)
	shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)

	return res, nil
}
