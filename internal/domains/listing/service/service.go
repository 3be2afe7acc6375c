package service

import (
	"context"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/listing/model"
	"rentdesk/internal/domains/listing/model/dto"
	"rentdesk/internal/domains/listing/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"strconv"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	cacheDisplay = "display"
	cacheModals  = "modals"
	cachePrinted = "printed"
)

type Listing interface {
	Display(ctx context.Context, params gDto.QueryParams) ([]model.DisplayRow, error)
	Modals(ctx context.Context, params gDto.QueryParams) (dto.Modals, error)
	PrintedPage(ctx context.Context, customerID int64) (model.PrintedPage, error)
}

type serviceImpl struct {
	repo  repository.Listing
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Listing, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Listing {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Display(ctx context.Context, params gDto.QueryParams) (res []model.DisplayRow, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Display")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cached := shared.VersionedCacheKey(ctx, s.cache, constant.CacheKeyListing, cacheDisplay, params.CacheSuffix())

	if cached && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for display")

		return res, nil
	}

	res, err = s.repo.Display(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to get display rows")

		return nil, failure.Persistence(err)
	}

	if cached {
		shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)
	}

	return res, nil
}

// Modals loads the four editing listings concurrently. Any failure discards the others.
func (s *serviceImpl) Modals(ctx context.Context, params gDto.QueryParams) (res dto.Modals, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Modals")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cached := shared.VersionedCacheKey(ctx, s.cache, constant.CacheKeyListing, cacheModals, params.CacheSuffix())

	if cached && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for modals")

		return res, nil
	}

	group, gctx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		res.Customers, err = s.repo.Customers(gctx, params)

		return err
	})
	group.Go(func() (err error) {
		res.Equipment, err = s.repo.Equipment(gctx, params)

		return err
	})
	group.Go(func() (err error) {
		res.Rentals, err = s.repo.Rentals(gctx, params)

		return err
	})
	group.Go(func() (err error) {
		res.Vehicles, err = s.repo.Vehicles(gctx, params)

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to get modal listings")

		return dto.Modals{}, failure.Persistence(err)
	}

	if cached {
		shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)
	}

	return res, nil
}

func (s *serviceImpl) PrintedPage(ctx context.Context, customerID int64) (res model.PrintedPage, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PrintedPage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cached := shared.VersionedCacheKey(ctx, s.cache, constant.CacheKeyListing, cachePrinted, strconv.FormatInt(customerID, 10))

	if cached && s.cache.Get(ctx, cacheKey, &res) == nil {
		return res, nil
	}

	res, err = s.repo.PrintedPage(ctx, customerID)
	if err != nil {
		log.Error().Err(err).Int64("customer_id", customerID).Msg("failed to get printed page")

		return res, failure.Persistence(err)
	}

	if res.CustomerID == 0 {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	if cached {
		shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)
	}

	return res, nil
}
