package service

import (
	"context"
	"encoding/json"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/equipment/model"
	"rentdesk/internal/domains/equipment/model/dto"
	"rentdesk/internal/domains/equipment/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"rentdesk/shared/session"
	"rentdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

const cacheAvailableTypes = "available-equipment"

type Equipment interface {
	Create(ctx context.Context, req dto.CreateEquipmentRequest) (int64, error)
	Update(ctx context.Context, id int64, payload map[string]json.RawMessage) error
	AvailableTypes(ctx context.Context) ([]string, error)
}

type serviceImpl struct {
	repo  repository.Equipment
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Equipment, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Equipment {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEquipmentRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEquipment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session.Require(ctx)
	if err != nil {
		return 0, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return 0, err
	}

	id, err = s.repo.Insert(ctx, req.ToModel(sess.AgentID))
	if err != nil {
		log.Error().Err(err).Msg("failed to create equipment")

		return 0, failure.Persistence(err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyListing)

	return id, nil
}

// Update writes exactly the allowed keys present in payload.
func (s *serviceImpl) Update(ctx context.Context, id int64, payload map[string]json.RawMessage) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateEquipment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session.Require(ctx)
	if err != nil {
		return err
	}

	mod, err := dto.UpdateFields.Build(payload)
	if err != nil {
		return err
	}

	mod[constant.FieldUpdatedByAgentID] = sess.AgentID

	affected, err := s.repo.Update(ctx, mod, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("equipment_id", id).Msg("failed to update equipment")

		return failure.Persistence(err)
	}

	if affected == 0 {
		return failure.NotFound("equipment not found") // nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyListing)

	return nil
}

func (s *serviceImpl) AvailableTypes(ctx context.Context) (res []string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailableTypes")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey, cached := shared.VersionedCacheKey(ctx, s.cache, constant.CacheKeyListing, cacheAvailableTypes)

	if cached && s.cache.Get(ctx, cacheKey, &res) == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for available equipment")

		return res, nil
	}

	res, err = s.repo.AvailableTypes(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get available equipment types")

		return nil, failure.Persistence(err)
	}

	if cached {
		shared.SaveCache(ctx, s.cache, cacheKey, res, s.cfg.Cache.TTL)
	}

	return res, nil
}
