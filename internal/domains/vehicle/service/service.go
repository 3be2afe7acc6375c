package service

import (
	"context"
	"encoding/json"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/vehicle/model"
	"rentdesk/internal/domains/vehicle/model/dto"
	"rentdesk/internal/domains/vehicle/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"rentdesk/shared/session"
	"rentdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

type Vehicle interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (int64, error)
	Update(ctx context.Context, id int64, payload map[string]json.RawMessage) error
}

type serviceImpl struct {
	repo  repository.Vehicle
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Vehicle, cache cache.RedisCache, otel otel.Otel) Vehicle {
	return &serviceImpl{
		repo:  repo,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateVehicleRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateVehicle")
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
		log.Error().Err(err).Str("license_plate", *req.LicensePlate).Msg("failed to create vehicle")

		return 0, failure.Persistence(err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyListing)

	return id, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, payload map[string]json.RawMessage) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateVehicle")
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
		log.Error().Err(err).Int64("vehicle_id", id).Msg("failed to update vehicle")

		return failure.Persistence(err)
	}

	if affected == 0 {
		return failure.NotFound("vehicle not found") // nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyListing)

	return nil
}
