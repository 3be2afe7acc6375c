package service

import (
	"context"
	"fmt"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/agent/model"
	"rentdesk/internal/domains/agent/model/dto"
	"rentdesk/internal/domains/agent/repository"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/password"
	"rentdesk/shared/validator"

	"github.com/rs/zerolog/log"
)

// Agent provisions staff accounts. It backs the agent command line tool.
type Agent interface {
	Create(ctx context.Context, req dto.CreateAgentRequest) (int64, error)
	SetStatus(ctx context.Context, name string, statusID int64) error
}

type serviceImpl struct {
	repo repository.Agent
	otel otel.Otel
}

func New(repo repository.Agent, otel otel.Otel) Agent {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func byName(name string) gDto.FilterGroup {
	return gDto.And(gDto.Equal(model.TableName, model.FieldName, name))
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAgentRequest) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateAgent")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return 0, err
	}

	exists, err := s.repo.Exist(ctx, byName(req.Name))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if agent exists")

		return 0, fmt.Errorf("failed to check if agent exists: %w", err)
	}

	if exists {
		return 0, failure.Conflict("agent name already taken") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err = s.repo.Insert(ctx, req.ToModel(hashedPassword))
	if err != nil {
		log.Error().Err(err).Msg("failed to create agent")

		return 0, failure.Persistence(err)
	}

	return id, nil
}

func (s *serviceImpl) SetStatus(ctx context.Context, name string, statusID int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetAgentStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if statusID != constant.AgentStatusActive && statusID != constant.AgentStatusInactive {
		return failure.BadRequestFromString("unknown agent status") // nolint:wrapcheck
	}

	affected, err := s.repo.Update(ctx, map[string]any{model.FieldStatusID: statusID}, byName(name))
	if err != nil {
		log.Error().Err(err).Str("agent", name).Msg("failed to update agent status")

		return failure.Persistence(err)
	}

	if affected == 0 {
		return failure.NotFound("agent not found") // nolint:wrapcheck
	}

	return nil
}
