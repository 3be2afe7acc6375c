package service

import (
	"context"
	"errors"
	"fmt"
	"rentdesk/infras/jwt"
	"rentdesk/infras/otel"
	agentModel "rentdesk/internal/domains/agent/model"
	agentRepo "rentdesk/internal/domains/agent/repository"
	"rentdesk/internal/domains/auth/model/dto"
	"rentdesk/shared"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/password"
	"rentdesk/shared/session"

	"github.com/rs/zerolog/log"
)

const (
	MessageInvalidCredentials = "Invalid username or password."
	MessageInactiveAgent      = "Agent account is inactive."
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Authenticate(ctx context.Context, accessToken string) (session.Session, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error)
}

type serviceImpl struct {
	agentRepo  agentRepo.Agent
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(agentRepo agentRepo.Agent, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		agentRepo:  agentRepo,
		otel:       otel,
		jwtService: jwt,
	}
}

// Login checks the agent's credentials and issues a token pair. Unknown names and wrong
// passwords get the same answer.
func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	nameFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    agentModel.FieldName,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Username,
				Table:    agentModel.TableName,
			},
		},
	}

	agent, err := s.agentRepo.Get(ctx, nameFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load agent")

		return res, failure.Persistence(err)
	}

	if agent.ID == 0 {
		log.Warn().Str("username", req.Username).Msg("login attempt with unknown agent")

		return res, failure.Unauthorized(MessageInvalidCredentials) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, agent.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(MessageInvalidCredentials) // nolint:wrapcheck
	}

	if password.NeedsRehash(agent.Password) {
		log.Info().Int64("agent_id", agent.ID).Msg("agent password stored with outdated bcrypt cost")
	}

	if agent.StatusID != constant.AgentStatusActive {
		return res, failure.Unauthorized(MessageInactiveAgent) // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(agent.ID, agent.Name)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.AgentID = agent.ID
	res.AgentName = agent.Name

	return res, nil
}

// Authenticate resolves an access token into the session of an active agent.
func (s *serviceImpl) Authenticate(ctx context.Context, accessToken string) (sess session.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Authenticate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(accessToken, jwt.AccessToken)
	if err != nil {
		return sess, failure.Unauthorized(tokenMessage(err)) // nolint:wrapcheck
	}

	return s.loadSession(ctx, claims.AgentID)
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	claims, err := s.jwtService.ValidateToken(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to validate refresh token")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	sess, err := s.loadSession(ctx, claims.AgentID)
	if err != nil {
		return res, err
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(sess.AgentID, sess.AgentName)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)
	res.AgentID = sess.AgentID
	res.AgentName = sess.AgentName

	return res, nil
}

func (s *serviceImpl) loadSession(ctx context.Context, agentID int64) (session.Session, error) {
	agent, err := s.agentRepo.Get(ctx, shared.FilterByID(agentID, agentModel.FieldID, agentModel.TableName),
		agentModel.FieldID, agentModel.FieldName, agentModel.FieldStatusID)
	if err != nil {
		log.Error().Err(err).Int64("agent_id", agentID).Msg("failed to load agent for session")

		return session.Session{}, failure.Persistence(err)
	}

	sess := session.Session{
		AgentID:   agent.ID,
		AgentName: agent.Name,
		StatusID:  agent.StatusID,
	}

	if !sess.Active() {
		return session.Session{}, failure.AuthenticationRequired
	}

	return sess, nil
}

func tokenMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrExpiredToken):
		return "Token has expired"
	case errors.Is(err, jwt.ErrInvalidClaim):
		return "Invalid token claims"
	default:
		return "Invalid token"
	}
}
