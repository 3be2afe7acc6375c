package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/agent/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type Agent interface {
	Insert(ctx context.Context, model model.Agent) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Agent, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Agent]
}

func New(db *postgres.Connection, otel otel.Otel) Agent {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Agent](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
