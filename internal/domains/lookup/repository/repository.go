package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/lookup/model"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type Lookup interface {
	Statuses(ctx context.Context, kind model.Kind) ([]model.Status, error)
	Companies(ctx context.Context) ([]model.Company, error)
}

type repositoryImpl struct {
	statuses  map[model.Kind]gRepo.Repository[model.Status]
	companies gRepo.Repository[model.Company]
}

func New(db *postgres.Connection, otel otel.Otel) Lookup {
	statuses := make(map[model.Kind]gRepo.Repository[model.Status], len(model.Tables))
	for kind, table := range model.Tables {
		statuses[kind] = gRepo.NewRepository[model.Status](string(kind)+"_"+model.EntityStatus, table, model.FieldStatusID, db, otel)
	}

	return &repositoryImpl{
		statuses:  statuses,
		companies: gRepo.NewRepository[model.Company](model.EntityCompany, model.TableCompanies, model.FieldCompanyID, db, otel),
	}
}

// Statuses returns every row of the kind's lookup table ordered by id.
func (r *repositoryImpl) Statuses(ctx context.Context, kind model.Kind) ([]model.Status, error) {
	repo, ok := r.statuses[kind]
	if !ok {
		return nil, fmt.Errorf("unknown status kind %q", kind)
	}

	params := gDto.QueryParams{}
	params.OrderBy(model.Tables[kind]+"."+model.FieldStatusID, gDto.SortDirAsc)

	return repo.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Companies(ctx context.Context) ([]model.Company, error) {
	params := gDto.QueryParams{}
	params.OrderBy(model.TableCompanies+"."+model.FieldCompanyName, gDto.SortDirAsc)

	return r.companies.GetAll(ctx, params, gDto.FilterGroup{}) //nolint:wrapcheck
}
