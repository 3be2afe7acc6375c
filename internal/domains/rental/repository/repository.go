package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/rental/model"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/logger"
	gRepo "rentdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

const queryCloseByCustomer = `UPDATE rentals SET status_id = $1, updated_by_agent_id = $2
		WHERE customer_id = $3 AND status_id = $4 RETURNING equipment_id`

type Rental interface {
	Insert(ctx context.Context, model model.Rental) (int64, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Rental) (int64, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	CloseByCustomerTx(ctx context.Context, tx *sqlx.Tx, customerID, agentID int64) ([]int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Rental]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Rental {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Rental](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

// CloseByCustomerTx closes the customer's active rentals and returns the equipment they held.
func (r *repositoryImpl) CloseByCustomerTx(ctx context.Context, tx *sqlx.Tx, customerID, agentID int64) ([]int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".rental.CloseByCustomerTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCloseByCustomer)

	equipmentIDs := []int64{}

	err := tx.SelectContext(ctx, &equipmentIDs, queryCloseByCustomer,
		constant.RentalStatusClosed, agentID, customerID, constant.RentalStatusActive)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to close rentals (customer %d): %w", customerID, err)
	}

	return equipmentIDs, nil
}
