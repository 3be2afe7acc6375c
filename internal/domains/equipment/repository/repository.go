package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/equipment/model"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/logger"
	gRepo "rentdesk/shared/repository"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	queryAvailableTypes = `SELECT DISTINCT equipment_type FROM equipment WHERE status_id = $1 ORDER BY equipment_type ASC`

	queryRelease = `UPDATE equipment SET status_id = $1, updated_by_agent_id = $2
		WHERE equipment_id = ANY($3) AND status_id = $4`
)

type Equipment interface {
	Insert(ctx context.Context, model model.Equipment) (int64, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Equipment, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) (int64, error)
	ReleaseTx(ctx context.Context, tx *sqlx.Tx, equipmentIDs []int64, agentID int64) (int64, error)
	AvailableTypes(ctx context.Context) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Equipment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Equipment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Equipment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ReleaseTx marks the given rented equipment as available and reports how many rows changed.
func (r *repositoryImpl) ReleaseTx(ctx context.Context, tx *sqlx.Tx, equipmentIDs []int64, agentID int64) (int64, error) {
	if len(equipmentIDs) == 0 {
		return 0, nil
	}

	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.ReleaseTx")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRelease)

	result, err := tx.ExecContext(ctx, queryRelease,
		constant.EquipmentStatusAvailable, agentID, pq.Array(equipmentIDs), constant.EquipmentStatusRented)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to release equipment %v: %w", equipmentIDs, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (equipment): %w", err)
	}

	return affected, nil
}

// AvailableTypes lists the distinct equipment types that have at least one available item.
func (r *repositoryImpl) AvailableTypes(ctx context.Context) ([]string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".equipment.AvailableTypes")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryAvailableTypes)

	types := []string{}

	if err := r.db.Read.SelectContext(ctx, &types, queryAvailableTypes, constant.EquipmentStatusAvailable); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return types, fmt.Errorf("failed to get available equipment types: %w", err)
	}

	return types, nil
}
