package service

import (
	"context"
	"encoding/json"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/customer/model"
	"rentdesk/internal/domains/customer/model/dto"
	"rentdesk/internal/domains/customer/repository"
	equipmentModel "rentdesk/internal/domains/equipment/model"
	equipmentRepo "rentdesk/internal/domains/equipment/repository"
	rentalRepo "rentdesk/internal/domains/rental/repository"
	"rentdesk/shared"
	"rentdesk/shared/cache"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	"rentdesk/shared/failure"
	gRepo "rentdesk/shared/repository"
	"rentdesk/shared/session"
	"rentdesk/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const MessageInvalidStatus = "status must be Active or Inactive"

type Customer interface {
	Create(ctx context.Context, req dto.CreateCustomerRequest) (dto.CreateCustomerResponse, error)
	Update(ctx context.Context, id int64, payload map[string]json.RawMessage) error
	ChangeStatus(ctx context.Context, id int64, status string) (dto.ChangeStatusResponse, error)
}

type serviceImpl struct {
	repo          repository.Customer
	equipmentRepo equipmentRepo.Equipment
	rentalRepo    rentalRepo.Rental
	transactor    gRepo.Transactor
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	repo repository.Customer,
	equipment equipmentRepo.Equipment,
	rental rentalRepo.Rental,
	transactor gRepo.Transactor,
	cache cache.RedisCache,
	otel otel.Otel,
) Customer {
	return &serviceImpl{
		repo:          repo,
		equipmentRepo: equipment,
		rentalRepo:    rental,
		transactor:    transactor,
		cache:         cache,
		otel:          otel,
	}
}

// Create reserves the first available item of the requested equipment type, then records
// the customer and their rental against it. Nothing is written when no item is available.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCustomerRequest) (res dto.CreateCustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateCustomer")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session.Require(ctx)
	if err != nil {
		return res, err
	}

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		equipment, err := s.equipmentRepo.GetForUpdateTx(ctx, tx, gDto.And(
			gDto.Equal(equipmentModel.TableName, equipmentModel.FieldType, *req.EquipmentType),
			gDto.Equal(equipmentModel.TableName, equipmentModel.FieldStatusID, constant.EquipmentStatusAvailable),
		))
		if err != nil {
			return failure.Persistence(err)
		}

		if equipment.ID == 0 {
			return failure.NotFound("no available equipment of type " + *req.EquipmentType) // nolint:wrapcheck
		}

		_, err = s.equipmentRepo.UpdateTx(ctx, tx, map[string]any{
			equipmentModel.FieldStatusID:   constant.EquipmentStatusRented,
			constant.FieldUpdatedByAgentID: sess.AgentID,
		}, shared.FilterByID(equipment.ID, equipmentModel.FieldID, equipmentModel.TableName))
		if err != nil {
			return failure.Persistence(err)
		}

		customerID, err := s.repo.InsertTx(ctx, tx, req.ToModel(sess.AgentID))
		if err != nil {
			return failure.Persistence(err)
		}

		rentalID, err := s.rentalRepo.InsertTx(ctx, tx, req.ToRental(customerID, equipment.ID, sess.AgentID))
		if err != nil {
			return failure.Persistence(err)
		}

		res = dto.CreateCustomerResponse{
			Message:    dto.MessageCustomerCreated,
			CustomerID: customerID,
			RentalID:   rentalID,
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("equipment_type", *req.EquipmentType).Msg("failed to create customer")

		return dto.CreateCustomerResponse{}, failure.Persistence(err)
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyListing)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id int64, payload map[string]json.RawMessage) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateCustomer")
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
		log.Error().Err(err).Int64("customer_id", id).Msg("failed to update customer")

		return failure.Persistence(err)
	}

	if affected == 0 {
		return failure.NotFound("customer not found") // nolint:wrapcheck
	}

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyListing)

	return nil
}

// ChangeStatus sets the customer's status. Deactivating a customer also closes their active
// rentals and returns the equipment those rentals held to the available pool, in the same
// transaction.
func (s *serviceImpl) ChangeStatus(ctx context.Context, id int64, status string) (res dto.ChangeStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangeStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	sess, err := session.Require(ctx)
	if err != nil {
		return res, err
	}

	statusID, ok := dto.StatusID(status)
	if !ok {
		return res, failure.BadRequestFromString(MessageInvalidStatus) // nolint:wrapcheck
	}

	err = s.transactor.WithinTx(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		affected, err := s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldStatusID:            statusID,
			constant.FieldUpdatedByAgentID: sess.AgentID,
		}, shared.FilterByID(id, model.FieldID, model.TableName))
		if err != nil {
			return failure.Persistence(err)
		}

		if affected == 0 {
			return failure.NotFound("customer not found") // nolint:wrapcheck
		}

		res.Message = dto.MessageStatusChanged

		if statusID != constant.CustomerStatusInactive {
			return nil
		}

		equipmentIDs, err := s.rentalRepo.CloseByCustomerTx(ctx, tx, id, sess.AgentID)
		if err != nil {
			return failure.Persistence(err)
		}

		res.EquipmentReset, err = s.equipmentRepo.ReleaseTx(ctx, tx, equipmentIDs, sess.AgentID)
		if err != nil {
			return failure.Persistence(err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Int64("customer_id", id).Str("status", status).Msg("failed to change customer status")

		return dto.ChangeStatusResponse{}, failure.Persistence(err)
	}

	log.Info().Int64("customer_id", id).Str("status", status).Int64("equipment_reset", res.EquipmentReset).Msg("customer status changed")

	shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyListing)

	return res, nil
}
