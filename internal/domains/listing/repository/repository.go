package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"rentdesk/infras/otel"
	"rentdesk/infras/postgres"
	"rentdesk/internal/domains/listing/model"
	"rentdesk/shared"
	"rentdesk/shared/constant"
	gDto "rentdesk/shared/dto"
	gRepo "rentdesk/shared/repository"
)

type Listing interface {
	Display(ctx context.Context, params gDto.QueryParams) ([]model.DisplayRow, error)
	Customers(ctx context.Context, params gDto.QueryParams) ([]model.CustomerRow, error)
	Equipment(ctx context.Context, params gDto.QueryParams) ([]model.EquipmentRow, error)
	Rentals(ctx context.Context, params gDto.QueryParams) ([]model.RentalRow, error)
	Vehicles(ctx context.Context, params gDto.QueryParams) ([]model.VehicleRow, error)
	PrintedPage(ctx context.Context, customerID int64) (model.PrintedPage, error)
}

type repositoryImpl struct {
	display   gRepo.Repository[model.DisplayRow]
	customers gRepo.Repository[model.CustomerRow]
	equipment gRepo.Repository[model.EquipmentRow]
	rentals   gRepo.Repository[model.RentalRow]
	vehicles  gRepo.Repository[model.VehicleRow]
	printed   gRepo.Repository[model.PrintedPage]
}

func New(db *postgres.Connection, otel otel.Otel) Listing {
	return &repositoryImpl{
		display:   gRepo.NewRepository[model.DisplayRow](model.EntityDisplay, model.TableCustomers, model.FieldCustomerID, db, otel),
		customers: gRepo.NewRepository[model.CustomerRow](model.EntityCustomer, model.TableCustomers, model.FieldCustomerID, db, otel),
		equipment: gRepo.NewRepository[model.EquipmentRow](model.EntityEquipment, model.TableEquipment, model.FieldEquipmentID, db, otel),
		rentals:   gRepo.NewRepository[model.RentalRow](model.EntityRental, model.TableRentals, model.FieldRentalID, db, otel),
		vehicles:  gRepo.NewRepository[model.VehicleRow](model.EntityVehicle, model.TableVehicles, model.FieldVehicleID, db, otel),
		printed:   gRepo.NewRepository[model.PrintedPage](model.EntityPrinted, model.TableCustomers, model.FieldCustomerID, db, otel),
	}
}

// newestFirst keeps the paging window of params and orders by the given primary keys, descending.
func newestFirst(params gDto.QueryParams, columns ...string) gDto.QueryParams {
	query := gDto.QueryParams{Page: params.Page, Limit: params.Limit}

	for _, column := range columns {
		query.OrderBy(column, gDto.SortDirDesc)
	}

	return query
}

func qualified(table, column string) string {
	return fmt.Sprintf("%s.%s", table, column)
}

// Display lists active rentals of active customers whose equipment is out on rent.
func (r *repositoryImpl) Display(ctx context.Context, params gDto.QueryParams) ([]model.DisplayRow, error) {
	filter := gDto.And(
		gDto.Equal(model.TableCustomers, model.FieldStatusID, constant.CustomerStatusActive),
		gDto.Equal(model.TableRentals, model.FieldStatusID, constant.RentalStatusActive),
		gDto.Equal(model.TableEquipment, model.FieldStatusID, constant.EquipmentStatusRented),
	)

	return r.display.GetAll(ctx, newestFirst(params, //nolint:wrapcheck
		qualified(model.TableCustomers, model.FieldCustomerID),
		qualified(model.TableRentals, model.FieldRentalID),
	), filter)
}

func (r *repositoryImpl) Customers(ctx context.Context, params gDto.QueryParams) ([]model.CustomerRow, error) {
	return r.customers.GetAll(ctx, newestFirst(params, qualified(model.TableCustomers, model.FieldCustomerID)), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Equipment(ctx context.Context, params gDto.QueryParams) ([]model.EquipmentRow, error) {
	return r.equipment.GetAll(ctx, newestFirst(params, qualified(model.TableEquipment, model.FieldEquipmentID)), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Rentals(ctx context.Context, params gDto.QueryParams) ([]model.RentalRow, error) {
	return r.rentals.GetAll(ctx, newestFirst(params, qualified(model.TableRentals, model.FieldRentalID)), gDto.FilterGroup{}) //nolint:wrapcheck
}

func (r *repositoryImpl) Vehicles(ctx context.Context, params gDto.QueryParams) ([]model.VehicleRow, error) {
	return r.vehicles.GetAll(ctx, newestFirst(params, qualified(model.TableVehicles, model.FieldVehicleID)), gDto.FilterGroup{}) //nolint:wrapcheck
}

// PrintedPage returns the zero value when the customer does not exist.
func (r *repositoryImpl) PrintedPage(ctx context.Context, customerID int64) (model.PrintedPage, error) {
	return r.printed.Get(ctx, shared.FilterByID(customerID, model.FieldCustomerID, model.TableCustomers)) //nolint:wrapcheck
}
