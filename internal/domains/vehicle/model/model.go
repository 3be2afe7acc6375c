package model

import "rentdesk/shared/model"

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID           = "vehicle_id"
	FieldCustomerID   = "customer_id"
	FieldModel        = "vehicle_model"
	FieldMake         = "vehicle_make"
	FieldYear         = "vehicle_year"
	FieldLicensePlate = "license_plate"
	FieldStatusID     = "status_id"
)

type Vehicle struct {
	ID           int64  `db:"vehicle_id"`
	CustomerID   int64  `db:"customer_id"`
	Model        string `db:"vehicle_model"`
	Make         string `db:"vehicle_make"`
	Year         string `db:"vehicle_year"`
	LicensePlate string `db:"license_plate"`
	StatusID     int64  `db:"status_id"`
	model.Audit
}
