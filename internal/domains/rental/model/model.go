package model

import "rentdesk/shared/model"

const (
	TableName  = "rentals"
	EntityName = "rental"

	FieldID           = "rental_id"
	FieldCustomerID   = "customer_id"
	FieldAgentID      = "agent_id"
	FieldEquipmentID  = "equipment_id"
	FieldRentalDate   = "rental_date"
	FieldReturnDate   = "return_date"
	FieldReturnTime   = "return_time"
	FieldInternalNote = "internal_note"
	FieldStatusID     = "status_id"
)

type Rental struct {
	ID           int64       `db:"rental_id"`
	CustomerID   int64       `db:"customer_id"`
	AgentID      int64       `db:"agent_id"`
	EquipmentID  int64       `db:"equipment_id"`
	RentalDate   model.Date  `db:"rental_date"`
	ReturnDate   model.Date  `db:"return_date"`
	ReturnTime   model.Clock `db:"return_time"`
	InternalNote *string     `db:"internal_note"`
	StatusID     int64       `db:"status_id"`
	model.Audit
}
