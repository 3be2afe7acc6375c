package model

import "rentdesk/shared/model"

const (
	TableName  = "equipment"
	EntityName = "equipment"

	FieldID        = "equipment_id"
	FieldType      = "equipment_type"
	FieldCondition = "condition"
	FieldStatusID  = "status_id"
)

type Equipment struct {
	ID        int64  `db:"equipment_id"`
	Type      string `db:"equipment_type"`
	Condition string `db:"condition"`
	StatusID  int64  `db:"status_id"`
	model.Audit
}
