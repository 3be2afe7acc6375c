package dto

import (
	"rentdesk/internal/domains/equipment/model"
	"rentdesk/shared/constant"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/patch"
)

type CreateEquipmentRequest struct {
	EquipmentType *string `json:"EquipmentType" validate:"required,max=255"`
	Condition     *string `json:"Condition"     validate:"required,max=255"`
	StatusID      *int64  `json:"StatusID"      validate:"omitempty,gt=0"`
}

func (c *CreateEquipmentRequest) ToModel(agentID int64) model.Equipment {
	statusID := constant.EquipmentStatusAvailable
	if c.StatusID != nil {
		statusID = *c.StatusID
	}

	return model.Equipment{
		Type:      *c.EquipmentType,
		Condition: *c.Condition,
		StatusID:  statusID,
		Audit:     gModel.Audit{UpdatedByAgentID: &agentID},
	}
}

// UpdateFields lists the keys accepted by an equipment update.
var UpdateFields = patch.AllowList{
	"EquipmentType": patch.String(model.FieldType, "required,max=255"),
	"Condition":     patch.String(model.FieldCondition, "max=255"),
	"StatusID":      patch.Int(model.FieldStatusID),
}
