package dto

import (
	"rentdesk/internal/domains/rental/model"
	"rentdesk/shared/constant"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/patch"
)

type CreateRentalRequest struct {
	CustomerID   *int64        `json:"CustomerID"   validate:"required,gt=0"`
	EquipmentID  *int64        `json:"EquipmentID"  validate:"required,gt=0"`
	RentalDate   *gModel.Date  `json:"RentalDate"   validate:"required"`
	ReturnDate   *gModel.Date  `json:"ReturnDate"   validate:"required"`
	ReturnTime   *gModel.Clock `json:"ReturnTime"   validate:"required"`
	InternalNote *string       `json:"InternalNote"`
	StatusID     *int64        `json:"StatusID"     validate:"omitempty,gt=0"`
}

// ToModel builds the rental written by agentID, who is also recorded as the renting agent.
func (c *CreateRentalRequest) ToModel(agentID int64) model.Rental {
	statusID := constant.RentalStatusActive
	if c.StatusID != nil {
		statusID = *c.StatusID
	}

	return model.Rental{
		CustomerID:   *c.CustomerID,
		AgentID:      agentID,
		EquipmentID:  *c.EquipmentID,
		RentalDate:   *c.RentalDate,
		ReturnDate:   *c.ReturnDate,
		ReturnTime:   *c.ReturnTime,
		InternalNote: c.InternalNote,
		StatusID:     statusID,
		Audit:        gModel.Audit{UpdatedByAgentID: &agentID},
	}
}

var UpdateFields = patch.AllowList{
	"CustomerID":   patch.Int(model.FieldCustomerID),
	"EquipmentID":  patch.Int(model.FieldEquipmentID),
	"RentalDate":   patch.Date(model.FieldRentalDate),
	"ReturnDate":   patch.Date(model.FieldReturnDate),
	"ReturnTime":   patch.Clock(model.FieldReturnTime),
	"InternalNote": patch.NullableString(model.FieldInternalNote, ""),
	"StatusID":     patch.Int(model.FieldStatusID),
}
