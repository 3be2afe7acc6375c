package dto

import (
	"rentdesk/internal/domains/vehicle/model"
	"rentdesk/shared/constant"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/patch"
)

const (
	rulesYear  = "len=4,numeric"
	rulesPlate = "required,max=20"
)

type CreateVehicleRequest struct {
	CustomerID   *int64  `json:"CustomerID"   validate:"required,gt=0"`
	VehicleModel *string `json:"VehicleModel" validate:"required,max=255"`
	VehicleMake  *string `json:"VehicleMake"  validate:"required,max=255"`
	VehicleYear  *string `json:"VehicleYear"  validate:"required,len=4,numeric"`
	LicensePlate *string `json:"LicensePlate" validate:"required,max=20"`
	StatusID     *int64  `json:"StatusID"     validate:"omitempty,gt=0"`
}

func (c *CreateVehicleRequest) ToModel(agentID int64) model.Vehicle {
	statusID := constant.VehicleStatusActive
	if c.StatusID != nil {
		statusID = *c.StatusID
	}

	return model.Vehicle{
		CustomerID:   *c.CustomerID,
		Model:        *c.VehicleModel,
		Make:         *c.VehicleMake,
		Year:         *c.VehicleYear,
		LicensePlate: *c.LicensePlate,
		StatusID:     statusID,
		Audit:        gModel.Audit{UpdatedByAgentID: &agentID},
	}
}

var UpdateFields = patch.AllowList{
	"CustomerID":   patch.Int(model.FieldCustomerID),
	"VehicleModel": patch.String(model.FieldModel, "required,max=255"),
	"VehicleMake":  patch.String(model.FieldMake, "required,max=255"),
	"VehicleYear":  patch.String(model.FieldYear, rulesYear),
	"LicensePlate": patch.String(model.FieldLicensePlate, rulesPlate),
	"StatusID":     patch.Int(model.FieldStatusID),
}
