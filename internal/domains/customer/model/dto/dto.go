package dto

import (
	"rentdesk/internal/domains/customer/model"
	rentalModel "rentdesk/internal/domains/rental/model"
	"rentdesk/shared/constant"
	gModel "rentdesk/shared/model"
	"rentdesk/shared/patch"
)

const (
	StatusActive   = constant.StatusNameActive
	StatusInactive = constant.StatusNameInactive

	MessageCustomerCreated = "Customer and rental created successfully"
	MessageStatusChanged   = "Customer status updated"
)

// CreateCustomerRequest registers a customer together with their first rental. The
// equipment is picked by type among the available items.
type CreateCustomerRequest struct {
	FirstName         *string       `json:"FirstName"         validate:"required,max=255"`
	LastName          *string       `json:"LastName"          validate:"required,max=255"`
	Phone             *string       `json:"Phone"             validate:"required,max=20"`
	AltPhone          *string       `json:"AltPhone"          validate:"omitempty,max=20"`
	Email             *string       `json:"Email"             validate:"required,email,max=255"`
	Address           *string       `json:"Address"           validate:"required,max=255"`
	City              *string       `json:"City"              validate:"required,max=255"`
	State             *string       `json:"State"             validate:"required,max=255"`
	Zip               *string       `json:"Zip"               validate:"required,max=10"`
	TDL               *string       `json:"TDL"               validate:"required,max=255"`
	TDLExpirationDate *gModel.Date  `json:"TDLExpirationDate" validate:"required"`
	InsuranceExpDate  *gModel.Date  `json:"InsuranceExpDate"  validate:"required"`
	LeaseAgreement    *string       `json:"LeaseAgreement"`
	CustomerNote      *string       `json:"CustomerNote"`
	CompanyID         *int64        `json:"CompanyID"         validate:"omitempty,gt=0"`
	EquipmentType     *string       `json:"EquipmentType"     validate:"required,max=255"`
	RentalDate        *gModel.Date  `json:"RentalDate"        validate:"required"`
	ReturnDate        *gModel.Date  `json:"ReturnDate"        validate:"required"`
	ReturnTime        *gModel.Clock `json:"ReturnTime"        validate:"required"`
	InternalNote      *string       `json:"InternalNote"`
}

// ToModel builds the active customer written by agentID.
func (c *CreateCustomerRequest) ToModel(agentID int64) model.Customer {
	return model.Customer{
		FirstName:         *c.FirstName,
		LastName:          *c.LastName,
		Phone:             *c.Phone,
		AltPhone:          c.AltPhone,
		Email:             *c.Email,
		Address:           *c.Address,
		City:              *c.City,
		State:             *c.State,
		Zip:               *c.Zip,
		TDL:               *c.TDL,
		TDLExpirationDate: *c.TDLExpirationDate,
		InsuranceExpDate:  *c.InsuranceExpDate,
		LeaseAgreement:    c.LeaseAgreement,
		CustomerNote:      c.CustomerNote,
		StatusID:          constant.CustomerStatusActive,
		CompanyID:         c.CompanyID,
		Audit:             gModel.Audit{UpdatedByAgentID: &agentID},
	}
}

// ToRental builds the active rental that links the new customer to the reserved equipment.
func (c *CreateCustomerRequest) ToRental(customerID, equipmentID, agentID int64) rentalModel.Rental {
	return rentalModel.Rental{
		CustomerID:   customerID,
		AgentID:      agentID,
		EquipmentID:  equipmentID,
		RentalDate:   *c.RentalDate,
		ReturnDate:   *c.ReturnDate,
		ReturnTime:   *c.ReturnTime,
		InternalNote: c.InternalNote,
		StatusID:     constant.RentalStatusActive,
		Audit:        gModel.Audit{UpdatedByAgentID: &agentID},
	}
}

type CreateCustomerResponse struct {
	Message    string `json:"message"`
	CustomerID int64  `json:"customer_id"`
	RentalID   int64  `json:"rental_id"`
}

type ChangeStatusResponse struct {
	Message        string `json:"message"`
	EquipmentReset int64  `json:"equipment_reset"`
}

// StatusID maps a status name from the status form to its code.
func StatusID(status string) (int64, bool) {
	switch status {
	case StatusActive:
		return constant.CustomerStatusActive, true
	case StatusInactive:
		return constant.CustomerStatusInactive, true
	default:
		return 0, false
	}
}

// UpdateFields excludes StatusID; status changes go through the status transition so that
// equipment is released with it.
var UpdateFields = patch.AllowList{
	"FirstName":         patch.String(model.FieldFirstName, "required,max=255"),
	"LastName":          patch.String(model.FieldLastName, "required,max=255"),
	"Phone":             patch.String(model.FieldPhone, "required,max=20"),
	"AltPhone":          patch.NullableString(model.FieldAltPhone, "max=20"),
	"Email":             patch.String(model.FieldEmail, "required,email,max=255"),
	"Address":           patch.String(model.FieldAddress, "required,max=255"),
	"City":              patch.String(model.FieldCity, "required,max=255"),
	"State":             patch.String(model.FieldState, "required,max=255"),
	"Zip":               patch.String(model.FieldZip, "required,max=10"),
	"TDL":               patch.String(model.FieldTDL, "required,max=255"),
	"TDLExpirationDate": patch.Date(model.FieldTDLExpirationDate),
	"InsuranceExpDate":  patch.Date(model.FieldInsuranceExpDate),
	"LeaseAgreement":    patch.NullableString(model.FieldLeaseAgreement, ""),
	"CustomerNote":      patch.NullableString(model.FieldCustomerNote, ""),
	"CompanyID":         patch.NullableInt(model.FieldCompanyID),
}
