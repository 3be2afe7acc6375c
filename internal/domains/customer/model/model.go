package model

import "rentdesk/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID                = "customer_id"
	FieldFirstName         = "first_name"
	FieldLastName          = "last_name"
	FieldPhone             = "phone"
	FieldAltPhone          = "alt_phone"
	FieldEmail             = "email"
	FieldAddress           = "address"
	FieldCity              = "city"
	FieldState             = "state"
	FieldZip               = "zip"
	FieldTDL               = "tdl"
	FieldTDLExpirationDate = "tdl_expiration_date"
	FieldInsuranceExpDate  = "insurance_exp_date"
	FieldLeaseAgreement    = "lease_agreement"
	FieldCustomerNote      = "customer_note"
	FieldStatusID          = "status_id"
	FieldCompanyID         = "company_id"
)

type Customer struct {
	ID                int64      `db:"customer_id"`
	FirstName         string     `db:"first_name"`
	LastName          string     `db:"last_name"`
	Phone             string     `db:"phone"`
	AltPhone          *string    `db:"alt_phone"`
	Email             string     `db:"email"`
	Address           string     `db:"address"`
	City              string     `db:"city"`
	State             string     `db:"state"`
	Zip               string     `db:"zip"`
	TDL               string     `db:"tdl"`
	TDLExpirationDate model.Date `db:"tdl_expiration_date"`
	InsuranceExpDate  model.Date `db:"insurance_exp_date"`
	LeaseAgreement    *string    `db:"lease_agreement"`
	CustomerNote      *string    `db:"customer_note"`
	StatusID          int64      `db:"status_id"`
	CompanyID         *int64     `db:"company_id"`
	model.Audit
}
