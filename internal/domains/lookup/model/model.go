package model

// Kind names a status lookup table by the entity it describes.
type Kind string

const (
	KindAgent     Kind = "agent"
	KindCustomer  Kind = "customer"
	KindEquipment Kind = "equipment"
	KindRental    Kind = "rental"
	KindVehicle   Kind = "vehicle"
)

const (
	EntityStatus  = "status"
	EntityCompany = "company"

	FieldStatusID   = "status_id"
	FieldStatusName = "status_name"

	TableCompanies   = "companies"
	FieldCompanyID   = "company_id"
	FieldCompanyName = "company_name"
)

// Tables maps each kind to its lookup table.
var Tables = map[Kind]string{
	KindAgent:     "agent_statuses",
	KindCustomer:  "customer_statuses",
	KindEquipment: "equipment_statuses",
	KindRental:    "rental_statuses",
	KindVehicle:   "vehicle_statuses",
}

type Status struct {
	ID   int64  `db:"status_id"`
	Name string `db:"status_name"`
}

type Company struct {
	ID   int64  `db:"company_id"`
	Name string `db:"company_name"`
}
