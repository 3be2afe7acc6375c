// Package model holds the flattened read models behind the agent pages. Each row type maps
// onto one base table plus the joins named by its GetJoinQuery method.
package model

import "rentdesk/shared/model"

const (
	EntityDisplay   = "display"
	EntityCustomer  = "customer_listing"
	EntityEquipment = "equipment_listing"
	EntityRental    = "rental_listing"
	EntityVehicle   = "vehicle_listing"
	EntityPrinted   = "printed_page"

	TableCustomers        = "customers"
	TableEquipment        = "equipment"
	TableRentals          = "rentals"
	TableVehicles         = "vehicles"
	TableCustomerStatuses = "customer_statuses"

	FieldCustomerID  = "customer_id"
	FieldEquipmentID = "equipment_id"
	FieldRentalID    = "rental_id"
	FieldVehicleID   = "vehicle_id"
	FieldStatusID    = "status_id"
)

// DisplayRow is one active rental of an active customer on rented equipment.
type DisplayRow struct {
	CustomerID        int64       `db:"customer_id"         json:"CustomerID"`
	RentalID          int64       `db:"rental_id"           json:"RentalID"          table:"rentals"`
	FirstName         string      `db:"first_name"          json:"FirstName"`
	LastName          string      `db:"last_name"           json:"LastName"`
	Email             string      `db:"email"               json:"Email"`
	Address           string      `db:"address"             json:"Address"`
	Phone             string      `db:"phone"               json:"Phone"`
	AltPhone          *string     `db:"alt_phone"           json:"AltPhone"`
	TDL               string      `db:"tdl"                 json:"TDL"`
	TDLExpirationDate model.Date  `db:"tdl_expiration_date" json:"TDLExpirationDate"`
	InsuranceExpDate  model.Date  `db:"insurance_exp_date"  json:"InsuranceExpDate"`
	EquipmentType     string      `db:"equipment_type"      json:"EquipmentType"     table:"equipment"`
	ReturnDate        model.Date  `db:"return_date"         json:"ReturnDate"        table:"rentals"`
	ReturnTime        model.Clock `db:"return_time"         json:"ReturnTime"        table:"rentals"`
	InternalNote      *string     `db:"internal_note"       json:"InternalNote"      table:"rentals"`
	CustomerNote      *string     `db:"customer_note"       json:"CustomerNote"`
}

func (DisplayRow) GetJoinQuery() string {
	return "JOIN rentals ON rentals.customer_id = customers.customer_id " +
		"JOIN equipment ON equipment.equipment_id = rentals.equipment_id"
}

type CustomerRow struct {
	CustomerID        int64      `db:"customer_id"         json:"CustomerID"`
	FirstName         string     `db:"first_name"          json:"FirstName"`
	LastName          string     `db:"last_name"           json:"LastName"`
	Phone             string     `db:"phone"               json:"Phone"`
	AltPhone          *string    `db:"alt_phone"           json:"AltPhone"`
	Email             string     `db:"email"               json:"Email"`
	Address           string     `db:"address"             json:"Address"`
	City              string     `db:"city"                json:"City"`
	State             string     `db:"state"               json:"State"`
	Zip               string     `db:"zip"                 json:"Zip"`
	TDL               string     `db:"tdl"                 json:"TDL"`
	TDLExpirationDate model.Date `db:"tdl_expiration_date" json:"TDLExpirationDate"`
	InsuranceExpDate  model.Date `db:"insurance_exp_date"  json:"InsuranceExpDate"`
	LeaseAgreement    *string    `db:"lease_agreement"     json:"LeaseAgreement"`
	CustomerNote      *string    `db:"customer_note"       json:"CustomerNote"`
	StatusID          int64      `db:"status_id"           json:"StatusID"`
	StatusName        string     `db:"status_name"         json:"StatusName"        table:"customer_statuses"`
	CompanyID         *int64     `db:"company_id"          json:"CompanyID"`
	CompanyName       *string    `db:"company_name"        json:"CompanyName"       table:"companies"`
	UpdatedByAgentID  *int64     `db:"updated_by_agent_id" json:"UpdatedByAgentID"`
}

func (CustomerRow) GetJoinQuery() string {
	return "JOIN customer_statuses ON customer_statuses.status_id = customers.status_id " +
		"LEFT JOIN companies ON companies.company_id = customers.company_id"
}

type EquipmentRow struct {
	EquipmentID      int64  `db:"equipment_id"        json:"EquipmentID"`
	EquipmentType    string `db:"equipment_type"      json:"EquipmentType"`
	Condition        string `db:"condition"           json:"Condition"`
	StatusID         int64  `db:"status_id"           json:"StatusID"`
	StatusName       string `db:"status_name"         json:"StatusName"       table:"equipment_statuses"`
	UpdatedByAgentID *int64 `db:"updated_by_agent_id" json:"UpdatedByAgentID"`
}

func (EquipmentRow) GetJoinQuery() string {
	return "JOIN equipment_statuses ON equipment_statuses.status_id = equipment.status_id"
}

type RentalRow struct {
	RentalID          int64       `db:"rental_id"           json:"RentalID"`
	CustomerID        int64       `db:"customer_id"         json:"CustomerID"`
	CustomerFirstName string      `db:"customer_first_name" json:"CustomerFirstName" table:"customers" column:"first_name"`
	CustomerLastName  string      `db:"customer_last_name"  json:"CustomerLastName"  table:"customers" column:"last_name"`
	AgentID           int64       `db:"agent_id"            json:"AgentID"`
	EquipmentID       int64       `db:"equipment_id"        json:"EquipmentID"`
	EquipmentType     string      `db:"equipment_type"      json:"EquipmentType"     table:"equipment"`
	RentalDate        model.Date  `db:"rental_date"         json:"RentalDate"`
	ReturnDate        model.Date  `db:"return_date"         json:"ReturnDate"`
	ReturnTime        model.Clock `db:"return_time"         json:"ReturnTime"`
	InternalNote      *string     `db:"internal_note"       json:"InternalNote"`
	StatusID          int64       `db:"status_id"           json:"StatusID"`
	StatusName        string      `db:"status_name"         json:"StatusName"        table:"rental_statuses"`
	UpdatedByAgentID  *int64      `db:"updated_by_agent_id" json:"UpdatedByAgentID"`
}

func (RentalRow) GetJoinQuery() string {
	return "JOIN rental_statuses ON rental_statuses.status_id = rentals.status_id " +
		"JOIN customers ON customers.customer_id = rentals.customer_id " +
		"JOIN equipment ON equipment.equipment_id = rentals.equipment_id"
}

type VehicleRow struct {
	VehicleID         int64  `db:"vehicle_id"          json:"VehicleID"`
	CustomerID        int64  `db:"customer_id"         json:"CustomerID"`
	CustomerFirstName string `db:"customer_first_name" json:"CustomerFirstName" table:"customers" column:"first_name"`
	CustomerLastName  string `db:"customer_last_name"  json:"CustomerLastName"  table:"customers" column:"last_name"`
	VehicleModel      string `db:"vehicle_model"       json:"VehicleModel"`
	VehicleMake       string `db:"vehicle_make"        json:"VehicleMake"`
	VehicleYear       string `db:"vehicle_year"        json:"VehicleYear"`
	LicensePlate      string `db:"license_plate"       json:"LicensePlate"`
	StatusID          int64  `db:"status_id"           json:"StatusID"`
	StatusName        string `db:"status_name"         json:"StatusName"        table:"vehicle_statuses"`
	UpdatedByAgentID  *int64 `db:"updated_by_agent_id" json:"UpdatedByAgentID"`
}

func (VehicleRow) GetJoinQuery() string {
	return "JOIN vehicle_statuses ON vehicle_statuses.status_id = vehicles.status_id " +
		"JOIN customers ON customers.customer_id = vehicles.customer_id"
}

// PrintedPage is a customer record with the equipment type of their first rental, if any.
type PrintedPage struct {
	CustomerRow
	EquipmentType *string `db:"first_equipment_type" json:"EquipmentType" table:"first_rental" column:"equipment_type"`
}

func (PrintedPage) GetJoinQuery() string {
	return CustomerRow{}.GetJoinQuery() + " " +
		"LEFT JOIN LATERAL (SELECT equipment.equipment_type FROM rentals " +
		"JOIN equipment ON equipment.equipment_id = rentals.equipment_id " +
		"WHERE rentals.customer_id = customers.customer_id " +
		"ORDER BY rentals.rental_id ASC LIMIT 1) first_rental ON TRUE"
}
