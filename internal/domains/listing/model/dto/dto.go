package dto

import "rentdesk/internal/domains/listing/model"

// Modals carries the four editable listings shown together on the editing page.
type Modals struct {
	Customers []model.CustomerRow  `json:"Customers"`
	Equipment []model.EquipmentRow `json:"Equipment"`
	Rentals   []model.RentalRow    `json:"Rentals"`
	Vehicles  []model.VehicleRow   `json:"Vehicles"`
}
