package dto

import "rentdesk/internal/domains/lookup/model"

// Option is one entry of a selection control.
type Option struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromStatuses(statuses []model.Status) []Option {
	options := make([]Option, len(statuses))
	for i, status := range statuses {
		options[i] = Option{ID: status.ID, Name: status.Name}
	}

	return options
}

func FromCompanies(companies []model.Company) []Option {
	options := make([]Option, len(companies))
	for i, company := range companies {
		options[i] = Option{ID: company.ID, Name: company.Name}
	}

	return options
}
