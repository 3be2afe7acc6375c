package dto

import "rentdesk/shared/model"

type Audit struct {
	UpdatedByAgentID *int64 `json:"UpdatedByAgentID"`
}

func (a *Audit) FromModel(model model.Audit) {
	a.UpdatedByAgentID = model.UpdatedByAgentID
}
