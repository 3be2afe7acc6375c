package dto

import (
	"rentdesk/internal/domains/agent/model"
	"rentdesk/shared/constant"
)

type CreateAgentRequest struct {
	Name     string `json:"AgentName"     validate:"required,max=255"`
	Password string `json:"AgentPassword" validate:"required,min=8,max=72"`
}

func (c *CreateAgentRequest) ToModel(hashedPassword string) model.Agent {
	return model.Agent{
		Name:     c.Name,
		Password: hashedPassword,
		StatusID: constant.AgentStatusActive,
	}
}
