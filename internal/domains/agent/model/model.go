package model

const (
	TableName  = "agents"
	EntityName = "agent"

	FieldID       = "agent_id"
	FieldName     = "agent_name"
	FieldPassword = "agent_password"
	FieldStatusID = "status_id"
)

type Agent struct {
	ID       int64  `db:"agent_id"`
	Name     string `db:"agent_name"`
	Password string `db:"agent_password"`
	StatusID int64  `db:"status_id"`
}
