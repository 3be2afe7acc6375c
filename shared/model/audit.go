package model

// Audit carries the columns every mutable entity shares.
type Audit struct {
	UpdatedByAgentID *int64 `db:"updated_by_agent_id"`
}
