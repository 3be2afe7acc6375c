// Package session carries the authenticated agent through a request.
package session

import (
	"context"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
)

// Session is the agent bound to a request once its token has been validated.
type Session struct {
	AgentID   int64
	AgentName string
	StatusID  int64
}

func (s Session) Active() bool {
	return s.AgentID > 0 && s.StatusID == constant.AgentStatusActive
}

// UpdatedBy returns the agent id recorded in updated_by_agent_id columns.
func (s Session) UpdatedBy() *int64 {
	id := s.AgentID

	return &id
}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, constant.ContextKeySession, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(constant.ContextKeySession).(Session)

	return s, ok
}

// Require returns the session bound to ctx, or AuthenticationRequired when there is none.
func Require(ctx context.Context) (Session, error) {
	s, ok := FromContext(ctx)
	if !ok || s.AgentID <= 0 {
		return Session{}, failure.AuthenticationRequired
	}

	return s, nil
}
