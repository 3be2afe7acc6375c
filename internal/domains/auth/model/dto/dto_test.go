package dto_test

import (
	"encoding/json"
	"testing"

	"rentdesk/infras/jwt"
	"rentdesk/internal/domains/auth/model/dto"
	"rentdesk/shared/failure"
	"rentdesk/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	response := dto.LoginResponse{AgentID: 7, AgentName: "desk-7"}
	response.FromTokenPair(&jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    28800,
	})

	raw, err := json.Marshal(response)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"access_token": "access",
		"refresh_token": "refresh",
		"token_type": "Bearer",
		"expires_in": 28800,
		"agent_id": 7,
		"agent_name": "desk-7"
	}`, string(raw))
}

func TestLoginRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		request dto.LoginRequest
		details string
	}{
		{name: "complete", request: dto.LoginRequest{Username: "desk-7", Password: "s3cret-pass"}},
		{name: "no password", request: dto.LoginRequest{Username: "desk-7"}, details: "password"},
		{name: "empty", request: dto.LoginRequest{}, details: "username, password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.request)
			if tt.details == "" {
				assert.NoError(t, err)

				return
			}

			f, ok := failure.As(err)
			require.True(t, ok)
			assert.Equal(t, validator.MessageMissingFields, f.Message)
			assert.Equal(t, tt.details, f.Details)
		})
	}
}

func TestLoginPage_OmitsEmptyFlash(t *testing.T) {
	raw, err := json.Marshal(dto.LoginPage{Message: "Please log in"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"message":"Please log in"}`, string(raw))
}
