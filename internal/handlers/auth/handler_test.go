package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"rentdesk/config"
	"rentdesk/infras/otel/mocks"
	"rentdesk/internal/domains/auth/model/dto"
	"rentdesk/internal/domains/auth/service"
	"rentdesk/internal/handlers/auth"
	"rentdesk/shared/failure"
	"rentdesk/shared/session"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	login   *dto.LoginRequest
	res     dto.LoginResponse
	err     error
	refresh *dto.RefreshTokenRequest
}

func (s *stubService) Login(_ context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	s.login = &req

	return s.res, s.err
}

func (s *stubService) Authenticate(context.Context, string) (session.Session, error) {
	return session.Session{}, failure.AuthenticationRequired
}

func (s *stubService) RefreshToken(_ context.Context, req dto.RefreshTokenRequest) (dto.LoginResponse, error) {
	s.refresh = &req

	return s.res, s.err
}

func newRouter(svc *stubService) http.Handler {
	cfg := &config.Config{}
	cfg.App.Session.CookieName = "rentdesk_session"
	cfg.App.Session.Secure = true

	h := auth.New(svc, cfg, mocks.NewOtel())
	r := chi.NewRouter()
	h.Router(r)

	return r
}

func formRequest(username, password string) *http.Request {
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return req
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "rentdesk_session" {
			return cookie
		}
	}

	return nil
}

func TestHandler_LoginForm(t *testing.T) {
	t.Run("success sets the session cookie and opens the display", func(t *testing.T) {
		svc := &stubService{res: dto.LoginResponse{AccessToken: "access-token", ExpiresIn: 28800, AgentID: 3, AgentName: "jo"}}
		rec := httptest.NewRecorder()

		newRouter(svc).ServeHTTP(rec, formRequest("jo", "s3cret-pass"))

		require.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/display", rec.Header().Get("Location"))
		require.NotNil(t, svc.login)
		assert.Equal(t, dto.LoginRequest{Username: "jo", Password: "s3cret-pass"}, *svc.login)

		cookie := sessionCookie(t, rec)
		require.NotNil(t, cookie)
		assert.Equal(t, "access-token", cookie.Value)
		assert.Equal(t, "/", cookie.Path)
		assert.Equal(t, 28800, cookie.MaxAge)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	})

	tests := []struct {
		name      string
		err       error
		wantFlash string
	}{
		{
			name:      "wrong credentials",
			err:       failure.Unauthorized(service.MessageInvalidCredentials),
			wantFlash: "Invalid username or password.",
		},
		{
			name:      "inactive agent",
			err:       failure.Unauthorized(service.MessageInactiveAgent),
			wantFlash: "Agent account is inactive.",
		},
		{
			name:      "internal errors keep the generic message",
			err:       failure.InternalError(assert.AnError),
			wantFlash: "Invalid username or password.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{err: tt.err}
			rec := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rec, formRequest("jo", "wrong"))

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Nil(t, sessionCookie(t, rec))

			location, err := url.Parse(rec.Header().Get("Location"))
			require.NoError(t, err)
			assert.Equal(t, "/login", location.Path)
			assert.Equal(t, tt.wantFlash, location.Query().Get("flash"))
		})
	}
}

func TestHandler_LoginPage(t *testing.T) {
	rec := httptest.NewRecorder()

	newRouter(&stubService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login?flash=Invalid+username+or+password.", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Please log in.","flash":"Invalid username or password."}`, rec.Body.String())
}

func TestHandler_Logout(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()

			newRouter(&stubService{}).ServeHTTP(rec, httptest.NewRequest(method, "/logout", nil))

			require.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, "/login", rec.Header().Get("Location"))

			cookie := sessionCookie(t, rec)
			require.NotNil(t, cookie)
			assert.Empty(t, cookie.Value)
			assert.Negative(t, cookie.MaxAge)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
	}{
		{name: "success", body: `{"username":"jo","password":"s3cret-pass"}`, wantCode: http.StatusOK},
		{name: "missing password", body: `{"username":"jo"}`, wantCode: http.StatusBadRequest},
		{name: "rejected", body: `{"username":"jo","password":"nope"}`, err: failure.Unauthorized(service.MessageInvalidCredentials), wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{
				res: dto.LoginResponse{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer", ExpiresIn: 60, AgentID: 3, AgentName: "jo"},
				err: tt.err,
			}
			rec := httptest.NewRecorder()

			newRouter(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/auth/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusOK {
				assert.Contains(t, rec.Body.String(), `"access_token":"a"`)
				assert.Contains(t, rec.Body.String(), `"agent_id":3`)
			}
		})
	}
}
