package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rentdesk/config"
	"rentdesk/infras/otel/mocks"
	"rentdesk/internal/domains/auth/model/dto"
	lookupModel "rentdesk/internal/domains/lookup/model"
	lookupDto "rentdesk/internal/domains/lookup/model/dto"
	lookupHandler "rentdesk/internal/handlers/lookup"
	"rentdesk/permissions"
	cacheMocks "rentdesk/shared/cache/mocks"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"rentdesk/shared/session"
	"rentdesk/transport/http/middleware"
)

type stubAuth struct {
	token string
	sess  session.Session
}

func (s stubAuth) Login(context.Context, dto.LoginRequest) (dto.LoginResponse, error) {
	return dto.LoginResponse{}, nil
}

func (s stubAuth) Authenticate(_ context.Context, token string) (session.Session, error) {
	if token != s.token {
		return session.Session{}, failure.AuthenticationRequired
	}

	return s.sess, nil
}

func (s stubAuth) RefreshToken(context.Context, dto.RefreshTokenRequest) (dto.LoginResponse, error) {
	return dto.LoginResponse{}, nil
}

func newGatedRouter(t *testing.T) http.Handler {
	t.Helper()

	perms, err := permissions.Parse([]byte(`{"endpoints": [
		{"path": "/getCompanies", "method": "GET", "skip": true},
		{"path": "/printedPage/{customer_id}", "method": "GET", "redirect": true}
	]}`))
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.App.Session.CookieName = "rentdesk_session"

	auth := middleware.NewAuthMiddleware(stubAuth{
		token: "good-token",
		sess:  session.Session{AgentID: 4, AgentName: "kim", StatusID: constant.AgentStatusActive},
	}, mocks.NewOtel(), perms, cfg)

	echoAgent := func(w http.ResponseWriter, r *http.Request) {
		sess, ok := session.FromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)

			return
		}

		_, _ = w.Write([]byte(strconv.FormatInt(sess.AgentID, 10)))
	}

	router := chi.NewRouter()
	router.Use(auth.Auth)
	router.Get("/getCompanies", echoAgent)
	router.Get("/printedPage/{customer_id}", echoAgent)
	router.Post("/create_customer", echoAgent)

	return router
}

func TestAuth(t *testing.T) {
	router := newGatedRouter(t)

	tests := []struct {
		name         string
		method       string
		path         string
		cookie       string
		bearer       string
		wantCode     int
		wantBody     string
		wantLocation string
	}{
		{name: "public route without session", method: http.MethodGet, path: "/getCompanies", wantCode: http.StatusTeapot},
		{name: "json route without session", method: http.MethodPost, path: "/create_customer", wantCode: http.StatusUnauthorized},
		{name: "page route without session", method: http.MethodGet, path: "/printedPage/3", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "page route with bad cookie", method: http.MethodGet, path: "/printedPage/3", cookie: "forged", wantCode: http.StatusFound, wantLocation: "/login"},
		{name: "cookie session", method: http.MethodPost, path: "/create_customer", cookie: "good-token", wantCode: http.StatusOK, wantBody: "4"},
		{name: "bearer session", method: http.MethodGet, path: "/printedPage/3", bearer: "good-token", wantCode: http.StatusOK, wantBody: "4"},
		{name: "bad bearer", method: http.MethodPost, path: "/create_customer", bearer: "expired", wantCode: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.cookie != "" {
				request.AddCookie(&http.Cookie{Name: "rentdesk_session", Value: tt.cookie})
			}

			if tt.bearer != "" {
				request.Header.Set("Authorization", "Bearer "+tt.bearer)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}

			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, recorder.Header().Get("Location"))
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name          string
		count         int64
		err           error
		wantCode      int
		wantRemaining string
		wantRetry     string
	}{
		{name: "first request", count: 1, wantCode: http.StatusNoContent, wantRemaining: "1"},
		{name: "last allowed request", count: 2, wantCode: http.StatusNoContent, wantRemaining: "0"},
		{name: "over the limit", count: 3, wantCode: http.StatusTooManyRequests, wantRemaining: "0", wantRetry: "60"},
		{name: "cache down lets requests through", err: errors.New("dial tcp: refused"), wantCode: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache.EXPECT().
				Incr(gomock.Any(), "rentdesk:limiter:198.51.100.7", gomock.Any()).
				Return(tt.count, tt.err)

			request := httptest.NewRequest(http.MethodGet, "/display", nil)
			request.RemoteAddr = "198.51.100.7:40112"
			request.Header.Set("User-Agent", "agent-ui")

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.wantRemaining, recorder.Header().Get("X-RateLimit-Remaining"))
			assert.Equal(t, tt.wantRetry, recorder.Header().Get("Retry-After"))
		})
	}
}

func TestRateLimit_PeerAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().
		Incr(gomock.Any(), "rentdesk:limiter:192.0.2.10", time.Minute).
		Return(int64(1), nil)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 5
	cfg.App.RateLimiter.WindowSeconds = 60

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	request := httptest.NewRequest(http.MethodGet, "/display", nil)
	request.RemoteAddr = "192.0.2.10:53211"

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Equal(t, "4", recorder.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_IgnoresClientSuppliedHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	var count int64

	mockCache.EXPECT().
		Incr(gomock.Any(), "rentdesk:limiter:203.0.113.5", time.Minute).
		DoAndReturn(func(_ context.Context, _ string, _ time.Duration) (int64, error) {
			count++

			return count, nil
		}).
		Times(3)

	app := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, mockCache)
	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	headers := []map[string]string{
		{"User-Agent": "curl/8.0"},
		{"User-Agent": "Mozilla/5.0", "X-Forwarded-For": "10.9.9.9"},
		{"User-Agent": "rotated-agent", "X-Forwarded-For": "10.1.1.1, 10.2.2.2", "X-Real-IP": "10.3.3.3"},
	}

	codes := make([]int, 0, len(headers))

	for _, set := range headers {
		request := httptest.NewRequest(http.MethodGet, "/display", nil)
		request.RemoteAddr = "203.0.113.5:50000"

		for name, value := range set {
			request.Header.Set(name, value)
		}

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)

		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestRateLimit_Disabled(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestAccessLogAndTracing(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	router := chi.NewRouter()
	router.Use(app.Tracing, app.AccessLog)
	router.Get("/display", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/display", nil))

	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

type stubLookup struct {
	calls []lookupModel.Kind
}

func (s *stubLookup) Statuses(_ context.Context, kind lookupModel.Kind) ([]lookupDto.Option, error) {
	s.calls = append(s.calls, kind)

	return []lookupDto.Option{{ID: 1, Name: "Active"}}, nil
}

func (s *stubLookup) Companies(context.Context) ([]lookupDto.Option, error) {
	return nil, nil
}

func TestAuth_StatusRoutesArePublic(t *testing.T) {
	perms := permissions.Get()
	require.NotNil(t, perms)

	cfg := &config.Config{}
	cfg.App.Session.CookieName = "rentdesk_session"

	auth := middleware.NewAuthMiddleware(stubAuth{token: "good-token"}, mocks.NewOtel(), perms, cfg)
	svc := &stubLookup{}
	handler := lookupHandler.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(auth.Auth)
	handler.Router(router)
	router.Post("/create_customer", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	tests := []struct {
		path string
		kind lookupModel.Kind
	}{
		{path: "/getEquipment_status_ids", kind: lookupModel.KindEquipment},
		{path: "/getCustomer_status_ids", kind: lookupModel.KindCustomer},
		{path: "/getRentals_status_ids", kind: lookupModel.KindRental},
		{path: "/getVehicle_status_ids", kind: lookupModel.KindVehicle},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			svc.calls = nil
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.JSONEq(t, `[{"id":1,"name":"Active"}]`, recorder.Body.String())
			assert.Equal(t, []lookupModel.Kind{tt.kind}, svc.calls)
		})
	}

	t.Run("mutations stay gated", func(t *testing.T) {
		recorder := httptest.NewRecorder()

		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/create_customer", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
