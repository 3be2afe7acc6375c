package auth

import (
	"net/http"
	"net/url"
	"rentdesk/config"
	"rentdesk/infras/otel"
	"rentdesk/internal/domains/auth/model/dto"
	"rentdesk/internal/domains/auth/service"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"rentdesk/shared/validator"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	MessageLoginPage = "Please log in."
	MessageLoggedIn  = "Logged in successfully."
)

type Handler struct {
	service service.Auth
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Auth, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Get(constant.RouteLogin, handler.LoginPage)
	r.Post(constant.RouteLogin, handler.LoginForm)
	r.Get(constant.RouteLogout, handler.Logout)
	r.Post(constant.RouteLogout, handler.Logout)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/refresh-token", handler.RefreshToken)
	})
}

// LoginPage returns the data behind the login form.
// @Summary Login page
// @Description Returns the login form message and any flash message from a failed attempt.
// @Tags Auth
// @Produce json
// @Param flash query string false "Flash message"
// @Success 200 {object} dto.LoginPage
// @Router /login [get]
func (handler *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	response.WithBody(w, http.StatusOK, dto.LoginPage{
		Message: MessageLoginPage,
		Flash:   r.URL.Query().Get(constant.RequestParamFlash),
	})
}

// LoginForm signs an agent in from the login form.
// @Summary Form login
// @Description Verifies the agent's credentials, sets the session cookie and redirects to /display. Failures redirect back to /login with a flash message.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Param username formData string true "Agent name"
// @Param password formData string true "Password"
// @Success 302
// @Router /login [post]
func (handler *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LoginForm")
	defer scope.End()

	req := dto.LoginRequest{
		Username: r.PostFormValue(constant.RequestParamUsername),
		Password: r.PostFormValue(constant.RequestParamPassword),
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("username", req.Username).Msg("form login failed")

		message := service.MessageInvalidCredentials
		if fail, ok := failure.As(err); ok && fail.Code == http.StatusUnauthorized {
			message = fail.Message
		}

		response.WithRedirect(w, r, constant.RouteLogin+"?"+url.Values{constant.RequestParamFlash: {message}}.Encode())

		return
	}

	http.SetCookie(w, handler.sessionCookie(res.AccessToken, int(res.ExpiresIn)))

	scope.AddEvent(MessageLoggedIn)

	response.WithRedirect(w, r, constant.RouteDisplay)
}

// Logout clears the session cookie.
// @Summary Logout
// @Tags Auth
// @Success 302
// @Router /logout [post]
func (handler *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, handler.sessionCookie("", -1))

	response.WithRedirect(w, r, constant.RouteLogin)
}

// Login handles agent login for API clients
// @Summary Login an agent
// @Description Login an agent with the provided credentials and receive a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Agent logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login agent")

		response.WithError(w, err)

		return
	}

	scope.AddEvent(MessageLoggedIn)

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh agent token
// @Description Issue a new token pair from a valid refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.LoginResponse "Token refreshed successfully"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh-token [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

func (handler *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     handler.cfg.App.Session.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   handler.cfg.App.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
