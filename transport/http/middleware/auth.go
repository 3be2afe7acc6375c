package middleware

import (
	"errors"
	"net/http"
	"rentdesk/config"
	"rentdesk/infras/jwt"
	"rentdesk/infras/otel"
	authService "rentdesk/internal/domains/auth/service"
	"rentdesk/permissions"
	"rentdesk/shared/constant"
	"rentdesk/shared/failure"
	"rentdesk/shared/session"
	"rentdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// Auth is the session gate in front of every route.
type Auth interface {
	Auth(http.Handler) http.Handler
}

type authImpl struct {
	auth       authService.Auth
	otel       otel.Otel
	permission *permissions.PermissionData
	cfg        *config.Config
}

func NewAuthMiddleware(auth authService.Auth, otel otel.Otel, permissions *permissions.PermissionData, cfg *config.Config) Auth {
	return &authImpl{
		auth:       auth,
		otel:       otel,
		permission: permissions,
		cfg:        cfg,
	}
}

// Auth resolves the session from the session cookie or a bearer token and stores it in the
// request context. Public routes pass through untouched.
func (m *authImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		permission := m.findPermission(request)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       permission.Path,
			"http.method":     request.Method,
		})

		if permission.Skip {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		token, err := m.token(request)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			m.reject(writer, request, permission, failure.AuthenticationRequired)

			return
		}

		sess, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			scope.TraceError(err)
			scope.End()
			log.Debug().Err(err).Str("path", request.URL.Path).Msg("session rejected")
			m.reject(writer, request, permission, err)

			return
		}

		scope.SetAttribute("agent.id", sess.AgentID)
		scope.End()

		next.ServeHTTP(writer, request.WithContext(session.WithSession(request.Context(), sess)))
	})
}

func (m *authImpl) findPermission(request *http.Request) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	if m.permission.Skip {
		return permissions.Permission{Skip: true}
	}

	path := request.URL.Path

	if rctx := chi.RouteContext(request.Context()); rctx != nil && rctx.Routes != nil {
		if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != "" {
			path = pattern
		}
	}

	permission := m.permission.FindPermissions(path, request.Method)
	if permission.Path == "" {
		permission.Path = path
	}

	return permission
}

func (m *authImpl) token(request *http.Request) (string, error) {
	if cookie, err := request.Cookie(m.cfg.App.Session.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	token, err := jwt.ExtractTokenFromHeader(request.Header.Get(constant.RequestHeaderAuthorization))
	if err != nil {
		return "", errors.Join(failure.AuthenticationRequired, err)
	}

	return token, nil
}

func (m *authImpl) reject(writer http.ResponseWriter, request *http.Request, permission permissions.Permission, err error) {
	if permission.Redirect {
		response.WithRedirect(writer, request, constant.RouteLogin)

		return
	}

	if _, ok := failure.As(err); !ok {
		err = failure.AuthenticationRequired
	}

	response.WithError(writer, err)
}
