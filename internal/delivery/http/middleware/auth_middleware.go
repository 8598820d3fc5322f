package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "autoconnect/internal/delivery/context"
	"autoconnect/internal/delivery/http/response"
	"autoconnect/internal/domain/entity"
	"autoconnect/internal/domain/service"
	"autoconnect/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	ActorUC      usecase.ActorUsecase
	Logger       *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and resolves the calling actor.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	actorUC  usecase.ActorUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		tokenSvc: params.TokenService,
		actorUC:  params.ActorUC,
		logger:   params.Logger,
	}
}

// Authenticate validates the access token, loads the actor from the user
// directory and stores it on the context. The role comes from the directory, not
// from the token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		ctx := c.Request().Context()
		log := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			log.Debug("Token rejected", slog.Any("error", err))

			return response.Unauthorized(c, "Invalid or expired token")
		}

		actor, err := m.actorUC.ResolveActor(ctx, claims.UserID)
		if err != nil {
			return response.HandleAppError(c, err)
		}

		ctx = deliverycontext.WithActor(ctx, actor)
		ctx = deliverycontext.WithLogger(ctx, log.With(slog.String("actor_id", actor.ID.String())))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// GetActor returns the actor stored by Authenticate.
func GetActor(c echo.Context) (*entity.Actor, bool) {
	return deliverycontext.GetActor(c.Request().Context())
}
