package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/time/rate"

	"github.com/CutieCat6778/reservation-frontdesk/internal/session"
)

const defaultRPS rate.Limit = 100

const (
	staffTokenKey = "staffTokenKey"
	guestTokenKey = "guestTokenKey"
)

func contextKey(role session.Role) string {
	if role == session.RoleStaff {
		return staffTokenKey
	}
	return guestTokenKey
}

// auth resolves the role's session cookie and stashes the backend token in
// the request context. Expired or malformed cookies are cleared by the store
// and treated the same as a missing one.
func (h *Handler) auth(role session.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := h.sessions.Load(c, role)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(contextKey(role), token)
			return next(c)
		}
	}
}

func staffToken(c echo.Context) (string, error) {
	token, ok := c.Get(staffTokenKey).(string)
	if !ok || token == "" {
		return "", errors.New("no staff token in context")
	}
	return token, nil
}

func guestToken(c echo.Context) (string, error) {
	token, ok := c.Get(guestTokenKey).(string)
	if !ok || token == "" {
		return "", errors.New("no guest token in context")
	}
	return token, nil
}

func requestLoggerConfig(log *zap.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		HandleError:  true,
		LogError:     true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := zapcore.InfoLevel
			if v.Error != nil {
				level = zapcore.ErrorLevel
			}
			log.Log(level, "request",
				zap.String("URI", v.URI),
				zap.String("Method", v.Method),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.Error(v.Error),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	}
}

func newRateLimiterMW(rps rate.Limit) echo.MiddlewareFunc {
	return middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rps))
}
