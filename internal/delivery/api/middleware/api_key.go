package middleware

import (
	"log/slog"

	"orgs/config"
	"orgs/internal/delivery/api/response"
	deliverycontext "orgs/internal/delivery/context"
	"orgs/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// APIKeyMiddleware rejects requests that lack a valid static API key.
type APIKeyMiddleware struct {
	verifier service.APIKeyVerifier
	header   string
	logger   *slog.Logger
}

// NewAPIKeyMiddleware creates the middleware reading the key from cfg.API.Header.
func NewAPIKeyMiddleware(verifier service.APIKeyVerifier, cfg *config.Config, logger *slog.Logger) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		verifier: verifier,
		header:   cfg.API.Header,
		logger:   logger,
	}
}

// Authenticate responds 401 without data when the header is missing or wrong.
func (m *APIKeyMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(m.header)
		if !m.verifier.Verify(key) {
			logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
			logger.Debug("API key rejected",
				slog.Bool("header_present", key != ""),
				slog.String("path", c.Request().URL.Path),
			)

			return response.Unauthorized(c)
		}

		return next(c)
	}
}
