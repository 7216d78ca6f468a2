package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/deppfellow/careerpilot/internal/config"
	"github.com/deppfellow/careerpilot/internal/middleware"
	"github.com/deppfellow/careerpilot/internal/model"
	"github.com/deppfellow/careerpilot/internal/server"
)

// APIVersion is reported by GET /.
const APIVersion = "1.0.0"

// HealthHandler serves the system endpoints used by clients, load balancers
// and uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// Root greets the caller with the API name and version.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, model.RootInfo{
		Message: "Welcome to " + config.ServiceName,
		Version: APIVersion,
	})
}

// Health is the liveness probe. It touches no dependency and always
// answers 200.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, model.HealthInfo{
		Status:  "healthy",
		Service: config.ServiceName,
	})
}

// CheckStatus reports environment, analyzer provider and dependency checks.
//
// It returns:
//   - 200 OK if every check passes
//   - 503 Service Unavailable if the analysis cache is enabled but Redis
//     does not answer a ping
func (h *HealthHandler) CheckStatus(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "status_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"service":     config.ServiceName,
		"version":     APIVersion,
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"provider":    h.server.Config.AI.Provider,
		"checks":      make(map[string]interface{}),
	}

	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	// ---------------- Redis connectivity check -------------------------------
	if h.server.Redis != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		redisStart := time.Now()

		if err := h.server.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(redisStart).String(),
				"error":         err.Error(),
			}

			isHealthy = false

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check failed")

			h.recordStatusError("redis", "redis_unhealthy", time.Since(redisStart), err)
		} else {
			checks["redis"] = map[string]interface{}{
				"status":        "healthy",
				"response_time": time.Since(redisStart).String(),
			}

			logger.Info().
				Dur("response_time", time.Since(redisStart)).
				Msg("redis health check passed")
		}
	}

	// ---------------- Overall status + response ------------------------------
	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("status check failed")

		h.recordStatusError("overall", "overall_unhealthy", time.Since(start), nil)

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("status check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

// recordStatusError sends a HealthCheckError custom event when New Relic
// is enabled.
func (h *HealthHandler) recordStatusError(checkType, errorType string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attributes := map[string]interface{}{
		"check_type":       checkType,
		"operation":        "status_check",
		"error_type":       errorType,
		"response_time_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		attributes["error_message"] = err.Error()
	}

	app.RecordCustomEvent("HealthCheckError", attributes)
}
