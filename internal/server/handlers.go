// internal/server/handlers.go
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	stderrors "github.com/pratham1800/HouseHelp/internal/common/errors"
	"github.com/pratham1800/HouseHelp/internal/common/metrics"
	"github.com/pratham1800/HouseHelp/internal/common/validation"
	"github.com/pratham1800/HouseHelp/internal/models"
	matchworkers "github.com/pratham1800/HouseHelp/internal/workers/matching/match-workers"
	selectworker "github.com/pratham1800/HouseHelp/internal/workers/matching/select-worker"
)

// failureEnvelope is the non-2xx response shape for unexpected failures.
type failureEnvelope struct {
	Success        bool                   `json:"success"`
	Error          string                 `json:"error"`
	MatchedWorkers []models.WorkerSummary `json:"matchedWorkers"`
}

func (s *Server) matchWorkers(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failureEnvelope{
			Error:          "could not read request body",
			MatchedWorkers: []models.WorkerSummary{},
		})
	}

	// A malformed body is a normal business outcome for matching: the
	// caller gets an empty list with a reason, not a server fault.
	if result := validation.ValidateMatchRequest(body); !result.Valid {
		metrics.MatchRequestsTotal.WithLabelValues("unknown", metrics.OutcomeInvalidRequest).Inc()
		return c.JSON(http.StatusOK, &matchworkers.Output{
			Success:        true,
			MatchedWorkers: []models.WorkerSummary{},
			Message:        "Invalid request: " + result.Summary(),
		})
	}

	var input matchworkers.Input
	if err := json.Unmarshal(body, &input); err != nil {
		metrics.MatchRequestsTotal.WithLabelValues("unknown", metrics.OutcomeInvalidRequest).Inc()
		return c.JSON(http.StatusOK, &matchworkers.Output{
			Success:        true,
			MatchedWorkers: []models.WorkerSummary{},
			Message:        "Invalid request: malformed JSON body",
		})
	}

	start := time.Now()
	output, err := s.matcher.Execute(c.Request().Context(), &input)
	metrics.MatchRequestDuration.WithLabelValues(input.ServiceType).Observe(time.Since(start).Seconds())

	if err != nil {
		std := stderrors.AsStandard(err)
		s.logger.WithError(err).Error("Match request failed", map[string]interface{}{
			"bookingId": input.BookingID,
			"code":      std.Code,
		})
		metrics.MatchRequestsTotal.WithLabelValues(input.ServiceType, metrics.OutcomeError).Inc()
		return c.JSON(stderrors.HTTPStatus(std.Code), failureEnvelope{
			Error:          std.Message,
			MatchedWorkers: []models.WorkerSummary{},
		})
	}

	metrics.MatchRequestsTotal.WithLabelValues(input.ServiceType, output.Outcome).Inc()
	metrics.MatchedWorkersReturned.Observe(float64(len(output.MatchedWorkers)))
	return c.JSON(http.StatusOK, output)
}

func (s *Server) selectWorker(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failureEnvelope{
			Error:          "could not read request body",
			MatchedWorkers: []models.WorkerSummary{},
		})
	}

	if result := validation.ValidateSelectWorkerRequest(body); !result.Valid {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request: " + result.Summary(),
		})
	}

	var input selectworker.Input
	if err := json.Unmarshal(body, &input); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request: malformed JSON body",
		})
	}

	output, err := s.selector.Execute(c.Request().Context(), &input)
	if err != nil {
		std := stderrors.AsStandard(err)
		s.logger.WithError(err).Warn("Worker selection failed", map[string]interface{}{
			"bookingId": input.BookingID,
			"workerId":  input.WorkerID,
			"code":      std.Code,
		})
		return c.JSON(stderrors.HTTPStatus(std.Code), echo.Map{
			"success": false,
			"error":   std.Message,
		})
	}

	return c.JSON(http.StatusOK, output)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "service": s.config.App.Name})
}

func (s *Server) ready(c echo.Context) error {
	ctx := c.Request().Context()

	if s.postgres == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db not initialized"})
	}
	if err := s.postgres.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "db unreachable"})
	}
	if s.redis != nil {
		if err := s.redis.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "not_ready", "error": "redis unreachable"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ready"})
}
