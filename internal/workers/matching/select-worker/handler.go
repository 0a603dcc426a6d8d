// internal/workers/matching/select-worker/handler.go

// Package selectworker implements the hiring flow. Match scores are a
// snapshot and can go stale, so selection re-validates the worker and
// claims it with an atomic conditional write instead of trusting the
// cached match payload.
package selectworker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	stderrors "github.com/pratham1800/HouseHelp/internal/common/errors"
	"github.com/pratham1800/HouseHelp/internal/common/logger"
	"github.com/pratham1800/HouseHelp/internal/common/metrics"
	"github.com/pratham1800/HouseHelp/internal/store"
)

// Handler executes worker selection requests against the worker store.
type Handler struct {
	config  *Config
	workers *store.WorkerStore
	logger  logger.Logger
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		workers: store.NewWorkerStore(db),
		logger:  log,
	}
}

// NewHandlerWithStore creates a selection handler over a preconstructed store.
func NewHandlerWithStore(config *Config, workers *store.WorkerStore, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		workers: workers,
		logger:  log,
	}
}

// Execute claims the worker for the booking. Losing a race to a concurrent
// booking surfaces as a worker-unavailable error, not a success.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	log := h.logger.WithFields(map[string]interface{}{
		"bookingId":  input.BookingID,
		"workerId":   input.WorkerID,
		"customerId": input.CustomerID,
	})

	worker, err := h.workers.GetByID(ctx, input.WorkerID)
	if err != nil {
		if errors.Is(err, store.ErrWorkerNotFound) {
			log.Warn("Selection requested for unknown worker", nil)
			metrics.WorkerSelectionsTotal.WithLabelValues("not_found").Inc()
			return nil, stderrors.NewWorkerNotFoundError(input.WorkerID)
		}
		metrics.WorkerSelectionsTotal.WithLabelValues("error").Inc()
		return nil, stderrors.NewWorkerQueryFailedError(err)
	}

	if !worker.IsVerified() || worker.IsAssigned() {
		log.Info("Worker failed selection re-validation", map[string]interface{}{
			"status":   worker.Status,
			"assigned": worker.IsAssigned(),
		})
		metrics.WorkerSelectionsTotal.WithLabelValues("conflict").Inc()
		metrics.WorkerSelectionConflicts.Inc()
		return nil, stderrors.NewWorkerUnavailableError(input.WorkerID)
	}

	if err := h.workers.Assign(ctx, input.WorkerID, input.CustomerID, input.BookingID); err != nil {
		if errors.Is(err, store.ErrWorkerUnavailable) {
			log.Info("Worker claimed by a concurrent booking", nil)
			metrics.WorkerSelectionsTotal.WithLabelValues("conflict").Inc()
			metrics.WorkerSelectionConflicts.Inc()
			return nil, stderrors.NewWorkerUnavailableError(input.WorkerID)
		}
		metrics.WorkerSelectionsTotal.WithLabelValues("error").Inc()
		return nil, stderrors.NewAssignmentFailedError(input.WorkerID, err)
	}

	log.Info("Worker assigned to booking", nil)
	metrics.WorkerSelectionsTotal.WithLabelValues("assigned").Inc()

	return &Output{
		Success: true,
		Message: fmt.Sprintf("%s has been assigned to your booking", worker.Name),
	}, nil
}
