// internal/workers/matching/match-workers/handler.go

// Package matchworkers implements the worker matching pipeline: resolve the
// employer location, filter the candidate pool down to eligible workers,
// score the survivors, and rank the top results.
package matchworkers

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	stderrors "github.com/pratham1800/HouseHelp/internal/common/errors"
	"github.com/pratham1800/HouseHelp/internal/common/logger"
	"github.com/pratham1800/HouseHelp/internal/common/metrics"
	"github.com/pratham1800/HouseHelp/internal/geo"
	"github.com/pratham1800/HouseHelp/internal/models"
	"github.com/pratham1800/HouseHelp/internal/store"
)

// Stage messages returned when a filter empties the candidate set. Each
// stage reports its own reason so callers can tell "none exist" from "none
// nearby" from "none with the right skill".
const (
	msgLocationUnresolved = "Unable to determine your location. Please provide a valid city or area in your address for worker matching."
	msgNoWorkersOfType    = "No available workers found for this service type"
	msgNoCapabilityMatch  = "No workers found matching your service requirements"
	msgNoLocationMatch    = "No workers found in %s. We're expanding our network - please check back later."
	msgMatched            = "Found %d matching workers in %s"
)

// Handler executes match requests against the worker and booking stores.
type Handler struct {
	config   *Config
	workers  *store.WorkerStore
	bookings *store.BookingStore
	resolver *geo.Resolver
	logger   logger.Logger
}

// NewHandler creates a match handler. The redis client may be nil, which
// disables booking detail caching.
func NewHandler(config *Config, db *sql.DB, rdb *redis.Client, resolver *geo.Resolver, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		workers:  store.NewWorkerStore(db),
		bookings: store.NewBookingStore(db, rdb, config.BookingCacheTTL),
		resolver: resolver,
		logger:   log,
	}
}

// NewHandlerWithStores creates a match handler over preconstructed stores.
func NewHandlerWithStores(config *Config, workers *store.WorkerStore, bookings *store.BookingStore, resolver *geo.Resolver, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		workers:  workers,
		bookings: bookings,
		resolver: resolver,
		logger:   log,
	}
}

// Execute runs the matching pipeline for one request. Zero matches is a
// normal outcome reported via the output message; only store failures
// return an error.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	ctx, cancel := context.WithTimeout(ctx, h.config.Timeout)
	defer cancel()

	log := h.logger.WithFields(map[string]interface{}{
		"bookingId":   input.BookingID,
		"serviceType": input.ServiceType,
	})

	workType, ok := serviceToWorkType[input.ServiceType]
	if !ok {
		log.Warn("Unknown service type requested", nil)
		return emptyResult(msgNoWorkersOfType, metrics.OutcomeNoWorkersOfType), nil
	}

	city := h.resolver.ExtractCity(input.Address)
	region := h.resolver.ExtractRegion(input.Address)
	if city == "" && region == "" {
		log.Warn("Employer address resolved to no known city or region", map[string]interface{}{
			"address": input.Address,
		})
		return emptyResult(msgLocationUnresolved, metrics.OutcomeBadLocation), nil
	}

	h.resolveDietaryPreference(ctx, input, log)

	pool, err := h.workers.AvailableByType(ctx, workType)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, stderrors.NewQueryTimeoutError("worker pool query")
		}
		return nil, stderrors.NewWorkerQueryFailedError(err)
	}
	if len(pool) == 0 {
		log.Info("No available workers for work type", map[string]interface{}{
			"workType": workType,
		})
		return emptyResult(msgNoWorkersOfType, metrics.OutcomeNoWorkersOfType), nil
	}

	requirement := buildCapabilityRequirement(input)
	capable := filterCapable(pool, workType, requirement)
	if len(capable) == 0 {
		log.Info("No workers passed the capability filter", map[string]interface{}{
			"poolSize": len(pool),
			"required": requirement.required,
		})
		return emptyResult(msgNoCapabilityMatch, metrics.OutcomeNoCapability), nil
	}

	located := filterByLocation(h.resolver, capable, input.Address)
	if len(located) == 0 {
		area := city
		if area == "" {
			area = region
		}
		log.Info("No workers passed the location filter", map[string]interface{}{
			"capableSize": len(capable),
			"area":        area,
		})
		return emptyResult(fmt.Sprintf(msgNoLocationMatch, area), metrics.OutcomeNoLocation), nil
	}

	summaries := h.rank(located, input, requirement)

	area := city
	if area == "" {
		area = region
	}
	log.Info("Matching completed", map[string]interface{}{
		"poolSize":    len(pool),
		"eligible":    len(located),
		"returned":    len(summaries),
		"topScore":    summaries[0].MatchScore,
		"matchedArea": area,
	})

	return &Output{
		Success:        true,
		MatchedWorkers: summaries,
		Message:        fmt.Sprintf(msgMatched, len(summaries), area),
		Outcome:        metrics.OutcomeMatched,
	}, nil
}

// resolveDietaryPreference fills in the dietary preference for cooking
// requests from the stored booking details when the request omits it. A
// lookup failure is logged and matching proceeds unconstrained.
func (h *Handler) resolveDietaryPreference(ctx context.Context, input *Input, log logger.Logger) {
	if input.ServiceType != "cooking" || input.DietaryPreference != "" || input.BookingID == "" {
		return
	}
	pref, err := h.bookings.DietaryPreference(ctx, input.BookingID)
	if err != nil {
		log.WithError(err).Warn("Could not load booking dietary preference, matching without it", nil)
		return
	}
	input.DietaryPreference = pref
}

// rank scores the located workers, sorts by score descending with worker id
// ascending as the tie-break, and truncates to the configured maximum.
func (h *Handler) rank(located []locatedWorker, input *Input, req capabilityRequirement) []models.WorkerSummary {
	summaries := make([]models.WorkerSummary, 0, len(located))
	for i := range located {
		score := scoreWorker(&located[i].worker, input, req, located[i].tier)
		summaries = append(summaries, located[i].worker.Summarize(score))
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].MatchScore != summaries[j].MatchScore {
			return summaries[i].MatchScore > summaries[j].MatchScore
		}
		return summaries[i].ID < summaries[j].ID
	})

	if h.config.MaxResults > 0 && len(summaries) > h.config.MaxResults {
		summaries = summaries[:h.config.MaxResults]
	}
	return summaries
}

func emptyResult(message, outcome string) *Output {
	return &Output{
		Success:        true,
		MatchedWorkers: []models.WorkerSummary{},
		Message:        message,
		Outcome:        outcome,
	}
}
