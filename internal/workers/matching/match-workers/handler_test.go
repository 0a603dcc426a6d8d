// internal/workers/matching/match-workers/handler_test.go
package matchworkers

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "github.com/pratham1800/HouseHelp/internal/common/errors"
	"github.com/pratham1800/HouseHelp/internal/common/logger"
	"github.com/pratham1800/HouseHelp/internal/geo"
	"github.com/pratham1800/HouseHelp/pkg/georegistry"
)

// ==========================
// Test Helper Functions
// ==========================

var workerTestColumns = []string{
	"id", "name", "phone", "work_type", "work_subcategories", "years_experience",
	"languages_spoken", "preferred_areas", "residential_address", "working_hours",
	"status", "gender", "assigned_customer_id",
}

func createTestHandler(t *testing.T, db *sql.DB, rdb *redis.Client, config *Config) *Handler {
	if config == nil {
		config = &Config{
			MaxResults:      5,
			Timeout:         5 * time.Second,
			BookingCacheTTL: time.Minute,
		}
	}
	resolver := geo.FromRegistry(georegistry.Default())
	return NewHandler(config, db, rdb, resolver, logger.NewTestLogger(t))
}

func createMatchInput(serviceType, address string) *Input {
	return &Input{
		BookingID:     "booking-1",
		ServiceType:   serviceType,
		PreferredTime: "morning",
		Address:       address,
	}
}

// ==========================
// Empty Outcome Tests
// ==========================

func TestHandler_Execute_UnknownServiceType(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("plumbing", "Koramangala, Bangalore"))

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Empty(t, output.MatchedWorkers)
	assert.Equal(t, "No available workers found for this service type", output.Message)
}

func TestHandler_Execute_UnresolvableLocation(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("cleaning", "Timbuktu"))

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Empty(t, output.MatchedWorkers)
	assert.Equal(t,
		"Unable to determine your location. Please provide a valid city or area in your address for worker matching.",
		output.Message)
}

func TestHandler_Execute_EmptyPool(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("gardening").
		WillReturnRows(sqlmock.NewRows(workerTestColumns))

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("gardening", "Indiranagar, Bangalore"))

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Empty(t, output.MatchedWorkers)
	assert.Equal(t, "No available workers found for this service type", output.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_NoCapabilityMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(workerTestColumns).
		AddRow("w1", "Ramu Kumar", "9000000001", "cooking", "{non_vegetarian}", 4,
			"{hindi}", "{Koramangala}", "Koramangala, Bangalore", "morning", "verified", "male", nil)
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("cooking").
		WillReturnRows(rows)

	input := createMatchInput("cooking", "Koramangala, Bangalore")
	input.DietaryPreference = "veg"

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Empty(t, output.MatchedWorkers)
	assert.Equal(t, "No workers found matching your service requirements", output.Message)
}

func TestHandler_Execute_NoLocationMatch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(workerTestColumns).
		AddRow("w1", "Sunita Devi", "9000000002", "domestic_help", "{brooming}", 3,
			"{hindi}", "{Saket}", "Saket, Delhi", "morning", "verified", "female", nil)
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("domestic_help").
		WillReturnRows(rows)

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("cleaning", "Whitefield, Bangalore"))

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Empty(t, output.MatchedWorkers)
	assert.Equal(t,
		"No workers found in bangalore. We're expanding our network - please check back later.",
		output.Message)
}

// ==========================
// Matching and Ranking Tests
// ==========================

func TestHandler_Execute_RanksByScore(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Exact area match plus senior experience outranks a city-level junior.
	rows := sqlmock.NewRows(workerTestColumns).
		AddRow("w-junior", "Lakshmi Bai", "9000000003", "domestic_help", "{brooming,dusting}", 1,
			"{kannada}", "{Whitefield}", "Whitefield, Bangalore", "morning", "verified", "female", nil).
		AddRow("w-senior", "Sunita Devi", "9000000002", "domestic_help", "{brooming,dusting}", 6,
			"{hindi}", "{Koramangala}", "Koramangala, Bangalore", "morning", "verified", "female", nil)
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("domestic_help").
		WillReturnRows(rows)

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("cleaning", "123 Koramangala Main Rd, Bangalore"))

	require.NoError(t, err)
	assert.True(t, output.Success)
	require.Len(t, output.MatchedWorkers, 2)
	assert.Equal(t, "w-senior", output.MatchedWorkers[0].ID)
	assert.Equal(t, "w-junior", output.MatchedWorkers[1].ID)
	assert.Greater(t, output.MatchedWorkers[0].MatchScore, output.MatchedWorkers[1].MatchScore)
	assert.Equal(t, "Found 2 matching workers in bangalore", output.Message)
}

func TestHandler_Execute_TieBreaksByWorkerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Identical attributes produce identical scores; order falls back to id.
	rows := sqlmock.NewRows(workerTestColumns).
		AddRow("w-b", "Worker B", "9000000005", "domestic_help", "{brooming}", 3,
			"{hindi}", "{Indiranagar}", "Indiranagar, Bangalore", "morning", "verified", "female", nil).
		AddRow("w-a", "Worker A", "9000000004", "domestic_help", "{brooming}", 3,
			"{hindi}", "{Indiranagar}", "Indiranagar, Bangalore", "morning", "verified", "female", nil)
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("domestic_help").
		WillReturnRows(rows)

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("cleaning", "Indiranagar, Bangalore"))

	require.NoError(t, err)
	require.Len(t, output.MatchedWorkers, 2)
	assert.Equal(t, output.MatchedWorkers[0].MatchScore, output.MatchedWorkers[1].MatchScore)
	assert.Equal(t, "w-a", output.MatchedWorkers[0].ID)
	assert.Equal(t, "w-b", output.MatchedWorkers[1].ID)
}

func TestHandler_Execute_TruncatesToMaxResults(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(workerTestColumns)
	ids := []string{"w1", "w2", "w3"}
	for _, id := range ids {
		rows.AddRow(id, "Worker "+id, "9000000000", "driving", "{}", 2,
			"{hindi}", "{Koramangala}", "Koramangala, Bangalore", "morning", "verified", "male", nil)
	}
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("driving").
		WillReturnRows(rows)

	config := &Config{MaxResults: 2, Timeout: 5 * time.Second}
	handler := createTestHandler(t, db, nil, config)
	output, err := handler.Execute(context.Background(), createMatchInput("driver", "Koramangala, Bangalore"))

	require.NoError(t, err)
	assert.Len(t, output.MatchedWorkers, 2)
	assert.Equal(t, "Found 2 matching workers in bangalore", output.Message)
}

func TestHandler_Execute_ResultInvariantToPoolOrder(t *testing.T) {
	addRows := func(rows *sqlmock.Rows, reversed bool) {
		a := func() {
			rows.AddRow("w-a", "Worker A", "9000000004", "domestic_help", "{brooming}", 5,
				"{hindi}", "{Whitefield}", "Whitefield, Bangalore", "morning", "verified", "female", nil)
		}
		b := func() {
			rows.AddRow("w-b", "Worker B", "9000000005", "domestic_help", "{brooming}", 1,
				"{hindi}", "{Whitefield}", "Whitefield, Bangalore", "morning", "verified", "female", nil)
		}
		if reversed {
			b()
			a()
		} else {
			a()
			b()
		}
	}

	var outputs []*Output
	for _, reversed := range []bool{false, true} {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)

		rows := sqlmock.NewRows(workerTestColumns)
		addRows(rows, reversed)
		mock.ExpectQuery("SELECT (.+) FROM workers").
			WithArgs("domestic_help").
			WillReturnRows(rows)

		handler := createTestHandler(t, db, nil, nil)
		output, err := handler.Execute(context.Background(), createMatchInput("cleaning", "Whitefield, Bangalore"))
		require.NoError(t, err)
		outputs = append(outputs, output)
		db.Close()
	}

	assert.Equal(t, outputs[0].MatchedWorkers, outputs[1].MatchedWorkers)
}

func TestHandler_Execute_NeverExposesInternalFields(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(workerTestColumns).
		AddRow("w1", "Venkatesh Rao", "9000000006", "gardening", "{lawn}", 8,
			"{telugu}", "{HSR Layout}", "HSR Layout, Bangalore", "full_day", "verified", "male", nil)
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("gardening").
		WillReturnRows(rows)

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("gardening", "HSR Layout, Bangalore"))

	require.NoError(t, err)
	require.Len(t, output.MatchedWorkers, 1)
	summary := output.MatchedWorkers[0]
	assert.Equal(t, "w1", summary.ID)
	assert.GreaterOrEqual(t, summary.MatchScore, 1)
	assert.LessOrEqual(t, summary.MatchScore, 100)
}

// ==========================
// Dietary Preference Lookup Tests
// ==========================

func TestHandler_Execute_LoadsDietaryPreferenceFromBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	mock.ExpectQuery("SELECT sub_services FROM bookings").
		WithArgs("booking-1").
		WillReturnRows(sqlmock.NewRows([]string{"sub_services"}).
			AddRow([]byte(`{"serviceDetails":{"dietaryPreference":"veg"}}`)))

	rows := sqlmock.NewRows(workerTestColumns).
		AddRow("w-veg", "Mohammad Salim", "9000000007", "cooking", "{vegetarian}", 5,
			"{urdu}", "{Koramangala}", "Koramangala, Bangalore", "morning", "verified", "male", nil).
		AddRow("w-nonveg", "Ramu Kumar", "9000000001", "cooking", "{non_vegetarian}", 5,
			"{hindi}", "{Koramangala}", "Koramangala, Bangalore", "morning", "verified", "male", nil)
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("cooking").
		WillReturnRows(rows)

	handler := createTestHandler(t, db, rdb, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("cooking", "Koramangala, Bangalore"))

	require.NoError(t, err)
	require.Len(t, output.MatchedWorkers, 1)
	assert.Equal(t, "w-veg", output.MatchedWorkers[0].ID)

	// The payload is cached for the next request for the same booking.
	assert.True(t, mr.Exists("booking:subservices:booking-1"))
}

func TestHandler_Execute_BookingLookupFailureProceedsUnconstrained(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT sub_services FROM bookings").
		WithArgs("booking-1").
		WillReturnError(errors.New("connection reset"))

	rows := sqlmock.NewRows(workerTestColumns).
		AddRow("w1", "Mohammad Salim", "9000000007", "cooking", "{vegetarian}", 5,
			"{urdu}", "{Koramangala}", "Koramangala, Bangalore", "morning", "verified", "male", nil)
	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("cooking").
		WillReturnRows(rows)

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("cooking", "Koramangala, Bangalore"))

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Len(t, output.MatchedWorkers, 1)
}

// ==========================
// Failure Path Tests
// ==========================

func TestHandler_Execute_WorkerQueryFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM workers").
		WithArgs("domestic_help").
		WillReturnError(errors.New("connection refused"))

	handler := createTestHandler(t, db, nil, nil)
	output, err := handler.Execute(context.Background(), createMatchInput("cleaning", "Koramangala, Bangalore"))

	require.Error(t, err)
	assert.Nil(t, output)
	std := stderrors.AsStandard(err)
	require.NotNil(t, std)
	assert.Equal(t, stderrors.ErrCodeWorkerQueryFailed, std.Code)
	assert.True(t, std.Retryable)
}
