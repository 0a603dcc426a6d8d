// internal/workers/matching/select-worker/handler_test.go
package selectworker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "github.com/pratham1800/HouseHelp/internal/common/errors"
	"github.com/pratham1800/HouseHelp/internal/common/logger"
)

// ==========================
// Test Helper Functions
// ==========================

var workerTestColumns = []string{
	"id", "name", "phone", "work_type", "work_subcategories", "years_experience",
	"languages_spoken", "preferred_areas", "residential_address", "working_hours",
	"status", "gender", "assigned_customer_id",
}

func createInput() *Input {
	return &Input{
		BookingID:  "booking-1",
		WorkerID:   "worker-1",
		CustomerID: "customer-1",
	}
}

func expectWorkerLookup(mock sqlmock.Sqlmock, status string, assignedTo interface{}) {
	mock.ExpectQuery("SELECT (.+) FROM workers WHERE id").
		WithArgs("worker-1").
		WillReturnRows(sqlmock.NewRows(workerTestColumns).
			AddRow("worker-1", "Sunita Devi", "9000000002", "domestic_help", "{brooming}", 4,
				"{hindi}", "{Koramangala}", "Koramangala, Bangalore", "morning", status, "female", assignedTo))
}

// ==========================
// Selection Tests
// ==========================

func TestHandler_Execute_AssignsWorker(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectWorkerLookup(mock, "verified", nil)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workers").
		WithArgs("customer-1", "worker-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs("worker-1", "booking-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	handler := NewHandler(&Config{Timeout: 5 * time.Second}, db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), createInput())

	require.NoError(t, err)
	assert.True(t, output.Success)
	assert.Equal(t, "Sunita Devi has been assigned to your booking", output.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_WorkerNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM workers WHERE id").
		WithArgs("worker-1").
		WillReturnRows(sqlmock.NewRows(workerTestColumns))

	handler := NewHandler(&Config{Timeout: 5 * time.Second}, db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), createInput())

	require.Error(t, err)
	assert.Nil(t, output)
	std := stderrors.AsStandard(err)
	assert.Equal(t, stderrors.ErrCodeWorkerNotFound, std.Code)
}

func TestHandler_Execute_AlreadyAssignedFailsRevalidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectWorkerLookup(mock, "verified", "other-customer")

	handler := NewHandler(&Config{Timeout: 5 * time.Second}, db, logger.NewTestLogger(t))
	output, err := handler.Execute(context.Background(), createInput())

	require.Error(t, err)
	assert.Nil(t, output)
	std := stderrors.AsStandard(err)
	assert.Equal(t, stderrors.ErrCodeWorkerUnavailable, std.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_UnverifiedFailsRevalidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectWorkerLookup(mock, "pending", nil)

	handler := NewHandler(&Config{Timeout: 5 * time.Second}, db, logger.NewTestLogger(t))
	_, err = handler.Execute(context.Background(), createInput())

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeWorkerUnavailable, stderrors.AsStandard(err).Code)
}

func TestHandler_Execute_LostRaceToConcurrentBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Re-validation passes on a stale snapshot, but the conditional update
	// finds the worker already claimed.
	expectWorkerLookup(mock, "verified", nil)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workers").
		WithArgs("customer-1", "worker-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	handler := NewHandler(&Config{Timeout: 5 * time.Second}, db, logger.NewTestLogger(t))
	_, err = handler.Execute(context.Background(), createInput())

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeWorkerUnavailable, stderrors.AsStandard(err).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_BookingUpdateFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectWorkerLookup(mock, "verified", nil)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE workers").
		WithArgs("customer-1", "worker-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings").
		WithArgs("worker-1", "booking-1").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	handler := NewHandler(&Config{Timeout: 5 * time.Second}, db, logger.NewTestLogger(t))
	_, err = handler.Execute(context.Background(), createInput())

	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeAssignmentFailed, stderrors.AsStandard(err).Code)
}
