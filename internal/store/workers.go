// internal/store/workers.go

// Package store implements the data access layer over the worker and booking
// records owned by the external worker-management service.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/pratham1800/HouseHelp/internal/models"
)

var (
	// ErrWorkerUnavailable is returned when a conditional assignment finds
	// the worker already claimed by another booking.
	ErrWorkerUnavailable = errors.New("worker no longer available")
	// ErrWorkerNotFound is returned when a worker id does not exist.
	ErrWorkerNotFound = errors.New("worker not found")
)

// WorkerStore reads and conditionally writes worker records.
type WorkerStore struct {
	db *sql.DB
}

func NewWorkerStore(db *sql.DB) *WorkerStore {
	return &WorkerStore{db: db}
}

const workerColumns = `id, name, phone, work_type, work_subcategories, years_experience,
	languages_spoken, preferred_areas, residential_address, working_hours, status,
	gender, assigned_customer_id`

// AvailableByType fetches every verified, unassigned worker of the given
// work type. Status matching is case-insensitive.
func (s *WorkerStore) AvailableByType(ctx context.Context, workType string) ([]models.Worker, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`
		SELECT %s
		FROM workers
		WHERE work_type = $1
		  AND lower(status) = 'verified'
		  AND assigned_customer_id IS NULL`, workerColumns), workType)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []models.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}
	return workers, rows.Err()
}

// GetByID fetches a single worker regardless of status or assignment.
func (s *WorkerStore) GetByID(ctx context.Context, workerID string) (*models.Worker, error) {
	row := s.db.QueryRowContext(ctx, fmt.Sprintf(`
		SELECT %s FROM workers WHERE id = $1`, workerColumns), workerID)

	w, err := scanWorker(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkerNotFound
		}
		return nil, err
	}
	return &w, nil
}

// Assign claims a worker for a booking. The worker update is conditional on
// the worker still being verified and unassigned, so two concurrent
// bookings can never both claim the same worker; the loser gets
// ErrWorkerUnavailable. Both writes commit in one transaction.
func (s *WorkerStore) Assign(ctx context.Context, workerID, customerID, bookingID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE workers
		SET assigned_customer_id = $1
		WHERE id = $2
		  AND lower(status) = 'verified'
		  AND assigned_customer_id IS NULL`, customerID, workerID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWorkerUnavailable
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE bookings
		SET assigned_worker_id = $1, status = 'confirmed'
		WHERE id = $2`, workerID, bookingID); err != nil {
		return err
	}

	return tx.Commit()
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanWorker(row rowScanner) (models.Worker, error) {
	var (
		w            models.Worker
		subcats      pq.StringArray
		languages    pq.StringArray
		areas        pq.StringArray
		experience   sql.NullInt64
		residential  sql.NullString
		workingHours sql.NullString
		gender       sql.NullString
		assignedTo   sql.NullString
	)

	err := row.Scan(
		&w.ID, &w.Name, &w.Phone, &w.WorkType, &subcats, &experience,
		&languages, &areas, &residential, &workingHours, &w.Status,
		&gender, &assignedTo,
	)
	if err != nil {
		return models.Worker{}, err
	}

	w.WorkSubcategories = subcats
	w.LanguagesSpoken = languages
	w.PreferredAreas = areas
	if experience.Valid {
		w.YearsExperience = int(experience.Int64)
	}
	if residential.Valid {
		w.ResidentialAddress = residential.String
	}
	if workingHours.Valid {
		w.WorkingHours = workingHours.String
	}
	if gender.Valid {
		w.Gender = gender.String
	}
	if assignedTo.Valid {
		w.AssignedCustomerID = &assignedTo.String
	}
	return w, nil
}
