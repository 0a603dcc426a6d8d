// internal/store/bookings.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pratham1800/HouseHelp/internal/models"
)

// ErrBookingNotFound is returned when a booking id does not exist.
var ErrBookingNotFound = errors.New("booking not found")

// BookingStore reads booking details, caching the sub_services payload in
// Redis so repeated match requests for the same booking skip Postgres.
type BookingStore struct {
	db       *sql.DB
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewBookingStore(db *sql.DB, rdb *redis.Client, cacheTTL time.Duration) *BookingStore {
	return &BookingStore{db: db, redis: rdb, cacheTTL: cacheTTL}
}

func bookingCacheKey(bookingID string) string {
	return "booking:subservices:" + bookingID
}

// SubServices fetches the sub_services payload for a booking, read-through
// cached. A nil Redis client disables caching.
func (s *BookingStore) SubServices(ctx context.Context, bookingID string) (*models.BookingSubServices, error) {
	if s.redis != nil {
		if val, err := s.redis.Get(ctx, bookingCacheKey(bookingID)).Result(); err == nil {
			var cached models.BookingSubServices
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT sub_services FROM bookings WHERE id = $1`, bookingID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	var subServices models.BookingSubServices
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &subServices); err != nil {
			return nil, err
		}
	}

	if s.redis != nil {
		if data, err := json.Marshal(&subServices); err == nil {
			s.redis.Set(ctx, bookingCacheKey(bookingID), data, s.cacheTTL)
		}
	}

	return &subServices, nil
}

// DietaryPreference returns the dietary preference recorded on a cooking
// booking, or "" when the booking has none.
func (s *BookingStore) DietaryPreference(ctx context.Context, bookingID string) (string, error) {
	subServices, err := s.SubServices(ctx, bookingID)
	if err != nil {
		return "", err
	}
	return subServices.ServiceDetails.DietaryPreference, nil
}
