// internal/store/bookings_test.go
package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubServices_ReadsThroughCache(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	// Single DB expectation: the second call must be served from cache.
	mock.ExpectQuery("SELECT sub_services FROM bookings").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"sub_services"}).
			AddRow([]byte(`{"selected":[{"id":"brooming","name":"Brooming"}],"serviceDetails":{"dietaryPreference":"veg"}}`)))

	s := NewBookingStore(db, rdb, time.Minute)

	first, err := s.SubServices(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, "veg", first.ServiceDetails.DietaryPreference)
	require.Len(t, first.Selected, 1)
	assert.Equal(t, "brooming", first.Selected[0].ID)

	second, err := s.SubServices(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubServices_NilRedisDisablesCaching(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < 2; i++ {
		mock.ExpectQuery("SELECT sub_services FROM bookings").
			WithArgs("b1").
			WillReturnRows(sqlmock.NewRows([]string{"sub_services"}).
				AddRow([]byte(`{"serviceDetails":{"dietaryPreference":"egg"}}`)))
	}

	s := NewBookingStore(db, nil, time.Minute)
	for i := 0; i < 2; i++ {
		got, err := s.SubServices(context.Background(), "b1")
		require.NoError(t, err)
		assert.Equal(t, "egg", got.ServiceDetails.DietaryPreference)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubServices_BookingNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT sub_services FROM bookings").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"sub_services"}))

	s := NewBookingStore(db, nil, time.Minute)
	_, err = s.SubServices(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestDietaryPreference_EmptyPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT sub_services FROM bookings").
		WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"sub_services"}).AddRow([]byte(nil)))

	s := NewBookingStore(db, nil, time.Minute)
	pref, err := s.DietaryPreference(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, "", pref)
}
