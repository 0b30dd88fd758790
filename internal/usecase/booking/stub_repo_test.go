package booking

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

// stubRepo is an in-memory stand-in for the gorm repository.
type stubRepo struct {
	service  *models.Service
	hours    *models.SalonHours
	bookings []models.Booking

	conflictErr error

	created   *models.Booking
	updated   *models.Booking
	deletedID uint

	customerBookings []models.Booking
}

func (s *stubRepo) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	if s.service == nil || s.service.ID != serviceID {
		return nil, gorm.ErrRecordNotFound
	}
	return s.service, nil
}

func (s *stubRepo) GetSalonHours(ctx context.Context, date string) (*models.SalonHours, error) {
	if s.hours == nil || s.hours.Date != date {
		return nil, gorm.ErrRecordNotFound
	}
	return s.hours, nil
}

func (s *stubRepo) ListSalonHours(ctx context.Context) ([]models.SalonHours, error) {
	if s.hours == nil {
		return []models.SalonHours{}, nil
	}
	return []models.SalonHours{*s.hours}, nil
}

func (s *stubRepo) ListActiveBookingsForDate(ctx context.Context, date string) ([]models.Booking, error) {
	return s.bookings, nil
}

func (s *stubRepo) CreateBooking(ctx context.Context, b *models.Booking) error {
	b.ID = 1
	s.created = b
	return nil
}

func (s *stubRepo) AssertNoTimeConflict(ctx context.Context, date string, startMinutes, endMinutes int) error {
	return s.conflictErr
}

func (s *stubRepo) GetBookingForCustomer(ctx context.Context, bookingID, customerID uint) (*models.Booking, error) {
	for i := range s.customerBookings {
		b := &s.customerBookings[i]
		if b.ID == bookingID && b.CustomerID != nil && *b.CustomerID == customerID {
			return b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) UpdateBooking(ctx context.Context, b *models.Booking) error {
	s.updated = b
	return nil
}

func (s *stubRepo) DeleteBooking(ctx context.Context, bookingID uint) error {
	s.deletedID = bookingID
	return nil
}

func (s *stubRepo) ListBookingsForCustomer(ctx context.Context, customerID uint) ([]models.Booking, error) {
	return s.customerBookings, nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil), zerolog.New(io.Discard))
}
