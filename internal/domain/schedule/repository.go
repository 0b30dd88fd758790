package schedule

import (
	"context"

	"github.com/velora-studio/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Services --------
	GetService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Salon hours --------
	GetSalonHours(
		ctx context.Context,
		date string,
	) (*models.SalonHours, error)

	ListSalonHours(
		ctx context.Context,
	) ([]models.SalonHours, error)

	// -------- Bookings (availability) --------
	ListActiveBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	// -------- Bookings (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		date string,
		startMinutes int,
		endMinutes int,
	) error

	// -------- Bookings (customer dashboard) --------
	GetBookingForCustomer(
		ctx context.Context,
		bookingID uint,
		customerID uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		bookingID uint,
	) error

	ListBookingsForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Booking, error)
}
