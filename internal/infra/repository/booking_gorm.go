package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Preload("Category").
		First(&service, serviceID).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Salon hours
// --------------------------------------------------

func (r *BookingGormRepository) GetSalonHours(
	ctx context.Context,
	date string,
) (*models.SalonHours, error) {

	var hours models.SalonHours
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&hours).Error; err != nil {
		return nil, err
	}
	return &hours, nil
}

func (r *BookingGormRepository) ListSalonHours(
	ctx context.Context,
) ([]models.SalonHours, error) {

	var hours []models.SalonHours
	if err := r.db.WithContext(ctx).
		Order("date ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}
	return hours, nil
}

// --------------------------------------------------
// Bookings (availability)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("time", "service_duration", "status").
		Where(
			"date = ? AND status IN ?",
			date,
			[]string{string(schedule.StatusPending), string(schedule.StatusAccepted)},
		).
		Order("time ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Bookings (create / conflict)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// AssertNoTimeConflict locks the date's active bookings and tests the
// candidate interval against each occupied interval expanded by the
// booking buffer. Uses the same overlap primitive as read-time
// availability so the two checks cannot drift apart.
func (r *BookingGormRepository) AssertNoTimeConflict(
	ctx context.Context,
	date string,
	startMinutes int,
	endMinutes int,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var bookings []models.Booking
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"date = ? AND status IN ?",
				date,
				[]string{string(schedule.StatusPending), string(schedule.StatusAccepted)},
			).
			Find(&bookings).Error; err != nil {
			return err
		}

		for _, b := range bookings {
			start, err := schedule.ParseClock(b.Time)
			if err != nil {
				continue
			}

			bufStart := start - schedule.BookingBuffer
			bufEnd := start + b.ServiceDuration + schedule.BookingBuffer

			if schedule.Overlaps(startMinutes, endMinutes, bufStart, bufEnd) {
				return httperr.ErrBusiness("time_conflict")
			}
		}

		return nil
	})
}

// --------------------------------------------------
// Bookings (customer dashboard)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingForCustomer(
	ctx context.Context,
	bookingID uint,
	customerID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("id = ? AND customer_id = ?", bookingID, customerID).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, bookingID).Error
}

func (r *BookingGormRepository) ListBookingsForCustomer(
	ctx context.Context,
	customerID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// Compile-time check
var _ schedule.Repository = (*BookingGormRepository)(nil)
