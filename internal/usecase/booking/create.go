package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/cache"
	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	// CustomerID is nil for guest bookings.
	CustomerID *uint

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	ServiceID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  schedule.Repository
	cache *cache.Cache
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateBooking(
	repo schedule.Repository,
	c *cache.Cache,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		cache: c,
		audit: audit,
		now:   now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	now := uc.now()

	date, err := time.ParseInLocation("2006-01-02", in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	startMin, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// Day must be selectable at all (past dates, weekly closing day and
	// per-date overrides are all rejected here with their own label).
	overrides, err := loadOverrides(ctx, uc.repo, in.Date)
	if err != nil {
		return nil, err
	}

	day := schedule.ResolveDay(date, overrides, now)
	if !day.Bookable {
		return nil, httperr.ErrBusiness("day_not_bookable")
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	duration := schedule.NormalizeDuration(service.DurationMin)
	endMin := startMin + duration

	// Same window rule the slot generator enforces.
	if startMin < day.OpenMinutes ||
		schedule.Overlaps(startMin, endMin, day.CloseMinutes-schedule.CloseBuffer, 48*60) {
		return nil, httperr.ErrBusiness("outside_opening_hours")
	}

	if schedule.DateKey(now) == day.Date && startMin < schedule.MinutesOfDay(now) {
		return nil, httperr.ErrBusiness("time_in_past")
	}

	// Write-time conflict check, buffered the same way as read-time
	// availability. Runs locked inside the repository transaction; the
	// read-time race between two browsers remains accepted.
	if err := uc.repo.AssertNoTimeConflict(ctx, in.Date, startMin, endMin); err != nil {
		return nil, err
	}

	b := &models.Booking{
		Reference:       uuid.NewString(),
		Date:            in.Date,
		Time:            schedule.FormatClock(startMin),
		ServiceDuration: duration,
		Status:          string(schedule.InitialStatus()),

		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,

		ServiceID:    service.ID,
		ServiceName:  service.Name,
		ServicePrice: service.Price,
		CategoryID:   service.CategoryID,
		CategoryName: service.Category.Name,
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Delete(ctx, AvailabilityCacheKey(in.Date, service.ID))

	uc.audit.Dispatch(audit.Event{
		UserID:   in.CustomerID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
