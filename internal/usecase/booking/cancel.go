package booking

import (
	"context"
	"time"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/cache"
	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

type CancelBooking struct {
	repo  schedule.Repository
	cache *cache.Cache
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelBooking(
	repo schedule.Repository,
	c *cache.Cache,
	audit *audit.Dispatcher,
	now func() time.Time,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		cache: c,
		audit: audit,
		now:   now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	customerID uint,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBookingForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := schedule.CanCancel(schedule.Status(b.Status)); err != nil {
		return nil, err
	}

	b.Status = string(schedule.StatusCancelled)

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.cache.Delete(ctx, AvailabilityCacheKey(b.Date, b.ServiceID))

	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
