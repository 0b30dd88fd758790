package booking

import (
	"context"
	"time"

	"github.com/velora-studio/salon-scheduler/internal/audit"
	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
)

// DeleteBooking removes a booking from the customer's dashboard. Only
// permitted once the booking can no longer affect the schedule: rejected,
// cancelled while still upcoming, or pending after its time already passed.
type DeleteBooking struct {
	repo  schedule.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewDeleteBooking(
	repo schedule.Repository,
	audit *audit.Dispatcher,
	now func() time.Time,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *DeleteBooking) Execute(
	ctx context.Context,
	customerID uint,
	bookingID uint,
) error {

	b, err := uc.repo.GetBookingForCustomer(ctx, bookingID, customerID)
	if err != nil {
		return httperr.ErrBusiness("booking_not_found")
	}

	past := bookingHasPassed(b, uc.now())

	if err := schedule.CanDelete(schedule.Status(b.Status), past); err != nil {
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, b.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &customerID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return nil
}
