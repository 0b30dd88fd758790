package booking

import (
	"context"
	"time"

	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/dto"
)

type ListUserBookings struct {
	repo schedule.Repository
	now  func() time.Time
}

func NewListUserBookings(
	repo schedule.Repository,
	now func() time.Time,
) *ListUserBookings {
	return &ListUserBookings{repo: repo, now: now}
}

func (uc *ListUserBookings) Execute(
	ctx context.Context,
	customerID uint,
) ([]dto.BookingListDTO, error) {

	bookings, err := uc.repo.ListBookingsForCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for i := range bookings {
		b := &bookings[i]
		past := bookingHasPassed(b, now)

		out = append(out, dto.BookingListDTO{
			ID:           b.ID,
			Reference:    b.Reference,
			Date:         b.Date,
			Time:         b.Time,
			Status:       b.Status,
			ServiceName:  b.ServiceName,
			ServicePrice: b.ServicePrice,
			CategoryName: b.CategoryName,
			Deletable:    schedule.CanDelete(schedule.Status(b.Status), past) == nil,
			CreatedAt:    b.CreatedAt,
		})
	}

	return out, nil
}
