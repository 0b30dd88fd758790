package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/velora-studio/salon-scheduler/internal/cache"
	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
)

const availabilityTTL = 30 * time.Second

type AvailabilityInput struct {
	Date      string // YYYY-MM-DD
	ServiceID uint
}

type AvailabilityResult struct {
	Date      string              `json:"date"`
	Status    schedule.DayStatus  `json:"status"`
	OpenTime  string              `json:"open_time,omitempty"`
	CloseTime string              `json:"close_time,omitempty"`
	Slots     []schedule.TimeSlot `json:"slots"`
}

type GetAvailability struct {
	repo  schedule.Repository
	cache *cache.Cache
	now   func() time.Time
}

func NewGetAvailability(
	repo schedule.Repository,
	c *cache.Cache,
	now func() time.Time,
) *GetAvailability {
	return &GetAvailability{repo: repo, cache: c, now: now}
}

// AvailabilityCacheKey is the per-date, per-service slot cache key.
// Writers that change a day's bookings delete it.
func AvailabilityCacheKey(date string, serviceID uint) string {
	return fmt.Sprintf("availability:%s:%d", date, serviceID)
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) (*AvailabilityResult, error) {

	now := uc.now()

	date, err := time.ParseInLocation("2006-01-02", in.Date, now.Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	key := AvailabilityCacheKey(in.Date, in.ServiceID)
	var cached AvailabilityResult
	if uc.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	overrides, err := loadOverrides(ctx, uc.repo, in.Date)
	if err != nil {
		return nil, err
	}

	day := schedule.ResolveDay(date, overrides, now)

	result := &AvailabilityResult{
		Date:      day.Date,
		Status:    day.Status,
		OpenTime:  day.OpenTime,
		CloseTime: day.CloseTime,
		Slots:     []schedule.TimeSlot{},
	}

	if !day.Bookable {
		return result, nil
	}

	bookings, err := uc.repo.ListActiveBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	slots := schedule.GenerateSlots(
		day.OpenMinutes,
		day.CloseMinutes,
		service.DurationMin,
	)

	schedule.MarkConflicts(slots, bookings)

	if schedule.DateKey(now) == day.Date {
		schedule.MarkPastSlots(slots, schedule.MinutesOfDay(now))
	}

	result.Slots = slots

	uc.cache.Set(ctx, key, result, availabilityTTL)

	return result, nil
}
