package booking

import (
	"context"
	"time"

	"github.com/velora-studio/salon-scheduler/internal/cache"
	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

const (
	calendarDefaultDays = 30
	calendarMaxDays     = 90

	// SalonHoursCacheKey is invalidated by the salon-hours admin
	// handlers whenever an override changes.
	SalonHoursCacheKey = "salon-hours:all"

	salonHoursTTL = 5 * time.Minute
)

// GetCalendar derives the day-level status of the next N days for the
// date picker: which days are selectable and why the others are not.
type GetCalendar struct {
	repo  schedule.Repository
	cache *cache.Cache
	now   func() time.Time
}

func NewGetCalendar(
	repo schedule.Repository,
	c *cache.Cache,
	now func() time.Time,
) *GetCalendar {
	return &GetCalendar{repo: repo, cache: c, now: now}
}

func (uc *GetCalendar) Execute(
	ctx context.Context,
	days int,
) ([]schedule.DayInfo, error) {

	if days <= 0 {
		days = calendarDefaultDays
	}
	if days > calendarMaxDays {
		days = calendarMaxDays
	}

	var hours []models.SalonHours
	if !uc.cache.Get(ctx, SalonHoursCacheKey, &hours) {
		var err error
		hours, err = uc.repo.ListSalonHours(ctx)
		if err != nil {
			return nil, err
		}
		uc.cache.Set(ctx, SalonHoursCacheKey, hours, salonHoursTTL)
	}

	overrides := make(map[string]models.SalonHours, len(hours))
	for _, h := range hours {
		overrides[h.Date] = h
	}

	today := uc.now()

	out := make([]schedule.DayInfo, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, schedule.ResolveDay(today.AddDate(0, 0, i), overrides, today))
	}

	return out, nil
}
