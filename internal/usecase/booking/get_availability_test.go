package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/httperr"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

func haircut() *models.Service {
	return &models.Service{
		ID:          5,
		Name:        "Haircut",
		DurationMin: 30,
		Price:       45,
		Active:      true,
		CategoryID:  2,
		Category:    models.Category{ID: 2, Name: "Hair"},
	}
}

func TestGetAvailability_OpenDayNoBookings(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC) // Monday

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	res, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-03-11",
		ServiceID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, schedule.DayAvailable, res.Status)
	assert.Equal(t, "08:30", res.OpenTime)
	assert.Equal(t, "21:00", res.CloseTime)

	require.Len(t, res.Slots, 24)
	assert.Equal(t, "08:30", res.Slots[0].Time)
	assert.Equal(t, "20:00", res.Slots[len(res.Slots)-1].Time)

	for _, s := range res.Slots {
		assert.True(t, s.Available)
		assert.False(t, s.IsPast)
	}
}

func TestGetAvailability_ActiveBookingBlocksSlots(t *testing.T) {
	repo := &stubRepo{
		service: haircut(),
		bookings: []models.Booking{
			{Time: "10:00", ServiceDuration: 30, Status: "pending"},
		},
	}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	res, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-03-11",
		ServiceID: 5,
	})

	require.NoError(t, err)

	byTime := map[string]bool{}
	for _, s := range res.Slots {
		byTime[s.Time] = s.Available
	}

	assert.True(t, byTime["09:00"])
	assert.False(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.True(t, byTime["11:00"])
}

func TestGetAvailability_TuesdayIsClosed(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	res, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-03-10",
		ServiceID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, schedule.DayClosed, res.Status)
	assert.Empty(t, res.Slots)
}

func TestGetAvailability_PastDate(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	res, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-03-08",
		ServiceID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, schedule.DayPast, res.Status)
	assert.Empty(t, res.Slots)
}

func TestGetAvailability_TodayFiltersElapsedSlots(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 11, 14, 5, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	res, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-03-11",
		ServiceID: 5,
	})

	require.NoError(t, err)

	byTime := map[string]schedule.TimeSlot{}
	for _, s := range res.Slots {
		byTime[s.Time] = s
	}

	assert.True(t, byTime["14:00"].IsPast)
	assert.False(t, byTime["14:00"].Available)
	assert.False(t, byTime["14:30"].IsPast)
	assert.True(t, byTime["14:30"].Available)
}

func TestGetAvailability_HolidayOverride(t *testing.T) {
	repo := &stubRepo{
		service: haircut(),
		hours:   &models.SalonHours{Date: "2026-03-11", IsHoliday: true},
	}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	res, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-03-11",
		ServiceID: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, schedule.DayHoliday, res.Status)
	assert.Empty(t, res.Slots)
}

func TestGetAvailability_UnknownService(t *testing.T) {
	repo := &stubRepo{}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-03-11",
		ServiceID: 99,
	})

	assert.True(t, httperr.IsBusiness(err, "service_not_found"))
}

func TestGetAvailability_InvalidDate(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "11-03-2026",
		ServiceID: 5,
	})

	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestGetAvailability_Idempotent(t *testing.T) {
	repo := &stubRepo{
		service: haircut(),
		bookings: []models.Booking{
			{Time: "12:00", ServiceDuration: 45, Status: "accepted"},
		},
	}
	now := time.Date(2026, time.March, 9, 10, 0, 0, 0, time.UTC)

	uc := NewGetAvailability(repo, nil, fixedClock(now))
	in := AvailabilityInput{Date: "2026-03-11", ServiceID: 5}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
