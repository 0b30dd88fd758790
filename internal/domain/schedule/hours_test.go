package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/velora-studio/salon-scheduler/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveDay_PastDateWinsOverEverything(t *testing.T) {
	today := date(2026, time.March, 10)
	yesterday := date(2026, time.March, 9)

	overrides := map[string]models.SalonHours{
		"2026-03-09": {Date: "2026-03-09", OpenTime: "09:00", CloseTime: "18:00"},
	}

	info := ResolveDay(yesterday, overrides, today)

	assert.Equal(t, DayPast, info.Status)
	assert.False(t, info.Bookable)
}

func TestResolveDay_TuesdayClosedByDefault(t *testing.T) {
	today := date(2026, time.March, 9) // Monday
	tuesday := date(2026, time.March, 10)

	info := ResolveDay(tuesday, map[string]models.SalonHours{}, today)

	assert.Equal(t, DayClosed, info.Status)
	assert.False(t, info.Bookable)
}

func TestResolveDay_TuesdayOverrideOpens(t *testing.T) {
	today := date(2026, time.March, 9)
	tuesday := date(2026, time.March, 10)

	overrides := map[string]models.SalonHours{
		"2026-03-10": {Date: "2026-03-10", OpenTime: "10:00", CloseTime: "16:00"},
	}

	info := ResolveDay(tuesday, overrides, today)

	assert.Equal(t, DayAvailable, info.Status)
	assert.True(t, info.Bookable)
	assert.Equal(t, 600, info.OpenMinutes)
	assert.Equal(t, 960, info.CloseMinutes)
	assert.Equal(t, "10:00", info.OpenTime)
	assert.Equal(t, "16:00", info.CloseTime)
}

func TestResolveDay_OverrideFlags(t *testing.T) {
	today := date(2026, time.March, 9)
	wednesday := date(2026, time.March, 11)

	tests := []struct {
		name string
		ov   models.SalonHours
		want DayStatus
	}{
		{"closed", models.SalonHours{Date: "2026-03-11", IsClosed: true}, DayClosed},
		{"holiday", models.SalonHours{Date: "2026-03-11", IsHoliday: true}, DayHoliday},
		{"booking disabled", models.SalonHours{Date: "2026-03-11", DisableBookings: true}, DayBookingDisabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overrides := map[string]models.SalonHours{"2026-03-11": tt.ov}
			info := ResolveDay(wednesday, overrides, today)

			assert.Equal(t, tt.want, info.Status)
			assert.False(t, info.Bookable)
		})
	}
}

func TestResolveDay_FlagPrecedence(t *testing.T) {
	// closed wins over holiday wins over disable-bookings when a record
	// carries more than one flag.
	today := date(2026, time.March, 9)
	wednesday := date(2026, time.March, 11)

	overrides := map[string]models.SalonHours{
		"2026-03-11": {
			Date:            "2026-03-11",
			IsClosed:        true,
			IsHoliday:       true,
			DisableBookings: true,
		},
	}

	info := ResolveDay(wednesday, overrides, today)
	assert.Equal(t, DayClosed, info.Status)
}

func TestResolveDay_DefaultWindow(t *testing.T) {
	today := date(2026, time.March, 9)
	wednesday := date(2026, time.March, 11)

	info := ResolveDay(wednesday, map[string]models.SalonHours{}, today)

	assert.Equal(t, DayAvailable, info.Status)
	assert.True(t, info.Bookable)
	assert.Equal(t, DefaultOpenMinutes, info.OpenMinutes)
	assert.Equal(t, DefaultCloseMinutes, info.CloseMinutes)
	assert.Equal(t, "08:30", info.OpenTime)
	assert.Equal(t, "21:00", info.CloseTime)
}

func TestResolveDay_PartialOverrideFallsBackToDefaults(t *testing.T) {
	today := date(2026, time.March, 9)
	wednesday := date(2026, time.March, 11)

	overrides := map[string]models.SalonHours{
		"2026-03-11": {Date: "2026-03-11", OpenTime: "11:00"},
	}

	info := ResolveDay(wednesday, overrides, today)

	assert.Equal(t, 660, info.OpenMinutes)
	assert.Equal(t, DefaultCloseMinutes, info.CloseMinutes)
}

func TestResolveDay_TodayIsNotPast(t *testing.T) {
	// "today" at 18:00 wall clock: the date itself still resolves open.
	today := time.Date(2026, time.March, 11, 18, 0, 0, 0, time.UTC)

	info := ResolveDay(date(2026, time.March, 11), map[string]models.SalonHours{}, today)

	assert.Equal(t, DayAvailable, info.Status)
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "2026-03-05", DateKey(date(2026, time.March, 5)))
}
