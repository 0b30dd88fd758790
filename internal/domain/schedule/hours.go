package schedule

import (
	"time"

	"github.com/velora-studio/salon-scheduler/internal/models"
)

// ===============================
// Day Status
// ===============================

type DayStatus string

const (
	DayAvailable       DayStatus = "available"
	DayPast            DayStatus = "past"
	DayClosed          DayStatus = "closed"
	DayHoliday         DayStatus = "holiday"
	DayBookingDisabled DayStatus = "booking-disabled"
)

// ClosedWeekday is the fixed weekly closing day. A date on this weekday is
// closed unless an explicit salon-hours override exists for it.
const ClosedWeekday = time.Tuesday

const (
	DefaultOpenMinutes  = 8*60 + 30 // 08:30
	DefaultCloseMinutes = 21 * 60   // 21:00
)

// DayInfo is the resolved verdict for one calendar date.
type DayInfo struct {
	Date         string    `json:"date"`
	Status       DayStatus `json:"status"`
	Bookable     bool      `json:"bookable"`
	OpenMinutes  int       `json:"-"`
	CloseMinutes int       `json:"-"`
	OpenTime     string    `json:"open_time,omitempty"`
	CloseTime    string    `json:"close_time,omitempty"`
}

// DateKey formats a date the way salon-hours records are keyed.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ResolveDay resolves one date against the salon-hours overrides.
//
// Order matters: a past date wins over everything, then the explicit
// override flags in the order the salon checks them (closed, holiday,
// booking-disabled), then the weekly closing day, which only applies when
// no override record exists for the date.
func ResolveDay(
	date time.Time,
	overrides map[string]models.SalonHours,
	today time.Time,
) DayInfo {

	info := DayInfo{Date: DateKey(date)}

	if truncateToDay(date).Before(truncateToDay(today)) {
		info.Status = DayPast
		return info
	}

	ov, hasOverride := overrides[info.Date]

	switch {
	case hasOverride && ov.IsClosed:
		info.Status = DayClosed
		return info
	case hasOverride && ov.IsHoliday:
		info.Status = DayHoliday
		return info
	case hasOverride && ov.DisableBookings:
		info.Status = DayBookingDisabled
		return info
	case !hasOverride && date.Weekday() == ClosedWeekday:
		info.Status = DayClosed
		return info
	}

	info.Status = DayAvailable
	info.Bookable = true
	info.OpenMinutes = DefaultOpenMinutes
	info.CloseMinutes = DefaultCloseMinutes

	if hasOverride {
		if m, err := ParseClock(ov.OpenTime); err == nil {
			info.OpenMinutes = m
		}
		if m, err := ParseClock(ov.CloseTime); err == nil {
			info.CloseMinutes = m
		}
	}

	info.OpenTime = FormatClock(info.OpenMinutes)
	info.CloseTime = FormatClock(info.CloseMinutes)

	return info
}
