package schedule

import (
	"github.com/velora-studio/salon-scheduler/internal/models"
)

const (
	// DefaultSlotDuration is assumed when a service carries no duration.
	DefaultSlotDuration = 30
	// MinSlotDuration is the floor applied to any smaller requested duration.
	MinSlotDuration = 15

	// BookingBuffer is the transition margin kept free on both sides of an
	// existing booking. No slot may overlap a booking's interval expanded
	// by this many minutes.
	BookingBuffer = 20

	// CloseBuffer guarantees the last service of the day finishes with
	// margin before closing time. Distinct rule from BookingBuffer even
	// though the values coincide.
	CloseBuffer = 20
)

// sentinel end for the pre-close guard interval, past any slot end.
const dayEndSentinel = 48 * 60

// TimeSlot is one candidate appointment interval. Derived per request,
// never persisted.
type TimeSlot struct {
	StartMinutes int    `json:"-"`
	EndMinutes   int    `json:"-"`
	Time         string `json:"time"`
	DisplayTime  string `json:"display_time"`
	Available    bool   `json:"available"`
	IsPast       bool   `json:"is_past"`
}

// Overlaps is the single half-open interval test used for every buffer
// rule: [aStart, aEnd) intersects [bStart, bEnd).
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// NormalizeDuration applies the default and the minimum to a requested
// slot duration in minutes.
func NormalizeDuration(minutes int) int {
	if minutes <= 0 {
		return DefaultSlotDuration
	}
	if minutes < MinSlotDuration {
		return MinSlotDuration
	}
	return minutes
}

// GenerateSlots divides the open window into fixed slots of slotDuration
// minutes. The pre-close guard interval [close-CloseBuffer, ...) must stay
// untouched, so the last slot ends at or before closeMinutes-CloseBuffer.
// An empty result is a valid outcome, not an error.
func GenerateSlots(openMinutes, closeMinutes, slotDuration int) []TimeSlot {
	dur := NormalizeDuration(slotDuration)

	slots := []TimeSlot{}
	for cur := openMinutes; ; cur += dur {
		if Overlaps(cur, cur+dur, closeMinutes-CloseBuffer, dayEndSentinel) {
			break
		}
		slots = append(slots, TimeSlot{
			StartMinutes: cur,
			EndMinutes:   cur + dur,
			Time:         FormatClock(cur),
			DisplayTime:  FormatDisplay(cur),
			Available:    true,
		})
	}

	return slots
}

// MarkConflicts flags every slot that intersects an active booking's
// occupied interval expanded by BookingBuffer on both sides. Bookings in
// non-active statuses never constrain availability.
func MarkConflicts(slots []TimeSlot, bookings []models.Booking) {
	for _, b := range bookings {
		if !Status(b.Status).Active() {
			continue
		}

		start, err := ParseClock(b.Time)
		if err != nil {
			continue
		}

		bufStart := start - BookingBuffer
		bufEnd := start + b.ServiceDuration + BookingBuffer

		for i := range slots {
			if Overlaps(slots[i].StartMinutes, slots[i].EndMinutes, bufStart, bufEnd) {
				slots[i].Available = false
			}
		}
	}
}

// MarkPastSlots flags slots already elapsed today. Callers invoke it only
// when the target date is the current date; other dates are unaffected by
// this rule.
func MarkPastSlots(slots []TimeSlot, nowMinutes int) {
	for i := range slots {
		if slots[i].StartMinutes < nowMinutes {
			slots[i].IsPast = true
			slots[i].Available = false
		}
	}
}
