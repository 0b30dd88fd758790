package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-studio/salon-scheduler/internal/models"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint before", 60, 90, 90, 120, false},
		{"disjoint after", 120, 150, 90, 120, false},
		{"touching boundaries do not overlap", 90, 120, 120, 150, false},
		{"partial overlap", 60, 100, 90, 120, true},
		{"contained", 95, 110, 90, 120, true},
		{"containing", 60, 150, 90, 120, true},
		{"identical", 90, 120, 90, 120, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestNormalizeDuration(t *testing.T) {
	assert.Equal(t, 30, NormalizeDuration(0))
	assert.Equal(t, 30, NormalizeDuration(-5))
	assert.Equal(t, 15, NormalizeDuration(1))
	assert.Equal(t, 15, NormalizeDuration(14))
	assert.Equal(t, 15, NormalizeDuration(15))
	assert.Equal(t, 45, NormalizeDuration(45))
	assert.Equal(t, 90, NormalizeDuration(90))
}

func TestGenerateSlots_DefaultDay(t *testing.T) {
	// 08:30 to 21:00, 30-minute service. The last slot must end at or
	// before 20:40, so it starts at 20:00.
	slots := GenerateSlots(DefaultOpenMinutes, DefaultCloseMinutes, 30)

	require.NotEmpty(t, slots)
	assert.Equal(t, "08:30", slots[0].Time)
	assert.Equal(t, "8:30 AM", slots[0].DisplayTime)

	last := slots[len(slots)-1]
	assert.Equal(t, "20:00", last.Time)
	assert.LessOrEqual(t, last.EndMinutes, DefaultCloseMinutes-CloseBuffer)
	assert.Len(t, slots, 24)
}

func TestGenerateSlots_RespectsCloseBuffer(t *testing.T) {
	// 10:00 to 12:00 with 60-minute slots: 10:00 fits (ends 11:00,
	// before 11:40), 11:00 would end at 12:00 inside the guard.
	slots := GenerateSlots(600, 720, 60)

	require.Len(t, slots, 1)
	assert.Equal(t, "10:00", slots[0].Time)
}

func TestGenerateSlots_ContiguousAndFixedDuration(t *testing.T) {
	for _, dur := range []int{15, 30, 45, 60} {
		slots := GenerateSlots(540, 1080, dur)
		require.NotEmpty(t, slots)

		for i, s := range slots {
			assert.Equal(t, dur, s.EndMinutes-s.StartMinutes)
			assert.LessOrEqual(t, s.EndMinutes, 1080-CloseBuffer)
			assert.True(t, s.Available)
			if i > 0 {
				assert.Equal(t, slots[i-1].EndMinutes, s.StartMinutes)
			}
		}
	}
}

func TestGenerateSlots_WindowTooShort(t *testing.T) {
	// 09:00 to 09:30: no 30-minute slot can end by 09:10.
	slots := GenerateSlots(540, 570, 30)
	assert.Empty(t, slots)
}

func TestGenerateSlots_DefaultsDurationWhenMissing(t *testing.T) {
	slots := GenerateSlots(540, 660, 0)
	require.NotEmpty(t, slots)
	assert.Equal(t, 30, slots[0].EndMinutes-slots[0].StartMinutes)
}

func TestMarkConflicts_BufferAroundBooking(t *testing.T) {
	// Booking at 10:00 for 30 minutes occupies [10:00, 10:30); the
	// buffer expands that to [09:40, 10:50). With 15-minute slots from
	// 09:00, every slot intersecting the expanded window goes
	// unavailable; 11:00 is the first free start after it.
	slots := GenerateSlots(540, 740, 15)

	MarkConflicts(slots, []models.Booking{
		{Time: "10:00", ServiceDuration: 30, Status: "accepted"},
	})

	byTime := map[string]bool{}
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}

	assert.True(t, byTime["09:00"])
	assert.True(t, byTime["09:15"])
	// 09:30 ends 09:45 and crosses into the buffered window
	assert.False(t, byTime["09:30"])
	assert.False(t, byTime["09:45"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:15"])
	assert.False(t, byTime["10:30"])
	// 10:45 still starts inside the buffered window
	assert.False(t, byTime["10:45"])
	assert.True(t, byTime["11:00"])
}

func TestMarkConflicts_IgnoresInactiveBookings(t *testing.T) {
	slots := GenerateSlots(540, 720, 30)

	MarkConflicts(slots, []models.Booking{
		{Time: "10:00", ServiceDuration: 30, Status: "cancelled"},
		{Time: "10:30", ServiceDuration: 30, Status: "rejected"},
	})

	for _, s := range slots {
		assert.True(t, s.Available, "slot %s should be untouched", s.Time)
	}
}

func TestMarkConflicts_PendingBlocksLikeAccepted(t *testing.T) {
	slots := GenerateSlots(540, 720, 30)

	MarkConflicts(slots, []models.Booking{
		{Time: "10:00", ServiceDuration: 30, Status: "pending"},
	})

	blocked := 0
	for _, s := range slots {
		if !s.Available {
			blocked++
		}
	}
	assert.Greater(t, blocked, 0)
}

func TestMarkConflicts_Idempotent(t *testing.T) {
	bookings := []models.Booking{
		{Time: "11:00", ServiceDuration: 45, Status: "accepted"},
	}

	first := GenerateSlots(540, 900, 15)
	MarkConflicts(first, bookings)

	second := GenerateSlots(540, 900, 15)
	MarkConflicts(second, bookings)
	MarkConflicts(second, bookings)

	assert.Equal(t, first, second)
}

func TestMarkPastSlots(t *testing.T) {
	// Current time 14:05: the 14:00 slot is past, 14:15 is not.
	slots := GenerateSlots(840, 1020, 15)

	MarkPastSlots(slots, 14*60+5)

	byTime := map[string]TimeSlot{}
	for _, s := range slots {
		byTime[s.Time] = s
	}

	assert.False(t, byTime["14:00"].Available)
	assert.True(t, byTime["14:00"].IsPast)

	assert.True(t, byTime["14:15"].Available)
	assert.False(t, byTime["14:15"].IsPast)
}

func TestMarkPastSlots_ExactNowIsNotPast(t *testing.T) {
	slots := GenerateSlots(840, 1020, 15)

	MarkPastSlots(slots, 14*60)

	for _, s := range slots {
		if s.Time == "14:00" {
			assert.False(t, s.IsPast)
			assert.True(t, s.Available)
		}
	}
}
