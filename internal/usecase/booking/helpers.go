package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/velora-studio/salon-scheduler/internal/domain/schedule"
	"github.com/velora-studio/salon-scheduler/internal/models"
)

// loadOverrides fetches the salon-hours record for one date as the sparse
// map the resolver consumes. A missing record is not an error.
func loadOverrides(
	ctx context.Context,
	repo schedule.Repository,
	date string,
) (map[string]models.SalonHours, error) {

	overrides := map[string]models.SalonHours{}

	ov, err := repo.GetSalonHours(ctx, date)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return overrides, nil
		}
		return nil, err
	}

	overrides[ov.Date] = *ov
	return overrides, nil
}

// bookingHasPassed reports whether the booking's date and start time are
// already behind the given wall-clock time.
func bookingHasPassed(b *models.Booking, now time.Time) bool {
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		b.Date+" "+b.Time,
		now.Location(),
	)
	if err != nil {
		return false
	}
	return start.Before(now)
}
