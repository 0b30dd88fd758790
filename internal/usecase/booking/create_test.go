package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velora-studio/salon-scheduler/internal/httperr"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		CustomerPhone: "+1 555 0100",
		ServiceID:     5,
		Date:          "2026-03-11",
		Time:          "10:00",
	}
}

func newCreateUC(repo *stubRepo, now time.Time) *CreateBooking {
	return NewCreateBooking(repo, nil, testDispatcher(), fixedClock(now))
}

func TestCreateBooking_Success(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	uc := newCreateUC(repo, now)

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)
	require.NotNil(t, repo.created)

	assert.NotEmpty(t, b.Reference)
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "2026-03-11", b.Date)
	assert.Equal(t, "10:00", b.Time)
	assert.Equal(t, 30, b.ServiceDuration)
	assert.Nil(t, b.CustomerID)

	// catalog snapshot
	assert.Equal(t, uint(5), b.ServiceID)
	assert.Equal(t, "Haircut", b.ServiceName)
	assert.Equal(t, 45.0, b.ServicePrice)
	assert.Equal(t, uint(2), b.CategoryID)
	assert.Equal(t, "Hair", b.CategoryName)
}

func TestCreateBooking_BoundToCustomer(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	uc := newCreateUC(repo, now)

	in := validInput()
	customerID := uint(7)
	in.CustomerID = &customerID

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	require.NotNil(t, b.CustomerID)
	assert.Equal(t, uint(7), *b.CustomerID)
}

func TestCreateBooking_ValidationFailures(t *testing.T) {
	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		mutate   func(*CreateBookingInput)
		repo     func() *stubRepo
		wantCode string
	}{
		{
			name:     "malformed date",
			mutate:   func(in *CreateBookingInput) { in.Date = "11/03/2026" },
			repo:     func() *stubRepo { return &stubRepo{service: haircut()} },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "malformed time",
			mutate:   func(in *CreateBookingInput) { in.Time = "10h00" },
			repo:     func() *stubRepo { return &stubRepo{service: haircut()} },
			wantCode: "invalid_date_or_time",
		},
		{
			name:     "weekly closing day",
			mutate:   func(in *CreateBookingInput) { in.Date = "2026-03-10" },
			repo:     func() *stubRepo { return &stubRepo{service: haircut()} },
			wantCode: "day_not_bookable",
		},
		{
			name:     "past date",
			mutate:   func(in *CreateBookingInput) { in.Date = "2026-03-08" },
			repo:     func() *stubRepo { return &stubRepo{service: haircut()} },
			wantCode: "day_not_bookable",
		},
		{
			name:     "unknown service",
			mutate:   func(in *CreateBookingInput) { in.ServiceID = 99 },
			repo:     func() *stubRepo { return &stubRepo{service: haircut()} },
			wantCode: "service_not_found",
		},
		{
			name:   "inactive service",
			mutate: func(in *CreateBookingInput) {},
			repo: func() *stubRepo {
				svc := haircut()
				svc.Active = false
				return &stubRepo{service: svc}
			},
			wantCode: "service_not_found",
		},
		{
			name:     "before opening",
			mutate:   func(in *CreateBookingInput) { in.Time = "07:00" },
			repo:     func() *stubRepo { return &stubRepo{service: haircut()} },
			wantCode: "outside_opening_hours",
		},
		{
			name:     "would end inside the pre-close buffer",
			mutate:   func(in *CreateBookingInput) { in.Time = "20:30" },
			repo:     func() *stubRepo { return &stubRepo{service: haircut()} },
			wantCode: "outside_opening_hours",
		},
		{
			name: "conflicting booking",
			mutate: func(in *CreateBookingInput) {},
			repo: func() *stubRepo {
				return &stubRepo{
					service:     haircut(),
					conflictErr: httperr.ErrBusiness("time_conflict"),
				}
			},
			wantCode: "time_conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := tt.repo()
			uc := newCreateUC(repo, now)

			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, tt.wantCode),
				"want business code %q, got %v", tt.wantCode, err)
			assert.Nil(t, repo.created)
		})
	}
}

func TestCreateBooking_TodayInPast(t *testing.T) {
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 11, 14, 5, 0, 0, time.UTC)

	uc := newCreateUC(repo, now)

	in := validInput()
	in.Time = "14:00"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "time_in_past"))
}

func TestCreateBooking_LastPermissibleStart(t *testing.T) {
	// 30 minutes ending exactly at close minus the pre-close buffer.
	repo := &stubRepo{service: haircut()}
	now := time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

	uc := newCreateUC(repo, now)

	in := validInput()
	in.Time = "20:10"

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}
