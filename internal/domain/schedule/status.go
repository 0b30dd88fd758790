package schedule

import "github.com/velora-studio/salon-scheduler/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// Active reports whether a booking in this status occupies its slot.
// Only active bookings constrain availability.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusAccepted
}

// ===============================
// Transitions
// ===============================

// InitialStatus is the status of every booking created through the site.
func InitialStatus() Status {
	return StatusPending
}

// CanCancel defines whether the owning customer may cancel.
func CanCancel(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanAccept / CanReject guard the admin decision on a pending booking.
func CanAccept(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanReject(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanDelete defines when the owning customer may remove a booking
// entirely: once rejected, while a cancellation is still ahead of its
// date, or after a pending request lapsed without a decision.
func CanDelete(current Status, past bool) error {
	switch current {
	case StatusRejected:
		return nil
	case StatusCancelled:
		if !past {
			return nil
		}
	case StatusPending:
		if past {
			return nil
		}
	}
	return httperr.ErrBusiness("invalid_state")
}
