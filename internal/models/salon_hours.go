package models

import "time"

// SalonHours is a per-date override of the default opening window.
// Absence of a record means default hours apply, except on the weekly
// closing day. At most one record per date.
type SalonHours struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date string `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD

	OpenTime  string `gorm:"size:5" json:"open_time"`  // HH:MM, empty = default
	CloseTime string `gorm:"size:5" json:"close_time"` // HH:MM, empty = default

	IsClosed        bool `json:"is_closed"`
	IsHoliday       bool `json:"is_holiday"`
	DisableBookings bool `json:"disable_bookings"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
