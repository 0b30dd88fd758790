package models

import "time"

type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	Date string `gorm:"size:10;index;not null" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null" json:"time"`        // HH:MM

	ServiceDuration int `json:"service_duration"` // minutes

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	// CustomerID is nil for guest bookings made without an account.
	CustomerID    *uint  `gorm:"index" json:"customer_id"`
	Customer      *User  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer,omitempty"`
	CustomerName  string `gorm:"size:100;not null" json:"customer_name"`
	CustomerEmail string `gorm:"size:100" json:"customer_email"`
	CustomerPhone string `gorm:"size:20" json:"customer_phone"`

	// Service fields are snapshotted at creation so later edits to the
	// catalog never rewrite booking history.
	ServiceID    uint    `json:"service_id"`
	ServiceName  string  `gorm:"size:100" json:"service_name"`
	ServicePrice float64 `json:"service_price"`
	CategoryID   uint    `json:"category_id"`
	CategoryName string  `gorm:"size:50" json:"category_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
