package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	Reference    string    `json:"reference"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	ServiceName  string    `json:"service_name"`
	ServicePrice float64   `json:"service_price"`
	CategoryName string    `json:"category_name"`
	Deletable    bool      `json:"deletable"`
	CreatedAt    time.Time `json:"created_at"`
}
