package models

import "time"

type Category struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:50;not null" json:"name"`
	Slug     string `gorm:"size:50;uniqueIndex;not null" json:"slug"`
	Position int    `gorm:"default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
