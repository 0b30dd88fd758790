package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Key      string `gorm:"size:255;uniqueIndex;not null" json:"-"` // object key in the image bucket
	URL      string `gorm:"size:255;not null" json:"url"`
	Caption  string `gorm:"size:255" json:"caption"`
	Position int    `gorm:"default:0" json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
