package models

import "time"

type Image struct {
	ImageID   uint   `gorm:"primaryKey"`
	ImageName string `gorm:"size:100;not null"`
	ImageURL  string `gorm:"column:image_url;size:255;not null"`
	ProductID uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
