package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Image       string `gorm:"not null" json:"image"`
	Price       int64  `gorm:"not null" json:"price"`

	// display rank, unique per category; gaps stay after deletes
	Order int `gorm:"not null" json:"order"`

	Status MenuStatus `gorm:"type:varchar(16);not null;default:FOR_SALE" json:"status"`

	CategoryID uint     `gorm:"not null;index" json:"categoryId"`
	Category   Category `json:"-"` // preload only when needed
}
