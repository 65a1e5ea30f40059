package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name  string `gorm:"not null" json:"name"`
	Order int    `gorm:"not null" json:"order"`

	// loaded only when a handler needs the children
	Menus []Menu `json:"-"`
}
