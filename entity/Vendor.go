package entity

import (
	"gorm.io/gorm"
)

type Vendor struct {
	gorm.Model
	Name           string  `gorm:"not null" json:"name"`
	Description    string  `json:"description"`
	Location       string  `gorm:"not null" json:"location"`
	ContactPhone   string  `json:"contactPhone"`
	ContactEmail   string  `json:"contactEmail"`
	OperatingHours string  `json:"operatingHours"`
	Rating         float64 `gorm:"default:0" json:"rating"`
	IsActive       bool    `gorm:"default:true" json:"isActive"`

	FoodItems []FoodItem `json:"-"`
	Orders    []Order    `json:"-"`
}
