package entity

import (
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"` // preload only for joined listings

	Name            string `gorm:"not null" json:"name"`
	Description     string `json:"description"`
	Price           int64  `gorm:"not null" json:"price"`
	Category        string `json:"category"`
	ImageURL        string `json:"imageUrl"`
	IsAvailable     bool   `gorm:"default:true" json:"isAvailable"`
	PreparationTime int    `gorm:"default:15" json:"preparationTime"`

	OrderItems []OrderItem `json:"-"`
}
