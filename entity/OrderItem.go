package entity

import (
	"gorm.io/gorm"
)

// OrderItem rows are created atomically with their Order and never mutated
// afterwards. UnitPrice is a snapshot at order time.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	Quantity  int   `gorm:"not null" json:"quantity"`
	UnitPrice int64 `gorm:"not null" json:"unitPrice"`
	Subtotal  int64 `gorm:"not null" json:"subtotal"`
}
