package entity

import (
	"gorm.io/gorm"
)

// Order is immutable after creation except for Status and UpdatedAt. Its
// items are created in the same transaction and sum to TotalAmount.
type Order struct {
	gorm.Model
	OrderNumber string `gorm:"uniqueIndex;not null" json:"orderNumber"`

	CustomerID uint `json:"customerId"`
	Customer   User `gorm:"foreignKey:CustomerID" json:"-"`

	VendorID uint   `json:"vendorId"`
	Vendor   Vendor `json:"-"`

	TotalAmount         int64       `gorm:"not null" json:"totalAmount"`
	Status              OrderStatus `gorm:"not null;default:pending" json:"status"`
	DeliveryLocation    string      `json:"deliveryLocation"`
	SpecialInstructions string      `json:"specialInstructions"`

	Items []OrderItem `json:"-"`
}
