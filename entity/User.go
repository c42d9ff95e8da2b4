package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	UserType     string `gorm:"not null;default:customer" json:"userType"`

	// preload only when needed
	Orders []Order `gorm:"foreignKey:CustomerID" json:"-"`
}
