package services

import (
	"path/filepath"
	"testing"

	"github.com/StephenTeay/food/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Vendor{}, &entity.FoodItem{},
		&entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, username, fullName string) uint {
	t.Helper()
	u := entity.User{Username: username, PasswordHash: "x", Email: username + "@fss.edu.ng", FullName: fullName}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func seedVendor(t *testing.T, db *gorm.DB, name string) uint {
	t.Helper()
	v := entity.Vendor{Name: name, Location: "Block A", IsActive: true}
	if err := db.Create(&v).Error; err != nil {
		t.Fatalf("seed vendor: %v", err)
	}
	return v.ID
}

func seedFood(t *testing.T, db *gorm.DB, vendorID uint, name string, price int64) uint {
	t.Helper()
	f := entity.FoodItem{VendorID: vendorID, Name: name, Price: price, IsAvailable: true, PreparationTime: 15}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("seed food item: %v", err)
	}
	return f.ID
}
