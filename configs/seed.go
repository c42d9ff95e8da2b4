package configs

import (
	"log"

	"github.com/StephenTeay/food/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the administrator account on first boot.
func SeedAdmin(cfg *Config) error {
	db := DB()

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		Email:        "admin@fss.edu.ng",
		FullName:     "System Administrator",
		UserType:     "admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	log.Println("seeded admin user:", cfg.AdminUsername)
	return nil
}

// SeedCatalog loads the starter vendors and food items so a fresh install has
// something to browse.
func SeedCatalog() error {
	db := DB()

	vendors := []entity.Vendor{
		{Name: "Campus Cafeteria", Description: "Main campus dining hall", Location: "Block A, Ground Floor",
			ContactPhone: "08012345678", ContactEmail: "cafeteria@fss.edu.ng", OperatingHours: "7:00 AM - 9:00 PM"},
		{Name: "Quick Bites", Description: "Fast food and snacks", Location: "Student Center",
			ContactPhone: "08098765432", ContactEmail: "quickbites@fss.edu.ng", OperatingHours: "8:00 AM - 8:00 PM"},
		{Name: "Healthy Meals", Description: "Nutritious and organic food", Location: "Faculty Building",
			ContactPhone: "08055566677", ContactEmail: "healthy@fss.edu.ng", OperatingHours: "9:00 AM - 6:00 PM"},
	}
	ids := make([]uint, 0, len(vendors))
	for i := range vendors {
		v := vendors[i]
		if err := db.Where(entity.Vendor{Name: v.Name}).
			Attrs(v).FirstOrCreate(&v).Error; err != nil {
			return err
		}
		ids = append(ids, v.ID)
	}

	foods := []entity.FoodItem{
		{VendorID: ids[0], Name: "Jollof Rice", Description: "Spicy Nigerian rice dish", Price: 800, Category: "Main Course", PreparationTime: 20},
		{VendorID: ids[0], Name: "Fried Rice", Description: "Delicious fried rice with vegetables", Price: 750, Category: "Main Course", PreparationTime: 18},
		{VendorID: ids[0], Name: "Chicken Stew", Description: "Tender chicken in tomato stew", Price: 1200, Category: "Main Course", PreparationTime: 25},
		{VendorID: ids[1], Name: "Meat Pie", Description: "Savory pastry with meat filling", Price: 200, Category: "Snacks", PreparationTime: 5},
		{VendorID: ids[1], Name: "Sausage Roll", Description: "Crispy pastry with sausage", Price: 150, Category: "Snacks", PreparationTime: 5},
		{VendorID: ids[1], Name: "Soft Drinks", Description: "Assorted soft drinks", Price: 100, Category: "Beverages", PreparationTime: 2},
		{VendorID: ids[2], Name: "Grilled Fish", Description: "Fresh grilled fish with vegetables", Price: 1500, Category: "Main Course", PreparationTime: 30},
		{VendorID: ids[2], Name: "Vegetable Salad", Description: "Fresh mixed vegetable salad", Price: 600, Category: "Salads", PreparationTime: 10},
		{VendorID: ids[2], Name: "Fruit Juice", Description: "Fresh fruit juice", Price: 300, Category: "Beverages", PreparationTime: 5},
	}
	for i := range foods {
		f := foods[i]
		if err := db.Where(entity.FoodItem{VendorID: f.VendorID, Name: f.Name}).
			Attrs(f).FirstOrCreate(&f).Error; err != nil {
			return err
		}
	}
	return nil
}
