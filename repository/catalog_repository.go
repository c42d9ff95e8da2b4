package repository

import (
	"github.com/StephenTeay/food/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ---------------- Vendors ----------------

func (r *CatalogRepository) ListVendors(activeOnly bool) ([]entity.Vendor, error) {
	var out []entity.Vendor
	q := r.DB.Model(&entity.Vendor{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	err := q.Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) GetVendor(id uint) (*entity.Vendor, error) {
	var v entity.Vendor
	if err := r.DB.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *CatalogRepository) CreateVendor(v *entity.Vendor) error {
	return r.DB.Create(v).Error
}

func (r *CatalogRepository) UpdateVendor(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.Vendor{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *CatalogRepository) CountActiveVendors() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Vendor{}).Where("is_active = ?", true).Count(&n).Error
	return n, err
}

// ---------------- Food items ----------------

// FoodItemView is a food item joined with its vendor name, the shape the cart
// consumes.
type FoodItemView struct {
	ID              uint   `json:"id"`
	VendorID        uint   `json:"vendorId"`
	VendorName      string `json:"vendorName"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           int64  `json:"price"`
	Category        string `json:"category"`
	ImageURL        string `json:"imageUrl"`
	IsAvailable     bool   `json:"isAvailable"`
	PreparationTime int    `json:"preparationTime"`
}

func (r *CatalogRepository) foodViewQuery() *gorm.DB {
	return r.DB.Table("food_items AS fi").
		Select(`fi.id, fi.vendor_id, v.name AS vendor_name, fi.name, fi.description,
			fi.price, fi.category, fi.image_url, fi.is_available, fi.preparation_time`).
		Joins("JOIN vendors v ON v.id = fi.vendor_id").
		Where("fi.deleted_at IS NULL")
}

// ListFoodItems returns available items, optionally scoped to one vendor.
func (r *CatalogRepository) ListFoodItems(vendorID *uint) ([]FoodItemView, error) {
	q := r.foodViewQuery().Where("fi.is_available = ?", true)
	if vendorID != nil && *vendorID != 0 {
		q = q.Where("fi.vendor_id = ?", *vendorID)
	}
	var out []FoodItemView
	err := q.Order("fi.id").Scan(&out).Error
	return out, err
}

// SearchFoodItems matches the term against food name, description and vendor
// name, available items only.
func (r *CatalogRepository) SearchFoodItems(term string) ([]FoodItemView, error) {
	pattern := "%" + term + "%"
	var out []FoodItemView
	err := r.foodViewQuery().
		Where("fi.is_available = ?", true).
		Where("fi.name LIKE ? OR fi.description LIKE ? OR v.name LIKE ?", pattern, pattern, pattern).
		Order("fi.id").Scan(&out).Error
	return out, err
}

func (r *CatalogRepository) GetFoodItem(id uint) (*FoodItemView, error) {
	var fv FoodItemView
	res := r.foodViewQuery().Where("fi.id = ?", id).Scan(&fv)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &fv, nil
}

func (r *CatalogRepository) CreateFoodItem(f *entity.FoodItem) error {
	return r.DB.Create(f).Error
}

func (r *CatalogRepository) UpdateFoodItem(id uint, fields map[string]any) (int64, error) {
	res := r.DB.Model(&entity.FoodItem{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}
