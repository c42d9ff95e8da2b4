package repository

import (
	"github.com/StephenTeay/food/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsernameOrEmail(username, email string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	return n, err
}

func (r *UserRepository) List() ([]entity.User, error) {
	var out []entity.User
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

// CountCustomers counts every non-admin account.
func (r *UserRepository) CountCustomers() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("user_type <> ?", "admin").Count(&n).Error
	return n, err
}
