package services

import (
	"errors"
	"sync"

	"github.com/StephenTeay/food/entity"
	"github.com/StephenTeay/food/pkg/apperr"
	"github.com/StephenTeay/food/repository"
	"gorm.io/gorm"
)

// CartService keeps every customer's in-memory cart, keyed by user id. Each
// cart is private to its owner; the mutex only guards the map itself and
// serializes the owner's own concurrent requests.
type CartService struct {
	mu      sync.Mutex
	carts   map[uint]*entity.Cart
	Catalog *repository.CatalogRepository
}

func NewCartService(catalog *repository.CatalogRepository) *CartService {
	return &CartService{
		carts:   make(map[uint]*entity.Cart),
		Catalog: catalog,
	}
}

func (s *CartService) cart(userID uint) *entity.Cart {
	c, ok := s.carts[userID]
	if !ok {
		c = &entity.Cart{}
		s.carts[userID] = c
	}
	return c
}

// CartOut is the cart plus its derived per-vendor grouping.
type CartOut struct {
	Items  []entity.CartItem    `json:"items"`
	Groups []entity.VendorGroup `json:"groups"`
	Total  int64                `json:"total"`
}

func (s *CartService) Get(userID uint) CartOut {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(userID)
	return CartOut{Items: append([]entity.CartItem(nil), c.Items...), Groups: c.GroupByVendor(), Total: c.Total()}
}

// Add looks the item up in the catalog and merges it into the cart at its
// current price.
func (s *CartService) Add(userID, foodItemID uint, qty int) error {
	fv, err := s.Catalog.GetFoodItem(foodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundError{Resource: "food item", ID: foodItemID}
		}
		return apperr.PersistenceError{Op: "lookup food item", Err: err}
	}
	if !fv.IsAvailable {
		return apperr.ValidationError{Field: "foodItemId", Message: "item is not available"}
	}

	line := entity.CartItem{
		ItemID:     fv.ID,
		Name:       fv.Name,
		VendorID:   fv.VendorID,
		VendorName: fv.VendorName,
		UnitPrice:  fv.Price,
		Quantity:   qty,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).Add(line)
}

func (s *CartService) SetQuantity(userID, itemID uint, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart(userID).SetQuantity(itemID, qty)
}

func (s *CartService) Remove(userID, itemID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Remove(itemID)
}

func (s *CartService) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).Clear()
}

// VendorSlice returns a copy of one vendor's entries with their total, the
// payload for a single checkout.
func (s *CartService) VendorSlice(userID, vendorID uint) ([]entity.CartItem, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.cart(userID).GroupByVendor() {
		if g.VendorID == vendorID {
			return append([]entity.CartItem(nil), g.Items...), g.Total
		}
	}
	return nil, 0
}

// ClearVendor drops one vendor's entries after its order is placed. Entries
// from other vendors stay put.
func (s *CartService) ClearVendor(userID, vendorID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(userID).ClearVendor(vendorID)
}
