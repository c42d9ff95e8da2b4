package services

import (
	"errors"
	"strings"
	"time"

	"github.com/StephenTeay/food/entity"
	"github.com/StephenTeay/food/pkg/apperr"
	"github.com/StephenTeay/food/repository"
	"gorm.io/gorm"
)

// maxOrderNumberAttempts bounds regeneration when the unique index rejects a
// generated order number.
const maxOrderNumberAttempts = 3

// OrderEvents receives order lifecycle notifications. Optional.
type OrderEvents interface {
	Broadcast(v any)
}

// OrderEvent is published on creation and on every status change.
type OrderEvent struct {
	OrderNumber string             `json:"orderNumber"`
	Status      entity.OrderStatus `json:"status"`
	TotalAmount int64              `json:"totalAmount"`
	VendorID    uint               `json:"vendorId"`
	CustomerID  uint               `json:"customerId"`
}

type OrderService struct {
	DB     *gorm.DB
	Repo   *repository.OrderRepository
	Carts  *CartService
	Events OrderEvents

	genNumber func(time.Time) string
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, carts *CartService, events OrderEvents) *OrderService {
	return &OrderService{
		DB:        db,
		Repo:      repo,
		Carts:     carts,
		Events:    events,
		genNumber: GenerateOrderNumber,
	}
}

// CreateOrder persists one order and its items as a single unit and returns
// the generated order number. The caller supplies one vendor's cart slice;
// the total is recomputed here, never trusted.
func (s *OrderService) CreateOrder(customerID, vendorID uint, items []entity.CartItem, totalAmount int64, deliveryLocation, specialInstructions string) (string, error) {
	if len(items) == 0 {
		return "", apperr.ValidationError{Field: "items", Message: "order must have at least one item"}
	}
	if strings.TrimSpace(deliveryLocation) == "" {
		return "", apperr.ValidationError{Field: "deliveryLocation", Message: "delivery location is required"}
	}

	var sum int64
	for _, it := range items {
		if it.VendorID != vendorID {
			return "", apperr.ValidationError{Field: "items", Message: "all items must belong to the ordered vendor"}
		}
		if it.Quantity < 1 {
			return "", apperr.ValidationError{Field: "items", Message: "item quantity must be positive"}
		}
		sum += it.UnitPrice * int64(it.Quantity)
	}
	if sum != totalAmount {
		return "", apperr.ValidationError{Field: "totalAmount", Message: "total does not match item subtotals"}
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderNumberAttempts; attempt++ {
		number := s.genNumber(time.Now())

		err := s.DB.Transaction(func(tx *gorm.DB) error {
			order := entity.Order{
				OrderNumber:         number,
				CustomerID:          customerID,
				VendorID:            vendorID,
				TotalAmount:         totalAmount,
				Status:              entity.StatusPending,
				DeliveryLocation:    deliveryLocation,
				SpecialInstructions: specialInstructions,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}
			for _, it := range items {
				oi := entity.OrderItem{
					OrderID:    order.ID,
					FoodItemID: it.ItemID,
					Quantity:   it.Quantity,
					UnitPrice:  it.UnitPrice,
					Subtotal:   it.UnitPrice * int64(it.Quantity),
				}
				if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			if s.Events != nil {
				s.Events.Broadcast(OrderEvent{
					OrderNumber: number, Status: entity.StatusPending,
					TotalAmount: totalAmount, VendorID: vendorID, CustomerID: customerID,
				})
			}
			return number, nil
		}
		if isDuplicateKey(err) {
			lastErr = err
			continue
		}
		return "", apperr.PersistenceError{Op: "create order", Err: err}
	}
	return "", apperr.PersistenceError{Op: "create order", Err: lastErr}
}

// CheckoutVendor places an order for one vendor's cart slice and, on success,
// drops only that vendor's entries from the cart.
func (s *OrderService) CheckoutVendor(userID, vendorID uint, deliveryLocation, specialInstructions string) (string, error) {
	items, total := s.Carts.VendorSlice(userID, vendorID)
	if len(items) == 0 {
		return "", apperr.ValidationError{Field: "vendorId", Message: "cart has no items for this vendor"}
	}
	number, err := s.CreateOrder(userID, vendorID, items, total, deliveryLocation, specialInstructions)
	if err != nil {
		return "", err
	}
	s.Carts.ClearVendor(userID, vendorID)
	return number, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") || strings.Contains(msg, "duplicate key")
}

// ---------------- Queries ----------------

func (s *OrderService) ListAll() ([]repository.OrderView, error) {
	out, err := s.Repo.ListOrders()
	if err != nil {
		return nil, apperr.PersistenceError{Op: "list orders", Err: err}
	}
	return out, nil
}

func (s *OrderService) ListForCustomer(customerID uint) ([]repository.OrderView, error) {
	out, err := s.Repo.ListOrdersForCustomer(customerID)
	if err != nil {
		return nil, apperr.PersistenceError{Op: "list orders", Err: err}
	}
	return out, nil
}

type OrderDetail struct {
	Order entity.Order               `json:"order"`
	Items []repository.OrderItemView `json:"items"`
}

func (s *OrderService) DetailForCustomer(customerID, orderID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundError{Resource: "order", ID: orderID}
		}
		return nil, apperr.PersistenceError{Op: "load order", Err: err}
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.PersistenceError{Op: "load order items", Err: err}
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}

func (s *OrderService) ItemsForOrder(orderID uint) ([]repository.OrderItemView, error) {
	if _, err := s.Repo.GetOrder(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundError{Resource: "order", ID: orderID}
		}
		return nil, apperr.PersistenceError{Op: "load order", Err: err}
	}
	items, err := s.Repo.GetOrderItems(orderID)
	if err != nil {
		return nil, apperr.PersistenceError{Op: "load order items", Err: err}
	}
	return items, nil
}
