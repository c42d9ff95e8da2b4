package repository

import (
	"time"

	"github.com/StephenTeay/food/entity"
	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderForCustomer(customerID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND customer_id = ?", orderID, customerID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderByNumber(number string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("order_number = ?", number).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips status only when the row still holds the expected
// current status, so a racing transition loses cleanly. Returns rows
// affected: 0 means the order is gone or its status already moved.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID uint, from, to entity.OrderStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(map[string]any{"status": to, "updated_at": time.Now()})
	return res.RowsAffected, res.Error
}

// ---------------- Projections ----------------

// OrderView is an order joined with its vendor and customer display names.
type OrderView struct {
	ID                  uint               `json:"id"`
	OrderNumber         string             `json:"orderNumber"`
	CustomerID          uint               `json:"customerId"`
	CustomerName        string             `json:"customerName"`
	VendorID            uint               `json:"vendorId"`
	VendorName          string             `json:"vendorName"`
	TotalAmount         int64              `json:"totalAmount"`
	Status              entity.OrderStatus `json:"status"`
	DeliveryLocation    string             `json:"deliveryLocation"`
	SpecialInstructions string             `json:"specialInstructions"`
	CreatedAt           time.Time          `json:"createdAt"`
	UpdatedAt           time.Time          `json:"updatedAt"`
}

func (r *OrderRepository) orderViewQuery() *gorm.DB {
	return r.DB.Table("orders AS o").
		Select(`o.id, o.order_number, o.customer_id, u.full_name AS customer_name,
			o.vendor_id, v.name AS vendor_name, o.total_amount, o.status,
			o.delivery_location, o.special_instructions, o.created_at, o.updated_at`).
		Joins("JOIN vendors v ON v.id = o.vendor_id").
		Joins("JOIN users u ON u.id = o.customer_id").
		Where("o.deleted_at IS NULL")
}

// ListOrders returns every order, newest first. Admin surface.
func (r *OrderRepository) ListOrders() ([]OrderView, error) {
	var out []OrderView
	err := r.orderViewQuery().Order("o.created_at DESC").Scan(&out).Error
	return out, err
}

// ListOrdersForCustomer returns one customer's orders, newest first.
func (r *OrderRepository) ListOrdersForCustomer(customerID uint) ([]OrderView, error) {
	var out []OrderView
	err := r.orderViewQuery().
		Where("o.customer_id = ?", customerID).
		Order("o.created_at DESC").Scan(&out).Error
	return out, err
}

// RecentOrders returns the newest orders up to limit, for the dashboard.
func (r *OrderRepository) RecentOrders(limit int) ([]OrderView, error) {
	if limit <= 0 {
		limit = 10
	}
	var out []OrderView
	err := r.orderViewQuery().Order("o.created_at DESC").Limit(limit).Scan(&out).Error
	return out, err
}

// OrderItemView is an order item joined with its food item's display name.
type OrderItemView struct {
	ID         uint   `json:"id"`
	FoodItemID uint   `json:"foodItemId"`
	FoodName   string `json:"foodName"`
	Quantity   int    `json:"quantity"`
	UnitPrice  int64  `json:"unitPrice"`
	Subtotal   int64  `json:"subtotal"`
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]OrderItemView, error) {
	var items []OrderItemView
	err := r.DB.Table("order_items AS oi").
		Select("oi.id, oi.food_item_id, fi.name AS food_name, oi.quantity, oi.unit_price, oi.subtotal").
		Joins("JOIN food_items fi ON fi.id = oi.food_item_id").
		Where("oi.order_id = ? AND oi.deleted_at IS NULL", orderID).
		Scan(&items).Error
	return items, err
}

// ---------------- Stats ----------------

func (r *OrderRepository) CountOrders() (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Order{}).Count(&n).Error
	return n, err
}

// Revenue sums totals of all orders that were not cancelled.
func (r *OrderRepository) Revenue() (int64, error) {
	var row struct{ Revenue int64 }
	err := r.DB.Model(&entity.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue").
		Where("status <> ?", entity.StatusCancelled).
		Scan(&row).Error
	return row.Revenue, err
}
