package entity

// OrderStatus is the order lifecycle state, stored as its string value.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

// AllStatuses in forward-path order, cancelled last.
var AllStatuses = []OrderStatus{
	StatusPending, StatusConfirmed, StatusPreparing,
	StatusReady, StatusDelivered, StatusCancelled,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal states have no transitions out, for any actor.
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanCustomerSet restricts the customer path: only a pending order may be
// cancelled. All other lifecycle moves belong to staff.
func (s OrderStatus) CanCustomerSet(to OrderStatus) bool {
	return s == StatusPending && to == StatusCancelled
}

// CanAdminSet allows administrators to jump to any valid status from any
// non-terminal one. Intentionally permissive: operations staff correct
// mis-advanced orders this way.
func (s OrderStatus) CanAdminSet(to OrderStatus) bool {
	return to.Valid() && !s.Terminal()
}
