package entity

import (
	"github.com/StephenTeay/food/pkg/apperr"
)

// MaxAddQuantity caps a single add-to-cart call.
const MaxAddQuantity = 10

// CartItem is an ephemeral line in one customer's cart. Not persisted.
type CartItem struct {
	ItemID     uint   `json:"itemId"`
	Name       string `json:"name"`
	VendorID   uint   `json:"vendorId"`
	VendorName string `json:"vendorName"`
	UnitPrice  int64  `json:"unitPrice"`
	Quantity   int    `json:"quantity"`
	Subtotal   int64  `json:"subtotal"`
}

// Cart holds one customer's selected items. It is a plain value owned by the
// session; callers never share one Cart across sessions, so there is no
// locking here.
type Cart struct {
	Items []CartItem `json:"items"`
}

// VendorGroup is the slice of a cart belonging to one vendor, the unit of a
// single checkout.
type VendorGroup struct {
	VendorID   uint       `json:"vendorId"`
	VendorName string     `json:"vendorName"`
	Items      []CartItem `json:"items"`
	Total      int64      `json:"total"`
}

// Add puts line into the cart. Adding an item already present merges into the
// existing entry instead of appending a duplicate row.
func (c *Cart) Add(line CartItem) error {
	if line.Quantity < 1 {
		return apperr.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	if line.Quantity > MaxAddQuantity {
		return apperr.ValidationError{Field: "quantity", Message: "too many items in one add"}
	}
	for i := range c.Items {
		if c.Items[i].ItemID == line.ItemID {
			c.Items[i].Quantity += line.Quantity
			c.Items[i].Subtotal = c.Items[i].UnitPrice * int64(c.Items[i].Quantity)
			return nil
		}
	}
	line.Subtotal = line.UnitPrice * int64(line.Quantity)
	c.Items = append(c.Items, line)
	return nil
}

// SetQuantity replaces an entry's quantity. Dropping an entry requires an
// explicit Remove.
func (c *Cart) SetQuantity(itemID uint, qty int) error {
	if qty < 1 {
		return apperr.ValidationError{Field: "quantity", Message: "must be at least 1"}
	}
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items[i].Quantity = qty
			c.Items[i].Subtotal = c.Items[i].UnitPrice * int64(qty)
			return nil
		}
	}
	return apperr.NotFoundError{Resource: "cart item", ID: itemID}
}

// Remove deletes the matching entry. Removing an absent id is a no-op; the UI
// may race a second click.
func (c *Cart) Remove(itemID uint) {
	for i := range c.Items {
		if c.Items[i].ItemID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// ClearVendor drops only one vendor's entries, called after that vendor's
// slice is successfully ordered.
func (c *Cart) ClearVendor(vendorID uint) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.VendorID != vendorID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
}

func (c *Cart) Total() int64 {
	var sum int64
	for _, it := range c.Items {
		sum += it.Subtotal
	}
	return sum
}

// GroupByVendor partitions entries by vendor in first-seen order. More than
// one group means the cart mixes vendors and must be checked out per vendor.
func (c *Cart) GroupByVendor() []VendorGroup {
	idx := make(map[uint]int)
	groups := make([]VendorGroup, 0, 1)
	for _, it := range c.Items {
		i, ok := idx[it.VendorID]
		if !ok {
			i = len(groups)
			idx[it.VendorID] = i
			groups = append(groups, VendorGroup{VendorID: it.VendorID, VendorName: it.VendorName})
		}
		groups[i].Items = append(groups[i].Items, it)
		groups[i].Total += it.Subtotal
	}
	return groups
}
