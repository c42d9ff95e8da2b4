package services

import (
	"errors"
	"testing"
	"time"

	"github.com/StephenTeay/food/entity"
	"github.com/StephenTeay/food/pkg/apperr"
	"github.com/StephenTeay/food/repository"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	carts := NewCartService(catalogRepo)
	return NewOrderService(db, orderRepo, carts, nil)
}

func cartLine(itemID, vendorID uint, price int64, qty int) entity.CartItem {
	return entity.CartItem{
		ItemID: itemID, VendorID: vendorID, UnitPrice: price,
		Quantity: qty, Subtotal: price * int64(qty),
	}
}

func TestCreateOrderPersistsPendingOrder(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := seedCustomer(t, db, "ada", "Ada Obi")
	vendor := seedVendor(t, db, "Campus Cafeteria")
	food := seedFood(t, db, vendor, "Jollof Rice", 800)

	number, err := svc.CreateOrder(customer, vendor,
		[]entity.CartItem{cartLine(food, vendor, 800, 2)},
		1600, "Hostel A", "no pepper")
	if err != nil {
		t.Fatalf("CreateOrder error: %v", err)
	}

	o, err := svc.Repo.GetOrderByNumber(number)
	if err != nil {
		t.Fatalf("order not queryable by number: %v", err)
	}
	if o.Status != entity.StatusPending {
		t.Errorf("status = %s, want pending", o.Status)
	}
	if o.TotalAmount != 1600 {
		t.Errorf("total = %d, want 1600", o.TotalAmount)
	}

	items, err := svc.Repo.GetOrderItems(o.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 order item, got %d", len(items))
	}
	if items[0].Subtotal != 1600 || items[0].UnitPrice != 800 || items[0].Quantity != 2 {
		t.Errorf("item = %+v, want qty 2 @ 800 = 1600", items[0])
	}
	if items[0].FoodName != "Jollof Rice" {
		t.Errorf("food name = %q, want Jollof Rice", items[0].FoodName)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := seedCustomer(t, db, "ada", "Ada Obi")
	vendor := seedVendor(t, db, "Campus Cafeteria")
	food := seedFood(t, db, vendor, "Jollof Rice", 800)

	good := []entity.CartItem{cartLine(food, vendor, 800, 2)}

	tests := []struct {
		name     string
		items    []entity.CartItem
		total    int64
		location string
	}{
		{"empty items", nil, 0, "Hostel A"},
		{"vendor mismatch", []entity.CartItem{cartLine(food, vendor+1, 800, 2)}, 1600, "Hostel A"},
		{"non-positive quantity", []entity.CartItem{cartLine(food, vendor, 800, 0)}, 0, "Hostel A"},
		{"total mismatch", good, 1500, "Hostel A"},
		{"empty location", good, 1600, "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateOrder(customer, vendor, tt.items, tt.total, tt.location, "")
			var ve apperr.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("got %v, want ValidationError", err)
			}
			// rejected input must never be persisted
			var n int64
			db.Model(&entity.Order{}).Count(&n)
			if n != 0 {
				t.Errorf("%d order rows persisted after validation failure", n)
			}
		})
	}
}

func TestCreateOrderIsAtomic(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := seedCustomer(t, db, "ada", "Ada Obi")
	vendor := seedVendor(t, db, "Campus Cafeteria")
	food := seedFood(t, db, vendor, "Jollof Rice", 800)

	// fail the transaction between the order insert and its item inserts
	err := db.Callback().Create().Before("gorm:create").Register("fail_order_items", func(tx *gorm.DB) {
		if tx.Statement.Table == "order_items" {
			tx.AddError(errors.New("injected storage failure"))
		}
	})
	if err != nil {
		t.Fatalf("register callback: %v", err)
	}

	_, err = svc.CreateOrder(customer, vendor,
		[]entity.CartItem{cartLine(food, vendor, 800, 2)},
		1600, "Hostel A", "")
	var pe apperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want PersistenceError", err)
	}

	var orders, items int64
	db.Model(&entity.Order{}).Count(&orders)
	db.Model(&entity.OrderItem{}).Count(&items)
	if orders != 0 || items != 0 {
		t.Errorf("after rollback: %d orders, %d items persisted, want 0/0", orders, items)
	}
}

func TestCreateOrderRetriesOnNumberCollision(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := seedCustomer(t, db, "ada", "Ada Obi")
	vendor := seedVendor(t, db, "Campus Cafeteria")
	food := seedFood(t, db, vendor, "Jollof Rice", 800)
	line := []entity.CartItem{cartLine(food, vendor, 800, 1)}

	taken, err := svc.CreateOrder(customer, vendor, line, 800, "Hostel A", "")
	if err != nil {
		t.Fatal(err)
	}

	// first generation collides with the existing order, then falls back to
	// the real generator
	calls := 0
	svc.genNumber = func(now time.Time) string {
		calls++
		if calls == 1 {
			return taken
		}
		return GenerateOrderNumber(now)
	}

	number, err := svc.CreateOrder(customer, vendor, line, 800, "Hostel A", "")
	if err != nil {
		t.Fatalf("CreateOrder should retry past a collision, got: %v", err)
	}
	if number == taken {
		t.Fatal("collision was not regenerated")
	}
	if calls != 2 {
		t.Errorf("generator called %d times, want 2", calls)
	}
}

func TestCreateOrderGivesUpAfterBoundedRetries(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := seedCustomer(t, db, "ada", "Ada Obi")
	vendor := seedVendor(t, db, "Campus Cafeteria")
	food := seedFood(t, db, vendor, "Jollof Rice", 800)
	line := []entity.CartItem{cartLine(food, vendor, 800, 1)}

	taken, err := svc.CreateOrder(customer, vendor, line, 800, "Hostel A", "")
	if err != nil {
		t.Fatal(err)
	}

	calls := 0
	svc.genNumber = func(time.Time) string {
		calls++
		return taken
	}

	_, err = svc.CreateOrder(customer, vendor, line, 800, "Hostel A", "")
	var pe apperr.PersistenceError
	if !errors.As(err, &pe) {
		t.Fatalf("got %v, want PersistenceError after exhausted retries", err)
	}
	if calls != maxOrderNumberAttempts {
		t.Errorf("generator called %d times, want %d", calls, maxOrderNumberAttempts)
	}
}

func TestStatusTransitions(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := seedCustomer(t, db, "ada", "Ada Obi")
	vendor := seedVendor(t, db, "Campus Cafeteria")
	food := seedFood(t, db, vendor, "Jollof Rice", 800)
	line := []entity.CartItem{cartLine(food, vendor, 800, 1)}

	place := func() uint {
		t.Helper()
		number, err := svc.CreateOrder(customer, vendor, line, 800, "Hostel A", "")
		if err != nil {
			t.Fatal(err)
		}
		o, err := svc.Repo.GetOrderByNumber(number)
		if err != nil {
			t.Fatal(err)
		}
		return o.ID
	}

	t.Run("customer cancels pending", func(t *testing.T) {
		id := place()
		if err := svc.CustomerCancel(customer, id); err != nil {
			t.Fatalf("CustomerCancel: %v", err)
		}
		o, _ := svc.Repo.GetOrder(id)
		if o.Status != entity.StatusCancelled {
			t.Errorf("status = %s, want cancelled", o.Status)
		}
	})

	t.Run("customer cannot cancel once confirmed", func(t *testing.T) {
		id := place()
		if err := svc.AdminSetStatus(id, entity.StatusConfirmed); err != nil {
			t.Fatal(err)
		}
		err := svc.CustomerCancel(customer, id)
		var te apperr.InvalidTransitionError
		if !errors.As(err, &te) {
			t.Fatalf("got %v, want InvalidTransitionError", err)
		}
	})

	t.Run("admin jumps pending to preparing", func(t *testing.T) {
		id := place()
		if err := svc.AdminSetStatus(id, entity.StatusPreparing); err != nil {
			t.Fatalf("AdminSetStatus: %v", err)
		}
	})

	t.Run("delivered is terminal even for admin", func(t *testing.T) {
		id := place()
		if err := svc.AdminSetStatus(id, entity.StatusDelivered); err != nil {
			t.Fatal(err)
		}
		for _, to := range entity.AllStatuses {
			err := svc.AdminSetStatus(id, to)
			var te apperr.InvalidTransitionError
			if !errors.As(err, &te) {
				t.Errorf("delivered -> %s: got %v, want InvalidTransitionError", to, err)
			}
		}
	})

	t.Run("unknown order", func(t *testing.T) {
		err := svc.AdminSetStatus(9999, entity.StatusConfirmed)
		var ne apperr.NotFoundError
		if !errors.As(err, &ne) {
			t.Fatalf("got %v, want NotFoundError", err)
		}
		err = svc.CustomerCancel(customer, 9999)
		if !errors.As(err, &ne) {
			t.Fatalf("got %v, want NotFoundError", err)
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		id := place()
		err := svc.AdminSetStatus(id, entity.OrderStatus("shipped"))
		var ve apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("got %v, want ValidationError", err)
		}
	})
}

func TestCheckoutVendorUsesOnlyThatVendorsSlice(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	customer := seedCustomer(t, db, "ada", "Ada Obi")
	cafeteria := seedVendor(t, db, "Campus Cafeteria")
	quickBites := seedVendor(t, db, "Quick Bites")
	jollof := seedFood(t, db, cafeteria, "Jollof Rice", 800)
	meatPie := seedFood(t, db, quickBites, "Meat Pie", 200)

	if err := svc.Carts.Add(customer, jollof, 2); err != nil {
		t.Fatal(err)
	}
	if err := svc.Carts.Add(customer, meatPie, 1); err != nil {
		t.Fatal(err)
	}

	groups := svc.Carts.Get(customer).Groups
	if len(groups) != 2 {
		t.Fatalf("expected 2 vendor groups, got %d", len(groups))
	}
	if groups[0].Total != 1600 || groups[1].Total != 200 {
		t.Errorf("group totals = %d/%d, want 1600/200", groups[0].Total, groups[1].Total)
	}

	number, err := svc.CheckoutVendor(customer, cafeteria, "Hostel A", "")
	if err != nil {
		t.Fatalf("CheckoutVendor: %v", err)
	}

	o, err := svc.Repo.GetOrderByNumber(number)
	if err != nil {
		t.Fatal(err)
	}
	if o.TotalAmount != 1600 || o.VendorID != cafeteria {
		t.Errorf("order = vendor %d total %d, want vendor %d total 1600", o.VendorID, o.TotalAmount, cafeteria)
	}
	items, _ := svc.Repo.GetOrderItems(o.ID)
	if len(items) != 1 {
		t.Errorf("expected 1 order item, got %d", len(items))
	}

	// the other vendor's entry must survive the checkout
	left := svc.Carts.Get(customer)
	if len(left.Items) != 1 || left.Items[0].VendorID != quickBites {
		t.Fatalf("cart after checkout = %+v, want only Quick Bites entry", left.Items)
	}

	// nothing left for the ordered vendor
	_, err = svc.CheckoutVendor(customer, cafeteria, "Hostel A", "")
	var ve apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("second checkout: got %v, want ValidationError", err)
	}
}

func TestListOrdersProjection(t *testing.T) {
	db := newTestDB(t)
	svc := newOrderService(db)
	ada := seedCustomer(t, db, "ada", "Ada Obi")
	bola := seedCustomer(t, db, "bola", "Bola Ade")
	vendor := seedVendor(t, db, "Campus Cafeteria")
	food := seedFood(t, db, vendor, "Jollof Rice", 800)
	line := []entity.CartItem{cartLine(food, vendor, 800, 1)}

	for _, cust := range []uint{ada, ada, bola} {
		if _, err := svc.CreateOrder(cust, vendor, line, 800, "Hostel A", ""); err != nil {
			t.Fatal(err)
		}
	}

	all, err := svc.ListAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll returned %d orders, want 3", len(all))
	}
	if all[0].VendorName != "Campus Cafeteria" {
		t.Errorf("vendor name = %q", all[0].VendorName)
	}

	mine, err := svc.ListForCustomer(ada)
	if err != nil {
		t.Fatal(err)
	}
	if len(mine) != 2 {
		t.Fatalf("ListForCustomer returned %d orders, want 2", len(mine))
	}
	for _, o := range mine {
		if o.CustomerName != "Ada Obi" {
			t.Errorf("customer name = %q, want Ada Obi", o.CustomerName)
		}
	}

	// owner scoping on detail
	if _, err := svc.DetailForCustomer(bola, mine[0].ID); err == nil {
		t.Error("DetailForCustomer should not expose another customer's order")
	}
	detail, err := svc.DetailForCustomer(ada, mine[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(detail.Items) != 1 || detail.Items[0].FoodName != "Jollof Rice" {
		t.Errorf("detail items = %+v", detail.Items)
	}
}
