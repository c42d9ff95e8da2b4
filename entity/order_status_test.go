package entity

import "testing"

func TestOrderStatusCustomerTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPreparing, false},
		{StatusPending, StatusConfirmed, false},
		{StatusConfirmed, StatusCancelled, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusCancelled, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanCustomerSet(tt.to); got != tt.want {
			t.Errorf("CanCustomerSet(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestOrderStatusAdminTransitions(t *testing.T) {
	tests := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusPreparing, true},
		{StatusPending, StatusDelivered, true},
		{StatusPreparing, StatusPending, true}, // admin may jump backwards
		{StatusReady, StatusCancelled, true},
		{StatusDelivered, StatusPending, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusPending, false},
		{StatusPending, OrderStatus("shipped"), false},
	}
	for _, tt := range tests {
		if got := tt.from.CanAdminSet(tt.to); got != tt.want {
			t.Errorf("CanAdminSet(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, s := range AllStatuses {
		terminal := s == StatusDelivered || s == StatusCancelled
		if s.Terminal() != terminal {
			t.Errorf("%s.Terminal() = %v, want %v", s, s.Terminal(), terminal)
		}
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if OrderStatus("unknown").Valid() {
		t.Error("unknown status should not be valid")
	}
}
