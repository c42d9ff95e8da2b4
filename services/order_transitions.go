package services

import (
	"errors"

	"github.com/StephenTeay/food/entity"
	"github.com/StephenTeay/food/pkg/apperr"
	"gorm.io/gorm"
)

// Status changes use a guarded UPDATE keyed on the current status, so two
// racing transitions cannot both win.

// CustomerCancel is the only transition customers may perform, and only while
// the order is still pending.
func (s *OrderService) CustomerCancel(customerID, orderID uint) error {
	o, err := s.Repo.GetOrderForCustomer(customerID, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundError{Resource: "order", ID: orderID}
		}
		return apperr.PersistenceError{Op: "load order", Err: err}
	}

	if !o.Status.CanCustomerSet(entity.StatusCancelled) {
		return apperr.InvalidTransitionError{From: string(o.Status), To: string(entity.StatusCancelled)}
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, o.Status, entity.StatusCancelled)
	if err != nil {
		return apperr.PersistenceError{Op: "update status", Err: err}
	}
	if affected == 0 {
		// status moved underneath us
		return apperr.InvalidTransitionError{From: string(o.Status), To: string(entity.StatusCancelled)}
	}

	s.notifyStatus(o, entity.StatusCancelled)
	return nil
}

// AdminSetStatus lets administrators jump an order to any status as long as
// it has not reached a terminal state.
func (s *OrderService) AdminSetStatus(orderID uint, to entity.OrderStatus) error {
	if !to.Valid() {
		return apperr.ValidationError{Field: "status", Message: "unknown status"}
	}

	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundError{Resource: "order", ID: orderID}
		}
		return apperr.PersistenceError{Op: "load order", Err: err}
	}

	if !o.Status.CanAdminSet(to) {
		return apperr.InvalidTransitionError{From: string(o.Status), To: string(to)}
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, o.ID, o.Status, to)
	if err != nil {
		return apperr.PersistenceError{Op: "update status", Err: err}
	}
	if affected == 0 {
		return apperr.InvalidTransitionError{From: string(o.Status), To: string(to)}
	}

	s.notifyStatus(o, to)
	return nil
}

func (s *OrderService) notifyStatus(o *entity.Order, status entity.OrderStatus) {
	if s.Events == nil {
		return
	}
	s.Events.Broadcast(OrderEvent{
		OrderNumber: o.OrderNumber,
		Status:      status,
		TotalAmount: o.TotalAmount,
		VendorID:    o.VendorID,
		CustomerID:  o.CustomerID,
	})
}
