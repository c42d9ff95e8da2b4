package controllers

import (
	"strconv"

	"github.com/StephenTeay/food/pkg/resp"
	"github.com/StephenTeay/food/services"
	"github.com/StephenTeay/food/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type CheckoutReq struct {
	VendorID            uint   `json:"vendorId" binding:"required"`
	DeliveryLocation    string `json:"deliveryLocation" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

// POST /orders — checkout one vendor's slice of the cart.
func (oc *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	number, err := oc.Svc.CheckoutVendor(uid, req.VendorID, req.DeliveryLocation, req.SpecialInstructions)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"orderNumber": number})
}

// GET /orders — the caller's orders, newest first.
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Svc.ListForCustomer(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /orders/:id — order detail with its items, owner only.
func (oc *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	detail, err := oc.Svc.DetailForCustomer(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, detail)
}

// PATCH /orders/:id/cancel — customer cancellation, pending orders only.
func (oc *OrderController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := oc.Svc.CustomerCancel(uid, uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
