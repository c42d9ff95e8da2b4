package controllers

import (
	"github.com/StephenTeay/food/pkg/resp"
	"github.com/StephenTeay/food/services"
	"github.com/StephenTeay/food/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out := h.Svc.Get(uid)
	resp.OK(c, gin.H{"cart": out, "multipleVendors": len(out.Groups) > 1})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req struct {
		FoodItemID uint `json:"foodItemId" binding:"required"`
		Quantity   int  `json:"quantity" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.Add(uid, req.FoodItemID, req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"ok": true})
}

// PATCH /cart/items
func (h *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req struct {
		ItemID   uint `json:"itemId" binding:"required"`
		Quantity int  `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Svc.SetQuantity(uid, req.ItemID, req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	h.Svc.Remove(uid, req.ItemID)
	resp.OK(c, gin.H{"ok": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	h.Svc.Clear(utils.CurrentUserID(c))
	resp.OK(c, gin.H{"ok": true})
}
