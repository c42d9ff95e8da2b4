package controllers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/StephenTeay/food/pkg/resp"
	"github.com/StephenTeay/food/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CatalogController struct{ Repo *repository.CatalogRepository }

func NewCatalogController(r *repository.CatalogRepository) *CatalogController {
	return &CatalogController{Repo: r}
}

// GET /vendors
func (h *CatalogController) ListVendors(c *gin.Context) {
	vendors, err := h.Repo.ListVendors(true)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"vendors": vendors})
}

// GET /vendors/:id
func (h *CatalogController) VendorDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	v, err := h.Repo.GetVendor(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "vendor not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"vendor": v})
}

// GET /food?vendorId=
func (h *CatalogController) ListFood(c *gin.Context) {
	var vendorID *uint
	if raw := c.Query("vendorId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			resp.BadRequest(c, "invalid vendorId")
			return
		}
		v := uint(id)
		vendorID = &v
	}

	items, err := h.Repo.ListFoodItems(vendorID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// GET /food/search?q=
func (h *CatalogController) Search(c *gin.Context) {
	term := strings.TrimSpace(c.Query("q"))
	if term == "" {
		resp.BadRequest(c, "q is required")
		return
	}

	items, err := h.Repo.SearchFoodItems(term)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}
