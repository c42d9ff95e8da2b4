package controllers

import (
	"net/http"
	"strconv"

	"github.com/StephenTeay/food/entity"
	"github.com/StephenTeay/food/pkg/resp"
	"github.com/StephenTeay/food/repository"
	"github.com/StephenTeay/food/services"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

type AdminController struct {
	Orders    *services.OrderService
	OrderRepo *repository.OrderRepository
	Catalog   *repository.CatalogRepository
	Users     *repository.UserRepository
}

func NewAdminController(orders *services.OrderService, orderRepo *repository.OrderRepository,
	catalog *repository.CatalogRepository, users *repository.UserRepository) *AdminController {
	return &AdminController{Orders: orders, OrderRepo: orderRepo, Catalog: catalog, Users: users}
}

// GET /admin/dashboard
func (h *AdminController) Dashboard(c *gin.Context) {
	totalUsers, err := h.Users.CountCustomers()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	activeVendors, err := h.Catalog.CountActiveVendors()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	totalOrders, err := h.OrderRepo.CountOrders()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	revenue, err := h.OrderRepo.Revenue()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	recent, err := h.OrderRepo.RecentOrders(10)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":    totalUsers,
		"activeVendors": activeVendors,
		"totalOrders":   totalOrders,
		"totalRevenue":  revenue,
		"recentOrders":  recent,
	})
}

// GET /admin/orders
func (h *AdminController) ListOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}

// GET /admin/orders/:id/items
func (h *AdminController) OrderItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	items, err := h.Orders.ItemsForOrder(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": items})
}

// PATCH /admin/orders/:id/status — administrative override, may jump states.
func (h *AdminController) UpdateStatus(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := h.Orders.AdminSetStatus(uint(id), req.Status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /admin/orders/export — all orders as an xlsx download.
func (h *AdminController) ExportOrders(c *gin.Context) {
	orders, err := h.Orders.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	headers := []string{
		"OrderNumber", "Customer", "Vendor", "TotalAmount", "Status",
		"DeliveryLocation", "SpecialInstructions", "CreatedAt", "UpdatedAt",
	}
	headerRow := sheet.AddRow()
	for _, hd := range headers {
		headerRow.AddCell().SetValue(hd)
	}

	for _, o := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(o.OrderNumber)
		row.AddCell().SetValue(o.CustomerName)
		row.AddCell().SetValue(o.VendorName)
		row.AddCell().SetValue(o.TotalAmount)
		row.AddCell().SetValue(string(o.Status))
		row.AddCell().SetValue(o.DeliveryLocation)
		row.AddCell().SetValue(o.SpecialInstructions)
		row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(o.UpdatedAt.Format("2006-01-02 15:04:05"))
	}

	c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := file.Write(c.Writer); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GET /admin/users
func (h *AdminController) ListUsers(c *gin.Context) {
	users, err := h.Users.List()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"users": users})
}

// ---------------- Vendor management ----------------

type VendorReq struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	Location       string  `json:"location" binding:"required"`
	ContactPhone   string  `json:"contactPhone"`
	ContactEmail   string  `json:"contactEmail"`
	OperatingHours string  `json:"operatingHours"`
	Rating         float64 `json:"rating"`
}

// POST /admin/vendors
func (h *AdminController) CreateVendor(c *gin.Context) {
	var req VendorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	v := entity.Vendor{
		Name: req.Name, Description: req.Description, Location: req.Location,
		ContactPhone: req.ContactPhone, ContactEmail: req.ContactEmail,
		OperatingHours: req.OperatingHours, Rating: req.Rating, IsActive: true,
	}
	if err := h.Catalog.CreateVendor(&v); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"vendor": v})
}

// PATCH /admin/vendors/:id
func (h *AdminController) UpdateVendor(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	affected, err := h.Catalog.UpdateVendor(uint(id), allowVendorFields(fields))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "vendor not found")
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// ---------------- Food item management ----------------

type FoodItemReq struct {
	VendorID        uint   `json:"vendorId" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           int64  `json:"price" binding:"required,min=1"`
	Category        string `json:"category"`
	ImageURL        string `json:"imageUrl"`
	PreparationTime int    `json:"preparationTime"`
}

// POST /admin/food
func (h *AdminController) CreateFoodItem(c *gin.Context) {
	var req FoodItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := h.Catalog.GetVendor(req.VendorID); err != nil {
		resp.BadRequest(c, "vendor not found")
		return
	}

	prep := req.PreparationTime
	if prep <= 0 {
		prep = 15
	}
	f := entity.FoodItem{
		VendorID: req.VendorID, Name: req.Name, Description: req.Description,
		Price: req.Price, Category: req.Category, ImageURL: req.ImageURL,
		IsAvailable: true, PreparationTime: prep,
	}
	if err := h.Catalog.CreateFoodItem(&f); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"foodItem": f})
}

// PATCH /admin/food/:id
func (h *AdminController) UpdateFoodItem(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	affected, err := h.Catalog.UpdateFoodItem(uint(id), allowFoodFields(fields))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "food item not found")
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// Only whitelisted columns are patchable; price changes never touch placed
// orders (order items hold their own snapshot).
func allowVendorFields(in map[string]any) map[string]any {
	allowed := map[string]string{
		"name": "name", "description": "description", "location": "location",
		"contactPhone": "contact_phone", "contactEmail": "contact_email",
		"operatingHours": "operating_hours", "rating": "rating", "isActive": "is_active",
	}
	out := make(map[string]any)
	for k, col := range allowed {
		if v, ok := in[k]; ok {
			out[col] = v
		}
	}
	return out
}

func allowFoodFields(in map[string]any) map[string]any {
	allowed := map[string]string{
		"name": "name", "description": "description", "price": "price",
		"category": "category", "imageUrl": "image_url",
		"isAvailable": "is_available", "preparationTime": "preparation_time",
	}
	out := make(map[string]any)
	for k, col := range allowed {
		if v, ok := in[k]; ok {
			out[col] = v
		}
	}
	return out
}
