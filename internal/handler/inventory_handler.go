package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/model"
	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	catalogService service.CatalogService
	auth           *middleware.Authenticator
}

func NewInventoryHandler(catalogService service.CatalogService, auth *middleware.Authenticator) *InventoryHandler {
	return &InventoryHandler{catalogService: catalogService, auth: auth}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	menu := router.Group("/api/menu")
	{
		menu.GET("", h.auth.RequireSession(), h.GetMenuItems)
		menu.GET("/:id", h.auth.RequireSession(), h.GetMenuItem)
		menu.POST("", h.auth.RequirePermission(model.PermManageMenu), h.CreateMenuItem)
		menu.PATCH("/:id", h.auth.RequirePermission(model.PermManageMenu), h.UpdateMenuItem)
		menu.DELETE("/:id", h.auth.RequirePermission(model.PermManageMenu), h.DeleteMenuItem)
	}

	stock := router.Group("/api/stock")
	stock.Use(h.auth.RequirePermission(model.PermManageStock))
	{
		stock.GET("", h.GetStockItems)
		stock.GET("/low", h.GetLowStockItems)
		stock.POST("", h.CreateStockItem)
		stock.PATCH("/:id", h.UpdateStockItem)
		stock.DELETE("/:id", h.DeleteStockItem)
	}
}

// GetMenuItems lists the menu, optionally filtered by category
// @Summary      List menu items
// @Tags         menu
// @Security     BearerAuth
// @Produce      json
// @Param        category  query     string  false  "Category filter"
// @Success      200       {object}  response.Response{data=[]model.MenuItem}
// @Router       /api/menu [get]
func (h *InventoryHandler) GetMenuItems(c *gin.Context) {
	items := h.catalogService.ListMenuItems()
	if category := c.Query("category"); category != "" {
		filtered := make([]model.MenuItem, 0, len(items))
		for _, it := range items {
			if string(it.Category) == category {
				filtered = append(filtered, it)
			}
		}
		items = filtered
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// GetMenuItem returns one menu item
// @Summary      Get menu item
// @Tags         menu
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Menu item ID"
// @Success      200  {object}  response.Response{data=model.MenuItem}
// @Failure      404  {object}  response.Response
// @Router       /api/menu/{id} [get]
func (h *InventoryHandler) GetMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, found := h.catalogService.GetMenuItem(id)
	if !found {
		notFound(c, "Menu item")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// CreateMenuItem adds a menu item with a freshly assigned id
// @Summary      Create menu item
// @Tags         menu
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateMenuItemRequest  true  "Create Menu Item Payload"
// @Success      201      {object}  response.Response{data=model.MenuItem}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/menu [post]
func (h *InventoryHandler) CreateMenuItem(c *gin.Context) {
	var req service.CreateMenuItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.catalogService.AddMenuItem(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateMenuItem merges the supplied fields into a menu item
// @Summary      Update menu item
// @Tags         menu
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Menu item ID"
// @Param        payload  body      model.MenuItemPatch  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.MenuItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/menu/{id} [patch]
func (h *InventoryHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch model.MenuItemPatch
	if !bindJSON(c, &patch) {
		return
	}

	item, found, err := h.catalogService.UpdateMenuItem(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		notFound(c, "Menu item")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteMenuItem removes a menu item
// @Summary      Delete menu item
// @Tags         menu
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Menu item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/menu/{id} [delete]
func (h *InventoryHandler) DeleteMenuItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	found, err := h.catalogService.DeleteMenuItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		notFound(c, "Menu item")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Menu item deleted successfully"}))
}

// GetStockItems lists raw ingredients
// @Summary      List stock items
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.StockItem}
// @Router       /api/stock [get]
func (h *InventoryHandler) GetStockItems(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.catalogService.ListStockItems()))
}

// GetLowStockItems lists items at or below their minimum
// @Summary      List low stock items
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=[]model.StockItem}
// @Router       /api/stock/low [get]
func (h *InventoryHandler) GetLowStockItems(c *gin.Context) {
	low := h.catalogService.LowStockItems()
	if low == nil {
		low = []model.StockItem{}
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, low))
}

// CreateStockItem adds a raw ingredient
// @Summary      Create stock item
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateStockItemRequest  true  "Create Stock Item Payload"
// @Success      201      {object}  response.Response{data=model.StockItem}
// @Failure      400      {object}  response.Response
// @Router       /api/stock [post]
func (h *InventoryHandler) CreateStockItem(c *gin.Context) {
	var req service.CreateStockItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.catalogService.AddStockItem(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, item))
}

// UpdateStockItem sets or adjusts a stock item
// @Summary      Update stock item
// @Description  quantity sets the level, delta adjusts it afterwards
// @Tags         stock
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Stock item ID"
// @Param        payload  body      model.StockItemPatch  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.StockItem}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/stock/{id} [patch]
func (h *InventoryHandler) UpdateStockItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var patch model.StockItemPatch
	if !bindJSON(c, &patch) {
		return
	}

	item, found, err := h.catalogService.UpdateStockItem(c.Request.Context(), id, patch)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		notFound(c, "Stock item")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, item))
}

// DeleteStockItem removes a stock item
// @Summary      Delete stock item
// @Tags         stock
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Stock item ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/stock/{id} [delete]
func (h *InventoryHandler) DeleteStockItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	found, err := h.catalogService.DeleteStockItem(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !found {
		notFound(c, "Stock item")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Stock item deleted successfully"}))
}
