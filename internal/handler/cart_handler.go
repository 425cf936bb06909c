package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/model"
	"pos/internal/service"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type AddCartItemRequest struct {
	MenuItemID int64 `json:"menu_item_id" binding:"required"`
}

type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartResponse is the cart with its priced totals.
type CartResponse struct {
	Lines     []model.CartLine `json:"lines"`
	ItemCount int              `json:"item_count"`
	Totals    service.Totals   `json:"totals"`
}

type CartHandler struct {
	cart            *service.Cart
	catalogService  service.CatalogService
	checkoutService service.CheckoutService
	auth            *middleware.Authenticator
}

func NewCartHandler(cart *service.Cart, catalogService service.CatalogService, checkoutService service.CheckoutService, auth *middleware.Authenticator) *CartHandler {
	return &CartHandler{cart: cart, catalogService: catalogService, checkoutService: checkoutService, auth: auth}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/api/cart")
	cart.Use(h.auth.RequirePermission(model.PermProcessSales))
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddItem)
		cart.PUT("/items/:id", h.SetQuantity)
		cart.DELETE("/items/:id", h.RemoveItem)
	}
}

func (h *CartHandler) snapshot() CartResponse {
	return CartResponse{
		Lines:     h.cart.Lines(),
		ItemCount: h.cart.ItemCount(),
		Totals:    h.checkoutService.Quote(nil),
	}
}

// GetCart returns the in-progress order
// @Summary      Get cart
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=CartResponse}
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.snapshot()))
}

// ClearCart empties the cart
// @Summary      Clear cart
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Success      200  {object}  response.Response{data=CartResponse}
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.snapshot()))
}

// AddItem adds one unit of a menu item
// @Summary      Add to cart
// @Description  Adds one unit, incrementing an existing line. Items with no stock are refused.
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      AddCartItemRequest  true  "Menu item to add"
// @Success      200      {object}  response.Response{data=CartResponse}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, found := h.catalogService.GetMenuItem(req.MenuItemID)
	if !found {
		notFound(c, "Menu item")
		return
	}
	if item.Stock <= 0 {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, item.Name+" is out of stock"))
		return
	}

	h.cart.Add(item)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.snapshot()))
}

// SetQuantity changes a line quantity; zero removes the line
// @Summary      Set cart quantity
// @Tags         cart
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id       path      int                     true  "Menu item ID"
// @Param        payload  body      SetCartQuantityRequest  true  "New quantity"
// @Success      200      {object}  response.Response{data=CartResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req SetCartQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cart.SetQuantity(id, *req.Quantity); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.snapshot()))
}

// RemoveItem drops a line from the cart
// @Summary      Remove from cart
// @Tags         cart
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Menu item ID"
// @Success      200  {object}  response.Response{data=CartResponse}
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	h.cart.Remove(id)
	c.JSON(http.StatusOK, response.Success(http.StatusOK, h.snapshot()))
}
