package handler

import (
	"net/http"

	"pos/internal/middleware"
	"pos/internal/model"
	"pos/internal/service"
	"pos/pkg/pagination"
	"pos/pkg/response"

	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	checkoutService service.CheckoutService
	ledger          *service.Ledger
	receiptService  service.ReceiptService
	auth            *middleware.Authenticator
}

func NewTransactionHandler(checkoutService service.CheckoutService, ledger *service.Ledger, receiptService service.ReceiptService, auth *middleware.Authenticator) *TransactionHandler {
	return &TransactionHandler{checkoutService: checkoutService, ledger: ledger, receiptService: receiptService, auth: auth}
}

func (h *TransactionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/checkout", h.auth.RequirePermission(model.PermProcessSales), h.Checkout)

	txns := router.Group("/api/transactions")
	{
		txns.GET("", h.auth.RequirePermission(model.PermViewReports), h.GetTransactions)
		txns.GET("/:id", h.auth.RequirePermission(model.PermViewReports), h.GetTransaction)
		txns.GET("/:id/receipt", h.auth.RequirePermission(model.PermProcessSales), h.GetReceipt)
	}
}

// Checkout records the cart as a transaction
// @Summary      Checkout
// @Description  Prices the cart, settles payment and appends the transaction. Non-cash payments are recorded as exact.
// @Tags         transactions
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CheckoutRequest  true  "Payment details"
// @Success      201      {object}  response.Response{data=model.Transaction}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/checkout [post]
func (h *TransactionHandler) Checkout(c *gin.Context) {
	var req service.CheckoutRequest
	if !bindJSON(c, &req) {
		return
	}

	txn, err := h.checkoutService.Checkout(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, txn))
}

// GetTransactions pages through history, newest first
// @Summary      List transactions
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=object}
// @Router       /api/transactions [get]
func (h *TransactionHandler) GetTransactions(c *gin.Context) {
	p := pagination.Parse(c)
	txns, total := h.ledger.Page(p.Offset, p.Limit)

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"transactions": txns,
		"total":        total,
		"page":         p.Page,
		"limit":        p.Limit,
	}))
}

// GetTransaction returns one transaction
// @Summary      Get transaction
// @Tags         transactions
// @Security     BearerAuth
// @Produce      json
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {object}  response.Response{data=model.Transaction}
// @Failure      404  {object}  response.Response
// @Router       /api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	txn, found := h.ledger.Get(id)
	if !found {
		notFound(c, "Transaction")
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, txn))
}

// GetReceipt renders a printable receipt
// @Summary      Get receipt
// @Tags         transactions
// @Security     BearerAuth
// @Produce      plain
// @Param        id   path      int  true  "Transaction ID"
// @Success      200  {string}  string
// @Failure      404  {object}  response.Response
// @Router       /api/transactions/{id}/receipt [get]
func (h *TransactionHandler) GetReceipt(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	txn, found := h.ledger.Get(id)
	if !found {
		notFound(c, "Transaction")
		return
	}
	c.String(http.StatusOK, h.receiptService.Render(txn))
}
