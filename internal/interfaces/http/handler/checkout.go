package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	checkoutapp "github.com/storely/backend/internal/application/checkout"
)

// CheckoutService places orders across the bounded contexts
type CheckoutService interface {
	PlaceOrder(ctx context.Context, input checkoutapp.PlaceOrderInput) (*checkoutapp.PlaceOrderOutput, error)
}

// CheckoutHandler handles order placement API endpoints
type CheckoutHandler struct {
	BaseHandler
	checkout CheckoutService
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkout CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// RegisterRoutes registers checkout routes
func (h *CheckoutHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.PlaceOrder)
}

// PlaceOrder places an order for a client over the selected products
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var input checkoutapp.PlaceOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	output, err := h.checkout.PlaceOrder(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, output)
}
