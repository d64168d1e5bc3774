package handler

import (
	"github.com/gin-gonic/gin"
	invoiceapp "github.com/storely/backend/internal/application/invoice"
	"github.com/storely/backend/internal/domain/shared"
)

// InvoiceHandler handles invoice API endpoints
type InvoiceHandler struct {
	BaseHandler
	invoices invoiceapp.Facade
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoices invoiceapp.Facade) *InvoiceHandler {
	return &InvoiceHandler{invoices: invoices}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/invoice/:id", h.Find)
}

// Find returns an invoice snapshot. A missing invoice is a 404, unlike the
// other endpoints where not-found surfaces as a 400 domain error.
func (h *InvoiceHandler) Find(c *gin.Context) {
	output, err := h.invoices.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		if shared.IsNotFound(err) {
			h.NotFound(c, err.Error())
			return
		}
		h.HandleError(c, err)
		return
	}

	h.OK(c, output)
}
