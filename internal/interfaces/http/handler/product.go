package handler

import (
	"github.com/gin-gonic/gin"
	catalogapp "github.com/storely/backend/internal/application/catalog"
)

// ProductHandler handles product registration API endpoints
type ProductHandler struct {
	BaseHandler
	products catalogapp.Facade
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products catalogapp.Facade) *ProductHandler {
	return &ProductHandler{products: products}
}

// RegisterRoutes registers product routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/products", h.Add)
}

// AddProductResponse confirms a registered product
type AddProductResponse struct {
	Message string                    `json:"message"`
	Product *catalogapp.ProductOutput `json:"product"`
}

// Add registers a new product in the catalog
func (h *ProductHandler) Add(c *gin.Context) {
	var input catalogapp.AddProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	output, err := h.products.Add(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, AddProductResponse{
		Message: "Product created",
		Product: output,
	})
}
