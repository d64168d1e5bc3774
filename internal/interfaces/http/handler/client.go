package handler

import (
	"github.com/gin-gonic/gin"
	clientapp "github.com/storely/backend/internal/application/client"
)

// ClientHandler handles client registration API endpoints
type ClientHandler struct {
	BaseHandler
	clients clientapp.Facade
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clients clientapp.Facade) *ClientHandler {
	return &ClientHandler{clients: clients}
}

// RegisterRoutes registers client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/clients", h.Add)
}

// AddClientResponse confirms a registered client
type AddClientResponse struct {
	Message string                  `json:"message"`
	Client  *clientapp.ClientOutput `json:"client"`
}

// Add registers a new client
func (h *ClientHandler) Add(c *gin.Context) {
	var input clientapp.AddClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	output, err := h.clients.Add(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, AddClientResponse{
		Message: "Client created",
		Client:  output,
	})
}
