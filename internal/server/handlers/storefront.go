package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/pos"
)

// StoreHandler handles catalog and point-of-sale HTTP endpoints.
type StoreHandler struct {
	svc    *pos.Service
	logger *zap.Logger
}

// NewStoreHandler constructs the HTTP handler adapter.
func NewStoreHandler(svc *pos.Service, logger *zap.Logger) *StoreHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreHandler{svc: svc, logger: logger}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,gte=1"`
}

type productResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	MinStock int     `json:"min_stock"`
	ImageURL string  `json:"image_url"`
	LowStock bool    `json:"low_stock"`
}

type cartLineResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal float64         `json:"subtotal"`
}

func toProductResponse(p models.Product) productResponse {
	return productResponse{
		ID:       p.ID,
		Name:     p.Name,
		Category: p.Category,
		Price:    p.Price,
		Stock:    p.Stock,
		MinStock: p.MinStock,
		ImageURL: p.ImageURL,
		LowStock: pos.IsLow(p),
	}
}

// Products returns the catalog with low-stock flags.
func (h *StoreHandler) Products(c *gin.Context) {
	products := h.svc.Products()

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

// LowStock returns the products at or below threshold, most depleted first.
func (h *StoreHandler) LowStock(c *gin.Context) {
	low := h.svc.LowStock()

	out := make([]productResponse, 0, len(low))
	for _, p := range low {
		out = append(out, toProductResponse(p))
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

// Cart returns the open sale and its running total.
func (h *StoreHandler) Cart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"lines": h.cartLines(),
		"total": h.svc.Total(),
	})
}

// AddCartItem puts a product into the cart. Out-of-stock products are
// rejected without touching the cart.
func (h *StoreHandler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid cart payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	product, err := h.svc.AddLine(req.ProductID, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, pos.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		case errors.Is(err, pos.ErrOutOfStock):
			c.JSON(http.StatusConflict, gin.H{"error": "Produto sem estoque!"})
		default:
			h.logger.Error("failed adding cart item", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add cart item"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"added": product.Name,
		"lines": h.cartLines(),
		"total": h.svc.Total(),
	})
}

// Checkout closes the sale, returning the final total and clearing the cart.
func (h *StoreHandler) Checkout(c *gin.Context) {
	total, err := h.svc.Checkout()
	if err != nil {
		if errors.Is(err, pos.ErrEmptyCart) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "cart is empty"})
			return
		}
		h.logger.Error("failed finalizing sale", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to finalize sale"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total})
}

// ClearCart abandons the open sale.
func (h *StoreHandler) ClearCart(c *gin.Context) {
	h.svc.Clear()
	c.Status(http.StatusNoContent)
}

func (h *StoreHandler) cartLines() []cartLineResponse {
	lines := h.svc.Cart()
	out := make([]cartLineResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, cartLineResponse{
			Product:  toProductResponse(line.Product),
			Quantity: line.Quantity,
			Subtotal: line.Subtotal(),
		})
	}
	return out
}
