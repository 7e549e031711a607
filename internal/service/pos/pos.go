package pos

import (
	"errors"
	"sort"

	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

// ErrOutOfStock indicates an add-to-cart attempt on a depleted product.
var ErrOutOfStock = errors.New("produto sem estoque")

// ErrProductNotFound indicates the requested product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ErrEmptyCart indicates a checkout attempt with no lines in the cart.
var ErrEmptyCart = errors.New("cart is empty")

// Service runs the counter point of sale: catalog listing, the open cart
// and low-stock surveillance.
type Service struct {
	store  *store.Store
	logger *zap.Logger
}

// NewService wires a point-of-sale service instance.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger}
}

// IsLow reports whether a product sits at or below its minimum stock
// threshold. The boundary case stock == minStock counts as low.
func IsLow(p models.Product) bool {
	return p.Stock <= p.MinStock
}

// Products returns the catalog.
func (s *Service) Products() []models.Product {
	return s.store.Products()
}

// LowStock returns the products at or below threshold, most depleted
// relative to their threshold first.
func (s *Service) LowStock() []models.Product {
	var low []models.Product
	for _, p := range s.store.Products() {
		if IsLow(p) {
			low = append(low, p)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Stock-low[i].MinStock < low[j].Stock-low[j].MinStock
	})
	return low
}

// AddLine puts qty units of a product into the cart. Adding a product that
// already has a line increments that line instead of duplicating it. A
// depleted product never changes the cart.
func (s *Service) AddLine(productID string, qty int) (models.Product, error) {
	if qty < 1 {
		qty = 1
	}

	product, ok := s.store.FindProduct(productID)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	if product.Stock <= 0 {
		s.logger.Warn("rejected add-to-cart on depleted product", zap.String("product_id", productID))
		return models.Product{}, ErrOutOfStock
	}

	s.store.UpsertCartLine(product, qty)
	return product, nil
}

// Cart returns the open sale lines in insertion order.
func (s *Service) Cart() []models.CartLine {
	return s.store.CartLines()
}

// Total sums price times quantity over every cart line.
func (s *Service) Total() float64 {
	var total float64
	for _, line := range s.store.CartLines() {
		total += line.Subtotal()
	}
	return total
}

// Clear empties the cart without recording a sale.
func (s *Service) Clear() {
	s.store.ClearCart()
}

// Checkout closes the open sale, returning its total and clearing the cart.
// Product stock is intentionally not decremented here; the catalog is static
// in this scope.
func (s *Service) Checkout() (float64, error) {
	lines := s.store.CartLines()
	if len(lines) == 0 {
		return 0, ErrEmptyCart
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}
	s.store.ClearCart()

	s.logger.Info("sale finalized", zap.Int("lines", len(lines)), zap.Float64("total", total))
	return total, nil
}
