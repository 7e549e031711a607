package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/server/handlers"
)

// Handlers groups the HTTP adapters wired into the engine.
type Handlers struct {
	Dashboard *handlers.DashboardHandler
	Students  *handlers.StudentsHandler
	Financial *handlers.FinancialHandler
	Store     *handlers.StoreHandler
	Workouts  *handlers.WorkoutsHandler
	Chat      *handlers.ChatHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/", h.Dashboard.Summary)

	r.GET("/students", h.Students.List)
	r.POST("/students", h.Students.Create)
	r.GET("/students/:studentId/billing-link", h.Students.BillingLink)

	r.GET("/financial", h.Financial.Overview)
	r.POST("/financial/transactions", h.Financial.CreateTransaction)

	r.GET("/store", h.Store.Products)
	r.GET("/store/low-stock", h.Store.LowStock)
	r.GET("/store/cart", h.Store.Cart)
	r.POST("/store/cart/items", h.Store.AddCartItem)
	r.POST("/store/cart/checkout", h.Store.Checkout)
	r.DELETE("/store/cart", h.Store.ClearCart)

	r.GET("/workouts", h.Workouts.List)
	r.GET("/workouts/:workoutId", h.Workouts.Get)

	r.GET("/chat/messages", h.Chat.Messages)
	r.POST("/chat/messages", h.Chat.Send)
	r.POST("/chat/open", h.Chat.Open)
	r.POST("/chat/close", h.Chat.Close)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "página não encontrada"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
