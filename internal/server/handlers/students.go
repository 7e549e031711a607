package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/billing"
)

// StudentsHandler handles enrollment and collection-link HTTP endpoints.
type StudentsHandler struct {
	svc    *billing.Service
	logger *zap.Logger
}

// NewStudentsHandler constructs the HTTP handler adapter.
func NewStudentsHandler(svc *billing.Service, logger *zap.Logger) *StudentsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentsHandler{svc: svc, logger: logger}
}

type createStudentRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Plan    string `json:"plan" binding:"required"`
	DueDate string `json:"due_date" binding:"required,datetime=2006-01-02"`
}

type studentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Plan    string `json:"plan"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

func toStudentResponse(s models.Student) studentResponse {
	return studentResponse{
		ID:      s.ID,
		Name:    s.Name,
		Phone:   s.Phone,
		Plan:    s.Plan,
		DueDate: s.DueDate.Format(models.DueDateLayout),
		Status:  string(s.Status),
	}
}

// List returns the roster, optionally filtered by ?q= name substring.
func (h *StudentsHandler) List(c *gin.Context) {
	students := h.svc.List(c.Query("q"))

	out := make([]studentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, toStudentResponse(s))
	}
	c.JSON(http.StatusOK, gin.H{"students": out})
}

// Create enrolls a new student. A past due date does not block the request;
// the response carries a delinquency warning instead.
func (h *StudentsHandler) Create(c *gin.Context) {
	var req createStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid student payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due date"})
		return
	}

	student, late, err := h.svc.Register(req.Name, req.Phone, req.Plan, dueDate)
	if err != nil {
		if errors.Is(err, billing.ErrInvalidPlan) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown membership plan"})
			return
		}
		h.logger.Error("failed registering student", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register student"})
		return
	}

	resp := gin.H{"student": toStudentResponse(student)}
	if late {
		resp["warning"] = "A data de vencimento informada já passou. O aluno será cadastrado como inadimplente."
	}
	c.JSON(http.StatusCreated, resp)
}

// BillingLink builds the WhatsApp collection link for one student.
func (h *StudentsHandler) BillingLink(c *gin.Context) {
	message, link, err := h.svc.BillingLink(c.Param("studentId"))
	if err != nil {
		if errors.Is(err, billing.ErrStudentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "student not found"})
			return
		}
		h.logger.Error("failed building billing link", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build billing link"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "url": link})
}
