package billing

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

// ErrStudentNotFound indicates the requested student does not exist.
var ErrStudentNotFound = errors.New("student not found")

// ErrInvalidPlan indicates the membership plan label is not offered.
var ErrInvalidPlan = errors.New("invalid membership plan")

// whatsappCountryPrefix is hard-coded to Brazil; the catalog, plans and
// collection messages all assume Brazilian members.
const whatsappCountryPrefix = "55"

// Service manages student enrollment and collection links.
type Service struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a billing service instance.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger, now: time.Now}
}

// DeriveStatus computes a student's payment status from the due date: late
// iff the due date is strictly before now. Applied once at creation time and
// never re-evaluated afterwards.
func DeriveStatus(dueDate, now time.Time) models.StudentStatus {
	if dueDate.Before(now) {
		return models.StatusLate
	}
	return models.StatusActive
}

// Register enrolls a new student. A past due date does not block the
// registration; the student is created late and the returned flag lets the
// caller surface a delinquency warning.
func (s *Service) Register(name, phone, plan string, dueDate time.Time) (models.Student, bool, error) {
	if !validPlan(plan) {
		return models.Student{}, false, ErrInvalidPlan
	}

	status := DeriveStatus(dueDate, s.now())
	student := models.Student{
		ID:      uuid.NewString(),
		Name:    name,
		Phone:   phone,
		Plan:    plan,
		DueDate: dueDate,
		Status:  status,
	}
	s.store.InsertStudent(student)

	late := status == models.StatusLate
	if late {
		s.logger.Warn("student registered with overdue membership",
			zap.String("student_id", student.ID),
			zap.String("due_date", dueDate.Format(models.DueDateLayout)))
	}

	return student, late, nil
}

// List returns the roster, optionally filtered by a case-insensitive name
// substring.
func (s *Service) List(query string) []models.Student {
	students := s.store.Students()
	if query == "" {
		return students
	}

	needle := strings.ToLower(query)
	filtered := students[:0]
	for _, st := range students {
		if strings.Contains(strings.ToLower(st.Name), needle) {
			filtered = append(filtered, st)
		}
	}
	return filtered
}

// BillingLink builds the WhatsApp collection link for a student.
func (s *Service) BillingLink(studentID string) (string, string, error) {
	student, ok := s.store.FindStudent(studentID)
	if !ok {
		return "", "", ErrStudentNotFound
	}
	message, link := BuildBillingLink(student.Name, student.Phone, student.DueDate)
	return message, link, nil
}

// BuildBillingLink assembles the collection message and the wa.me URL that
// embeds it. Pure string construction; opening the link is left to the
// caller's environment.
func BuildBillingLink(name, phone string, dueDate time.Time) (message, link string) {
	message = fmt.Sprintf("Olá %s, vimos que sua mensalidade venceu em %s. Podemos ajudar com o pagamento?",
		name, dueDate.Format(models.DueDateLayout))
	link = fmt.Sprintf("https://wa.me/%s%s?text=%s",
		whatsappCountryPrefix, digitsOnly(phone), url.QueryEscape(message))
	return message, link
}

// Overdue returns the late students paired with their billing links, used by
// the scheduled digest.
func (s *Service) Overdue() []models.OverdueStudent {
	var out []models.OverdueStudent
	for _, st := range s.store.Students() {
		if st.Status != models.StatusLate {
			continue
		}
		_, link := BuildBillingLink(st.Name, st.Phone, st.DueDate)
		out = append(out, models.OverdueStudent{
			Name:       st.Name,
			Phone:      st.Phone,
			DueDate:    st.DueDate.Format(models.DueDateLayout),
			BillingURL: link,
		})
	}
	return out
}

func validPlan(plan string) bool {
	for _, p := range models.PlanLabels {
		if p == plan {
			return true
		}
	}
	return false
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
