package billing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

var now = time.Date(2026, 2, 19, 12, 0, 0, 0, time.UTC)

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		name    string
		dueDate time.Time
		want    models.StudentStatus
	}{
		{"due date in the past", now.AddDate(0, 0, -1), models.StatusLate},
		{"due date far in the past", now.AddDate(-1, 0, 0), models.StatusLate},
		{"due date equal to now", now, models.StatusActive},
		{"due date in the future", now.AddDate(0, 1, 0), models.StatusActive},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DeriveStatus(tc.dueDate, now))
		})
	}
}

func TestBuildBillingLink(t *testing.T) {
	message, link := BuildBillingLink("Ana Oliveira", "11988887777", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, message, "Ana Oliveira")
	assert.Contains(t, message, "15/02/2026")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511988887777?text="), link)
	assert.Contains(t, link, "15%2F02%2F2026")
}

func TestBuildBillingLinkStripsPhoneFormatting(t *testing.T) {
	_, link := BuildBillingLink("Bruno", "(11) 97777-6666", now)
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511977776666?text="), link)
}

func TestRegisterDerivesStatusOnce(t *testing.T) {
	svc := newTestService(t)

	student, late, err := svc.Register("Paula Mendes", "11911112222", "Mensal", now.AddDate(0, 0, -5))
	require.NoError(t, err)
	assert.True(t, late)
	assert.Equal(t, models.StatusLate, student.Status)

	student, late, err = svc.Register("Rafael Costa", "11933334444", "Anual", now.AddDate(0, 1, 0))
	require.NoError(t, err)
	assert.False(t, late)
	assert.Equal(t, models.StatusActive, student.Status)
}

func TestRegisterPrependsToRoster(t *testing.T) {
	svc := newTestService(t)

	first, _, err := svc.Register("Primeiro", "11900000001", "Mensal", now.AddDate(0, 1, 0))
	require.NoError(t, err)
	second, _, err := svc.Register("Segundo", "11900000002", "Mensal", now.AddDate(0, 1, 0))
	require.NoError(t, err)

	roster := svc.List("")
	require.Len(t, roster, 2)
	assert.Equal(t, second.ID, roster[0].ID)
	assert.Equal(t, first.ID, roster[1].ID)
}

func TestRegisterRejectsUnknownPlan(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.Register("Paula", "11911112222", "Vitalício", now)
	assert.ErrorIs(t, err, ErrInvalidPlan)
	assert.Empty(t, svc.List(""))
}

func TestListFiltersByNameSubstring(t *testing.T) {
	st := store.New()
	st.Seed()
	svc := NewService(st, zap.NewNop())

	matched := svc.List("ana")
	require.Len(t, matched, 1)
	assert.Equal(t, "Ana Oliveira", matched[0].Name)

	assert.Len(t, svc.List(""), 4)
	assert.Empty(t, svc.List("zzz"))
}

func TestOverdueListsLateStudentsWithLinks(t *testing.T) {
	st := store.New()
	st.Seed()
	svc := NewService(st, zap.NewNop())

	overdue := svc.Overdue()
	require.Len(t, overdue, 2)
	for _, o := range overdue {
		assert.True(t, strings.HasPrefix(o.BillingURL, "https://wa.me/55"), o.BillingURL)
	}
	assert.Equal(t, "Ana Oliveira", overdue[0].Name)
	assert.Equal(t, "Diego Souza", overdue[1].Name)
}

func TestBillingLinkUnknownStudent(t *testing.T) {
	svc := newTestService(t)

	_, _, err := svc.BillingLink("missing")
	assert.ErrorIs(t, err, ErrStudentNotFound)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc := NewService(store.New(), zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc
}
