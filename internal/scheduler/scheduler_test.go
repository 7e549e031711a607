package scheduler

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/config"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/service/billing"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

type captureNotifier struct {
	mu      sync.Mutex
	digests []models.OverdueDigest
}

func (c *captureNotifier) PostOverdueDigest(_ context.Context, digest models.OverdueDigest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.digests = append(c.digests, digest)
	return nil
}

func testDigestConfig() config.DigestConfig {
	return config.DigestConfig{
		CronSchedule: "0 9 * * *",
		Timezone:     "America/Sao_Paulo",
	}
}

func TestDigestListsLateStudents(t *testing.T) {
	st := store.New()
	st.Seed()
	billingSvc := billing.NewService(st, zap.NewNop())
	notifier := &captureNotifier{}

	sched := NewScheduler(testDigestConfig(), billingSvc, notifier, zap.NewNop())
	sched.sendOverdueDigest()

	require.Len(t, notifier.digests, 1)
	students := notifier.digests[0].Students
	require.Len(t, students, 2)
	assert.Equal(t, "Ana Oliveira", students[0].Name)
	assert.Equal(t, "Diego Souza", students[1].Name)
	assert.Contains(t, students[0].BillingURL, "wa.me/5511988887777")
}

func TestDigestSkipsDeliveryWhenNobodyIsLate(t *testing.T) {
	st := store.New()
	billingSvc := billing.NewService(st, zap.NewNop())
	notifier := &captureNotifier{}

	sched := NewScheduler(testDigestConfig(), billingSvc, notifier, zap.NewNop())
	sched.sendOverdueDigest()

	assert.Empty(t, notifier.digests)
}

func TestDigestWithoutNotifierOnlyLogs(t *testing.T) {
	st := store.New()
	st.Seed()
	billingSvc := billing.NewService(st, zap.NewNop())

	sched := NewScheduler(testDigestConfig(), billingSvc, nil, zap.NewNop())
	assert.NotPanics(t, func() { sched.sendOverdueDigest() })
}
