package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

func TestOpenSeedsGreetingOnce(t *testing.T) {
	st := store.New()
	svc := NewService(st, 10*time.Millisecond, zap.NewNop())

	svc.Open()
	svc.Open()

	msgs := svc.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, Greeting, msgs[0].Text)
	assert.Equal(t, models.SenderBot, msgs[0].Sender)
}

func TestSendAppendsUserMessageAndDelayedReply(t *testing.T) {
	st := store.New()
	svc := NewService(st, 10*time.Millisecond, zap.NewNop())
	svc.Open()

	msg, err := svc.Send("Como foi o faturamento hoje?")
	require.NoError(t, err)
	assert.Equal(t, models.SenderUser, msg.Sender)

	// Reply must not be visible before the delay elapses.
	require.Len(t, svc.Messages(), 2)

	require.Eventually(t, func() bool {
		return len(svc.Messages()) == 3
	}, time.Second, 5*time.Millisecond)

	msgs := svc.Messages()
	last := msgs[len(msgs)-1]
	assert.Equal(t, models.SenderBot, last.Sender)
	assert.Equal(t, Respond("Como foi o faturamento hoje?"), last.Text)
}

func TestCloseCancelsPendingReply(t *testing.T) {
	st := store.New()
	svc := NewService(st, 20*time.Millisecond, zap.NewNop())
	svc.Open()

	_, err := svc.Send("venda")
	require.NoError(t, err)
	svc.Close()

	time.Sleep(60 * time.Millisecond)

	// Greeting plus the user message only; the canned reply was cancelled.
	msgs := svc.Messages()
	require.Len(t, msgs, 2)
	assert.Equal(t, models.SenderUser, msgs[1].Sender)
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	svc := NewService(store.New(), 10*time.Millisecond, zap.NewNop())

	_, err := svc.Send("")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Empty(t, svc.Messages())
}

func TestLogIsInsertionOrdered(t *testing.T) {
	st := store.New()
	svc := NewService(st, time.Millisecond, zap.NewNop())
	svc.Open()

	_, err := svc.Send("primeira")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(svc.Messages()) == 3
	}, time.Second, time.Millisecond)

	_, err = svc.Send("segunda")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(svc.Messages()) == 5
	}, time.Second, time.Millisecond)

	msgs := svc.Messages()
	assert.Equal(t, "primeira", msgs[1].Text)
	assert.Equal(t, "segunda", msgs[3].Text)
}
