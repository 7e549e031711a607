package assistant

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

// ErrEmptyMessage indicates a send attempt with a blank message body.
var ErrEmptyMessage = errors.New("empty message body")

// Service runs the canned-response chat widget. Replies are delivered after
// a fixed artificial delay, and every pending reply is cancelled when the
// widget closes so nothing is appended to a disposed conversation view.
type Service struct {
	store  *store.Store
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	open    bool
	pending map[string]*time.Timer
}

// NewService wires an assistant service instance.
func NewService(st *store.Store, delay time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   st,
		delay:   delay,
		logger:  logger,
		now:     time.Now,
		pending: make(map[string]*time.Timer),
	}
}

// Open marks the widget as visible and seeds the greeting message into an
// empty conversation.
func (s *Service) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true

	if s.store.ChatEmpty() {
		s.store.AppendChatMessage(models.ChatMessage{
			ID:        uuid.NewString(),
			Text:      Greeting,
			Sender:    models.SenderBot,
			Timestamp: s.now(),
		})
	}
}

// Close hides the widget and cancels every pending bot reply.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false

	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
	s.logger.Debug("chat widget closed, pending replies cancelled")
}

// Messages returns the conversation log, oldest first.
func (s *Service) Messages() []models.ChatMessage {
	return s.store.ChatMessages()
}

// Send appends the user message and schedules the bot reply after the
// configured delay. The returned message is the user entry; the reply lands
// in the log once the delay elapses, unless the widget closes first.
func (s *Service) Send(text string) (models.ChatMessage, error) {
	if text == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}

	userMsg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    models.SenderUser,
		Timestamp: s.now(),
	}
	s.store.AppendChatMessage(userMsg)

	reply := Respond(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	timerID := uuid.NewString()
	s.pending[timerID] = time.AfterFunc(s.delay, func() {
		s.deliver(timerID, reply)
	})

	return userMsg, nil
}

func (s *Service) deliver(timerID, reply string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pending[timerID]; !ok {
		// Cancelled between firing and acquiring the lock.
		return
	}
	delete(s.pending, timerID)

	if !s.open {
		return
	}

	s.store.AppendChatMessage(models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      reply,
		Sender:    models.SenderBot,
		Timestamp: s.now(),
	})
}
