package store

import (
	"sync"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
)

// Store holds every in-memory collection backing the dashboard. It is owned
// by the application root and injected into the services; nothing survives a
// process restart.
type Store struct {
	mu           sync.RWMutex
	students     []models.Student
	transactions []models.Transaction
	nextTxID     int64
	products     []models.Product
	cart         []models.CartLine
	chat         []models.ChatMessage
	workouts     []models.Workout
}

// New creates an empty store. Use Seed to load the demo fixtures.
func New() *Store {
	return &Store{nextTxID: 1}
}

// --- Students ---

// Students returns the student roster, most recently enrolled first.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	copy(out, s.students)
	return out
}

// InsertStudent prepends a newly enrolled student to the roster.
func (s *Store) InsertStudent(student models.Student) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.students = append([]models.Student{student}, s.students...)
}

// FindStudent looks up a student by ID.
func (s *Store) FindStudent(id string) (models.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return models.Student{}, false
}

// --- Transactions ---

// Transactions returns the ledger, newest first.
func (s *Store) Transactions() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// InsertTransaction assigns the next sequence number and prepends the
// transaction to the ledger.
func (s *Store) InsertTransaction(tx models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextTxID
	s.nextTxID++
	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	return tx
}

// --- Products & cart ---

// Products returns the store catalog.
func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// InsertProduct appends an item to the catalog.
func (s *Store) InsertProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

// FindProduct looks up a catalog item by ID.
func (s *Store) FindProduct(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// CartLines returns the open sale, in insertion order.
func (s *Store) CartLines() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartLine, len(s.cart))
	copy(out, s.cart)
	return out
}

// UpsertCartLine merges the quantity into an existing line for the product
// or appends a new line, keeping the cart unique per product.
func (s *Store) UpsertCartLine(product models.Product, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Product.ID == product.ID {
			s.cart[i].Quantity += qty
			return
		}
	}
	s.cart = append(s.cart, models.CartLine{Product: product, Quantity: qty})
}

// ClearCart empties the open sale.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

// --- Chat ---

// ChatMessages returns the conversation log, oldest first.
func (s *Store) ChatMessages() []models.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ChatMessage, len(s.chat))
	copy(out, s.chat)
	return out
}

// AppendChatMessage adds a message to the end of the conversation log.
func (s *Store) AppendChatMessage(msg models.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, msg)
}

// ChatEmpty reports whether the conversation log has no messages yet.
func (s *Store) ChatEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chat) == 0
}

// --- Workouts ---

// Workouts returns the training template catalog.
func (s *Store) Workouts() []models.Workout {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out
}

// FindWorkout looks up a template by ID.
func (s *Store) FindWorkout(id string) (models.Workout, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workouts {
		if w.ID == id {
			return w, true
		}
	}
	return models.Workout{}, false
}
