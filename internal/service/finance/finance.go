package finance

import (
	"errors"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

// ErrInvalidKind indicates a transaction direction outside in/out.
var ErrInvalidKind = errors.New("invalid transaction kind")

// ErrInvalidCategory indicates a category label outside the fixed set.
var ErrInvalidCategory = errors.New("invalid transaction category")

// ErrNegativeAmount indicates a negative transaction amount.
var ErrNegativeAmount = errors.New("amount must not be negative")

// Service keeps the financial ledger: an append-only transaction sequence
// plus the derived totals shown on the dashboard.
type Service struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a finance service instance.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger, now: time.Now}
}

// Transactions returns the ledger, newest first.
func (s *Service) Transactions() []models.Transaction {
	return s.store.Transactions()
}

// Record validates and appends a transaction. The date defaults to today.
func (s *Service) Record(kind models.TransactionKind, category, description string, amount float64) (models.Transaction, error) {
	if kind != models.KindInflow && kind != models.KindOutflow {
		return models.Transaction{}, ErrInvalidKind
	}
	if !models.ValidTransactionCategory(category) {
		return models.Transaction{}, ErrInvalidCategory
	}
	if amount < 0 {
		return models.Transaction{}, ErrNegativeAmount
	}

	tx := s.store.InsertTransaction(models.Transaction{
		Kind:        kind,
		Category:    category,
		Description: description,
		Amount:      amount,
		Date:        s.now(),
	})

	s.logger.Info("transaction recorded",
		zap.Int64("id", tx.ID),
		zap.String("kind", string(tx.Kind)),
		zap.Float64("amount", tx.Amount))

	return tx, nil
}

// Summary derives the inflow/outflow totals, the net balance and the profit
// margin over the whole ledger.
func (s *Service) Summary() models.FinancialSummary {
	var in, out float64
	for _, tx := range s.store.Transactions() {
		switch tx.Kind {
		case models.KindInflow:
			in += tx.Amount
		case models.KindOutflow:
			out += tx.Amount
		}
	}

	summary := models.FinancialSummary{
		TotalInflow:  in,
		TotalOutflow: out,
		NetBalance:   in - out,
	}
	if in > 0 {
		summary.MarginPercent = math.Round(summary.NetBalance / in * 100)
	}
	return summary
}
