package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/store"
)

func newTestService() *Service {
	svc := NewService(store.New(), zap.NewNop())
	svc.now = func() time.Time { return time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC) }
	return svc
}

func TestRecordAssignsMonotonicIDs(t *testing.T) {
	svc := newTestService()

	first, err := svc.Record(models.KindInflow, "Mensalidade", "Ana", 120)
	require.NoError(t, err)
	second, err := svc.Record(models.KindOutflow, "Aluguel", "Imobiliária", 3500)
	require.NoError(t, err)
	third, err := svc.Record(models.KindInflow, "Loja", "Whey", 189.90)
	require.NoError(t, err)

	assert.Less(t, first.ID, second.ID)
	assert.Less(t, second.ID, third.ID)
}

func TestTransactionsNewestFirst(t *testing.T) {
	svc := newTestService()

	_, err := svc.Record(models.KindInflow, "Mensalidade", "antiga", 100)
	require.NoError(t, err)
	latest, err := svc.Record(models.KindInflow, "Matrícula", "recente", 50)
	require.NoError(t, err)

	txs := svc.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, latest.ID, txs[0].ID)
	assert.Equal(t, "recente", txs[0].Description)
}

func TestRecordValidation(t *testing.T) {
	svc := newTestService()

	_, err := svc.Record("sideways", "Mensalidade", "x", 10)
	assert.ErrorIs(t, err, ErrInvalidKind)

	_, err = svc.Record(models.KindInflow, "Caviar", "x", 10)
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.Record(models.KindOutflow, "Energia", "x", -1)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	assert.Empty(t, svc.Transactions())
}

func TestRecordAcceptsZeroAmount(t *testing.T) {
	svc := newTestService()

	tx, err := svc.Record(models.KindInflow, "Matrícula", "bolsista", 0)
	require.NoError(t, err)
	assert.Zero(t, tx.Amount)
}

func TestSummary(t *testing.T) {
	svc := newTestService()

	_, err := svc.Record(models.KindInflow, "Mensalidade", "a", 1000)
	require.NoError(t, err)
	_, err = svc.Record(models.KindInflow, "Loja", "b", 500)
	require.NoError(t, err)
	_, err = svc.Record(models.KindOutflow, "Aluguel", "c", 600)
	require.NoError(t, err)

	summary := svc.Summary()
	assert.InDelta(t, 1500, summary.TotalInflow, 1e-9)
	assert.InDelta(t, 600, summary.TotalOutflow, 1e-9)
	assert.InDelta(t, 900, summary.NetBalance, 1e-9)
	assert.InDelta(t, 60, summary.MarginPercent, 1e-9)
}

func TestSummaryEmptyLedger(t *testing.T) {
	svc := newTestService()

	summary := svc.Summary()
	assert.Zero(t, summary.TotalInflow)
	assert.Zero(t, summary.MarginPercent)
}

func TestSeededLedgerTotals(t *testing.T) {
	st := store.New()
	st.Seed()
	svc := NewService(st, zap.NewNop())

	summary := svc.Summary()
	assert.InDelta(t, 359, summary.TotalInflow, 1e-9)
	assert.InDelta(t, 4740, summary.TotalOutflow, 1e-9)
}
