package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronaldodno2-cmyk/Academymanagementapp/internal/domain/models"
)

func TestSeedLoadsDemoFixtures(t *testing.T) {
	st := New()
	st.Seed()

	assert.Len(t, st.Students(), 4)
	assert.Len(t, st.Transactions(), 5)
	assert.Len(t, st.Products(), 4)
	assert.Len(t, st.Workouts(), 3)
	assert.Empty(t, st.CartLines())
	assert.True(t, st.ChatEmpty())
}

func TestSeedIsIdempotent(t *testing.T) {
	st := New()
	st.Seed()
	st.Seed()

	assert.Len(t, st.Students(), 4)
	assert.Len(t, st.Transactions(), 5)
}

func TestInsertTransactionSequencesAndPrepends(t *testing.T) {
	st := New()
	st.Seed()

	tx := st.InsertTransaction(models.Transaction{Kind: models.KindInflow, Category: "Loja", Amount: 10})
	assert.Equal(t, int64(6), tx.ID)

	txs := st.Transactions()
	require.NotEmpty(t, txs)
	assert.Equal(t, tx.ID, txs[0].ID)
}

func TestUpsertCartLineMergesPerProduct(t *testing.T) {
	st := New()
	st.Seed()

	p, ok := st.FindProduct("1")
	require.True(t, ok)

	st.UpsertCartLine(p, 1)
	st.UpsertCartLine(p, 3)

	lines := st.CartLines()
	require.Len(t, lines, 1)
	assert.Equal(t, 4, lines[0].Quantity)
}

func TestClearCart(t *testing.T) {
	st := New()
	st.Seed()

	p, _ := st.FindProduct("2")
	st.UpsertCartLine(p, 1)
	st.ClearCart()

	assert.Empty(t, st.CartLines())
}

func TestCollectionsReturnCopies(t *testing.T) {
	st := New()
	st.Seed()

	students := st.Students()
	students[0].Name = "mutated"

	fresh := st.Students()
	assert.Equal(t, "Ana Oliveira", fresh[0].Name)
}
