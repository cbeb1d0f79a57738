package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishan023/rms-test-sub000/entity"
)

func txn(txnType string, amount float64) entity.CreditTransaction {
	return entity.CreditTransaction{Type: txnType, Amount: amount}
}

func TestBuildLedgerHistory(t *testing.T) {
	// chronological: charge 100, charge 50, payment 40 → balance now 110
	newestFirst := []entity.CreditTransaction{
		txn(entity.TxnPayment, 40),
		txn(entity.TxnCharge, 50),
		txn(entity.TxnCharge, 100),
	}

	got := BuildLedgerHistory(110, newestFirst)
	require.Len(t, got, 3)

	// newest entry shows the current balance; older entries undo what came after
	assert.InDelta(t, 110, got[0].Balance, 1e-9)
	assert.InDelta(t, 150, got[1].Balance, 1e-9)
	assert.InDelta(t, 100, got[2].Balance, 1e-9)
}

func TestBuildLedgerHistoryEmpty(t *testing.T) {
	assert.Empty(t, BuildLedgerHistory(0, nil))
}
