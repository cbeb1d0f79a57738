package services

import (
	"github.com/nishan023/rms-test-sub000/entity"
)

// LedgerEntry is one transaction with its reconstructed running balance.
type LedgerEntry struct {
	Transaction entity.CreditTransaction `json:"transaction"`
	Balance     float64                  `json:"balance"`
}

// BuildLedgerHistory derives per-transaction balances for display.
// Transactions carry no balance snapshot, so we walk newest-first from the
// current balance backward: the newest entry's balance is currentDue itself,
// and each older entry's balance undoes the ones after it.
func BuildLedgerHistory(currentDue float64, newestFirst []entity.CreditTransaction) []LedgerEntry {
	out := make([]LedgerEntry, 0, len(newestFirst))
	balance := currentDue
	for _, t := range newestFirst {
		out = append(out, LedgerEntry{Transaction: t, Balance: balance})
		switch t.Type {
		case entity.TxnCharge:
			balance -= t.Amount
		case entity.TxnPayment:
			balance += t.Amount
		}
	}
	return out
}
