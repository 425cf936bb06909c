package service

import (
	"context"
	"slices"

	"pos/internal/model"
	"pos/internal/repository"
	"pos/pkg/pagination"
)

// Ledger is the append-only in-memory transaction history, oldest first.
type Ledger struct {
	repo repository.TransactionRepository
	txns []model.Transaction
}

func NewLedger(repo repository.TransactionRepository) *Ledger {
	return &Ledger{repo: repo}
}

// List returns every transaction, oldest first.
func (l *Ledger) List() []model.Transaction {
	return slices.Clone(l.txns)
}

func (l *Ledger) Len() int {
	return len(l.txns)
}

func (l *Ledger) Get(id int64) (model.Transaction, bool) {
	for _, t := range l.txns {
		if t.ID == id {
			return t, true
		}
	}
	return model.Transaction{}, false
}

// Page skips offset transactions, newest first, and returns up to limit of the rest.
func (l *Ledger) Page(offset, limit int) ([]model.Transaction, int64) {
	total := int64(len(l.txns))
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = pagination.DefaultLimit
	}
	if offset >= len(l.txns) {
		return []model.Transaction{}, total
	}

	end := len(l.txns) - offset
	start := max(end-limit, 0)
	out := make([]model.Transaction, 0, end-start)
	for i := end - 1; i >= start; i-- {
		out = append(out, l.txns[i])
	}
	return out, total
}

// Recent returns up to n transactions, newest first.
func (l *Ledger) Recent(n int) []model.Transaction {
	out, _ := l.Page(0, n)
	return out
}

// Restore loads the persisted history.
func (l *Ledger) Restore(ctx context.Context) error {
	txns, _, err := l.repo.Load(ctx)
	if err != nil {
		return err
	}
	l.txns = txns
	return nil
}

// LastID returns the highest transaction id, or 0 when empty.
func (l *Ledger) LastID() int64 {
	var last int64
	for _, t := range l.txns {
		if t.ID > last {
			last = t.ID
		}
	}
	return last
}

// appended returns a new history with t added, leaving the ledger untouched.
func (l *Ledger) appended(t model.Transaction) []model.Transaction {
	next := make([]model.Transaction, len(l.txns), len(l.txns)+1)
	copy(next, l.txns)
	return append(next, t)
}

func (l *Ledger) replace(txns []model.Transaction) {
	l.txns = txns
}
