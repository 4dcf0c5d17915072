package bettrack

import (
	"errors"
	"sync"
)

// ErrNotFound is returned when a record id or name does not exist in the store.
var ErrNotFound = errors.New("record not found")

// Store is the persistence contract of the ledger.
//
// Mutations are atomic: they fully apply or leave the store untouched.
// After every successful mutation the store fires the subscribed callbacks;
// consumers are expected to re-read and recompute rather than patch state
// in memory.
type Store interface {
	AddWager(r WagerRecord) (int64, error)
	Wager(id int64) (WagerRecord, error)
	UpdateWager(r WagerRecord) error
	DeleteWager(id int64) error
	// Wagers returns every record ordered by occurrence then id, so records
	// sharing a timestamp keep a stable order across reads.
	Wagers() ([]WagerRecord, error)
	// ReplaceWagers clears the collection and inserts rs, ids included, in a
	// single transaction.
	ReplaceWagers(rs []WagerRecord) error

	AddBankroll(b BankrollRecord) (int64, error)
	Bankrolls() ([]BankrollRecord, error)
	SetBankrollBalance(name string, balance Money) error

	// Subscribe registers a callback fired after every successful mutation.
	// The returned function cancels the subscription.
	Subscribe(fn func()) (cancel func())
	Close() error
}

// notifier implements the Subscribe side of a Store.
type notifier struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

func (n *notifier) Subscribe(fn func()) (cancel func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.subs == nil {
		n.subs = make(map[int]func())
	}
	id := n.next
	n.next++
	n.subs[id] = fn
	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.subs, id)
	}
}

// notify fires every subscribed callback.
func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]func(), 0, len(n.subs))
	for _, fn := range n.subs {
		fns = append(fns, fn)
	}
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
