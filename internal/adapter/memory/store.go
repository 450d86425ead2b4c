// Package memory is an in-process record store. It implements the same
// repository contracts as the postgres adapter and is used for offline runs
// and tests. Transactions are serialized and roll back by snapshot.
package memory

import (
	"context"
	"sync"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

type txKey struct{}

// Store holds all collections behind one lock.
type Store struct {
	// txMu serializes transactions and writes made outside of one.
	txMu sync.Mutex
	mu   sync.RWMutex
	st   *state
}

// New creates an empty Store.
func New() *Store {
	return &Store{st: newState()}
}

// InboxLog returns the inbox log repository.
func (s *Store) InboxLog() *InboxLogRepo { return &InboxLogRepo{s: s} }

// Records returns the category record repository.
func (s *Store) Records() *RecordRepo { return &RecordRepo{s: s} }

// People returns the person profile repository.
func (s *Store) People() *PersonRepo { return &PersonRepo{s: s} }

// Pending returns the pending confirmation repository.
func (s *Store) Pending() *PendingRepo { return &PendingRepo{s: s} }

// RunInTx runs fn with exclusive write access. If fn fails or panics, every
// change it made is discarded. Nested calls join the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.st.clone()
	s.mu.RUnlock()

	restore := func() {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
	}

	defer func() {
		if r := recover(); r != nil {
			restore()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		restore()
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// write applies fn to the state under the write locks.
func (s *Store) write(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !s.inTx(ctx) {
		s.txMu.Lock()
		defer s.txMu.Unlock()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.st)
}

// read applies fn to the state under the read lock.
func (s *Store) read(ctx context.Context, fn func(st *state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.st)
}

type noteRow struct {
	note   domain.PersonNote
	active bool
}

type personRow struct {
	profile domain.PersonProfile // Notes unused; see notes
	notes   []noteRow
}

type state struct {
	seq        int64
	inbox      []*domain.InboxLogEntry
	inboxByMsg map[domain.MessageID]*domain.InboxLogEntry
	records    map[domain.Category][]domain.Record
	people     []*personRow
	pending    map[domain.MessageID]*domain.PendingConfirmation
}

func newState() *state {
	return &state{
		inboxByMsg: make(map[domain.MessageID]*domain.InboxLogEntry),
		records:    make(map[domain.Category][]domain.Record),
		pending:    make(map[domain.MessageID]*domain.PendingConfirmation),
	}
}

func (st *state) nextSeq() int64 {
	st.seq++
	return st.seq
}

func (st *state) clone() *state {
	out := newState()
	out.seq = st.seq
	for _, e := range st.inbox {
		c := cloneEntry(e)
		out.inbox = append(out.inbox, c)
		out.inboxByMsg[c.MessageID] = c
	}
	for cat, recs := range st.records {
		cp := make([]domain.Record, len(recs))
		for i, r := range recs {
			cp[i] = cloneRecord(r)
		}
		out.records[cat] = cp
	}
	for _, p := range st.people {
		out.people = append(out.people, &personRow{
			profile: p.profile,
			notes:   append([]noteRow(nil), p.notes...),
		})
	}
	for id, p := range st.pending {
		out.pending[id] = clonePending(p)
	}
	return out
}
