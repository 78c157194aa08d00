package memstore

import (
	"context"
	"sync"
	"time"

	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/uow"
	"nexachain-backend/internal/domain/user"
)

// Store is an in-memory implementation of every engine repository plus the
// unit of work, with the same claim semantics as the SQL adapter: one row
// per unique triple, duplicate claims resolve to the existing row, and the
// WithinTx critical section is serialized. It exists for the end-to-end
// idempotency and concurrency tests, where a stateful store is what is
// actually under test.
type Store struct {
	mu sync.Mutex

	users map[string]*user.User
	edges []user.ReferralEdge

	investments map[string]*investment.Investment

	accruals      map[tripleKey]*ledger.AccrualRecord
	accrualsByID  map[uint64]*ledger.AccrualRecord
	commissions   map[tripleKey]*ledger.CommissionRecord
	commByID      map[uint64]*ledger.CommissionRecord
	nextID        uint64
	nextInvRowID  uint64
	nextUserRowID uint64
}

type tripleKey struct {
	userID       string
	investmentID string
	day          string
}

func keyOf(userID, investmentID string, day time.Time) tripleKey {
	return tripleKey{userID: userID, investmentID: investmentID, day: day.Format("2006-01-02")}
}

func New() *Store {
	return &Store{
		users:        map[string]*user.User{},
		investments:  map[string]*investment.Investment{},
		accruals:     map[tripleKey]*ledger.AccrualRecord{},
		accrualsByID: map[uint64]*ledger.AccrualRecord{},
		commissions:  map[tripleKey]*ledger.CommissionRecord{},
		commByID:     map[uint64]*ledger.CommissionRecord{},
	}
}

// Repo accessors. The zero-value repos lock per call; WithinTx hands out
// tx-bound repos that rely on the transaction already holding the lock.

func (s *Store) Users() user.Repository                   { return &userRepo{s: s} }
func (s *Store) Investments() investment.Repository       { return &investmentRepo{s: s} }
func (s *Store) Accruals() ledger.AccrualRepository       { return &accrualRepo{s: s} }
func (s *Store) Commissions() ledger.CommissionRepository { return &commissionRepo{s: s} }

func (s *Store) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(uow.Repos{
		Users:       &userRepo{s: s, tx: true},
		Investments: &investmentRepo{s: s, tx: true},
		Accruals:    &accrualRepo{s: s, tx: true},
		Commissions: &commissionRepo{s: s, tx: true},
	})
}

func (s *Store) lock(tx bool) func() {
	if tx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// ---- seeding and inspection helpers ----

// SeedUser inserts a user; referrerID == "" means no upline.
func (s *Store) SeedUser(userID, referrerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &user.User{UserID: userID}
	if referrerID != "" {
		r := referrerID
		u.ReferrerID = &r
	}
	s.nextUserRowID++
	u.ID = s.nextUserRowID
	s.users[userID] = u
}

func (s *Store) SeedInvestment(inv investment.Investment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextInvRowID++
	inv.ID = s.nextInvRowID
	s.investments[inv.InvestmentID] = &inv
}

func (s *Store) UserSnapshot(userID string) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.users[userID]
}

func (s *Store) InvestmentSnapshot(investmentID string) investment.Investment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.investments[investmentID]
}

func (s *Store) AccrualCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.accruals)
}

func (s *Store) CommissionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.commissions)
}

func (s *Store) CommissionsFor(userID string) []ledger.CommissionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []ledger.CommissionRecord
	for _, rec := range s.commissions {
		if rec.UserID == userID {
			out = append(out, *rec)
		}
	}
	return out
}
