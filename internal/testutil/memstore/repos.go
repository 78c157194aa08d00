package memstore

import (
	"context"
	"errors"
	"sort"
	"time"

	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/user"
)

// ---- user repository ----

type userRepo struct {
	s  *Store
	tx bool
}

func (r *userRepo) Create(ctx context.Context, u *user.User) error {
	defer r.s.lock(r.tx)()
	r.s.nextUserRowID++
	u.ID = r.s.nextUserRowID
	cp := *u
	r.s.users[u.UserID] = &cp
	return nil
}

func (r *userRepo) GetByUserID(ctx context.Context, userID string) (*user.User, error) {
	defer r.s.lock(r.tx)()
	u, ok := r.s.users[userID]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) ReferrerOf(ctx context.Context, userID string) (string, error) {
	defer r.s.lock(r.tx)()
	u, ok := r.s.users[userID]
	if !ok {
		return "", user.ErrNotFound
	}
	if u.ReferrerID == nil {
		return "", nil
	}
	return *u.ReferrerID, nil
}

func (r *userRepo) AddEarnings(ctx context.Context, userID string, amount float64) error {
	defer r.s.lock(r.tx)()
	u, ok := r.s.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.Balance += amount
	u.TotalEarnings += amount
	return nil
}

func (r *userRepo) AddReferralIncome(ctx context.Context, userID string, amount float64) error {
	defer r.s.lock(r.tx)()
	u, ok := r.s.users[userID]
	if !ok {
		return user.ErrNotFound
	}
	u.Balance += amount
	u.TotalEarnings += amount
	u.TotalReferralIncome += amount
	return nil
}

func (r *userRepo) CreateReferralEdge(ctx context.Context, e *user.ReferralEdge) error {
	defer r.s.lock(r.tx)()
	for _, ex := range r.s.edges {
		if ex.ReferrerID == e.ReferrerID && ex.ReferredID == e.ReferredID {
			return errors.New("duplicate referral edge")
		}
	}
	r.s.edges = append(r.s.edges, *e)
	return nil
}

func (r *userRepo) ListReferralEdgesByReferred(ctx context.Context, referredID string) ([]user.ReferralEdge, error) {
	defer r.s.lock(r.tx)()
	var out []user.ReferralEdge
	for _, e := range r.s.edges {
		if e.ReferredID == referredID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Level < out[j].Level })
	return out, nil
}

// ---- investment repository ----

type investmentRepo struct {
	s  *Store
	tx bool
}

func (r *investmentRepo) Create(ctx context.Context, inv *investment.Investment) error {
	defer r.s.lock(r.tx)()
	r.s.nextInvRowID++
	inv.ID = r.s.nextInvRowID
	cp := *inv
	r.s.investments[inv.InvestmentID] = &cp
	return nil
}

func (r *investmentRepo) GetByInvestmentID(ctx context.Context, investmentID string) (*investment.Investment, error) {
	defer r.s.lock(r.tx)()
	inv, ok := r.s.investments[investmentID]
	if !ok {
		return nil, investment.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *investmentRepo) ListByUserID(ctx context.Context, userID string) ([]investment.Investment, error) {
	defer r.s.lock(r.tx)()
	var out []investment.Investment
	for _, inv := range r.s.investments {
		if inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	// Newest first, matching the SQL adapter.
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *investmentRepo) ListActiveOn(ctx context.Context, day time.Time) ([]investment.Investment, error) {
	defer r.s.lock(r.tx)()
	var out []investment.Investment
	for _, inv := range r.s.investments {
		if inv.Status != investment.StatusActive {
			continue
		}
		if inv.StartDate.After(day) || inv.EndDate.Before(day) {
			continue
		}
		out = append(out, *inv)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *investmentRepo) AddReturnEarned(ctx context.Context, investmentID string, amount float64) error {
	defer r.s.lock(r.tx)()
	inv, ok := r.s.investments[investmentID]
	if !ok {
		return investment.ErrNotFound
	}
	inv.TotalReturnEarned += amount
	return nil
}

func (r *investmentRepo) CompleteExpired(ctx context.Context, day time.Time) (int64, error) {
	defer r.s.lock(r.tx)()
	var n int64
	for _, inv := range r.s.investments {
		if inv.Status == investment.StatusActive && inv.EndDate.Before(day) {
			inv.Status = investment.StatusCompleted
			n++
		}
	}
	return n, nil
}

// ---- accrual ledger ----

type accrualRepo struct {
	s  *Store
	tx bool
}

func (r *accrualRepo) Claim(ctx context.Context, rec *ledger.AccrualRecord) (*ledger.AccrualRecord, error) {
	defer r.s.lock(r.tx)()
	k := keyOf(rec.UserID, rec.InvestmentID, rec.Day)
	if existing, ok := r.s.accruals[k]; ok {
		cp := *existing
		return &cp, nil
	}
	r.s.nextID++
	rec.ID = r.s.nextID
	cp := *rec
	r.s.accruals[k] = &cp
	r.s.accrualsByID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *accrualRepo) GetForUpdate(ctx context.Context, id uint64) (*ledger.AccrualRecord, error) {
	defer r.s.lock(r.tx)()
	rec, ok := r.s.accrualsByID[id]
	if !ok {
		return nil, errors.New("accrual record not found")
	}
	cp := *rec
	return &cp, nil
}

func (r *accrualRepo) MarkPosted(ctx context.Context, id uint64) error {
	defer r.s.lock(r.tx)()
	rec, ok := r.s.accrualsByID[id]
	if !ok {
		return errors.New("accrual record not found")
	}
	rec.Posted = true
	return nil
}

func (r *accrualRepo) ListPostedByDay(ctx context.Context, day time.Time) ([]ledger.AccrualRecord, error) {
	defer r.s.lock(r.tx)()
	var out []ledger.AccrualRecord
	for _, rec := range r.s.accruals {
		if rec.Posted && rec.Day.Equal(day) {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ---- commission ledger ----

type commissionRepo struct {
	s  *Store
	tx bool
}

func (r *commissionRepo) Claim(ctx context.Context, rec *ledger.CommissionRecord) (*ledger.CommissionRecord, error) {
	defer r.s.lock(r.tx)()
	k := keyOf(rec.UserID, rec.InvestmentID, rec.Day)
	if existing, ok := r.s.commissions[k]; ok {
		cp := *existing
		return &cp, nil
	}
	r.s.nextID++
	rec.ID = r.s.nextID
	cp := *rec
	r.s.commissions[k] = &cp
	r.s.commByID[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (r *commissionRepo) GetForUpdate(ctx context.Context, id uint64) (*ledger.CommissionRecord, error) {
	defer r.s.lock(r.tx)()
	rec, ok := r.s.commByID[id]
	if !ok {
		return nil, errors.New("commission record not found")
	}
	cp := *rec
	return &cp, nil
}

func (r *commissionRepo) MarkPosted(ctx context.Context, id uint64) error {
	defer r.s.lock(r.tx)()
	rec, ok := r.s.commByID[id]
	if !ok {
		return errors.New("commission record not found")
	}
	rec.Posted = true
	return nil
}

func (r *commissionRepo) ListByDay(ctx context.Context, day time.Time) ([]ledger.CommissionRecord, error) {
	defer r.s.lock(r.tx)()
	var out []ledger.CommissionRecord
	for _, rec := range r.s.commissions {
		if rec.Day.Equal(day) {
			out = append(out, *rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
