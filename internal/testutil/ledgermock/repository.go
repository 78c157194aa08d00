package ledgermock

import (
	"context"
	"errors"
	"time"

	"nexachain-backend/internal/domain/ledger"
)

var errUnimplemented = errors.New("ledgermock: method not implemented")

// AccrualRepo is a function-backed mock satisfying ledger.AccrualRepository.
type AccrualRepo struct {
	ClaimFn           func(ctx context.Context, rec *ledger.AccrualRecord) (*ledger.AccrualRecord, error)
	GetForUpdateFn    func(ctx context.Context, id uint64) (*ledger.AccrualRecord, error)
	MarkPostedFn      func(ctx context.Context, id uint64) error
	ListPostedByDayFn func(ctx context.Context, day time.Time) ([]ledger.AccrualRecord, error)
}

var _ ledger.AccrualRepository = (*AccrualRepo)(nil)

func (m *AccrualRepo) Claim(ctx context.Context, rec *ledger.AccrualRecord) (*ledger.AccrualRecord, error) {
	if m.ClaimFn != nil {
		return m.ClaimFn(ctx, rec)
	}
	return nil, errUnimplemented
}

func (m *AccrualRepo) GetForUpdate(ctx context.Context, id uint64) (*ledger.AccrualRecord, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *AccrualRepo) MarkPosted(ctx context.Context, id uint64) error {
	if m.MarkPostedFn != nil {
		return m.MarkPostedFn(ctx, id)
	}
	return nil
}

func (m *AccrualRepo) ListPostedByDay(ctx context.Context, day time.Time) ([]ledger.AccrualRecord, error) {
	if m.ListPostedByDayFn != nil {
		return m.ListPostedByDayFn(ctx, day)
	}
	return nil, nil
}

// CommissionRepo is a function-backed mock satisfying ledger.CommissionRepository.
type CommissionRepo struct {
	ClaimFn        func(ctx context.Context, rec *ledger.CommissionRecord) (*ledger.CommissionRecord, error)
	GetForUpdateFn func(ctx context.Context, id uint64) (*ledger.CommissionRecord, error)
	MarkPostedFn   func(ctx context.Context, id uint64) error
	ListByDayFn    func(ctx context.Context, day time.Time) ([]ledger.CommissionRecord, error)
}

var _ ledger.CommissionRepository = (*CommissionRepo)(nil)

func (m *CommissionRepo) Claim(ctx context.Context, rec *ledger.CommissionRecord) (*ledger.CommissionRecord, error) {
	if m.ClaimFn != nil {
		return m.ClaimFn(ctx, rec)
	}
	return nil, errUnimplemented
}

func (m *CommissionRepo) GetForUpdate(ctx context.Context, id uint64) (*ledger.CommissionRecord, error) {
	if m.GetForUpdateFn != nil {
		return m.GetForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *CommissionRepo) MarkPosted(ctx context.Context, id uint64) error {
	if m.MarkPostedFn != nil {
		return m.MarkPostedFn(ctx, id)
	}
	return nil
}

func (m *CommissionRepo) ListByDay(ctx context.Context, day time.Time) ([]ledger.CommissionRecord, error) {
	if m.ListByDayFn != nil {
		return m.ListByDayFn(ctx, day)
	}
	return nil, nil
}
