package ledger

import (
	"context"
	"time"
)

// AccrualRepository persists the daily-return ledger. Claim is the atomic
// create-or-fetch on the unique (user, investment, day) key: a duplicate-key
// collision is benign and resolves to the existing row. Everything between a
// successful claim of an unposted row and MarkPosted runs inside a
// unit-of-work transaction with the row locked via GetForUpdate.
type AccrualRepository interface {
	Claim(ctx context.Context, rec *AccrualRecord) (*AccrualRecord, error)
	GetForUpdate(ctx context.Context, id uint64) (*AccrualRecord, error)
	MarkPosted(ctx context.Context, id uint64) error
	ListPostedByDay(ctx context.Context, day time.Time) ([]AccrualRecord, error)
}

// CommissionRepository persists the referral-commission ledger with the same
// claim / lock / post protocol as AccrualRepository.
type CommissionRepository interface {
	Claim(ctx context.Context, rec *CommissionRecord) (*CommissionRecord, error)
	GetForUpdate(ctx context.Context, id uint64) (*CommissionRecord, error)
	MarkPosted(ctx context.Context, id uint64) error
	ListByDay(ctx context.Context, day time.Time) ([]CommissionRecord, error)
}
