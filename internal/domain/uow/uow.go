package uow

import (
	"context"

	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/user"
)

type Repos struct {
	Users       user.Repository
	Investments investment.Repository
	Accruals    ledger.AccrualRepository
	Commissions ledger.CommissionRepository
}

// UnitOfWork runs fn with all repositories bound to one transaction. The
// settlement processors use it for the lock / re-check / increment / post
// critical section on a single ledger record.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
