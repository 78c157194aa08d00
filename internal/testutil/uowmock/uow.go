package uowmock

import (
	"context"
	"errors"

	"nexachain-backend/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Tests that
// only need pass-through semantics can set Repos and leave WithinTxFn nil.
type UoW struct {
	WithinTxFn func(ctx context.Context, fn func(r uow.Repos) error) error
	Repos      uow.Repos
}

func New() *UoW { return &UoW{} }

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	if m.Repos.Users != nil || m.Repos.Investments != nil || m.Repos.Accruals != nil || m.Repos.Commissions != nil {
		return fn(m.Repos)
	}
	return errUnimplemented
}
