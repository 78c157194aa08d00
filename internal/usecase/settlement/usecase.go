package settlement

import (
	"context"
	"fmt"
	"time"

	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/usecase/accrual"
	"nexachain-backend/internal/usecase/commission"

	"github.com/rs/zerolog"
)

// Usecase is the single entry point exposed to the trigger sources: the
// daily cron and the administrative replay both land here and share one code
// path. Running it any number of times for the same day is a no-op after
// the first complete run.
type Usecase struct {
	accruals    *accrual.Usecase
	commissions *commission.Usecase
	investments investment.Repository
	loc         *time.Location
	log         zerolog.Logger
}

func NewUsecase(accruals *accrual.Usecase, commissions *commission.Usecase, investments investment.Repository, loc *time.Location, log zerolog.Logger) *Usecase {
	return &Usecase{
		accruals:    accruals,
		commissions: commissions,
		investments: investments,
		loc:         loc,
		log:         log.With().Str("component", "settlement").Logger(),
	}
}

type Summary struct {
	Day                  time.Time          `json:"day"`
	Accruals             accrual.Summary    `json:"accruals"`
	Commissions          commission.Summary `json:"commissions"`
	InvestmentsCompleted int64              `json:"investments_completed"`
}

// Midnight truncates t to the start of its calendar day in loc. Every day
// value flowing through the engine goes through here so ledger keys compare
// equal across invocations.
func Midnight(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// RunDailySettlement settles "today", where today is fixed at invocation
// time in the configured location.
func (u *Usecase) RunDailySettlement(ctx context.Context) (*Summary, error) {
	return u.RunForDay(ctx, Midnight(time.Now(), u.loc))
}

// ParseDay interprets a canonical `YYYY-MM-DD` replay target as a calendar
// day in the settlement location.
func (u *Usecase) ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, u.loc)
}

// RunForDay settles a specific calendar day: accruals first, then the
// commission cascade (it reads the accruals posted in step one), then the
// lifecycle sweep moving expired investments to completed.
func (u *Usecase) RunForDay(ctx context.Context, day time.Time) (*Summary, error) {
	day = Midnight(day, u.loc)
	started := time.Now()

	acc, err := u.accruals.SettleAccrualsForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("accrual settlement: %w", err)
	}

	com, err := u.commissions.SettleCommissionsForDay(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("commission settlement: %w", err)
	}

	completed, err := u.investments.CompleteExpired(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("lifecycle sweep: %w", err)
	}

	sum := &Summary{Day: day, Accruals: acc, Commissions: com, InvestmentsCompleted: completed}
	u.log.Info().
		Time("day", day).
		Int("accruals_posted", acc.Posted).
		Int("accruals_skipped", acc.Skipped).
		Int("accruals_failed", acc.Failed).
		Int("commissions_posted", com.Posted).
		Int("commissions_skipped", com.Skipped).
		Int("commissions_failed", com.Failed).
		Int64("investments_completed", completed).
		Dur("elapsed", time.Since(started)).
		Msg("settlement run finished")
	return sum, nil
}
