package commission

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/plan"
	"nexachain-backend/internal/testutil/memstore"

	"github.com/rs/zerolog"
)

var day0 = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

const invID = "11111111111111111111111111111111"

func newUC(s *memstore.Store) *Usecase {
	return NewUsecase(s.Users(), s.Accruals(), s.Commissions(), s, plan.DefaultLevelSchedule(), zerolog.Nop())
}

// chainIDs returns n generated user ids: index 0 is the investor, index i
// is referred by index i+1.
func seedChain(s *memstore.Store, n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("%032d", i+1)
	}
	for i := 0; i < n; i++ {
		ref := ""
		if i+1 < n {
			ref = ids[i+1]
		}
		s.SeedUser(ids[i], ref)
	}
	return ids
}

func seedPostedAccrual(t *testing.T, s *memstore.Store, investor string, amount float64) {
	t.Helper()
	ctx := context.Background()
	rec, err := s.Accruals().Claim(ctx, &ledger.AccrualRecord{
		AccrualID:    "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		UserID:       investor,
		InvestmentID: invID,
		Day:          day0,
		Amount:       amount,
	})
	if err != nil {
		t.Fatalf("seed accrual: %v", err)
	}
	if err := s.Accruals().MarkPosted(ctx, rec.ID); err != nil {
		t.Fatalf("post accrual: %v", err)
	}
}

func TestSettleCommissions_SchedulePercentages(t *testing.T) {
	s := memstore.New()
	ids := seedChain(s, 7)
	seedPostedAccrual(t, s, ids[0], 100)
	uc := newUC(s)

	sum, err := uc.SettleCommissionsForDay(context.Background(), day0)
	if err != nil {
		t.Fatalf("SettleCommissionsForDay: %v", err)
	}
	if sum.Posted != 6 {
		t.Fatalf("posted = %d, want 6", sum.Posted)
	}

	wantAmounts := []float64{1.00, 0.50, 0.30, 0.20, 0.10, 0.05}
	for i, want := range wantAmounts {
		recs := s.CommissionsFor(ids[i+1])
		if len(recs) != 1 {
			t.Fatalf("level %d: %d records, want 1", i+1, len(recs))
		}
		r := recs[0]
		if r.Level != i+1 {
			t.Fatalf("record level = %d, want %d", r.Level, i+1)
		}
		if math.Abs(r.Amount-want) > 1e-9 {
			t.Fatalf("level %d amount = %v, want %v", i+1, r.Amount, want)
		}
		if r.FromUserID != ids[0] {
			t.Fatalf("level %d from_user = %s, want %s", i+1, r.FromUserID, ids[0])
		}
		u := s.UserSnapshot(ids[i+1])
		if math.Abs(u.Balance-want) > 1e-9 || math.Abs(u.TotalReferralIncome-want) > 1e-9 {
			t.Fatalf("level %d counters: balance=%v referral=%v", i+1, u.Balance, u.TotalReferralIncome)
		}
	}
}

func TestSettleCommissions_DepthBoundAtTen(t *testing.T) {
	s := memstore.New()
	// 13 users: the investor plus 12 ancestors.
	seedChain(s, 13)
	seedPostedAccrual(t, s, fmt.Sprintf("%032d", 1), 100)
	uc := newUC(s)

	sum, err := uc.SettleCommissionsForDay(context.Background(), day0)
	if err != nil {
		t.Fatalf("SettleCommissionsForDay: %v", err)
	}
	if sum.Posted != 10 {
		t.Fatalf("posted = %d, want 10", sum.Posted)
	}
	if s.CommissionCount() != 10 {
		t.Fatalf("records = %d, want 10", s.CommissionCount())
	}
	// Ancestors 11 and 12 are beyond the schedule.
	for _, idx := range []int{12, 13} {
		id := fmt.Sprintf("%032d", idx)
		if got := s.CommissionsFor(id); len(got) != 0 {
			t.Fatalf("user %s has %d records, want 0", id, len(got))
		}
	}
}

// A level already posted is skipped without payout, but the walk continues
// upward so the rest of the chain still settles.
func TestSettleCommissions_PostedLevelSkippedChainContinues(t *testing.T) {
	s := memstore.New()
	ids := seedChain(s, 4)
	seedPostedAccrual(t, s, ids[0], 100)
	ctx := context.Background()

	// Pre-settle level 1 only.
	rec, err := s.Commissions().Claim(ctx, &ledger.CommissionRecord{
		CommissionID: "cccccccccccccccccccccccccccccccc",
		UserID:       ids[1],
		FromUserID:   ids[0],
		InvestmentID: invID,
		Day:          day0,
		Level:        1,
		Percentage:   1.0,
		Amount:       1.00,
	})
	if err != nil {
		t.Fatalf("pre-claim: %v", err)
	}
	if err := s.Users().AddReferralIncome(ctx, ids[1], 1.00); err != nil {
		t.Fatalf("pre-credit: %v", err)
	}
	if err := s.Commissions().MarkPosted(ctx, rec.ID); err != nil {
		t.Fatalf("pre-post: %v", err)
	}

	sum, err := newUC(s).SettleCommissionsForDay(ctx, day0)
	if err != nil {
		t.Fatalf("SettleCommissionsForDay: %v", err)
	}
	if sum.Skipped != 1 || sum.Posted != 2 {
		t.Fatalf("summary: %+v", sum)
	}

	l1 := s.UserSnapshot(ids[1])
	if math.Abs(l1.Balance-1.00) > 1e-9 {
		t.Fatalf("level-1 balance = %v, want 1.00 (no double credit)", l1.Balance)
	}
	l2 := s.UserSnapshot(ids[2])
	if math.Abs(l2.Balance-0.50) > 1e-9 {
		t.Fatalf("level-2 balance = %v, want 0.50", l2.Balance)
	}
	l3 := s.UserSnapshot(ids[3])
	if math.Abs(l3.Balance-0.30) > 1e-9 {
		t.Fatalf("level-3 balance = %v, want 0.30", l3.Balance)
	}
}

func TestSettleCommissions_NoReferrerNoRecords(t *testing.T) {
	s := memstore.New()
	s.SeedUser("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "")
	seedPostedAccrual(t, s, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 100)

	sum, err := newUC(s).SettleCommissionsForDay(context.Background(), day0)
	if err != nil {
		t.Fatalf("SettleCommissionsForDay: %v", err)
	}
	if sum.Posted != 0 || sum.Failed != 0 {
		t.Fatalf("summary: %+v", sum)
	}
	if s.CommissionCount() != 0 {
		t.Fatalf("records = %d, want 0", s.CommissionCount())
	}
}

// A vanished investor terminates the chain silently rather than failing the
// run.
func TestSettleCommissions_MissingInvestorIsSilent(t *testing.T) {
	s := memstore.New()
	// Accrual references a user that no longer exists.
	seedPostedAccrual(t, s, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", 100)

	sum, err := newUC(s).SettleCommissionsForDay(context.Background(), day0)
	if err != nil {
		t.Fatalf("SettleCommissionsForDay: %v", err)
	}
	if sum.Posted != 0 || sum.Failed != 0 {
		t.Fatalf("summary: %+v", sum)
	}
}
