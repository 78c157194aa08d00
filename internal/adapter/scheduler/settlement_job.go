package scheduler

import (
	"context"
	"time"

	"nexachain-backend/internal/usecase/settlement"
)

// SettlementJob adapts the settlement orchestrator to the Job interface.
// The cron trigger and the admin replay endpoint therefore share the exact
// same entry point, and overlapping firings are harmless.
type SettlementJob struct {
	uc      *settlement.Usecase
	timeout time.Duration
}

func NewSettlementJob(uc *settlement.Usecase, timeout time.Duration) *SettlementJob {
	return &SettlementJob{uc: uc, timeout: timeout}
}

func (j *SettlementJob) Name() string { return "daily-settlement" }

func (j *SettlementJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	_, err := j.uc.RunDailySettlement(ctx)
	return err
}
