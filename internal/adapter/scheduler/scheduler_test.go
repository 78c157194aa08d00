package scheduler

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type fakeJob struct {
	runs int32
	err  error
}

func (f *fakeJob) Name() string { return "fake" }
func (f *fakeJob) Run() error   { atomic.AddInt32(&f.runs, 1); return f.err }

func TestAddJob_RejectsMalformedSpec(t *testing.T) {
	s := New(time.UTC, zerolog.Nop())
	if err := s.AddJob("not a cron spec", &fakeJob{}); err == nil {
		t.Fatal("malformed spec accepted")
	}
	if err := s.AddJob("0 0 * * *", &fakeJob{}); err != nil {
		t.Fatalf("daily spec rejected: %v", err)
	}
}

func TestScheduler_RunsRegisteredJob(t *testing.T) {
	s := New(time.UTC, zerolog.Nop())
	job := &fakeJob{}
	if err := s.AddJob("@every 10ms", job); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	s.Start()
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&job.runs) == 0 {
		select {
		case <-deadline:
			t.Fatal("job never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestScheduler_JobErrorDoesNotStopScheduler(t *testing.T) {
	s := New(time.UTC, zerolog.Nop())
	job := &fakeJob{err: errors.New("boom")}
	if err := s.AddJob("@every 10ms", job); err != nil {
		t.Fatalf("AddJob: %v", err)
	}

	s.Start()
	defer s.Stop()

	deadline := time.After(2 * time.Second)
	for atomic.LoadInt32(&job.runs) < 2 {
		select {
		case <-deadline:
			t.Fatalf("job ran %d times, want at least 2", atomic.LoadInt32(&job.runs))
		case <-time.After(5 * time.Millisecond):
		}
	}
}
