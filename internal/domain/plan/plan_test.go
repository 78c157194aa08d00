package plan

import (
	"errors"
	"testing"
)

func TestCatalogGet(t *testing.T) {
	c := DefaultCatalog()

	p, err := c.Get("Basic")
	if err != nil {
		t.Fatalf("Get Basic: %v", err)
	}
	if p.DailyRatePercent != 2 || p.DurationDays != 30 {
		t.Fatalf("Basic terms: %+v", p)
	}

	if _, err := c.Get("Diamond"); !errors.Is(err, ErrUnknownPlan) {
		t.Fatalf("unknown plan err = %v, want ErrUnknownPlan", err)
	}
}

func TestLevelSchedulePercent(t *testing.T) {
	s := DefaultLevelSchedule()

	cases := []struct {
		level int
		want  float64
	}{
		{1, 1.0},
		{2, 0.5},
		{3, 0.3},
		{4, 0.2},
		{5, 0.1},
		{6, 0.05},
		{10, 0.05},
		{0, 0},
		{11, 0},
		{-3, 0},
	}
	for _, tc := range cases {
		if got := s.Percent(tc.level); got != tc.want {
			t.Errorf("Percent(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}
}
