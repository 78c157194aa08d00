package plan

import "errors"

var ErrUnknownPlan = errors.New("unknown investment plan")

// Plan is a fixed-term product: a daily return rate (percent of principal)
// paid for DurationDays days.
type Plan struct {
	Name             string
	DailyRatePercent float64
	DurationDays     int
}

// Catalog is the immutable set of purchasable plans, loaded once at startup
// and passed explicitly to whoever needs it.
type Catalog map[string]Plan

func (c Catalog) Get(name string) (Plan, error) {
	p, ok := c[name]
	if !ok {
		return Plan{}, ErrUnknownPlan
	}
	return p, nil
}

func (c Catalog) Names() []string {
	out := make([]string, 0, len(c))
	for name := range c {
		out = append(out, name)
	}
	return out
}

func DefaultCatalog() Catalog {
	return Catalog{
		"Basic":    {Name: "Basic", DailyRatePercent: 2, DurationDays: 30},
		"Premium":  {Name: "Premium", DailyRatePercent: 3, DurationDays: 45},
		"Gold":     {Name: "Gold", DailyRatePercent: 4, DurationDays: 60},
		"Platinum": {Name: "Platinum", DailyRatePercent: 5, DurationDays: 90},
	}
}

// MaxReferralDepth bounds both edge creation at registration and the
// commission walk at settlement.
const MaxReferralDepth = 10

// LevelSchedule maps referral level (1-based) to the commission percentage
// applied to a day's accrued return at that level.
type LevelSchedule [MaxReferralDepth]float64

// Percent returns the percentage for a level, or 0 when the level is out of
// range. Callers treat a non-positive percentage as end-of-chain.
func (s LevelSchedule) Percent(level int) float64 {
	if level < 1 || level > MaxReferralDepth {
		return 0
	}
	return s[level-1]
}

func DefaultLevelSchedule() LevelSchedule {
	return LevelSchedule{1.0, 0.5, 0.3, 0.2, 0.1, 0.05, 0.05, 0.05, 0.05, 0.05}
}
