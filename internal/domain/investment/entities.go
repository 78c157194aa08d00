package investment

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("investment not found")

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

type Investment struct {
	ID uint64 `gorm:"primaryKey;column:id"`
	// Public identifier (32-char lowercase hex)
	InvestmentID string  `gorm:"column:investment_id;type:char(32);not null;uniqueIndex:ux_investments_investment_id"`
	UserID       string  `gorm:"column:user_id;type:char(32);not null;index:idx_investments_user"`
	Principal    float64 `gorm:"column:principal;type:decimal(18,2);not null"`
	// Plan terms are copied onto the row at purchase so later catalog edits
	// cannot retroactively change a position.
	Plan             string  `gorm:"column:plan;size:32;not null"`
	DailyRatePercent float64 `gorm:"column:daily_rate_percent;type:decimal(6,2);not null"`
	DurationDays     int     `gorm:"column:duration_days;not null"`
	// StartDate is midnight-normalized; EndDate = StartDate + DurationDays,
	// fixed at creation and never recomputed.
	StartDate         time.Time `gorm:"column:start_date;not null;index:idx_investments_window"`
	EndDate           time.Time `gorm:"column:end_date;not null;index:idx_investments_window"`
	Status            Status    `gorm:"column:status;type:enum('active','completed','cancelled');default:'active';index:idx_investments_status"`
	TotalReturnEarned float64   `gorm:"column:total_return_earned;type:decimal(18,2);not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Investment) TableName() string { return "investments" }
