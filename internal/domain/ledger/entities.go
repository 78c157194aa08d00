package ledger

import "time"

// AccrualRecord is one day's posted return for one investment. The
// (user, investment, day) triple is unique; the row is created by the claim
// step and only ever transitions Posted false → true.
type AccrualRecord struct {
	ID uint64 `gorm:"primaryKey;column:id"`
	// Public identifier (32-char lowercase hex)
	AccrualID    string    `gorm:"column:accrual_id;type:char(32);not null;uniqueIndex:ux_accruals_accrual_id"`
	UserID       string    `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_accruals_claim"`
	InvestmentID string    `gorm:"column:investment_id;type:char(32);not null;uniqueIndex:ux_accruals_claim"`
	Day          time.Time `gorm:"column:day;not null;uniqueIndex:ux_accruals_claim;index:idx_accruals_day"`
	Amount       float64   `gorm:"column:amount;type:decimal(18,2);not null"`
	Posted       bool      `gorm:"column:posted;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AccrualRecord) TableName() string { return "accrual_records" }

// CommissionRecord is one referrer's payout for one investment's daily
// return. Unique on (user, investment, day) independent of level: the
// referral graph is a forest, so a single accrual can reach a given
// referrer at most once.
type CommissionRecord struct {
	ID uint64 `gorm:"primaryKey;column:id"`
	// Public identifier (32-char lowercase hex)
	CommissionID string `gorm:"column:commission_id;type:char(32);not null;uniqueIndex:ux_commissions_commission_id"`
	// Receiving referrer
	UserID string `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_commissions_claim"`
	// Investor whose accrual produced this commission
	FromUserID   string    `gorm:"column:from_user_id;type:char(32);not null"`
	InvestmentID string    `gorm:"column:investment_id;type:char(32);not null;uniqueIndex:ux_commissions_claim"`
	Day          time.Time `gorm:"column:day;not null;uniqueIndex:ux_commissions_claim;index:idx_commissions_day"`
	Level        int       `gorm:"column:level;not null"`
	Percentage   float64   `gorm:"column:percentage;type:decimal(6,2);not null"`
	Amount       float64   `gorm:"column:amount;type:decimal(18,2);not null"`
	Posted       bool      `gorm:"column:posted;not null;default:false"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (CommissionRecord) TableName() string { return "commission_records" }
