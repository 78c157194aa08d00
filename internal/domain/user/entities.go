package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrSelfReferral = errors.New("user cannot refer themselves")
)

type User struct {
	ID uint64 `gorm:"primaryKey;column:id"`
	// Public identifier (32-char lowercase hex)
	UserID string `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id"`
	// Single upward referrer pointer; nil for root users. Immutable once set.
	ReferrerID *string `gorm:"column:referrer_id;type:char(32);index:idx_users_referrer"`
	// Running balance and lifetime counters. This engine only ever
	// increments them.
	Balance             float64   `gorm:"column:balance;type:decimal(18,2);not null;default:0"`
	TotalEarnings       float64   `gorm:"column:total_earnings;type:decimal(18,2);not null;default:0"`
	TotalReferralIncome float64   `gorm:"column:total_referral_income;type:decimal(18,2);not null;default:0"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string { return "users" }

// ReferralEdge links a user to each ancestor in the referral chain, one row
// per level up to MaxReferralDepth. Written once at registration; read-only
// afterwards. The creation path owns the acyclicity invariant.
type ReferralEdge struct {
	ID         uint64    `gorm:"primaryKey;column:id"`
	ReferrerID string    `gorm:"column:referrer_id;type:char(32);not null;uniqueIndex:ux_referrals_pair"`
	ReferredID string    `gorm:"column:referred_id;type:char(32);not null;uniqueIndex:ux_referrals_pair"`
	Level      int       `gorm:"column:level;not null"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ReferralEdge) TableName() string { return "referral_edges" }
