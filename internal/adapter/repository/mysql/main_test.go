package mysql

import (
	"testing"
	"time"

	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/user"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM) ---

type investmentSQLite struct {
	ID                uint64    `gorm:"primaryKey;column:id"`
	InvestmentID      string    `gorm:"column:investment_id;size:32;uniqueIndex:ux_investments_investment_id"`
	UserID            string    `gorm:"column:user_id;size:32"`
	Principal         float64   `gorm:"column:principal"`
	Plan              string    `gorm:"column:plan;size:32"`
	DailyRatePercent  float64   `gorm:"column:daily_rate_percent"`
	DurationDays      int       `gorm:"column:duration_days"`
	StartDate         time.Time `gorm:"column:start_date"`
	EndDate           time.Time `gorm:"column:end_date"`
	Status            string    `gorm:"column:status;type:text"` // ← no enum
	TotalReturnEarned float64   `gorm:"column:total_return_earned;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (investmentSQLite) TableName() string { return "investments" }

// openTestDB creates an in-memory sqlite DB. TranslateError matters: the
// claim path relies on gorm.ErrDuplicatedKey.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// The investments table uses an ENUM column on MySQL; migrate the
	// sqlite-safe mirror instead. The other models migrate as-is.
	if err := db.AutoMigrate(
		&user.User{}, &user.ReferralEdge{},
		&investmentSQLite{},
		&ledger.AccrualRecord{}, &ledger.CommissionRecord{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func testDay(offset int) time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}
