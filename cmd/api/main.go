package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	httpadp "nexachain-backend/internal/adapter/http"
	"nexachain-backend/internal/adapter/middleware"
	"nexachain-backend/internal/adapter/repository/mysql"
	"nexachain-backend/internal/adapter/scheduler"
	"nexachain-backend/internal/config"
	"nexachain-backend/internal/domain/investment"
	"nexachain-backend/internal/domain/ledger"
	"nexachain-backend/internal/domain/plan"
	"nexachain-backend/internal/domain/user"
	"nexachain-backend/internal/infrastructure/cache"
	"nexachain-backend/internal/infrastructure/db"
	"nexachain-backend/internal/usecase/accrual"
	"nexachain-backend/internal/usecase/commission"
	"nexachain-backend/internal/usecase/investmentuc"
	"nexachain-backend/internal/usecase/settlement"
	"nexachain-backend/internal/usecase/useruc"
)

const settlementJobTimeout = 15 * time.Minute

func main() {
	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	loc, err := cfg.SettlementLocation()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid settlement timezone")
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("mysql connect failed")
	}
	if err := gdb.AutoMigrate(
		&user.User{}, &user.ReferralEdge{},
		&investment.Investment{},
		&ledger.AccrualRecord{}, &ledger.CommissionRecord{},
	); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}

	// Repositories + unit of work
	users := mysql.NewUserRepository(gdb)
	investments := mysql.NewInvestmentRepository(gdb)
	accruals := mysql.NewAccrualRepository(gdb)
	commissions := mysql.NewCommissionRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// Usecases; plan catalog and level schedule are fixed at startup.
	catalog := plan.DefaultCatalog()
	schedule := plan.DefaultLevelSchedule()

	accrualUC := accrual.NewUsecase(investments, accruals, tx, log)
	commissionUC := commission.NewUsecase(users, accruals, commissions, tx, schedule, log)
	settlementUC := settlement.NewUsecase(accrualUC, commissionUC, investments, loc, log)
	investmentUC := investmentuc.NewUsecase(investments, users, catalog, loc)
	userUC := useruc.NewUsecase(users)

	// Daily trigger
	sched := scheduler.New(loc, log)
	job := scheduler.NewSettlementJob(settlementUC, settlementJobTimeout)
	if err := sched.AddJob(cfg.SettlementCron, job); err != nil {
		log.Fatal().Err(err).Msg("scheduling settlement job failed")
	}
	sched.Start()
	defer sched.Stop()

	// HTTP surface
	h := httpadp.NewHandler()
	userH := httpadp.NewUserHandler(userUC)
	invH := httpadp.NewInvestmentHandler(investmentUC)
	settleH := httpadp.NewSettlementHandler(settlementUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	idemp := middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)
	e.POST("/users", userH.RegisterUser, idemp)
	e.GET("/users/:user_id", userH.GetUser)
	e.GET("/users/:user_id/investments", invH.ListUserInvestments)
	e.POST("/investments", invH.CreateInvestment, idemp)
	e.GET("/investments/:investment_id", invH.GetInvestment)
	e.POST("/admin/settlement/run", settleH.RunSettlement, idemp)

	addr := ":" + cfg.AppPort
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
