package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "lenme-backend/internal/adapter/http"
	idemp "lenme-backend/internal/adapter/middleware"
	"lenme-backend/internal/adapter/repository/mysql"
	"lenme-backend/internal/config"
	"lenme-backend/internal/infrastructure/cache"
	"lenme-backend/internal/infrastructure/db"
	accountUC "lenme-backend/internal/usecase/account"
	loanUC "lenme-backend/internal/usecase/loan"
	offerUC "lenme-backend/internal/usecase/offer"
	paymentUC "lenme-backend/internal/usecase/payment"
	sweepUC "lenme-backend/internal/usecase/sweep"
	"lenme-backend/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// repositories
	accounts := mysql.NewAccountRepository(gdb)
	loans := mysql.NewLoanRepository(gdb)
	offers := mysql.NewOfferRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	accountUsecase := accountUC.NewUsecase(accounts)
	loanUsecase := loanUC.NewUsecase(loans, accounts, payments)
	offerUsecase := offerUC.NewUsecase(loans, accounts, offers, uow, cfg.PlatformFee)
	paymentUsecase := paymentUC.NewUsecase(loans, payments, uow)
	sweepUsecase := sweepUC.NewUsecase(payments, paymentUsecase)

	// handlers
	h := httpadp.NewHandler()
	accountHandler := httpadp.NewAccountHandler(accountUsecase)
	loanHandler := httpadp.NewLoanHandler(loanUsecase)
	offerHandler := httpadp.NewOfferHandler(offerUsecase)
	paymentHandler := httpadp.NewPaymentHandler(paymentUsecase, sweepUsecase)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	idempMW := idemp.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	lending := e.Group("/api/lending", idempMW)
	lending.POST("/user/", accountHandler.CreateAccount)
	lending.GET("/user/:account_id/", accountHandler.GetAccount)
	lending.POST("/loan/", loanHandler.CreateLoan)
	lending.GET("/loan/:loan_id/", loanHandler.GetLoan)
	lending.GET("/loan-list/", loanHandler.ListAvailable)
	lending.POST("/offers/submit/", offerHandler.SubmitOffer)
	lending.POST("/offers/accept/", offerHandler.AcceptOffer)

	pay := e.Group("/api/payment", idempMW)
	pay.POST("/make/", paymentHandler.MakePayment)
	pay.GET("/loan/:loan_id/", paymentHandler.ListLoanPayments)
	pay.POST("/sweep/", paymentHandler.RunSweep)

	// repayment sweep worker
	if cfg.SweepIntervalSecs > 0 {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		worker.NewSweeper(sweepUsecase, time.Duration(cfg.SweepIntervalSecs)*time.Second).Start(ctx)
	}

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
