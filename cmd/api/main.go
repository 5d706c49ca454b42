package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"
	"github.com/staffhub-erp/staffhub-backend-go/internal/config"
	"github.com/staffhub-erp/staffhub-backend-go/internal/domain/payroll"
	appHTTP "github.com/staffhub-erp/staffhub-backend-go/internal/handler/http"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/cron"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/database"
	"github.com/staffhub-erp/staffhub-backend-go/internal/pkg/jwt"
	"github.com/staffhub-erp/staffhub-backend-go/internal/repository/postgresql"
	accountService "github.com/staffhub-erp/staffhub-backend-go/internal/service/account"
	attendanceService "github.com/staffhub-erp/staffhub-backend-go/internal/service/attendance"
	authService "github.com/staffhub-erp/staffhub-backend-go/internal/service/auth"
	employeeService "github.com/staffhub-erp/staffhub-backend-go/internal/service/employee"
	holidayService "github.com/staffhub-erp/staffhub-backend-go/internal/service/holiday"
	leaveService "github.com/staffhub-erp/staffhub-backend-go/internal/service/leave"
	loanService "github.com/staffhub-erp/staffhub-backend-go/internal/service/loan"
	payrollService "github.com/staffhub-erp/staffhub-backend-go/internal/service/payroll"
	salaryService "github.com/staffhub-erp/staffhub-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel(cfg.App.LogLevel),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffhub-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	location := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	ruleRepo := postgresql.NewAttendanceRuleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	loanRepo := postgresql.NewLoanRepository(db)
	salaryRepo := postgresql.NewSalaryConfigurationRepository(db)
	ledgerRepo := postgresql.NewLedgerRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, ruleRepo, holidayRepo, leaveRepo, employeeRepo, location)
	ruleSvc := attendanceService.NewRuleService(ruleRepo, location)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, attendanceRepo, employeeRepo)
	loanSvc := loanService.NewLoanService(loanRepo, employeeRepo)
	salarySvc := salaryService.NewConfigurationService(salaryRepo, employeeRepo)
	ledgerSvc := accountService.NewLedgerService(db, ledgerRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, salaryRepo, loanRepo, ledgerRepo, logger, location)

	router := appHTTP.NewRouter(jwtService, logger, appHTTP.Handlers{
		Auth:           appHTTP.NewAuthHandler(authSvc),
		Attendance:     appHTTP.NewAttendanceHandler(attendanceSvc),
		AttendanceRule: appHTTP.NewAttendanceRuleHandler(ruleSvc),
		Holiday:        appHTTP.NewHolidayHandler(holidaySvc),
		Leave:          appHTTP.NewLeaveHandler(leaveSvc),
		Loan:           appHTTP.NewLoanHandler(loanSvc),
		Salary:         appHTTP.NewSalaryHandler(salarySvc),
		Payroll:        appHTTP.NewPayrollHandler(payrollSvc),
		Account:        appHTTP.NewAccountHandler(ledgerSvc),
		Employee:       appHTTP.NewEmployeeHandler(employeeSvc),
	})

	scheduler := cron.NewScheduler()
	if cfg.Payroll.AutoRunEnabled {
		scheduler.AddJob("payroll-auto-run", cfg.Payroll.AutoRunInterval, func(ctx context.Context) error {
			// Runs the previous month's cycle; an already-processed period is
			// not an error here.
			prev := time.Now().In(location).AddDate(0, -1, 0)
			_, err := payrollSvc.RunCycle(ctx, payroll.RunCycleRequest{
				Year:  prev.Year(),
				Month: int(prev.Month()),
			})
			if errors.Is(err, payroll.ErrCycleAlreadyRun) || errors.Is(err, payroll.ErrNoActiveSalaries) {
				return nil
			}
			return err
		})
		scheduler.Start()
		defer scheduler.Stop()
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", cfg.App.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
