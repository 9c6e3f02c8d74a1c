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

	"github.com/cmlabs-hris/hris-payroll-go/internal/config"
	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/attendance"
	appHTTP "github.com/cmlabs-hris/hris-payroll-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka"
	"github.com/cmlabs-hris/hris-payroll-go/internal/messaging/kafka/producer"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-payroll-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/cache"
	"github.com/cmlabs-hris/hris-payroll-go/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-payroll-go/internal/service/attendance"
	payrollService "github.com/cmlabs-hris/hris-payroll-go/internal/service/payroll"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	setupLogger(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDBWithConfig(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	transactor := postgresql.NewTransactor(db)

	var ruleRepo attendance.RuleRepository = postgresql.NewRuleRepository(db)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			slog.Warn("Redis unreachable, rule reads fall through to Postgres", "addr", cfg.Redis.Addr, "error", err)
		}
		ruleRepo = cache.NewRuleRepository(ruleRepo, rdb, cfg.Redis.RulesTTL)
	}

	// Lock events are only recorded when something relays them.
	var outboxRepo kafka.OutboxRepository
	if len(cfg.Kafka.Brokers) > 0 {
		outboxRepo = postgresql.NewOutboxRepository(db)
	}

	location := cfg.Location()
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, ruleRepo, employeeRepo, location)
	payrollSvc := payrollService.NewPayrollService(transactor, payrollRepo, attendanceRepo, employeeRepo, outboxRepo, cfg.Kafka.Topic)

	scheduler := cron.NewScheduler()
	if err := cron.NewPayrollJobs(payrollSvc, payrollRepo, location, cfg.Payroll.LoanProposalInterval).RegisterJobs(scheduler); err != nil {
		return err
	}
	if outboxRepo != nil {
		writer := producer.NewWriter(cfg.Kafka.Brokers)
		defer writer.Close()
		relay := producer.NewRelay(outboxRepo, writer, cfg.Kafka.OutboxBatch)
		if err := cron.NewOutboxJobs(relay, cfg.Kafka.OutboxInterval).RegisterJobs(scheduler); err != nil {
			return err
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiration)
	router := appHTTP.NewRouter(
		cfg.App.Env,
		JWTService,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewPayrollHandler(payrollSvc),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr, "env", cfg.App.Env)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
