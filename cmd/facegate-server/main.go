package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"facegate/internal/config"
	"facegate/internal/db"
	"facegate/internal/facegate/embedder"
	"facegate/internal/facegate/errorlog"
	"facegate/internal/facegate/photostore"
	"facegate/internal/facegate/service"
	sqlitestore "facegate/internal/facegate/store/sqlite"
	"facegate/internal/httpapi"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "facegate-server ", log.LstdFlags|log.LUTC)

	if cfg.MockModel {
		logger.Printf("WARNING: mock model enabled, every verification will be GRANTED without inference")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	conn, err := db.Open(ctx, db.Config{Path: cfg.DBPath, Env: cfg.Env})
	if err != nil {
		logger.Fatalf("open database: %v", err)
	}
	defer conn.Close()

	if cfg.Env == "dev" {
		if err := db.SeedDev(ctx, conn); err != nil {
			logger.Printf("dev seed: %v", err)
		}
	}

	writer := db.NewWorker(conn)
	defer writer.Close()

	// Stores
	employees := sqlitestore.NewEmployeeStore(conn, writer)
	accessLogs := sqlitestore.NewAccessLogStore(conn, writer)
	shifts := sqlitestore.NewShiftStore(conn, writer)

	// Photos and operator error log
	photos, err := photostore.NewDisk(cfg.UploadDir)
	if err != nil {
		logger.Fatalf("photo store: %v", err)
	}
	errLog := errorlog.NewCSVLogger(cfg.ErrorLogPath)

	// Embedding backend
	emb := embedder.NewClient(cfg.EmbedderURL, time.Duration(cfg.EmbedTimeoutS)*time.Second)

	// Services
	archiver := service.NewArchiver(photos, errLog, logger)
	verification := service.NewVerificationService(employees, emb, photos, archiver,
		service.VerificationConfig{Threshold: cfg.SimThreshold, MockMode: cfg.MockModel}, logger)
	enrollment := service.NewEnrollmentService(employees, emb, photos, cfg.MockModel, logger)
	ledger := service.NewLedgerService(employees, accessLogs)
	shiftSvc := service.NewShiftService(shifts)
	employeeSvc := service.NewEmployeeService(employees)

	// HTTP
	srv := httpapi.NewServer(httpapi.Dependencies{
		Logger:         logger,
		Addr:           cfg.HTTPAddr,
		Employees:      employeeSvc,
		Enrollment:     enrollment,
		Verification:   verification,
		Ledger:         ledger,
		Shifts:         shiftSvc,
		ErrorLog:       errLog,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	go func() {
		logger.Printf("listening on %s (env=%s db=%s embedder=%s)", cfg.HTTPAddr, cfg.Env, cfg.DBPath, cfg.EmbedderURL)
		if err := srv.Start(); err != nil {
			logger.Printf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
