package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/matchday-api/internal/config"
	"github.com/matchday-api/internal/infrastructure/dynamo"
	"github.com/matchday-api/internal/infrastructure/filestore"
	s3infra "github.com/matchday-api/internal/infrastructure/s3"
	"github.com/matchday-api/internal/infrastructure/sheets"
	"github.com/matchday-api/internal/infrastructure/smtp"
	"github.com/matchday-api/internal/infrastructure/sns"
	transporthttp "github.com/matchday-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	deps := &transporthttp.Deps{
		Mailer: smtp.NewMailer(cfg),
	}

	// Verification codes, reset tokens and orders: Google Sheets when a
	// service account is configured, local JSON files otherwise. The
	// choice is made once at startup.
	if cfg.SheetsConfigured() {
		svc, err := sheets.NewService(context.Background(), cfg)
		if err != nil {
			log.Fatalf("google sheets client: %v", err)
		}
		deps.Codes = sheets.NewCodeStore(svc, cfg.GoogleSpreadsheetID)
		deps.Resets = sheets.NewResetStore(svc, cfg.GoogleSpreadsheetID)
		deps.Orders = sheets.NewOrderStore(svc, cfg.GoogleSpreadsheetID)
		log.Printf("Using Google Sheets backend (spreadsheet %s)", cfg.GoogleSpreadsheetID)
	} else {
		deps.Codes = filestore.NewCodeStore(cfg.DataDir)
		deps.Resets = filestore.NewResetStore(cfg.DataDir)
		deps.Orders = filestore.NewOrderStore(cfg.DataDir)
		log.Printf("Using local JSON backend (dir %s)", cfg.DataDir)
	}

	// Users: DynamoDB when a table is configured, local JSON otherwise.
	if cfg.DynamoConfigured() {
		dynamoClient := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), dynamoClient, cfg.UsersTable)
		deps.Users = dynamo.NewUserRepo(dynamoClient, cfg.UsersTable)
		log.Printf("Using DynamoDB user store (table %s)", cfg.UsersTable)
	} else {
		deps.Users = filestore.NewUserStore(cfg.DataDir)
	}

	// Product images in S3 (optional).
	if !config.IsPlaceholder(cfg.S3BucketName) {
		deps.Images = s3infra.NewStore(s3infra.NewClient(cfg), cfg.S3BucketName)
	}

	// Order notifications over SNS (optional — graceful fallback).
	if notifier, err := sns.NewNotifier(cfg); err == nil {
		deps.Notifier = notifier
	} else {
		log.Printf("WARN: SNS notifier not available: %v", err)
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
