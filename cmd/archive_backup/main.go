package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/fitplanner/internal/backup"
	"github.com/2beens/fitplanner/internal/config"
	"github.com/2beens/fitplanner/internal/db"
	"github.com/2beens/fitplanner/internal/logging"
	"github.com/2beens/fitplanner/internal/plans"
	"github.com/2beens/fitplanner/internal/telemetry/tracing"
	"github.com/2beens/fitplanner/pkg"

	log "github.com/sirupsen/logrus"
)

// plan archive google drive backup cmd

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development | ddev | dockerdev ]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	credentialsFile := flag.String("gd-creds", "./drive-credentials.json", "google drive service account credentials json")
	shareWith := flag.String("share-with", "", "email to grant read access to the uploaded backups")
	logsPath := flag.String("logs-path", "", "logs file path (empty for stdout)")
	reinit := flag.Bool("reinit", false, "drop all backups and upload the whole archive again")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	secrets, err := config.LoadSecrets(ctx, ".env")
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      *logsPath,
		LogLevel:         cfg.LogLevel,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "archive-backup",
	})

	log.Println("starting plan archive backup ...")

	otelShutdown, err := tracing.HoneycombSetup(secrets.HoneycombEnabled, "archive-backup", nil)
	if err != nil {
		log.Fatalf("tracing setup: %s", err)
	}
	defer otelShutdown()

	if exists, err := pkg.PathExists(*credentialsFile, false); err != nil || !exists {
		log.Fatalf("google drive credentials file [%s] not found: %v", *credentialsFile, err)
	}

	credentialsJson, err := os.ReadFile(*credentialsFile)
	if err != nil {
		log.Fatalf("unable to read google drive credentials file: %s", err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBUser:         cfg.PostgresUser,
		DBPassword:     secrets.DBPassword,
		MaxConns:       2,
		TracingEnabled: secrets.HoneycombEnabled,
	})
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	googleDrive, err := backup.NewGoogleDrive(ctx, credentialsJson, *shareWith)
	if err != nil {
		log.Fatalf("google drive client: %s", err)
	}

	s, err := backup.NewArchiveBackupService(ctx, plans.NewRepo(dbPool), googleDrive)
	if err != nil {
		log.Fatalf("failed to create google drive backup service: %s", err)
	}

	baseTime := time.Now()
	if *reinit {
		log.Println("!! attention: will reinitialize all again...")
		count, err := s.Reinit(ctx, baseTime)
		if err != nil {
			log.Fatalf("reinit failed: %s", err)
		}
		log.Printf("reinit done, %d archived weeks uploaded", count)
		return
	}

	count, err := s.DoBackup(ctx, baseTime)
	if err != nil {
		log.Fatalf("backup failed: %+v", err)
	}
	log.Printf("backup done, %d archived weeks uploaded", count)
}
