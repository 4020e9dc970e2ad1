package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/amlds-dept/activity-reporter/internal/app"
	"github.com/amlds-dept/activity-reporter/pkg/config"
	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
	"github.com/amlds-dept/activity-reporter/pkg/logger"
)

func main() {
	var (
		activityID = flag.Int64("activity", 0, "activity id to export")
		outPath    = flag.String("out", "", "destination path for the generated PDF")
		list       = flag.Bool("list", false, "list captured activities and exit")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	ctx := context.Background()
	application, err := app.New(ctx, cfg, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to start", "error", err)
	}
	defer application.Close() //nolint:errcheck

	switch {
	case *list:
		items, err := application.Activities.List(ctx)
		if err != nil {
			logr.Sugar().Fatalw("failed to list activities", "error", err)
		}
		for _, item := range items {
			fmt.Printf("%d\t%s\t%s\t%s\n", item.ID, item.ActivityType, item.StartDate, item.Venue)
		}

	case *activityID > 0:
		dest := *outPath
		if dest == "" {
			dest = filepath.Join(cfg.Storage.ExportsDir, fmt.Sprintf("activity_report_%d_%s.pdf", *activityID, time.Now().Format("20060102_150405")))
		}
		result, err := application.Reports.Generate(ctx, *activityID, dest)
		if err != nil {
			var appErr *appErrors.Error
			if errors.As(err, &appErr) && appErr.Kind == appErrors.KindValidation {
				fmt.Fprintln(os.Stderr, "report is not ready for export:")
				for _, detail := range appErr.Details {
					fmt.Fprintf(os.Stderr, "  - %s\n", detail)
				}
				os.Exit(1)
			}
			logr.Sugar().Fatalw("failed to generate report", "activity_id", *activityID, "error", err)
		}
		for _, warning := range result.Warnings {
			fmt.Fprintf(os.Stderr, "warning: %s\n", warning)
		}
		fmt.Printf("report written to %s (%d bytes)\n", result.OutputPath, result.Bytes)

	default:
		logr.Sugar().Infow("activity reporter initialized", "db", cfg.Storage.DBPath, "data_dir", cfg.Storage.DataDir)
		fmt.Println("usage: activity-reporter [-list] [-activity <id> [-out <path>]]")
	}
}
