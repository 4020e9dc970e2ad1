package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/amlds-dept/activity-reporter/internal/assemble"
	"github.com/amlds-dept/activity-reporter/internal/repository"
	"github.com/amlds-dept/activity-reporter/internal/service"
	"github.com/amlds-dept/activity-reporter/internal/workflow"
	"github.com/amlds-dept/activity-reporter/pkg/config"
	"github.com/amlds-dept/activity-reporter/pkg/database"
	"github.com/amlds-dept/activity-reporter/pkg/jobs"
	"github.com/amlds-dept/activity-reporter/pkg/render"
	"github.com/amlds-dept/activity-reporter/pkg/storage"
)

// App wires the full data-entry core: store, services, render queue, and the
// section workflow. The embedding interaction layer builds one App and calls
// the services directly.
type App struct {
	DB      *sqlx.DB
	Storage *storage.LocalStorage

	Activities   *service.ActivityService
	Speakers     *service.SpeakerService
	Participants *service.ParticipantService
	Preparers    *service.PreparerService
	Photos       *service.PhotoService
	Reports      *service.ReportService

	Workflow *workflow.Controller

	queue *jobs.Queue
}

// New opens the database, prepares managed storage, and wires every service.
// The render queue is started; callers must Close.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	db, err := database.NewSQLite(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := repository.InitSchema(ctx, db); err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	store, err := storage.NewLocalStorage(cfg.Storage.DataDir)
	if err != nil {
		db.Close() //nolint:errcheck
		return nil, fmt.Errorf("prepare storage: %w", err)
	}

	assembler := assemble.NewAssembler(assemble.WithPhotoLimit(cfg.Render.PhotoLimit))
	renderer := render.NewPDFRenderer(store)

	a := &App{
		DB:           db,
		Storage:      store,
		Activities:   service.NewActivityService(repository.NewActivityRepository(db), logger),
		Speakers:     service.NewSpeakerService(repository.NewSpeakerRepository(db), store, cfg.Assets.MaxPhotoBytes, logger),
		Participants: service.NewParticipantService(repository.NewParticipantRepository(db), logger),
		Preparers:    service.NewPreparerService(repository.NewPreparerRepository(db), store, cfg.Assets.MaxSignatureBytes, logger),
		Photos:       service.NewPhotoService(repository.NewPhotoRepository(db), store, cfg.Assets.MaxPhotoBytes, logger),
		Workflow:     workflow.NewController(logger),
	}

	a.Reports = service.NewReportService(
		repository.NewReportRepository(db),
		assembler,
		renderer,
		store,
		nil,
		logger,
		service.ReportServiceConfig{MaxRetries: cfg.Render.Retries},
	)

	a.queue = jobs.NewQueue("render", a.Reports.HandleJob, jobs.QueueConfig{
		Workers:    cfg.Render.Workers,
		MaxRetries: cfg.Render.Retries,
		Logger:     logger,
	})
	a.queue.Start(ctx)
	a.Reports.AttachQueue(a.queue)

	return a, nil
}

// Close drains the render queue and releases the database.
func (a *App) Close() error {
	a.queue.Stop()
	return a.DB.Close()
}
