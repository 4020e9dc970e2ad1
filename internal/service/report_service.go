package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/amlds-dept/activity-reporter/internal/assemble"
	"github.com/amlds-dept/activity-reporter/internal/models"
	"github.com/amlds-dept/activity-reporter/internal/validation"
	appErrors "github.com/amlds-dept/activity-reporter/pkg/errors"
	"github.com/amlds-dept/activity-reporter/pkg/jobs"
)

type reportStore interface {
	GetFullReport(ctx context.Context, activityID int64) (*models.ActivityReport, error)
}

type documentRenderer interface {
	Render(doc assemble.Document) ([]byte, []string, error)
}

type exportWriter interface {
	SaveExport(destPath string, data []byte) error
}

type renderDispatcher interface {
	Enqueue(job jobs.Job) error
}

// GenerateResult reports a finished export.
type GenerateResult struct {
	ActivityID int64
	OutputPath string
	Bytes      int
	Warnings   []string
}

// GenerateCallback receives the outcome of an asynchronous render. The
// result is nil when err is non-nil.
type GenerateCallback func(result *GenerateResult, err error)

// ReportServiceConfig tunes generation behaviour.
type ReportServiceConfig struct {
	MaxRetries int
}

// ReportService runs whole-report validation, document assembly, and PDF
// generation. Rendering can run synchronously or on the background queue
// with completion delivered through a callback.
type ReportService struct {
	reports   reportStore
	assembler *assemble.Assembler
	renderer  documentRenderer
	exports   exportWriter
	queue     renderDispatcher
	logger    *zap.Logger
	cfg       ReportServiceConfig

	mu        sync.Mutex
	callbacks map[string]GenerateCallback
}

// NewReportService constructs the service. The queue may be nil when only
// synchronous generation is needed.
func NewReportService(reports reportStore, assembler *assemble.Assembler, renderer documentRenderer, exports exportWriter, queue renderDispatcher, logger *zap.Logger, cfg ReportServiceConfig) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if assembler == nil {
		assembler = assemble.NewAssembler()
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &ReportService{
		reports:   reports,
		assembler: assembler,
		renderer:  renderer,
		exports:   exports,
		queue:     queue,
		logger:    logger,
		cfg:       cfg,
		callbacks: make(map[string]GenerateCallback),
	}
}

// AttachQueue wires the background queue after construction. The queue's
// handler is this service's HandleJob, so the two are built in sequence.
func (s *ReportService) AttachQueue(queue renderDispatcher) {
	s.queue = queue
}

// Validate runs the whole-report readiness check for one activity.
func (s *ReportService) Validate(ctx context.Context, activityID int64) (validation.Result, error) {
	report, err := s.loadReport(ctx, activityID)
	if err != nil {
		return validation.Result{}, err
	}
	return validation.ValidateReport(*report), nil
}

// Generate validates, assembles, renders, and writes the PDF to outputPath.
// The file write is atomic: a temporary file renamed into place on success.
func (s *ReportService) Generate(ctx context.Context, activityID int64, outputPath string) (*GenerateResult, error) {
	report, err := s.loadReport(ctx, activityID)
	if err != nil {
		return nil, err
	}

	result := validation.ValidateReport(*report)
	if !result.Valid {
		return nil, appErrors.Validation(result.Errors)
	}

	doc := s.assembler.Assemble(*report)

	payload, renderWarnings, err := s.renderer.Render(doc)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindRender, appErrors.ErrRender.Code, "failed to render report")
	}

	if err := s.exports.SaveExport(outputPath, payload); err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to write report file")
	}

	warnings := append(append([]string(nil), result.Warnings...), renderWarnings...)
	s.logger.Sugar().Infow("report generated", "activity_id", activityID, "output", outputPath, "bytes", len(payload), "warnings", len(warnings))

	return &GenerateResult{
		ActivityID: activityID,
		OutputPath: outputPath,
		Bytes:      len(payload),
		Warnings:   warnings,
	}, nil
}

// GenerateAsync queues a render and returns immediately; the callback fires
// exactly once when the render finishes or permanently fails.
func (s *ReportService) GenerateAsync(activityID int64, outputPath string, callback GenerateCallback) error {
	if s.queue == nil {
		return appErrors.Clone(appErrors.ErrInternal, "background rendering not configured")
	}

	job := jobs.Job{
		ID:         uuid.NewString(),
		ActivityID: activityID,
		OutputPath: outputPath,
	}

	s.mu.Lock()
	s.callbacks[job.ID] = callback
	s.mu.Unlock()

	if err := s.queue.Enqueue(job); err != nil {
		s.mu.Lock()
		delete(s.callbacks, job.ID)
		s.mu.Unlock()
		return appErrors.Wrap(err, appErrors.KindInternal, appErrors.ErrInternal.Code, "failed to queue report generation")
	}
	return nil
}

// HandleJob is the queue handler for background renders. Persistence
// failures are retried by returning the error to the queue; validation and
// render failures are final and reported straight to the callback.
func (s *ReportService) HandleJob(ctx context.Context, job jobs.Job) error {
	result, err := s.Generate(ctx, job.ActivityID, job.OutputPath)
	if err != nil && appErrors.IsKind(err, appErrors.KindPersistence) && job.Attempt < s.cfg.MaxRetries {
		return err
	}
	s.deliver(job.ID, result, err)
	return nil
}

func (s *ReportService) deliver(jobID string, result *GenerateResult, err error) {
	s.mu.Lock()
	callback, ok := s.callbacks[jobID]
	delete(s.callbacks, jobID)
	s.mu.Unlock()

	if !ok || callback == nil {
		return
	}
	callback(result, err)
}

func (s *ReportService) loadReport(ctx context.Context, activityID int64) (*models.ActivityReport, error) {
	report, err := s.reports.GetFullReport(ctx, activityID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.KindPersistence, appErrors.ErrPersistence.Code, "failed to load activity report")
	}
	if report == nil {
		return nil, appErrors.ErrNotFound
	}
	return report, nil
}
