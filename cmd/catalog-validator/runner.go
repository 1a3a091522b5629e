package main

import (
	"context"
	"io"
	"time"

	"service-catalog/internal/common/config"
	"service-catalog/internal/common/database"
	"service-catalog/internal/common/errors"
	"service-catalog/internal/common/logger"
	"service-catalog/internal/common/metrics"
	"service-catalog/internal/common/validation"
	"service-catalog/internal/publisher"
	"service-catalog/internal/report"
	"service-catalog/internal/validator"
	"service-catalog/pkg/catalog"

	"github.com/google/uuid"
)

// Runner performs one validation pass and its optional exports.
type Runner struct {
	config  *config.Config
	logger  logger.Logger
	metrics *metrics.Recorder
	stdout  io.Writer
	runID   string
	now     func() time.Time
}

func NewRunner(cfg *config.Config, log logger.Logger, stdout io.Writer) *Runner {
	runID := uuid.NewString()
	return &Runner{
		config:  cfg,
		logger:  log.WithFields(map[string]interface{}{"runId": runID}),
		metrics: metrics.NewRecorder(),
		stdout:  stdout,
		runID:   runID,
		now:     time.Now,
	}
}

// RunID identifies this pass in logs, metrics exports and Redis keys.
func (r *Runner) RunID() string {
	return r.runID
}

// Run loads both input files, validates the catalog and writes the report.
// It returns a load error, a VALIDATION_FAILED error, or nil.
func (r *Runner) Run(ctx context.Context) error {
	vcfg := r.config.Validator
	r.logger.Debug("starting validation", map[string]interface{}{
		"services": vcfg.ServicesPath(),
		"schema":   vcfg.SchemaPath(),
	})

	schema, err := validation.LoadSchema(vcfg.SchemaPath())
	if err != nil {
		_ = report.LoadError(r.stdout, err)
		return err
	}
	doc, err := catalog.LoadDocument(vcfg.ServicesPath())
	if err != nil {
		_ = report.LoadError(r.stdout, err)
		return err
	}
	r.logger.Debug("inputs loaded", map[string]interface{}{
		"schemaDraft": schema.Draft(),
		"schemaTitle": schema.Title(),
		"services":    len(doc.Services()),
	})

	start := r.now()
	result := validator.Run(doc, schema.Document)
	duration := r.now().Sub(start)

	if err := report.Write(r.stdout, vcfg.Format, result); err != nil {
		r.logger.WithError(err).Error("failed to write report", nil)
	}

	r.export(ctx, result, duration)

	if !result.Valid() {
		return errors.NewValidationFailedError(len(result.Errors))
	}
	r.logger.Info("validation passed", map[string]interface{}{
		"services":   result.Stats.TotalServices,
		"categories": result.Stats.TotalCategories,
	})
	return nil
}

// export records metrics and publishes the summary. Failures are logged and
// never change the run outcome.
func (r *Runner) export(ctx context.Context, result *validator.Result, duration time.Duration) {
	for name, count := range result.ByChecker {
		r.metrics.ObserveChecker(name, count)
	}
	outcome := "passed"
	services, categories := 0, 0
	if result.Valid() {
		services, categories = result.Stats.TotalServices, result.Stats.TotalCategories
	} else {
		outcome = "failed"
	}
	r.metrics.ObserveRun(outcome, duration, services, categories, result.Valid())

	if path := r.config.Metrics.TextfilePath; path != "" {
		if err := r.metrics.WriteTextfile(path); err != nil {
			r.logger.WithError(errors.NewPublishFailedError("textfile", err)).Warn("metrics export skipped", map[string]interface{}{
				"path": path,
			})
		}
	}

	if !r.config.Redis.Enabled() {
		return
	}
	client := database.NewRedis(r.config.Redis)
	defer client.Close()
	pub := publisher.NewPublisher(client, r.config.Redis, r.logger)

	ctx, cancel := context.WithTimeout(ctx, r.config.Redis.Timeout())
	defer cancel()

	summary := publisher.NewSummary(r.runID, result, r.now())
	if err := pub.Publish(ctx, summary); err != nil {
		r.logger.WithError(err).Warn("run summary not published", map[string]interface{}{
			"address": r.config.Redis.Address,
		})
	}
}
