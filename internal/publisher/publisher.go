// Package publisher stores validation run summaries in Redis so dashboards
// and later CI steps can read the latest catalog state.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"service-catalog/internal/common/config"
	"service-catalog/internal/common/database"
	"service-catalog/internal/common/errors"
	"service-catalog/internal/common/logger"
	"service-catalog/internal/validator"
)

// Summary is the JSON document written for each run.
type Summary struct {
	RunID      string           `json:"runId"`
	Valid      bool             `json:"valid"`
	ErrorCount int              `json:"errorCount"`
	Errors     []string         `json:"errors"`
	Stats      *validator.Stats `json:"stats,omitempty"`
	FinishedAt time.Time        `json:"finishedAt"`
}

// NewSummary builds the summary of a finished run.
func NewSummary(runID string, result *validator.Result, finishedAt time.Time) *Summary {
	return &Summary{
		RunID:      runID,
		Valid:      result.Valid(),
		ErrorCount: len(result.Errors),
		Errors:     result.Errors,
		Stats:      result.Stats,
		FinishedAt: finishedAt.UTC(),
	}
}

type Publisher struct {
	redis  *database.RedisClient
	config config.RedisConfig
	logger logger.Logger
}

func NewPublisher(redis *database.RedisClient, cfg config.RedisConfig, log logger.Logger) *Publisher {
	return &Publisher{
		redis:  redis,
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "publisher"}),
	}
}

// Publish writes the summary under its run key and the latest key.
func (p *Publisher) Publish(ctx context.Context, summary *Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return errors.NewPublishFailedError("redis", fmt.Errorf("marshal summary: %w", err))
	}

	keys := []string{p.config.RunKey(summary.RunID), p.config.LatestKey()}
	for _, key := range keys {
		if err := p.redis.Set(ctx, key, data, p.config.TTL()); err != nil {
			return errors.NewPublishFailedError("redis", fmt.Errorf("set %s: %w", key, err))
		}
	}

	p.logger.Info("run summary published", map[string]interface{}{
		"runId": summary.RunID,
		"keys":  keys,
		"valid": summary.Valid,
	})
	return nil
}

// Latest reads back the most recent summary.
func (p *Publisher) Latest(ctx context.Context) (*Summary, error) {
	val, err := p.redis.Get(ctx, p.config.LatestKey())
	if err != nil {
		return nil, fmt.Errorf("get latest summary: %w", err)
	}
	var summary Summary
	if err := json.Unmarshal([]byte(val), &summary); err != nil {
		return nil, fmt.Errorf("decode latest summary: %w", err)
	}
	return &summary, nil
}
