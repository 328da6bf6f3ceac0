// internal/extraction/extractor.go
package extraction

import (
	"context"

	"mission-quotation/internal/common/config"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/metrics"
	"mission-quotation/internal/models"
)

const (
	StrategyRemote    = "remote"
	StrategyHeuristic = "heuristic"
)

// Extractor turns a free-text mission document into a Mission. Failures are
// reported inside the result, never as a panic or error return.
type Extractor interface {
	Extract(ctx context.Context, documentText string) models.ExtractionResult
	Strategy() string
}

// New selects the remote extractor when an API key is configured and the
// local heuristic otherwise.
func New(cfg config.OpenAIConfig, log logger.Logger) Extractor {
	if cfg.HasCredential() {
		return NewRemote(cfg, log)
	}
	log.Info("no extraction API key configured, using heuristic extractor", nil)
	return NewHeuristic(log)
}

func succeeded(strategy string, mission *models.Mission) models.ExtractionResult {
	confidence := Confidence(mission)
	metrics.ExtractionsTotal.WithLabelValues(strategy, "success").Inc()
	metrics.ExtractionConfidence.WithLabelValues(strategy).Observe(float64(confidence))
	return models.ExtractionResult{
		Success:    true,
		Data:       mission,
		Confidence: confidence,
		Strategy:   strategy,
	}
}

func failed(strategy string, err error) models.ExtractionResult {
	metrics.ExtractionsTotal.WithLabelValues(strategy, "failure").Inc()
	return models.ExtractionResult{
		Success:  false,
		Error:    err.Error(),
		Strategy: strategy,
	}
}
