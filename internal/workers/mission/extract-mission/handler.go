// internal/workers/mission/extract-mission/handler.go
package extractmission

import (
	"context"
	"encoding/json"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"mission-quotation/internal/common/errors"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/metrics"
	"mission-quotation/internal/common/observability"
	"mission-quotation/internal/extraction"
)

const (
	TaskType = "extract-mission"
)

type Handler struct {
	config       *Config
	extractor    extraction.Extractor
	errorHandler *errors.ErrorHandler
	obs          *observability.Observability
	logger       logger.Logger
}

func NewHandler(config *Config, extractor extraction.Extractor, obs *observability.Observability, log logger.Logger) *Handler {
	l := log.With(map[string]interface{}{
		"taskType": TaskType,
	})
	return &Handler{
		config:       config,
		extractor:    extractor,
		errorHandler: errors.NewErrorHandler(l),
		obs:          obs,
		logger:       l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(client, job, errors.NewParseError(err), startTime)
		return
	}

	output := h.execute(ctx, &input)

	if err := h.completeJob(client, job, output); err != nil {
		h.fail(client, job, errors.NewInternalError(err), startTime)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
	h.obs.RecordJobProcessed(ctx, TaskType, "success")
	h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "success")
}

// execute never fails: an unsuccessful extraction is part of the output so
// the process can fall back to manual entry.
func (h *Handler) execute(ctx context.Context, input *Input) *Output {
	result := h.extractor.Extract(ctx, input.DocumentText)

	fields := map[string]interface{}{
		"strategy":   result.Strategy,
		"success":    result.Success,
		"confidence": result.Confidence,
		"fileName":   input.FileName,
	}
	if result.Success {
		h.logger.Info("mission extracted", fields)
	} else {
		fields["error"] = result.Error
		h.logger.Warn("mission extraction failed", fields)
	}

	return &Output{
		Extraction: result,
		FileName:   input.FileName,
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	return h.execute(ctx, input)
}

// Job commands use a fresh context so a job whose own deadline has passed
// can still be reported.
func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		return err
	}
	_, err = cmd.Send(context.Background())
	return err
}

func (h *Handler) fail(client worker.JobClient, job entities.Job, stdErr *errors.StandardError, startTime time.Time) {
	ctx := context.Background()
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(stdErr.Code)).Inc()
	h.obs.RecordJobProcessed(ctx, TaskType, "failure")
	h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "failure")
	h.errorHandler.HandleJobError(ctx, client, job, stdErr)
}
