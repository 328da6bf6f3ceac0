// internal/workers/quotation/generate-quotation/handler.go
package generatequotation

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"mission-quotation/internal/common/errors"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/metrics"
	"mission-quotation/internal/common/observability"
	"mission-quotation/internal/quotation"
)

const (
	TaskType = "generate-quotation"
)

type Handler struct {
	config       *Config
	generator    *quotation.Generator
	errorHandler *errors.ErrorHandler
	obs          *observability.Observability
	logger       logger.Logger
}

func NewHandler(config *Config, generator *quotation.Generator, obs *observability.Observability, log logger.Logger) *Handler {
	l := log.With(map[string]interface{}{
		"taskType": TaskType,
	})
	return &Handler{
		config:       config,
		generator:    generator,
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

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.fail(client, job, errors.NewParseError(err), startTime)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		if stderrors.Is(err, quotation.ErrInvalidMission) {
			h.fail(client, job, errors.NewMissionValidationFailedError(err.Error()), startTime)
		} else {
			h.fail(client, job, errors.NewInternalError(err), startTime)
		}
		return
	}

	if err := h.completeJob(client, job, output); err != nil {
		h.fail(client, job, errors.NewInternalError(err), startTime)
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
	h.obs.RecordJobProcessed(ctx, TaskType, "success")
	h.obs.RecordJobDuration(ctx, TaskType, time.Since(startTime), "success")
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	mission, err := quotation.DecodeMission(input.Mission)
	if err != nil {
		fields := map[string]interface{}{
			"error": err.Error(),
		}
		var verr *quotation.MissionValidationError
		if stderrors.As(err, &verr) {
			fields["missingRequired"] = verr.MissingRequired()
			fields["personnelErrors"] = len(verr.PersonnelErrors())
		}
		h.logger.Warn("mission rejected", fields)
		return nil, err
	}

	q := h.generator.Generate(*mission)

	return &Output{Quotation: q}, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

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
