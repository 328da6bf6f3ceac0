// internal/workers/quotation/export-quotation/handler.go
package exportquotation

import (
	"context"
	"encoding/base64"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"mission-quotation/internal/catalog"
	"mission-quotation/internal/common/errors"
	"mission-quotation/internal/common/logger"
	"mission-quotation/internal/common/metrics"
	"mission-quotation/internal/common/observability"
	"mission-quotation/internal/export"
)

const (
	TaskType = "export-quotation"
)

var (
	ErrQuotationMissing = stderrors.New("quotation is required")
)

type Handler struct {
	config       *Config
	catalog      *catalog.Catalog
	errorHandler *errors.ErrorHandler
	obs          *observability.Observability
	logger       logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, obs *observability.Observability, log logger.Logger) *Handler {
	l := log.With(map[string]interface{}{
		"taskType": TaskType,
	})
	return &Handler{
		config:       config,
		catalog:      cat,
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
		h.fail(client, job, h.classify(&input, err), startTime)
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
	if input.Quotation == nil {
		return nil, ErrQuotationMissing
	}

	name := input.Format
	if name == "" {
		name = h.config.DefaultFormat
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return nil, err
	}

	doc, err := export.Export(input.Quotation, format, h.catalog)
	if err != nil {
		return nil, err
	}

	output := &Output{
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
	}
	if format == export.FormatXLSX {
		output.ContentEncoding = EncodingBase64
		output.Content = base64.StdEncoding.EncodeToString(doc.Content)
	} else {
		output.ContentEncoding = EncodingText
		output.Content = string(doc.Content)
	}

	h.logger.Info("quotation exported", map[string]interface{}{
		"quotationId": input.Quotation.QuotationID,
		"format":      string(format),
		"fileName":    doc.FileName,
		"bytes":       len(doc.Content),
	})

	return output, nil
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}

func (h *Handler) classify(input *Input, err error) *errors.StandardError {
	switch {
	case stderrors.Is(err, export.ErrUnsupportedFormat):
		return errors.NewUnsupportedExportFormatError(input.Format)
	case stderrors.Is(err, ErrQuotationMissing):
		return errors.NewParseError(err)
	default:
		return errors.NewExportFailedError(input.Format, fmt.Errorf("render: %w", err))
	}
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
