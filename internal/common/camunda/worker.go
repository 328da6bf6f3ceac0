// internal/common/camunda/worker.go
package camunda

import (
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"

	"mission-quotation/internal/common/config"
	"mission-quotation/internal/common/logger"
)

// Worker is an open job subscription for one task type.
type Worker struct {
	worker   worker.JobWorker
	logger   logger.Logger
	taskType string
}

// StartWorker opens a job worker for taskType using its entry under
// workers in cfg. It returns nil when the worker is disabled.
func StartWorker(client zbc.Client, cfg *config.Config, taskType string, handler worker.JobHandler, log logger.Logger) *Worker {
	l := log.With(map[string]interface{}{"taskType": taskType})

	if !config.IsWorkerEnabled(cfg, taskType) {
		l.Info("worker disabled", nil)
		return nil
	}
	wcfg := config.GetWorkerConfig(cfg, taskType)

	jobWorker := client.NewJobWorker().
		JobType(taskType).
		Handler(handler).
		MaxJobsActive(wcfg.MaxJobsActive).
		Timeout(time.Duration(wcfg.Timeout) * time.Millisecond).
		Open()

	l.Info("worker started", map[string]interface{}{
		"maxJobsActive": wcfg.MaxJobsActive,
		"timeout_ms":    wcfg.Timeout,
	})

	return &Worker{
		worker:   jobWorker,
		logger:   l,
		taskType: taskType,
	}
}

func (w *Worker) TaskType() string {
	return w.taskType
}

// Stop stops polling and waits for in-flight jobs to finish. The shared
// client is left open.
func (w *Worker) Stop() {
	if w == nil {
		return
	}
	w.logger.Info("stopping worker", nil)
	w.worker.Close()
	w.worker.AwaitClose()
}
