package jobs

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"

	"dispatch/internal/core/application/usecases/commands"
)

// reconciliationSchedule runs the sweep every five minutes. Drift between the
// stages is rare, so a tight cadence buys nothing.
const reconciliationSchedule = "*/5 * * * *"

// ReconciliationJob periodically sweeps stale order records left behind when
// a completion only partially propagated across the stages.
type ReconciliationJob struct {
	handler commands.ReconcileOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReconciliationJob creates the scheduled reconciliation sweep.
func NewReconciliationJob(handler commands.ReconcileOrdersCommandHandler, logger *slog.Logger) *ReconciliationJob {
	return &ReconciliationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "reconciliation_job"),
	}
}

// Start schedules the sweep and runs it once immediately so a restart does
// not wait a full interval to repair drift.
func (j *ReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(reconciliationSchedule, j.run)
	if err != nil {
		return err
	}

	go j.run()

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Reconciliation job started", "schedule", reconciliationSchedule)
	return nil
}

func (j *ReconciliationJob) run() {
	ctx := context.Background()
	cmd := commands.NewReconcileOrdersCommand()

	if err := j.handler.Handle(ctx, cmd); err != nil {
		j.logger.ErrorContext(ctx, "Reconciliation sweep failed", "error", err)
	}
}

// Stop stops the reconciliation job.
func (j *ReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Reconciliation job stopped")
}
