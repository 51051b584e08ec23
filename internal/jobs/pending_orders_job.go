package jobs

import (
	"context"
	"log/slog"

	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// PendingOrdersJob periodically reports how many orders are still in the
// default "Pending" status. Purely observational: it reads through the query
// side and logs, never mutating any order.
type PendingOrdersJob struct {
	handler queries.GetAllOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPendingOrdersJob creates a job that logs the pending-order backlog once
// per minute.
func NewPendingOrdersJob(handler queries.GetAllOrdersQueryHandler, logger *slog.Logger) *PendingOrdersJob {
	return &PendingOrdersJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "pending_orders_job"),
	}
}

// Start schedules the job to run every minute.
func (j *PendingOrdersJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetAllOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Pending orders job failed", "error", err)
			return
		}

		pending := 0
		for _, o := range orders {
			if o.Status == order.DefaultStatus {
				pending++
			}
		}

		j.logger.InfoContext(ctx, "Pending order backlog", "pending", pending, "total", len(orders))
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending orders job started (running every minute)")
	return nil
}

// Stop stops the job.
func (j *PendingOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending orders job stopped")
}
