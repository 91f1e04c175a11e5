package jobs

import (
	"context"
	"log/slog"

	"dinein/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OpenOrdersReportJob periodically reports orders that are still cooking or
// being eaten. The report surfaces stuck orders without anyone having to
// poll the API.
type OpenOrdersReportJob struct {
	handler queries.GetUncompletedOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOpenOrdersReportJob creates a job that reports open orders every minute.
func NewOpenOrdersReportJob(handler queries.GetUncompletedOrdersQueryHandler, logger *slog.Logger) *OpenOrdersReportJob {
	return &OpenOrdersReportJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "open_orders_report_job"),
	}
}

// Start begins the report job to run at the start of every minute.
func (j *OpenOrdersReportJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetUncompletedOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Open orders report failed", "error", err)
			return
		}

		if len(orders) == 0 {
			return
		}

		byStatus := make(map[string]int)
		for _, o := range orders {
			byStatus[o.Status]++
		}

		j.logger.InfoContext(ctx, "Open orders report",
			"total", len(orders),
			"by_status", byStatus,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open orders report job started (running every minute)")
	return nil
}

// Stop stops the report job.
func (j *OpenOrdersReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open orders report job stopped")
}
