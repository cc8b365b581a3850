package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"freightline/internal/core/application/usecases/queries"
	"freightline/internal/core/ports"
)

// BoardRefreshJob periodically re-fetches the acting user's orders so the
// board converges on the directory service's state even when no one is
// clicking. Each refresh replaces the working set and drops stale optimistic
// values.
type BoardRefreshJob struct {
	handler  queries.ListMyOrdersQueryHandler
	pageSize int
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewBoardRefreshJob creates a job that refreshes the order board every 30
// seconds.
func NewBoardRefreshJob(
	handler queries.ListMyOrdersQueryHandler,
	pageSize int,
	logger *slog.Logger,
) *BoardRefreshJob {
	return &BoardRefreshJob{
		handler:  handler,
		pageSize: pageSize,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "board_refresh_job"),
	}
}

// Start begins the periodic refresh.
func (j *BoardRefreshJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		query, queryErr := queries.NewListMyOrdersQuery(1, j.pageSize)
		if queryErr != nil {
			j.logger.ErrorContext(ctx, "Board refresh job misconfigured", "error", queryErr)
			return
		}

		if _, handleErr := j.handler.Handle(ctx, query); handleErr != nil {
			// An expired session is a normal state between logins, not a
			// system fault.
			if errors.Is(handleErr, ports.ErrNotAuthenticated) {
				return
			}
			j.logger.ErrorContext(ctx, "Board refresh job failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Board refresh job started (running every 30 seconds)")
	return nil
}

// Stop stops the periodic refresh.
func (j *BoardRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Board refresh job stopped")
}
