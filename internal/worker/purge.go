package worker

import (
	"context"
	"errors"
	"fmt"

	"estate/internal/listing"
	"estate/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

var errNoSession = errors.New("purge job without a session")

// PurgeWorker removes the listings of ended sessions.
type PurgeWorker struct {
	river.WorkerDefaults[listing.PurgeJobArgs]

	listings listing.Listings
}

// NewPurgeWorker returns a worker purging through listings.
func NewPurgeWorker(listings listing.Listings) *PurgeWorker {
	return &PurgeWorker{listings: listings}
}

// Work is idempotent; retrying a purge removes whatever is left.
func (p *PurgeWorker) Work(ctx context.Context, job *river.Job[listing.PurgeJobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobId", job.ID),
		zap.Stringer("sessionId", job.Args.SessionID),
		zap.String("reason", string(job.Args.Reason)))

	if job.Args.SessionID.IsZero() {
		return river.JobCancel(errNoSession) //nolint: wrapcheck
	}

	n, err := p.listings.PurgeSession(ctx, job.Args.SessionID)
	if err != nil {
		logger.Error(ctx, "could not purge session listings", zap.Error(err), zap.Int("attempt", job.Attempt))

		return fmt.Errorf("could not purge session listings: %w", err)
	}

	logger.Debug(ctx, "session listings purged", zap.Int64("count", n))

	return nil
}
