package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs in the same database as the listings,
// so a job added inside WithTx is only visible once the transaction commits.
type JobStorage interface {
	// AddJob enqueues a job and reports whether it was inserted. A unique
	// job that already exists is skipped and reported as false.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
