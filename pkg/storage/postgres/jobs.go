package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"estate/pkg/storage"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
)

// jobClient is an insert-only River client. It never works jobs, so it is
// not bound to a pool and is shared by every transaction.
var jobClient = sync.OnceValues(func() (*river.Client[*sql.Tx], error) { //nolint: gochecknoglobals
	return river.NewClient[*sql.Tx](riverdatabasesql.New(nil), &river.Config{})
})

// AddJob enqueues a River job. Inside a transaction the job becomes visible
// only when the transaction commits; outside of one a short transaction is
// opened for the insert. It reports false when River skipped the job as a
// duplicate of a unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		var inserted bool
		err := p.WithTx(ctx, func(s storage.AllStorage) error {
			var err error
			inserted, err = s.AddJob(ctx, args, opts)

			return err
		})

		return inserted, err
	}

	client, err := jobClient()
	if err != nil {
		return false, fmt.Errorf("could not create river queue client: %w", err)
	}

	job, err := client.InsertTx(ctx, tx, args, opts)
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !job.UniqueSkippedAsDuplicate, nil
}
