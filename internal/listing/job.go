package listing

import (
	"estate/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// PurgeReason tells why a session's listings are being removed.
type PurgeReason string

const (
	// PurgeEnded is queued when a session is signed out or revoked.
	PurgeEnded PurgeReason = "ended"
	// PurgeExpired is queued when a session opens, scheduled for the moment
	// it expires. It covers sessions that are never signed out.
	PurgeExpired PurgeReason = "expired"
)

// PurgeJobArgs asks a worker to remove the listings submitted in a session
// that is over.
//
// A session normally has two purges: the expiry one queued when it opened
// and, if it is ended early, the one queued then. The reason is part of the
// unique key so the early purge is not dropped as a duplicate of the
// scheduled one. Whichever runs second finds nothing left to remove.
type PurgeJobArgs struct {
	SessionID domain.SessionID `json:"sessionId" river:"unique"`
	Reason    PurgeReason      `json:"reason"    river:"unique"`
}

func (args PurgeJobArgs) Kind() string { return "PurgeSessionListings" }

// InsertOpts makes a purge unique per session and reason while it is still
// queued or running.
func (args PurgeJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 5,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
