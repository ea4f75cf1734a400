package worker_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"estate/internal/listing"
	mocklisting "estate/internal/listing/mock"
	"estate/internal/worker"
	"estate/pkg/domain"
	"estate/pkg/logger"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.TestEnvironment)
	os.Exit(m.Run())
}

func makeJob(id int64, sessionID domain.SessionID) *river.Job[listing.PurgeJobArgs] {
	return &river.Job[listing.PurgeJobArgs]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: 1},
		Args:   listing.PurgeJobArgs{SessionID: sessionID},
	}
}

func TestPurgeWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	listings := mocklisting.NewMockListings(ctrl)
	w := worker.NewPurgeWorker(listings)
	sessionID := domain.SessionID(uuid.New())

	listings.EXPECT().PurgeSession(gomock.Any(), sessionID).Return(int64(2), nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, sessionID)))
}

func TestPurgeWorker_Work_ErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	listings := mocklisting.NewMockListings(ctrl)
	w := worker.NewPurgeWorker(listings)
	sessionID := domain.SessionID(uuid.New())
	boom := errors.New("db down")

	listings.EXPECT().PurgeSession(gomock.Any(), sessionID).Return(int64(0), boom)

	err := w.Work(context.Background(), makeJob(2, sessionID))
	require.ErrorIs(t, err, boom)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
}

func TestPurgeWorker_Work_ZeroSessionCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := worker.NewPurgeWorker(mocklisting.NewMockListings(ctrl))

	err := w.Work(context.Background(), makeJob(3, domain.SessionID{}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestPurgeJobArgs(t *testing.T) {
	args := listing.PurgeJobArgs{}
	require.Equal(t, "PurgeSessionListings", args.Kind())
	opts := args.InsertOpts()
	require.Equal(t, 5, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
}
