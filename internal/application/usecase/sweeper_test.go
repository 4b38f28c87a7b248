package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"celebra/internal/domain/model"
	"celebra/internal/domain/repository/broker"
)

type mockWishStore struct {
	mock.Mock
}

func (m *mockWishStore) GetExpired(ctx context.Context, cutoff time.Time) ([]model.Wish, error) {
	args := m.Called(ctx, cutoff)

	var wishes []model.Wish
	if v := args.Get(0); v != nil {
		wishes = v.([]model.Wish)
	}

	return wishes, args.Error(1)
}

func (m *mockWishStore) RemoveExpired(ctx context.Context, ids []string, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, ids, cutoff)

	return int64(args.Int(0)), args.Error(1)
}

type mockInvitationStore struct {
	mock.Mock
}

func (m *mockInvitationStore) GetExpired(ctx context.Context, asOf time.Time) ([]model.Invitation, error) {
	args := m.Called(ctx, asOf)

	var invitations []model.Invitation
	if v := args.Get(0); v != nil {
		invitations = v.([]model.Invitation)
	}

	return invitations, args.Error(1)
}

func (m *mockInvitationStore) RemoveExpired(ctx context.Context, ids []string, asOf time.Time) (int64, error) {
	args := m.Called(ctx, ids, asOf)

	return int64(args.Int(0)), args.Error(1)
}

func (m *mockInvitationStore) RemoveStale(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)

	return int64(args.Int(0)), args.Error(1)
}

type mockBlobRemover struct {
	mock.Mock
}

func (m *mockBlobRemover) Remove(ctx context.Context, objectNames []string) error {
	args := m.Called(ctx, objectNames)

	return args.Error(0)
}

type mockJournal struct {
	mock.Mock
}

func (m *mockJournal) Publish(ctx context.Context, event broker.Event) error {
	args := m.Called(ctx, event)

	return args.Error(0)
}

func newTestSweeper(wishes *mockWishStore, invitations *mockInvitationStore,
	blobs *mockBlobRemover, journal *mockJournal, now time.Time,
) *Sweeper {
	s := NewSweeper(wishes, wishes, invitations, invitations, invitations, blobs, nil)
	if journal != nil {
		s.journal = journal
	}
	s.now = func() time.Time { return now }

	return s
}

func TestSweepWishes_CutoffIsStrictTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, now.Add(-24*time.Hour)).Return(nil, nil)

	s := newTestSweeper(wishes, &mockInvitationStore{}, &mockBlobRemover{}, nil, now)

	require.NoError(t, s.SweepWishes(context.Background()))
	wishes.AssertExpectations(t)
	wishes.AssertNotCalled(t, "RemoveExpired", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepWishes_BlobNameDerivation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, cutoff).Return([]model.Wish{
		{
			ID:            "w1",
			ImageURL:      "https://host/bucket/abc123.webp",
			JourneyImages: []string{"https://host/bucket/abc123-journey-0.webp"},
		},
	}, nil)
	wishes.On("RemoveExpired", mock.Anything, []string{"w1"}, cutoff).Return(1, nil)

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"abc123.webp", "abc123-journey-0.webp"}).Return(nil)

	s := newTestSweeper(wishes, &mockInvitationStore{}, blobs, nil, now)

	require.NoError(t, s.SweepWishes(context.Background()))
	wishes.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

func TestSweepWishes_NoBlobsRowStillDeleted(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, cutoff).Return([]model.Wish{{ID: "bare"}}, nil)
	wishes.On("RemoveExpired", mock.Anything, []string{"bare"}, cutoff).Return(1, nil)

	blobs := &mockBlobRemover{}

	s := newTestSweeper(wishes, &mockInvitationStore{}, blobs, nil, now)

	require.NoError(t, s.SweepWishes(context.Background()))
	wishes.AssertExpectations(t)
	blobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestSweepWishes_MalformedReferenceSkipped(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, cutoff).Return([]model.Wish{
		{
			ID:            "w1",
			ImageURL:      "https://host/bucket/",
			JourneyImages: []string{"https://host/bucket/ok.webp"},
		},
	}, nil)
	wishes.On("RemoveExpired", mock.Anything, []string{"w1"}, cutoff).Return(1, nil)

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"ok.webp"}).Return(nil)

	s := newTestSweeper(wishes, &mockInvitationStore{}, blobs, nil, now)

	require.NoError(t, s.SweepWishes(context.Background()))
	wishes.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

func TestSweepWishes_PartialBlobFailureDoesNotBlockRows(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, cutoff).Return([]model.Wish{
		{ID: "w1", ImageURL: "https://host/b/one.webp"},
		{ID: "w2", ImageURL: "https://host/b/two.webp"},
	}, nil)
	wishes.On("RemoveExpired", mock.Anything, []string{"w1", "w2"}, cutoff).Return(2, nil)

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"one.webp"}).Return(errors.New("storage unreachable"))
	blobs.On("Remove", mock.Anything, []string{"two.webp"}).Return(nil)

	s := newTestSweeper(wishes, &mockInvitationStore{}, blobs, nil, now)

	require.NoError(t, s.SweepWishes(context.Background()))
	wishes.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

func TestSweepWishes_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, cutoff).Return([]model.Wish{
		{ID: "w1", ImageURL: "https://host/b/one.webp"},
	}, nil).Once()
	wishes.On("GetExpired", mock.Anything, cutoff).Return(nil, nil)
	wishes.On("RemoveExpired", mock.Anything, []string{"w1"}, cutoff).Return(1, nil).Once()

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"one.webp"}).Return(nil).Once()

	s := newTestSweeper(wishes, &mockInvitationStore{}, blobs, nil, now)

	require.NoError(t, s.SweepWishes(context.Background()))
	require.NoError(t, s.SweepWishes(context.Background()))
	wishes.AssertExpectations(t)
	wishes.AssertNumberOfCalls(t, "RemoveExpired", 1)
}

func TestSweepWishes_StoreUnavailableDegradesToNoop(t *testing.T) {
	t.Parallel()

	now := time.Now()

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, mock.Anything).Return(nil, errors.New("store unreachable"))

	blobs := &mockBlobRemover{}

	s := newTestSweeper(wishes, &mockInvitationStore{}, blobs, nil, now)

	require.Error(t, s.SweepWishes(context.Background()))
	blobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	wishes.AssertNotCalled(t, "RemoveExpired", mock.Anything, mock.Anything, mock.Anything)
}

func TestSweepWishes_JournalsPendingThenDeleted(t *testing.T) {
	t.Parallel()

	now := time.Now()
	cutoff := now.Add(-24 * time.Hour)

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, cutoff).Return([]model.Wish{
		{ID: "w1", ImageURL: "https://host/b/one.webp"},
	}, nil)
	wishes.On("RemoveExpired", mock.Anything, []string{"w1"}, cutoff).Return(1, nil)

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"one.webp"}).Return(nil)

	journal := &mockJournal{}
	journal.On("Publish", mock.Anything, mock.MatchedBy(func(e broker.Event) bool {
		return e.Phase == broker.PhasePending && e.Kind == "wish" && e.ID == "w1" &&
			len(e.Blobs) == 1 && e.Blobs[0] == "one.webp"
	})).Return(nil).Once()
	journal.On("Publish", mock.Anything, mock.MatchedBy(func(e broker.Event) bool {
		return e.Phase == broker.PhaseDeleted && e.Kind == "wish" && e.ID == "w1"
	})).Return(nil).Once()

	s := newTestSweeper(wishes, &mockInvitationStore{}, blobs, journal, now)

	require.NoError(t, s.SweepWishes(context.Background()))
	journal.AssertExpectations(t)
}

func TestSweepInvitations_ExpiresAtIsAuthoritative(t *testing.T) {
	t.Parallel()

	now := time.Now()

	// Marriage date in the future, expires_at already past: the periodic
	// sweep trusts expires_at and removes the row.
	invitations := &mockInvitationStore{}
	invitations.On("GetExpired", mock.Anything, now).Return([]model.Invitation{
		{
			ID:           "inv1",
			MarriageDate: now.Add(48 * time.Hour),
			ExpiresAt:    now.Add(-time.Minute),
		},
	}, nil)
	invitations.On("RemoveExpired", mock.Anything, []string{"inv1"}, now).Return(1, nil)

	s := newTestSweeper(&mockWishStore{}, invitations, &mockBlobRemover{}, nil, now)

	require.NoError(t, s.SweepInvitations(context.Background()))
	invitations.AssertExpectations(t)
}

func TestSweepInvitations_ImageIDFragmentDerivation(t *testing.T) {
	t.Parallel()

	now := time.Now()

	invitations := &mockInvitationStore{}
	invitations.On("GetExpired", mock.Anything, now).Return([]model.Invitation{
		{
			ID:       "inv1",
			ImageIDs: []string{"xyz"},
			Images: []string{
				"https://host/b/xyz-1.png",
				"https://host/b/xyz-2.png",
				"https://host/b/other.png",
			},
			ExpiresAt: now.Add(-time.Hour),
		},
	}, nil)
	invitations.On("RemoveExpired", mock.Anything, []string{"inv1"}, now).Return(1, nil)

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"xyz-1.png", "xyz-2.png"}).Return(nil)

	s := newTestSweeper(&mockWishStore{}, invitations, blobs, nil, now)

	require.NoError(t, s.SweepInvitations(context.Background()))
	invitations.AssertExpectations(t)
	blobs.AssertExpectations(t)
}

func TestSweepInvitations_NoImageIDsRowStillDeleted(t *testing.T) {
	t.Parallel()

	now := time.Now()

	invitations := &mockInvitationStore{}
	invitations.On("GetExpired", mock.Anything, now).Return([]model.Invitation{
		{
			ID:        "inv1",
			Images:    []string{"https://host/b/orphan.png"},
			ExpiresAt: now.Add(-time.Hour),
		},
	}, nil)
	invitations.On("RemoveExpired", mock.Anything, []string{"inv1"}, now).Return(1, nil)

	blobs := &mockBlobRemover{}

	s := newTestSweeper(&mockWishStore{}, invitations, blobs, nil, now)

	require.NoError(t, s.SweepInvitations(context.Background()))
	blobs.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	invitations.AssertExpectations(t)
}

func TestCheckExpiredInvitations_GraceWindowCutoff(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	invitations := &mockInvitationStore{}
	invitations.On("RemoveStale", mock.Anything, now.Add(-24*time.Hour)).Return(1, nil)

	s := newTestSweeper(&mockWishStore{}, invitations, &mockBlobRemover{}, nil, now)

	require.NoError(t, s.CheckExpiredInvitations(context.Background()))
	invitations.AssertExpectations(t)
}

func TestRun_SkipsOverlappingInvocation(t *testing.T) {
	t.Parallel()

	now := time.Now()
	entered := make(chan struct{})
	release := make(chan struct{})

	wishes := &mockWishStore{}
	wishes.On("GetExpired", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		close(entered)
		<-release
	}).Return(nil, nil).Once()

	invitations := &mockInvitationStore{}
	invitations.On("GetExpired", mock.Anything, mock.Anything).Return(nil, nil).Once()

	s := newTestSweeper(wishes, invitations, &mockBlobRemover{}, nil, now)

	done := make(chan struct{})
	go func() {
		s.Run(context.Background())
		close(done)
	}()

	<-entered
	assert.Equal(t, SweepRunning, s.State())

	// Second invocation while the first is blocked inside the wish sweep:
	// it must return immediately without touching the stores again.
	s.Run(context.Background())

	close(release)
	<-done

	assert.Equal(t, SweepIdle, s.State())
	wishes.AssertNumberOfCalls(t, "GetExpired", 1)
	invitations.AssertNumberOfCalls(t, "GetExpired", 1)
}
