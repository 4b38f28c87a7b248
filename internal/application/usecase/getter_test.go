package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebra/internal/domain/model"
)

type fakeWishRetriever struct {
	wish *model.Wish
	err  error
}

func (f *fakeWishRetriever) GetByID(context.Context, string) (*model.Wish, error) {
	return f.wish, f.err
}

// fakeInvitationRetriever records whether the access-time check ran before
// the lookup.
type fakeInvitationRetriever struct {
	invitation     *model.Invitation
	err            error
	checkedFirst   bool
	checkerInvoked *bool
}

func (f *fakeInvitationRetriever) GetByID(context.Context, string) (*model.Invitation, error) {
	f.checkedFirst = *f.checkerInvoked

	return f.invitation, f.err
}

type fakeStaleChecker struct {
	invoked bool
	err     error
}

func (f *fakeStaleChecker) CheckExpiredInvitations(context.Context) error {
	f.invoked = true

	return f.err
}

func TestGetWish(t *testing.T) {
	t.Parallel()

	wish := &model.Wish{ID: "w1", To: "Alice"}
	g := NewGetter(&fakeWishRetriever{wish: wish}, nil, &fakeStaleChecker{})

	got, err := g.GetWish(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, wish, got)
}

func TestGetWish_NotFound(t *testing.T) {
	t.Parallel()

	g := NewGetter(&fakeWishRetriever{err: errors.New("no documents")}, nil, &fakeStaleChecker{})

	_, err := g.GetWish(context.Background(), "missing")
	require.EqualError(t, err, "wish not found")
}

func TestGetInvitation_RunsAccessCheckBeforeLookup(t *testing.T) {
	t.Parallel()

	checker := &fakeStaleChecker{}
	retriever := &fakeInvitationRetriever{
		invitation:     &model.Invitation{ID: "inv1"},
		checkerInvoked: &checker.invoked,
	}
	g := NewGetter(&fakeWishRetriever{}, retriever, checker)

	got, err := g.GetInvitation(context.Background(), "inv1")
	require.NoError(t, err)
	assert.Equal(t, "inv1", got.ID)
	assert.True(t, checker.invoked)
	assert.True(t, retriever.checkedFirst, "expiry check must run before the lookup")
}

func TestGetInvitation_CheckFailureDoesNotHideInvitation(t *testing.T) {
	t.Parallel()

	checker := &fakeStaleChecker{err: errors.New("store unreachable")}
	retriever := &fakeInvitationRetriever{
		invitation:     &model.Invitation{ID: "inv1"},
		checkerInvoked: &checker.invoked,
	}
	g := NewGetter(&fakeWishRetriever{}, retriever, checker)

	got, err := g.GetInvitation(context.Background(), "inv1")
	require.NoError(t, err)
	assert.Equal(t, "inv1", got.ID)
}

func TestGetInvitation_DeletedByCheckIsNotFound(t *testing.T) {
	t.Parallel()

	checker := &fakeStaleChecker{}
	retriever := &fakeInvitationRetriever{
		err:            errors.New("no documents"),
		checkerInvoked: &checker.invoked,
	}
	g := NewGetter(&fakeWishRetriever{}, retriever, checker)

	_, err := g.GetInvitation(context.Background(), "expired")
	require.EqualError(t, err, "invitation not found")
	assert.True(t, checker.invoked)
}
