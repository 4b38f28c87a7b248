package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"celebra/internal/domain/model"
)

type fakeWishRemover struct {
	removed []string
	err     error
}

func (f *fakeWishRemover) RemoveByID(_ context.Context, id string) error {
	f.removed = append(f.removed, id)

	return f.err
}

func TestDeleteWish(t *testing.T) {
	t.Parallel()

	wish := &model.Wish{
		ID:            "w1",
		ImageURL:      "https://host/b/profile.webp",
		JourneyImages: []string{"https://host/b/journey-0.webp"},
	}

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"profile.webp", "journey-0.webp"}).Return(nil)

	remover := &fakeWishRemover{}
	d := NewDeleter(&fakeWishRetriever{wish: wish}, remover, blobs)

	status, err := d.DeleteWish(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"w1"}, remover.removed)
	blobs.AssertExpectations(t)
}

func TestDeleteWish_NotFound(t *testing.T) {
	t.Parallel()

	d := NewDeleter(&fakeWishRetriever{err: errors.New("no documents")}, &fakeWishRemover{}, &mockBlobRemover{})

	status, err := d.DeleteWish(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, status)
}

// A failing blob delete must not keep the record alive.
func TestDeleteWish_BlobFailureStillRemovesRow(t *testing.T) {
	t.Parallel()

	wish := &model.Wish{ID: "w1", ImageURL: "https://host/b/profile.webp"}

	blobs := &mockBlobRemover{}
	blobs.On("Remove", mock.Anything, []string{"profile.webp"}).Return(errors.New("storage unreachable"))

	remover := &fakeWishRemover{}
	d := NewDeleter(&fakeWishRetriever{wish: wish}, remover, blobs)

	status, err := d.DeleteWish(context.Background(), "w1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, []string{"w1"}, remover.removed)
}

func TestDeleteWish_RowRemovalFailure(t *testing.T) {
	t.Parallel()

	wish := &model.Wish{ID: "w1"}
	d := NewDeleter(&fakeWishRetriever{wish: wish},
		&fakeWishRemover{err: errors.New("store unreachable")}, &mockBlobRemover{})

	status, err := d.DeleteWish(context.Background(), "w1")
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, status)
}
