package usecase

import (
	"context"
	"errors"
	"net/http"

	"celebra/internal/domain/repository/database"
	"celebra/internal/domain/repository/minio"
	"celebra/pkg/logger"
)

// Deleter implements the manual wish delete endpoint. Blobs first,
// best-effort, then the row: the row is removed even when a blob delete
// fails, matching the sweeper's lossy-cleanup policy.
type Deleter struct {
	wishRetriever database.WishRetriever
	wishRemover   database.WishRemover
	blobRemover   minio.Remover
}

func NewDeleter(wishRetriever database.WishRetriever, wishRemover database.WishRemover,
	blobRemover minio.Remover,
) *Deleter {
	return &Deleter{
		wishRetriever: wishRetriever,
		wishRemover:   wishRemover,
		blobRemover:   blobRemover,
	}
}

// DeleteWish removes a wish's blobs and its record.
func (d *Deleter) DeleteWish(ctx context.Context, id string) (int, error) {
	wish, err := d.wishRetriever.GetByID(ctx, id)
	if err != nil {
		return http.StatusNotFound, errors.New("wish not found")
	}

	if names := wishBlobNames(wish); len(names) > 0 {
		if err := d.blobRemover.Remove(ctx, names); err != nil {
			logger.Error("wish blob cleanup incomplete on manual delete", "wish", id, "err", err)
		}
	}

	if err := d.wishRemover.RemoveByID(ctx, id); err != nil {
		return http.StatusInternalServerError, errors.New("failed to remove wish")
	}

	return http.StatusOK, nil
}
