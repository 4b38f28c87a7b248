package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"

	"celebra/internal/domain/entity"
	"celebra/internal/domain/repository/minio"
	"celebra/pkg/utils"
)

// Uploader stores a form photo or audio clip under a name derived from the
// wish's master id, so every blob of one wish can be found and deleted
// together.
type Uploader struct {
	minioUploader minio.Uploader
}

func NewUploader(minioUploader minio.Uploader) *Uploader {
	return &Uploader{
		minioUploader: minioUploader,
	}
}

// Upload writes the body as <masterID>-<slot><ext> and returns its public
// location. slot distinguishes the blobs of one record, e.g. "profile" or
// "journey-0".
func (u *Uploader) Upload(ctx context.Context, body io.Reader, fileSize int64,
	masterID, slot, contentType string,
) (entity.UploadResult, error) {
	if masterID == "" || slot == "" {
		return entity.UploadResult{}, errors.New("master_id and slot are required")
	}

	objectName := fmt.Sprintf("%s-%s%s", masterID, slot, utils.GetExtensionFromMimeType(contentType))

	result, err := u.minioUploader.UploadFile(ctx, body, fileSize, objectName, contentType)
	if err != nil {
		return entity.UploadResult{}, err
	}

	return result, nil
}
