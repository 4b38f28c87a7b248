package minio

import (
	"context"
	"io"

	"celebra/internal/domain/entity"
)

type Uploader interface {
	UploadFile(ctx context.Context, body io.Reader, fileSize int64,
		objectName, expectedType string) (entity.UploadResult, error)
}
