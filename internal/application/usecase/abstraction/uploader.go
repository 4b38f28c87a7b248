package abstraction

import (
	"context"
	"io"

	"celebra/internal/domain/entity"
)

type Uploader interface {
	Upload(ctx context.Context, body io.Reader, fileSize int64,
		masterID, slot, contentType string) (entity.UploadResult, error)
}
