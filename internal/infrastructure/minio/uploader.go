package minio

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/minio/minio-go/v7"

	"celebra/internal/domain/entity"
	"celebra/pkg/logger"
)

// detectPeekSize is how much of the body is sniffed for MIME detection
// before the stream is handed to PutObject.
const detectPeekSize = 3072

type Uploader struct {
	minioClient *minio.Client
	cfg         *UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg *UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// UploadFile stores the body under objectName and returns its public
// location. The content type is detected from the leading bytes and must
// match expectedType (a type prefix such as "image/" or a full MIME type).
func (u *Uploader) UploadFile(ctx context.Context, body io.Reader, fileSize int64,
	objectName, expectedType string,
) (entity.UploadResult, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	head := make([]byte, detectPeekSize)
	n, err := io.ReadFull(body, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return entity.UploadResult{}, fmt.Errorf("read error: %w", err)
	}
	head = head[:n]
	if len(head) == 0 {
		return entity.UploadResult{}, fmt.Errorf("read error: empty file")
	}

	detectedMIME := mimetype.Detect(head).String()
	if expectedType != "" && !strings.Contains(detectedMIME, strings.TrimSuffix(expectedType, "/")) {
		return entity.UploadResult{}, fmt.Errorf("invalid file type: detected %s, expected %s",
			detectedMIME, expectedType)
	}

	info, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName,
		io.MultiReader(bytes.NewReader(head), body), fileSize,
		minio.PutObjectOptions{
			ContentType: detectedMIME,
		})
	if err != nil {
		logger.Error("failed to upload object", "object", objectName, "err", err)

		return entity.UploadResult{}, fmt.Errorf("upload failed: %w", err)
	}

	return entity.UploadResult{
		Size:     info.Size,
		Type:     detectedMIME,
		Location: u.PublicURL(objectName),
		Bucket:   u.cfg.Bucket,
	}, nil
}

// PublicURL returns the shareable URL for an object in the upload bucket.
func (u *Uploader) PublicURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(u.cfg.PublicURL, "/"), u.cfg.Bucket, objectName)
}
