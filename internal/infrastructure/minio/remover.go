package minio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"celebra/pkg/logger"
)

type Remover struct {
	minioClient *minio.Client
	cfg         *RemoverConfig
}

func NewRemover(minioClient *minio.Client, cfg *RemoverConfig) *Remover {
	return &Remover{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Remove deletes the named objects from the configured bucket. Best-effort:
// every object is attempted regardless of earlier failures, and the joined
// error reports the ones that could not be removed. RemoveObject on a
// missing object succeeds, so replaying a delete is a no-op.
func (r *Remover) Remove(ctx context.Context, objectNames []string) error {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(r.cfg.Timeout)*time.Millisecond)
	defer cancel()

	var errs []error
	for _, name := range objectNames {
		err := r.minioClient.RemoveObject(ctx, r.cfg.Bucket, name, minio.RemoveObjectOptions{})
		if err != nil {
			logger.Error("failed to remove object", "object", name, "err", err)
			errs = append(errs, fmt.Errorf("remove %s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}
