package contracts

import (
	"context"
	"time"
)

// Storage keeps exported appointment files in an object store.
type Storage interface {
	UploadObject(ctx context.Context, bucketName, objectName, contentType string, content []byte) (string, error)
	GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error)
	DeleteObject(ctx context.Context, bucketName, objectName string) error
}
