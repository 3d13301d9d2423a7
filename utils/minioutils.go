package utils

import (
	"context"
	"fmt"
	"io"
	"strings"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/openprocure/portal-go/minio"
)

// UploadObject uploads content as an object to MinIO with specified content-type.
func UploadObject(ctx context.Context, objectName string, contentType string, contentReader io.Reader, contentSize int64) error {
	if strings.TrimSpace(objectName) == "" {
		return fmt.Errorf("object name cannot be empty")
	}

	_, err := minio.Client.PutObject(ctx, minio.BucketName, objectName, contentReader, contentSize, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// DownloadObject opens a reader over the stored object; the caller closes it.
func DownloadObject(ctx context.Context, objectName string) (io.ReadCloser, error) {
	return minio.Client.GetObject(ctx, minio.BucketName, objectName, minioSDK.GetObjectOptions{})
}

// DeleteObject deletes the specified object from the MinIO bucket.
func DeleteObject(ctx context.Context, objectName string) error {
	return minio.Client.RemoveObject(ctx, minio.BucketName, objectName, minioSDK.RemoveObjectOptions{})
}
