package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"

	"dmac_back_end/internal/database"
)

func assetBucket() string {
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "dmac-assets"
	}
	return bucket
}

// UploadAsset pousse un objet dans le bucket d'assets et renvoie son URL
// publique.
func UploadAsset(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if database.MinIO == nil {
		return "", errors.New("stockage d'assets non configuré")
	}

	bucket := assetBucket()
	_, err := database.MinIO.PutObject(ctx, bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", err
	}

	scheme := "http"
	if os.Getenv("MINIO_USE_SSL") == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, os.Getenv("MINIO_ENDPOINT"), bucket, objectName), nil
}
