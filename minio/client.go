package minio

import (
	"context"
	"log"

	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/openprocure/portal-go/config"
)

var Client *minioSDK.Client
var BucketName string

func Init() {
	var err error
	Client, err = minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatal("Failed to connect to MinIO:", err)
	}

	BucketName = config.MinioBucket

	ctx := context.Background()
	exists, err := Client.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatal("Failed to check MinIO bucket:", err)
	}
	if !exists {
		if err := Client.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatal("Failed to create MinIO bucket:", err)
		}
	}

	log.Println("MinIO connected, bucket:", BucketName)
}
