package s3

import (
	"bytes"
	"context"
	"fmt"

	"github.com/medicard/backend/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type UploadFileRequest struct {
	Name        string
	ContentType string
	File        []byte
}

type Service interface {
	UploadFile(ctx context.Context, req *UploadFileRequest) (string, error)
}

type Storage struct {
	cli    *minio.Client
	bucket string
	scheme string
	host   string
}

func New(conf config.MinioConfig) *Storage {
	cli, err := minio.New(
		conf.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
			Secure: conf.UseSSL,
		},
	)
	if err != nil {
		zap.L().Fatal("Failed to create minio client", zap.Error(err))
	}

	ctx := context.Background()
	exists, err := cli.BucketExists(ctx, conf.Bucket)
	if err != nil {
		zap.L().Fatal("Failed to check bucket", zap.Error(err))
	}

	if !exists {
		if err = cli.MakeBucket(ctx, conf.Bucket, minio.MakeBucketOptions{}); err != nil {
			zap.L().Fatal("Failed to create bucket", zap.Error(err))
		}
	}

	scheme := "http"
	if conf.UseSSL {
		scheme = "https"
	}

	return &Storage{
		cli:    cli,
		bucket: conf.Bucket,
		scheme: scheme,
		host:   conf.Endpoint,
	}
}

func (s *Storage) UploadFile(ctx context.Context, req *UploadFileRequest) (string, error) {
	_, err := s.cli.PutObject(
		ctx,
		s.bucket,
		req.Name,
		bytes.NewReader(req.File),
		int64(len(req.File)),
		minio.PutObjectOptions{ContentType: req.ContentType},
	)
	if err != nil {
		zap.L().Error(
			"Failed to upload file",
			zap.String("name", req.Name),
			zap.Error(err),
		)
		return "", err
	}

	return fmt.Sprintf("%s://%s/%s/%s", s.scheme, s.host, s.bucket, req.Name), nil
}
