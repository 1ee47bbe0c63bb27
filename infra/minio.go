package infra

import (
	"bytes"
	"context"
	"errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ghrc19/Hed-System/config"
)

// MinioClient archives generated report files so past exports can be
// retrieved even after the operator's download is gone.
type MinioClient struct {
	Client *minio.Client
	Bucket string
}

func InitMinioClient(env *config.EnvConfig) (*MinioClient, error) {
	if env.Minio.Endpoint == "" {
		return nil, errors.New("no MinIO endpoint configured")
	}

	client, err := minio.New(env.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(env.Minio.RootUser, env.Minio.RootPassword, ""),
		Secure: env.Minio.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, env.Minio.ReportBucket)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := client.MakeBucket(ctx, env.Minio.ReportBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, err
		}
	}

	return &MinioClient{Client: client, Bucket: env.Minio.ReportBucket}, nil
}

func (m *MinioClient) ArchiveReport(ctx context.Context, name string, data []byte, contentType string) error {
	_, err := m.Client.PutObject(ctx, m.Bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	return err
}
