package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSClient mirrors into an existing bucket, using the same "dir/" marker
// objects as S3Client.
type GCSClient struct {
	Client *storage.Client
	Bucket string
}

func NewGCSBucketClient(ctx context.Context, gcsConfig GCSConfig) (*GCSClient, error) {
	opts := make([]option.ClientOption, 0)
	if gcsConfig.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(gcsConfig.CredentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("Error creating gcs client: %w", err)
	}

	return &GCSClient{Client: client, Bucket: gcsConfig.Bucket}, nil
}

// write stores content under key. A failed copy cancels the writer so no
// partial object is committed.
func (s *GCSClient) write(ctx context.Context, key string, content io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objWriter := s.Client.Bucket(s.Bucket).Object(key).NewWriter(ctx)
	if _, uploadErr := io.Copy(objWriter, content); uploadErr != nil {
		cancel()
		_ = objWriter.Close()
		return uploadErr
	}

	return objWriter.Close()
}

func (s *GCSClient) CreateDirectory(ctx context.Context, path string) error {
	key := strings.TrimSuffix(strings.TrimPrefix(path, "/"), "/") + "/"
	return s.write(ctx, key, strings.NewReader(""))
}

func (s *GCSClient) CreateFile(ctx context.Context, path string) error {
	return s.write(ctx, strings.TrimPrefix(path, "/"), strings.NewReader(""))
}

func (s *GCSClient) WriteFile(ctx context.Context, path string, file *os.File) error {
	return s.write(ctx, strings.TrimPrefix(path, "/"), file)
}

func (s *GCSClient) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := s.Client.Bucket(s.Bucket).Object(strings.TrimPrefix(path, "/")).Attrs(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("Bucket(%q).Object(%q).Attrs: %w", s.Bucket, path, err)
	}

	return true, nil
}
