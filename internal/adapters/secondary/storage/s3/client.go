package s3

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

const defaultPresignExpiry = 5 * time.Minute

// Client обёртка над minio.Client для работы с одним bucket
type Client struct {
	client *minio.Client
	bucket string
	log    *slog.Logger
}

func NewClient(client *minio.Client, bucket string, log *slog.Logger) *Client {
	return &Client{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

// PutFile загружает файл в хранилище
func (c *Client) PutFile(ctx context.Context, path string, data []byte, contentType string) error {
	_, err := c.client.PutObject(ctx, c.bucket, path, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("s3 put failed [bucket=%s, path=%s]: %w", c.bucket, path, err)
	}

	c.log.Debug("file uploaded to s3", "path", path, "size", len(data))
	return nil
}

// GetFile скачивает файл из хранилища целиком
func (c *Client) GetFile(ctx context.Context, path string) ([]byte, error) {
	object, err := c.client.GetObject(ctx, c.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("s3 get failed [bucket=%s, path=%s]: %w", c.bucket, path, err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("s3 read failed [bucket=%s, path=%s]: %w", c.bucket, path, err)
	}

	return data, nil
}

// ListFiles возвращает ключи объектов с указанным префиксом
func (c *Client) ListFiles(ctx context.Context, prefix string) ([]string, error) {
	var files []string
	for object := range c.client.ListObjects(ctx, c.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return nil, fmt.Errorf("s3 list failed [bucket=%s, prefix=%s]: %w", c.bucket, prefix, object.Err)
		}
		// псевдо-директории пропускаем
		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		files = append(files, object.Key)
	}

	return files, nil
}

// GetPresignedURL возвращает временную ссылку на скачивание объекта
func (c *Client) GetPresignedURL(ctx context.Context, path string, expires time.Duration) (string, error) {
	if expires <= 0 {
		expires = defaultPresignExpiry
	}

	url, err := c.client.PresignedGetObject(ctx, c.bucket, path, expires, nil)
	if err != nil {
		return "", fmt.Errorf("s3 presign failed [bucket=%s, path=%s]: %w", c.bucket, path, err)
	}

	return url.String(), nil
}
