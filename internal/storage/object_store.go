// Package storage - lưu trữ file (logo, hình sản phẩm, hình hóa đơn) trên MinIO.
package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStore định nghĩa interface lưu trữ object.
// Các handler chỉ phụ thuộc interface này để test được không cần MinIO thật.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// MinioStore triển khai ObjectStore trên MinIO/S3 compatible storage.
type MinioStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

var (
	defaultStore ObjectStore
	storeMu      sync.RWMutex
)

// SetDefaultStore đặt object store mặc định cho toàn ứng dụng (gọi lúc init).
func SetDefaultStore(store ObjectStore) {
	storeMu.Lock()
	defer storeMu.Unlock()
	defaultStore = store
}

// GetDefaultStore trả về object store mặc định, nil nếu chưa cấu hình MinIO.
func GetDefaultStore() ObjectStore {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return defaultStore
}

// NewMinioStore kết nối MinIO và đảm bảo bucket tồn tại.
func NewMinioStore(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("khởi tạo minio client: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("kiểm tra bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("tạo bucket: %w", err)
		}
	}
	return &MinioStore{client: client, bucket: bucket, endpoint: endpoint, useSSL: useSSL}, nil
}

// Put upload object và trả về public URL của object.
func (m *MinioStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	_, err := m.client.PutObject(ctx, m.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	scheme := "http"
	if m.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.endpoint, m.bucket, key), nil
}

// Delete xóa object theo key.
func (m *MinioStore) Delete(ctx context.Context, key string) error {
	if err := m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}

// BuildObjectKey sinh key duy nhất cho file upload: <folder>/<companyId>/<uuid><ext>
func BuildObjectKey(folder, companyID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("%s/%s/%s%s", folder, companyID, uuid.NewString(), ext)
}

// KeyFromURL tách object key từ public URL do Put trả về.
// Trả về chuỗi rỗng nếu URL không thuộc bucket của store.
func KeyFromURL(rawURL, bucket string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	prefix := "/" + bucket + "/"
	if !strings.HasPrefix(u.Path, prefix) {
		return ""
	}
	return strings.TrimPrefix(u.Path, prefix)
}
