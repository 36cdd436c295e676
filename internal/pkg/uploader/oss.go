package uploader

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"wanderfeed/internal/pkg/config"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
)

// MediaStore turns stored object references into retrievable URLs and owns
// the underlying objects. Services hold references only; resolution happens
// per read so the bucket can move without touching rows.
type MediaStore interface {
	// UploadFile stores a file and returns its object key.
	UploadFile(file *multipart.FileHeader) (string, error)

	// Resolve returns the absolute URL for a key. Empty key resolves to "".
	Resolve(key string) string

	// ResolveOrDefault is Resolve with the default-avatar substitution
	// applied when the key is absent.
	ResolveOrDefault(key string) string

	// Delete removes the object for a key.
	Delete(key string) error
}

type AliyunOSSStore struct {
	client *oss.Client
	bucket *oss.Bucket
	config config.OSSConfig
}

func NewAliyunOSSStore() (*AliyunOSSStore, error) {
	cfg := config.GlobalConfig.OSS
	client, err := oss.New(cfg.Endpoint, cfg.AccessKeyID, cfg.AccessKeySecret)
	if err != nil {
		return nil, err
	}

	bucket, err := client.Bucket(cfg.BucketName)
	if err != nil {
		return nil, err
	}

	return &AliyunOSSStore{
		client: client,
		bucket: bucket,
		config: cfg,
	}, nil
}

func (s *AliyunOSSStore) UploadFile(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// Object key: YYYYMMDD/uuid.ext
	ext := filepath.Ext(file.Filename)
	key := fmt.Sprintf("%s/%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	if err := s.bucket.PutObject(key, src); err != nil {
		return "", err
	}

	return key, nil
}

// Resolve builds the public URL for a key. Assumes a public-read bucket or CDN;
// a private bucket would need signed URLs here.
func (s *AliyunOSSStore) Resolve(key string) string {
	if key == "" {
		return ""
	}
	return fmt.Sprintf("https://%s.%s/%s", s.config.BucketName, s.config.Endpoint, key)
}

func (s *AliyunOSSStore) ResolveOrDefault(key string) string {
	if key == "" {
		key = s.config.DefaultAvatar
	}
	return s.Resolve(key)
}

func (s *AliyunOSSStore) Delete(key string) error {
	if key == "" {
		return nil
	}
	return s.bucket.DeleteObject(key)
}

// GlobalStore instance
var GlobalStore MediaStore

func InitUploader() error {
	store, err := NewAliyunOSSStore()
	if err != nil {
		return err
	}
	GlobalStore = store
	return nil
}
