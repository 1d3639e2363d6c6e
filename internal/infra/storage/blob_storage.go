// Package storage implements content-addressed durable storage on top of gocloud.dev/blob.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"mime"
	"strings"

	"provenance/config"
	"provenance/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

const defaultBucketURL = "mem://"

// blobStorage stores objects under <prefix>/<sha256><ext>. Re-uploading the same bytes
// is a no-op that returns the same reference.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for ContentStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket
func New(params Params) (service.ContentStorage, error) {
	bucketURL := defaultBucketURL
	publicBaseURL := ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Content storage initialized", slog.String("bucket", redactBucketURL(bucketURL)))

	return NewBlobStorage(bucket, publicBaseURL, params.Logger), nil
}

// NewBlobStorage wraps an open bucket
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.ContentStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload writes data under a content-addressed key and returns that key.
func (s *blobStorage) Upload(ctx context.Context, prefix string, data []byte, contentType string) (string, error) {
	sum := sha256.Sum256(data)
	key := prefix + "/" + hex.EncodeToString(sum[:]) + extensionFor(contentType)

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrapf(err, "failed to check object %s", key)
	}
	if exists {
		return key, nil
	}

	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	s.logger.Debug("[Storage] Object written",
		slog.String("key", key),
		slog.Int("bytes", len(data)),
	)

	return key, nil
}

// Download reads the object stored under ref.
func (s *blobStorage) Download(ctx context.Context, ref string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, ref)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read object %s", ref)
	}

	return data, nil
}

// URL returns the public location of ref, or ref itself when no public base is configured.
func (s *blobStorage) URL(ref string) string {
	if s.publicBaseURL == "" {
		return ref
	}

	return s.publicBaseURL + "/" + ref
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "application/json":
		return ".json"
	case "application/octet-stream", "":
		return ".bin"
	}

	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ".bin"
	}

	return exts[0]
}

// redactBucketURL drops query parameters, which may carry credentials.
func redactBucketURL(bucketURL string) string {
	if i := strings.IndexByte(bucketURL, '?'); i >= 0 {
		return bucketURL[:i]
	}

	return bucketURL
}
