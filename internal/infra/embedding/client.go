// Package embedding is the HTTP client of the image embedding service.
package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"

	"provenance/config"
	"provenance/internal/domain/service"

	"github.com/pkg/errors"
)

const maxErrorBody = 1 << 10

type embeddingResponse struct {
	Embedding []float32 `json:"embedding"`
}

// httpEmbeddingService posts the image as multipart field "image" and reads {"embedding": [...]}.
type httpEmbeddingService struct {
	endpoint   string
	httpClient *http.Client
	dimension  int
}

// NewEmbeddingService creates the embedding client from config
func NewEmbeddingService(cfg *config.Config) (service.EmbeddingService, error) {
	if cfg.Embedding == nil || cfg.Embedding.Endpoint == "" {
		return nil, errors.New("embedding endpoint is required")
	}

	dimension := 0
	if cfg.Qdrant != nil {
		dimension = int(cfg.Qdrant.VectorSize)
	}

	return NewHTTPEmbeddingService(cfg.Embedding.Endpoint, &http.Client{Timeout: cfg.Embedding.Timeout}, dimension), nil
}

// NewHTTPEmbeddingService creates a client. A zero dimension disables the length check.
func NewHTTPEmbeddingService(endpoint string, httpClient *http.Client, dimension int) service.EmbeddingService {
	return &httpEmbeddingService{
		endpoint:   endpoint,
		httpClient: httpClient,
		dimension:  dimension,
	}
}

// Embed returns the fingerprint vector of image.
func (s *httpEmbeddingService) Embed(ctx context.Context, image []byte, contentType string) ([]float32, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="image"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := part.Write(image); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := writer.Close(); err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, body)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "embedding request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

		return nil, errors.Errorf("embedding service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var out embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, errors.Wrap(err, "failed to decode embedding response")
	}
	if len(out.Embedding) == 0 {
		return nil, errors.New("embedding service returned an empty vector")
	}
	if s.dimension > 0 && len(out.Embedding) != s.dimension {
		return nil, errors.Errorf("embedding has %d dimensions, expected %d", len(out.Embedding), s.dimension)
	}

	return out.Embedding, nil
}
