package embedding

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"provenance/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPEmbeddingService_Embed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		file, header, err := r.FormFile("image")
		if !assert.NoError(t, err) {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		defer file.Close()

		data, _ := io.ReadAll(file)
		assert.Equal(t, []byte("png-bytes"), data)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"embedding":[0.1,0.2,0.3]}`))
	}))
	defer server.Close()

	svc := NewHTTPEmbeddingService(server.URL, server.Client(), 3)

	vector, err := svc.Embed(context.Background(), []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vector)
}

func TestHTTPEmbeddingService_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		dimension int
		wantErr   string
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "model not loaded", wantErr: "status 500"},
		{name: "malformed json", status: http.StatusOK, body: "{", wantErr: "decode"},
		{name: "empty vector", status: http.StatusOK, body: `{"embedding":[]}`, wantErr: "empty vector"},
		{name: "wrong dimension", status: http.StatusOK, body: `{"embedding":[1,2]}`, dimension: 3, wantErr: "expected 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewHTTPEmbeddingService(server.URL, server.Client(), tt.dimension).
				Embed(context.Background(), []byte("x"), "image/png")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewEmbeddingService_RequiresEndpoint(t *testing.T) {
	_, err := NewEmbeddingService(&config.Config{})
	assert.Error(t, err)
}
