package s3_test

import (
	"bloom/config"
	"bloom/infras/otel/mocks"
	"bloom/infras/s3"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(endpoint string) *config.Config {
	cfg := &config.Config{}
	cfg.External.S3.APIEndpoint = endpoint
	cfg.External.S3.AccessKeyID = "key"
	cfg.External.S3.SecretAccessKey = "secret"
	cfg.External.S3.BucketName = "bloom"

	return cfg
}

func TestUpload(t *testing.T) {
	var (
		gotPath        string
		gotMethod      string
		gotContentType string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		_, _ = io.Copy(io.Discard, r.Body)

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	client := s3.New(newConfig(server.URL), mocks.NewOtel())

	url, err := client.Upload(context.Background(), "", "backups/bookings", "bookings.csv", "text/csv", []byte("a,b\n"))
	require.NoError(t, err)

	assert.Equal(t, "/bloom/backups/bookings/bookings.csv", gotPath)
	assert.Equal(t, "text/csv", gotContentType)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, server.URL+"/bloom/backups/bookings/bookings.csv", url)
}

func TestUploadPublicDomain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	cfg := newConfig(server.URL)
	cfg.External.S3.PublicDomain = "https://cdn.bloom.studio/"

	url, err := s3.New(cfg, mocks.NewOtel()).Upload(context.Background(), "archive", "daily", "x.csv", "text/csv", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.bloom.studio/daily/x.csv", url)
}

func TestUploadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(server.Close)

	_, err := s3.New(newConfig(server.URL), mocks.NewOtel()).Upload(context.Background(), "", "d", "f.csv", "text/csv", []byte("x"))
	assert.Error(t, err)
}
