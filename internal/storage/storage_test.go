package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/cityfix_backend/internal/models"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		max     int64
		mime    string
		ext     string
		wantErr bool
	}{
		{name: "png", data: pngHeader, mime: "image/png", ext: ".png"},
		{name: "jpeg", data: []byte{0xFF, 0xD8, 0xFF, 0xE0, 0, 0x10, 'J', 'F', 'I', 'F', 0}, mime: "image/jpeg", ext: ".jpg"},
		{name: "gif", data: []byte("GIF89a\x01\x00\x01\x00"), mime: "image/gif", ext: ".gif"},
		{name: "empty", data: nil, wantErr: true},
		{name: "text", data: []byte("hello, world"), wantErr: true},
		{name: "too large", data: pngHeader, max: 4, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mime, ext, err := ValidateImage(tt.data, tt.max)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.ErrInvalidFile)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mime, mime)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestObjectPath(t *testing.T) {
	p := ObjectPath("complaints", "uid-1", ".png")
	assert.True(t, strings.HasPrefix(p, "complaints/uid-1/"))
	assert.True(t, strings.HasSuffix(p, ".png"))
	assert.NotEqual(t, p, ObjectPath("complaints", "uid-1", ".png"))
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com/a/b.png", publicURL("https://cdn.example.com/", "/a/b.png"))
	assert.Equal(t, "http://localhost:9000/bucket", s3PublicBase(S3StoreConfig{Bucket: "bucket", Endpoint: "http://localhost:9000"}))
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com", s3PublicBase(S3StoreConfig{Bucket: "b", Region: "eu-west-1"}))
	assert.Equal(t, "https://cdn.example.com", s3PublicBase(S3StoreConfig{Bucket: "b", PublicURL: "https://cdn.example.com"}))
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			_, _ = w.Write(pngHeader)
		case "/empty":
			w.WriteHeader(http.StatusOK)
		case "/big":
			_, _ = w.Write(make([]byte, 64))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(time.Second, 32)
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		img, err := f.Fetch(ctx, srv.URL+"/ok.png")
		require.NoError(t, err)
		assert.Equal(t, pngHeader, img.Data)
		assert.Equal(t, "image/png", img.MIMEType)
	})

	for _, p := range []string{"/missing", "/empty", "/big"} {
		t.Run(p, func(t *testing.T) {
			_, err := f.Fetch(ctx, srv.URL+p)
			assert.ErrorIs(t, err, models.ErrFetchFailed)
		})
	}

	t.Run("bad url", func(t *testing.T) {
		_, err := f.Fetch(ctx, "://bad")
		assert.ErrorIs(t, err, models.ErrFetchFailed)
	})
}
