package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"github.com/shenikar/cityfix_backend/internal/models"
)

// HTTPFetcher скачивает фото жалоб по публичному URL
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// Fetch возвращает байты изображения и его MIME-тип.
// Любая ошибка оборачивает models.ErrFetchFailed.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (models.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %v", models.ErrFetchFailed, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %v", models.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Image{}, fmt.Errorf("%w: status %d", models.ErrFetchFailed, resp.StatusCode)
	}

	body := io.Reader(resp.Body)
	if f.maxBytes > 0 {
		body = io.LimitReader(resp.Body, f.maxBytes+1)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return models.Image{}, fmt.Errorf("%w: %v", models.ErrFetchFailed, err)
	}
	if len(data) == 0 {
		return models.Image{}, fmt.Errorf("%w: empty body", models.ErrFetchFailed)
	}
	if f.maxBytes > 0 && int64(len(data)) > f.maxBytes {
		return models.Image{}, fmt.Errorf("%w: image exceeds %d bytes", models.ErrFetchFailed, f.maxBytes)
	}

	return models.Image{Data: data, MIMEType: mimetype.Detect(data).String()}, nil
}
