package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/cityfix_backend/internal/config"
	"github.com/shenikar/cityfix_backend/internal/models"
)

func newTestWorker(url, secret string) *Worker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewWorker(nil, logger, cfg)
}

func testEvent(t *testing.T) (Event, string) {
	dup := "A"
	event := NewEvent(EventComplaintTriaged, &models.Complaint{
		ID:          "B",
		UserID:      "u1",
		Category:    models.CategoryPothole,
		Priority:    models.PriorityHigh,
		Status:      models.StatusPending,
		DuplicateOf: &dup,
	})
	payload, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(payload)
}

func TestProcessEvent_SignsPayload(t *testing.T) {
	event, payload := testEvent(t)

	var gotBody, gotSignature, gotType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(signatureHeader)
		gotType = r.Header.Get(eventHeader)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL, "s3cret").processEvent(context.Background(), event, payload)

	require.True(t, ok)
	assert.Equal(t, payload, gotBody)
	assert.Equal(t, generateHMACSHA256(payload, "s3cret"), gotSignature)
	assert.Equal(t, string(EventComplaintTriaged), gotType)
}

func TestProcessEvent_RetriesUntilSuccess(t *testing.T) {
	event, payload := testEvent(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		assert.Empty(t, r.Header.Get(signatureHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL, "").processEvent(context.Background(), event, payload)

	assert.True(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessEvent_GivesUp(t *testing.T) {
	event, payload := testEvent(t)

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ok := newTestWorker(srv.URL, "").processEvent(context.Background(), event, payload)

	assert.False(t, ok)
	assert.Equal(t, int32(3), calls.Load())
}

func TestProcessEvent_NoURL(t *testing.T) {
	event, payload := testEvent(t)

	assert.False(t, newTestWorker("", "").processEvent(context.Background(), event, payload))
}

func TestNewEvent(t *testing.T) {
	event, payload := testEvent(t)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "B", event.ComplaintID)
	assert.Contains(t, payload, `"type":"complaint.triaged"`)
	assert.Contains(t, payload, `"duplicate_of":"A"`)
}

func TestGenerateHMACSHA256(t *testing.T) {
	// echo -n 'payload' | openssl dgst -sha256 -hmac 'key'
	assert.Equal(t, "5d98b45c90a207fa998ce639fea6f02ecc8cc3f36fef81d694fb856b4d0a28ca", generateHMACSHA256("payload", "key"))
	assert.NotEqual(t, generateHMACSHA256("payload", "key"), generateHMACSHA256("payload", "other"))
}
