package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/cityfix_backend/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

type EventType string

const (
	EventComplaintCreated EventType = "complaint.created"
	EventComplaintTriaged EventType = "complaint.triaged"
	EventComplaintUpdated EventType = "complaint.updated"
)

// Event - данные вебхука об изменении жалобы
type Event struct {
	ID                  string          `json:"id"`
	Type                EventType       `json:"type"`
	ComplaintID         string          `json:"complaint_id"`
	UserID              string          `json:"user_id,omitempty"`
	Category            models.Category `json:"category,omitempty"`
	Priority            models.Priority `json:"priority,omitempty"`
	Status              models.Status   `json:"status,omitempty"`
	DuplicateOf         *string         `json:"duplicate_of,omitempty"`
	DuplicateSimilarity *float64        `json:"duplicate_similarity,omitempty"`
	Timestamp           time.Time       `json:"timestamp"`
}

// NewEvent заполняет идентификатор и время события
func NewEvent(eventType EventType, complaint *models.Complaint) Event {
	return Event{
		ID:                  uuid.NewString(),
		Type:                eventType,
		ComplaintID:         complaint.ID,
		UserID:              complaint.UserID,
		Category:            complaint.Category,
		Priority:            complaint.Priority,
		Status:              complaint.Status,
		DuplicateOf:         complaint.DuplicateOf,
		DuplicateSimilarity: complaint.DuplicateSimilarity,
		Timestamp:           time.Now().UTC(),
	}
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher кладет события в очередь Redis, откуда их забирает Worker
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP у воркера дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher отбрасывает события, когда WEBHOOK_URL не задан
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error {
	return nil
}
