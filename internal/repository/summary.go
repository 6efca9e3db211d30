package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shenikar/cityfix_backend/internal/models"
)

const summariesCollection = "summaries"

// SummaryRepository хранит последнюю недельную сводку в одном документе
type SummaryRepository struct {
	coll *mongo.Collection
}

func NewSummaryRepository(db *mongo.Database) *SummaryRepository {
	return &SummaryRepository{coll: db.Collection(summariesCollection)}
}

func (r *SummaryRepository) SaveSummary(ctx context.Context, summary *models.WeeklySummary) error {
	_, err := r.coll.ReplaceOne(ctx,
		bson.M{"_id": models.WeeklySummaryID},
		summary,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to save weekly summary: %w", err)
	}
	return nil
}

func (r *SummaryRepository) GetSummary(ctx context.Context) (*models.WeeklySummary, error) {
	summary := &models.WeeklySummary{}
	err := r.coll.FindOne(ctx, bson.M{"_id": models.WeeklySummaryID}).Decode(summary)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("weekly summary: %w", models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get weekly summary: %w", err)
	}
	return summary, nil
}
