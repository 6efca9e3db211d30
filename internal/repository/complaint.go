package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shenikar/cityfix_backend/internal/geo"
	"github.com/shenikar/cityfix_backend/internal/models"
)

// ComplaintsCollection - коллекция, к которой привязан геоиндекс
const ComplaintsCollection = "complaints"

const defaultListLimit = 50

type ComplaintRepository struct {
	coll        *mongo.Collection
	redisClient *redis.Client
	cacheTTL    time.Duration
	logger      *logrus.Logger
}

func NewComplaintRepository(db *mongo.Database, redisClient *redis.Client, cacheTTL time.Duration, logger *logrus.Logger) *ComplaintRepository {
	return &ComplaintRepository{
		coll:        db.Collection(ComplaintsCollection),
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Create сохраняет новую жалобу, ID и временные метки назначаются здесь
func (r *ComplaintRepository) Create(ctx context.Context, complaint *models.Complaint) error {
	now := time.Now().UTC()
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, complaint)
	if err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		complaint.ID = oid.Hex()
	}
	return nil
}

// GetByID возвращает жалобу по ее идентификатору
func (r *ComplaintRepository) GetByID(ctx context.Context, id string) (*models.Complaint, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("complaint %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get complaint by id: %w", err)
	}
	return decodeComplaint(doc), nil
}

// UpdateFields частично обновляет документ. Значение nil удаляет поле.
func (r *ComplaintRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}

	res, err := r.coll.UpdateOne(ctx, filter, buildUpdate(fields, time.Now().UTC()))
	if err != nil {
		return fmt.Errorf("failed to update complaint: %w", err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("complaint %s: %w", id, models.ErrNotFound)
	}

	// Запись уже сохранена, поэтому сбой Redis только логируется.
	// Устаревшая запись кэша истечет через cacheTTL.
	if err := r.InvalidateCache(ctx, id); err != nil {
		r.logger.WithFields(logrus.Fields{
			"repository":   "complaint",
			"method":       "UpdateFields",
			"complaint_id": id,
		}).WithError(err).Warn("Complaint updated but cache invalidation failed")
	}
	return nil
}

// List возвращает жалобы по фильтру, новые первыми
func (r *ComplaintRepository) List(ctx context.Context, filter models.ComplaintFilter) ([]*models.Complaint, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: models.FieldCreatedAt, Value: -1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, buildListFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return decodeAll(ctx, cursor)
}

// FindInBox выбирает жалобы, чьи координаты попадают в прямоугольник.
// Долгота ищется и в lng, и в устаревшем lon, с переходом через антимеридиан.
func (r *ComplaintRepository) FindInBox(ctx context.Context, box geo.Box) ([]*models.Complaint, error) {
	cursor, err := r.coll.Find(ctx, boxFilter(box))
	if err != nil {
		return nil, fmt.Errorf("failed to query complaints in box: %w", err)
	}
	return decodeAll(ctx, cursor)
}

// Stats считает жалобы, созданные начиная с since (нулевое время означает за все время)
func (r *ComplaintRepository) Stats(ctx context.Context, since time.Time) (*models.ComplaintStats, error) {
	match := bson.M{}
	if !since.IsZero() {
		match[models.FieldCreatedAt] = bson.M{"$gte": since}
	}

	byStatus, err := r.countBy(ctx, match, "$"+models.FieldStatus)
	if err != nil {
		return nil, err
	}
	byCategory, err := r.countBy(ctx, match, bson.M{"$ifNull": bson.A{"$" + models.FieldCategory, "$" + models.FieldLegacyType}})
	if err != nil {
		return nil, err
	}
	byPriority, err := r.countBy(ctx, match, "$"+models.FieldPriority)
	if err != nil {
		return nil, err
	}

	stats := &models.ComplaintStats{
		ByCategory: make(map[string]int64),
		ByPriority: make(map[string]int64),
	}
	for status, n := range byStatus {
		stats.Total += n
		switch models.Status(status) {
		case models.StatusPending, "":
			stats.Pending += n
		case models.StatusInProgress:
			stats.InProgress += n
		case models.StatusResolved:
			stats.Resolved += n
		}
	}
	for cat, n := range byCategory {
		if cat == "" {
			continue
		}
		stats.ByCategory[string(models.ParseCategory(cat))] += n
	}
	for p, n := range byPriority {
		if prio, ok := models.ParsePriority(p); ok {
			stats.ByPriority[string(prio)] += n
		}
	}
	return stats, nil
}

type groupCount struct {
	Key   any   `bson:"_id"`
	Count int64 `bson:"count"`
}

func (r *ComplaintRepository) countBy(ctx context.Context, match bson.M, groupKey any) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: groupKey},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate complaints: %w", err)
	}
	defer cursor.Close(ctx)

	var groups []groupCount
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, fmt.Errorf("failed to decode aggregation: %w", err)
	}
	out := make(map[string]int64, len(groups))
	for _, g := range groups {
		key, _ := g.Key.(string)
		out[key] += g.Count
	}
	return out, nil
}

// Ping проверяет доступность MongoDB
func (r *ComplaintRepository) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

// GetFromCache пытается получить жалобу из Redis. Промах возвращает nil, nil.
func (r *ComplaintRepository) GetFromCache(ctx context.Context, id string) (*models.Complaint, error) {
	val, err := r.redisClient.Get(ctx, complaintCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get complaint from cache: %w", err)
	}

	complaint := &models.Complaint{}
	if err := json.Unmarshal(val, complaint); err != nil {
		return nil, fmt.Errorf("failed to unmarshal complaint from cache: %w", err)
	}
	return complaint, nil
}

// SetCache сохраняет жалобу в Redis
func (r *ComplaintRepository) SetCache(ctx context.Context, complaint *models.Complaint) error {
	val, err := json.Marshal(complaint)
	if err != nil {
		return fmt.Errorf("failed to marshal complaint for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, complaintCacheKey(complaint.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set complaint in cache: %w", err)
	}
	return nil
}

// InvalidateCache удаляет жалобу из кэша
func (r *ComplaintRepository) InvalidateCache(ctx context.Context, id string) error {
	if err := r.redisClient.Del(ctx, complaintCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate complaint cache: %w", err)
	}
	return nil
}

func complaintCacheKey(id string) string {
	return "complaint:" + id
}

func decodeAll(ctx context.Context, cursor *mongo.Cursor) ([]*models.Complaint, error) {
	defer cursor.Close(ctx)

	complaints := make([]*models.Complaint, 0)
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode complaint: %w", err)
		}
		complaints = append(complaints, decodeComplaint(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("error complaints iteration: %w", err)
	}
	return complaints, nil
}

// idFilter принимает ObjectID в hex и строковые идентификаторы импортированных документов
func idFilter(id string) (bson.M, error) {
	if id == "" {
		return nil, fmt.Errorf("empty complaint id: %w", models.ErrNotFound)
	}
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return bson.M{"_id": oid}, nil
	}
	return bson.M{"_id": id}, nil
}

func buildUpdate(fields map[string]any, now time.Time) bson.M {
	set := bson.M{models.FieldUpdatedAt: now}
	unset := bson.M{}
	for k, v := range fields {
		if isNil(v) {
			unset[k] = ""
			continue
		}
		set[k] = v
	}
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

func isNil(v any) bool {
	switch p := v.(type) {
	case nil:
		return true
	case *string:
		return p == nil
	case *float64:
		return p == nil
	case *time.Time:
		return p == nil
	}
	return false
}

func buildListFilter(f models.ComplaintFilter) bson.M {
	filter := bson.M{}
	if f.UserID != "" {
		filter[models.FieldUserID] = f.UserID
	}
	if f.Status != "" {
		filter[models.FieldStatus] = f.Status
	}
	if f.Priority != "" {
		filter[models.FieldPriority] = f.Priority
	}
	if f.Category != "" {
		filter["$or"] = bson.A{
			bson.M{models.FieldCategory: f.Category},
			bson.M{models.FieldLegacyType: f.Category},
		}
	}
	return filter
}

func boxFilter(box geo.Box) bson.M {
	var or bson.A
	for _, r := range box.LngRanges() {
		lngRange := bson.M{"$gte": r.Min, "$lte": r.Max}
		or = append(or,
			bson.M{"location.lng": lngRange},
			bson.M{"location.lon": lngRange},
		)
	}
	return bson.M{
		"location.lat": bson.M{"$gte": box.MinLat, "$lte": box.MaxLat},
		"$or":          or,
	}
}
