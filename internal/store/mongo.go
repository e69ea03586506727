package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/models"
)

const colJobs = "jobs"

var _ Store = (*MongoStore)(nil)

// jobModel is the MongoDB shape of a posting. The service-assigned id is the
// document key; clients never see the raw store key under any other name.
type jobModel struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Department  string    `bson:"department"`
	Description string    `bson:"description"`
	CreatedAt   time.Time `bson:"created_at"`
}

func toJobModel(j models.Job) *jobModel {
	return &jobModel{
		ID:          j.ID,
		Title:       j.Title,
		Department:  j.Department,
		Description: j.Description,
		CreatedAt:   j.CreatedAt,
	}
}

func fromJobModel(m *jobModel) models.Job {
	return models.Job{
		ID:          m.ID,
		Title:       m.Title,
		Department:  m.Department,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// MongoStore persists postings in a MongoDB collection. The caller owns the
// *mongo.Client lifecycle; MongoStore never disconnects it.
type MongoStore struct {
	col    *mongod.Collection
	logger *zap.Logger
}

func NewMongoStore(client *mongod.Client, database string, logger *zap.Logger) *MongoStore {
	return &MongoStore{
		col:    client.Database(database).Collection(colJobs),
		logger: logger,
	}
}

func (s *MongoStore) Insert(ctx context.Context, job models.Job) error {
	if _, err := s.col.InsertOne(ctx, toJobModel(job)); err != nil {
		return fmt.Errorf("insert job posting: %w", err)
	}
	return nil
}

func (s *MongoStore) ListNewestFirst(ctx context.Context) ([]models.Job, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := s.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("list job postings: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []jobModel
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode job postings: %w", err)
	}

	jobs := make([]models.Job, 0, len(docs))
	for i := range docs {
		jobs = append(jobs, fromJobModel(&docs[i]))
	}
	return jobs, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}
