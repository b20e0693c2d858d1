package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
)

type (
	// MongoExampleRepository stores examples in the "examples" collection.
	MongoExampleRepository struct {
		collection *mongo.Collection
		timeout    time.Duration
	}

	exampleDocument struct {
		ID              primitive.ObjectID   `bson:"_id,omitempty"`
		Igbo            string               `bson:"igbo"`
		English         string               `bson:"english"`
		AssociatedWords []primitive.ObjectID `bson:"associatedWords"`
		Pronunciation   string               `bson:"pronunciation"`
		CreatedAt       time.Time            `bson:"createdAt"`
		UpdatedAt       time.Time            `bson:"updatedAt"`
	}
)

var _ ExampleRepository = (*MongoExampleRepository)(nil)

func NewMongoExampleRepository(collection *mongo.Collection, timeout time.Duration) *MongoExampleRepository {
	return &MongoExampleRepository{collection: collection, timeout: timeout}
}

func (r *MongoExampleRepository) FindExamples(ctx context.Context, filter query.Filter, page query.Page) ([]model.Example, int64, error) {
	doc, err := toBSON(filter)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	total, err := r.collection.CountDocuments(ctx, doc)
	if err != nil {
		return nil, 0, fmt.Errorf("mongodb count examples: %w", err)
	}
	if total == 0 {
		return []model.Example{}, 0, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))

	examples, err := r.find(ctx, doc, opts)
	if err != nil {
		return nil, 0, err
	}
	return examples, total, nil
}

func (r *MongoExampleRepository) GetExampleByID(ctx context.Context, id string) (*model.Example, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc exampleDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongodb get example %q: %w", id, err)
	}

	example := exampleFromDocument(&doc)
	return &example, nil
}

func (r *MongoExampleRepository) GetExamplesByIDs(ctx context.Context, ids []string) ([]model.Example, error) {
	if len(ids) == 0 {
		return []model.Example{}, nil
	}

	oids, err := objectIDs(ids)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	examples, err := r.find(ctx, bson.M{"_id": bson.M{"$in": oids}}, options.Find())
	if err != nil {
		return nil, err
	}
	return orderByIDs(examples, ids), nil
}

func (r *MongoExampleRepository) CreateExample(ctx context.Context, example *model.Example) (*model.Example, error) {
	associated, err := objectIDs(example.AssociatedWords)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc := &exampleDocument{
		ID:              primitive.NewObjectID(),
		Igbo:            example.Igbo,
		English:         example.English,
		AssociatedWords: associated,
		Pronunciation:   example.Pronunciation,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("mongodb insert example: %w", err)
	}

	created := exampleFromDocument(doc)
	return &created, nil
}

func (r *MongoExampleRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Example, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("mongodb find examples: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []exampleDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb find examples decode: %w", err)
	}

	examples := make([]model.Example, len(docs))
	for i := range docs {
		examples[i] = exampleFromDocument(&docs[i])
	}
	return examples, nil
}

func exampleFromDocument(doc *exampleDocument) model.Example {
	associated := make([]string, len(doc.AssociatedWords))
	for i, id := range doc.AssociatedWords {
		associated[i] = id.Hex()
	}

	return model.Example{
		Base: model.Base{
			ID:        doc.ID.Hex(),
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		},
		Igbo:            doc.Igbo,
		English:         doc.English,
		AssociatedWords: associated,
		Pronunciation:   doc.Pronunciation,
	}
}

// orderByIDs returns examples in the order of ids, dropping missing ones.
func orderByIDs(examples []model.Example, ids []string) []model.Example {
	byID := make(map[string]model.Example, len(examples))
	for _, e := range examples {
		byID[e.ID] = e
	}

	out := make([]model.Example, 0, len(examples))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}
