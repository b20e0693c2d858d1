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
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/query"
)

type (
	// MongoWordRepository stores words in the "words" collection.
	MongoWordRepository struct {
		collection *mongo.Collection
		timeout    time.Duration
	}

	wordDocument struct {
		ID            primitive.ObjectID   `bson:"_id,omitempty"`
		Word          string               `bson:"word"`
		WordClass     string               `bson:"wordClass"`
		Definitions   []string             `bson:"definitions"`
		Variations    []string             `bson:"variations"`
		Stems         []string             `bson:"stems"`
		Dialects      []dialectDocument    `bson:"dialects"`
		Pronunciation string               `bson:"pronunciation"`
		Nsibidi       string               `bson:"nsibidi"`
		Attributes    attributesDocument   `bson:"attributes"`
		Examples      []primitive.ObjectID `bson:"examples"`
		CreatedAt     time.Time            `bson:"createdAt"`
		UpdatedAt     time.Time            `bson:"updatedAt"`
	}

	dialectDocument struct {
		Word          string   `bson:"word"`
		Variations    []string `bson:"variations"`
		Dialects      []string `bson:"dialects"`
		Pronunciation string   `bson:"pronunciation"`
	}

	attributesDocument struct {
		IsStandardIgbo bool `bson:"isStandardIgbo"`
	}
)

var _ WordRepository = (*MongoWordRepository)(nil)

// wordSort keeps paging stable across requests.
var wordSort = bson.D{{Key: "word", Value: 1}, {Key: "_id", Value: 1}}

func NewMongoWordRepository(collection *mongo.Collection, timeout time.Duration) *MongoWordRepository {
	return &MongoWordRepository{collection: collection, timeout: timeout}
}

func (r *MongoWordRepository) FindWords(ctx context.Context, filter query.Filter, page query.Page) ([]model.Word, int64, error) {
	doc, err := toBSON(filter)
	if err != nil {
		return nil, 0, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	total, err := r.collection.CountDocuments(ctx, doc)
	if err != nil {
		return nil, 0, fmt.Errorf("mongodb count words: %w", err)
	}
	if total == 0 {
		return []model.Word{}, 0, nil
	}

	opts := options.Find().
		SetSort(wordSort).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))

	cursor, err := r.collection.Find(ctx, doc, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("mongodb find words: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []wordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("mongodb find words decode: %w", err)
	}

	words := make([]model.Word, len(docs))
	for i := range docs {
		words[i] = wordFromDocument(&docs[i])
	}
	return words, total, nil
}

func (r *MongoWordRepository) GetWordByID(ctx context.Context, id string) (*model.Word, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	var doc wordDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongodb get word %q: %w", id, err)
	}

	word := wordFromDocument(&doc)
	return &word, nil
}

func (r *MongoWordRepository) CreateWord(ctx context.Context, word *model.Word) (*model.Word, error) {
	doc, err := wordToDocument(word)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	doc.ID = primitive.NewObjectID()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("mongodb insert word: %w", err)
	}

	created := wordFromDocument(doc)
	return &created, nil
}

func (r *MongoWordRepository) SetWordExamples(ctx context.Context, id string, exampleIDs []string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	examples, err := objectIDs(exampleIDs)
	if err != nil {
		return err
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$set": bson.M{"examples": examples, "updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("mongodb set word examples %q: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoWordRepository) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()
	return r.collection.Database().Client().Ping(ctx, readpref.Primary())
}

func wordToDocument(w *model.Word) (*wordDocument, error) {
	examples, err := objectIDs(w.ExampleIDs)
	if err != nil {
		return nil, err
	}

	dialects := make([]dialectDocument, len(w.Dialects))
	for i, d := range w.Dialects {
		dialects[i] = dialectDocument{
			Word:          d.Word,
			Variations:    nonNil(d.Variations),
			Dialects:      nonNil(d.Dialects),
			Pronunciation: d.Pronunciation,
		}
	}

	return &wordDocument{
		Word:          w.Word,
		WordClass:     w.WordClass,
		Definitions:   nonNil(w.Definitions),
		Variations:    nonNil(w.Variations),
		Stems:         nonNil(w.Stems),
		Dialects:      dialects,
		Pronunciation: w.Pronunciation,
		Nsibidi:       w.Nsibidi,
		Attributes:    attributesDocument{IsStandardIgbo: w.Attributes.IsStandardIgbo},
		Examples:      examples,
	}, nil
}

func wordFromDocument(doc *wordDocument) model.Word {
	dialects := make([]model.Dialect, len(doc.Dialects))
	for i, d := range doc.Dialects {
		dialects[i] = model.Dialect{
			Word:          d.Word,
			Variations:    nonNil(d.Variations),
			Dialects:      nonNil(d.Dialects),
			Pronunciation: d.Pronunciation,
		}
	}

	exampleIDs := make([]string, len(doc.Examples))
	for i, id := range doc.Examples {
		exampleIDs[i] = id.Hex()
	}

	return model.Word{
		Base: model.Base{
			ID:        doc.ID.Hex(),
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		},
		Word:          doc.Word,
		WordClass:     doc.WordClass,
		Definitions:   nonNil(doc.Definitions),
		Variations:    nonNil(doc.Variations),
		Stems:         nonNil(doc.Stems),
		Dialects:      dialects,
		Pronunciation: doc.Pronunciation,
		Nsibidi:       doc.Nsibidi,
		Attributes:    model.WordAttributes{IsStandardIgbo: doc.Attributes.IsStandardIgbo},
		ExampleIDs:    exampleIDs,
	}
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, len(ids))
	for i, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		out[i] = oid
	}
	return out, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
