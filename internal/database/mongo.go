package database

import (
	"context"
	"fmt"
	"time"

	"github.com/newrelic/go-agent/v3/integrations/nrmongo"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/deppfellow/dictionary-api/internal/config"
	loggerConfig "github.com/deppfellow/dictionary-api/internal/logger"
)

// Collection names shared with the repositories.
const (
	WordsCollection    = "words"
	ExamplesCollection = "examples"
)

// Mongo wraps the MongoDB client and the dictionary database.
type Mongo struct {
	Client  *mongo.Client
	DB      *mongo.Database
	Timeout time.Duration
	log     *zerolog.Logger
}

// NewMongo connects to MongoDB, pings the primary and makes sure the search
// indexes exist.
func NewMongo(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Mongo, error) {
	mongoCfg := cfg.Database.Mongo

	opts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetAppName(cfg.Observability.ServiceName)

	if loggerService.GetApplication() != nil {
		opts.SetMonitor(nrmongo.NewCommandMonitor(nil))
	}

	ctx, cancel := context.WithTimeout(context.Background(), DatabasePingTimeout*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	m := &Mongo{
		Client:  client,
		DB:      client.Database(mongoCfg.Database),
		Timeout: mongoCfg.Timeout,
		log:     logger,
	}

	if err := m.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info().
		Str("driver", config.DriverMongo).
		Str("database", mongoCfg.Database).
		Msg("connected to the database")

	return m, nil
}

// EnsureIndexes creates the text index used by keyword searches and the
// regular indexes every clause of an $or next to $text must be backed by.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	words := m.DB.Collection(WordsCollection)
	_, err := words.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "word", Value: "text"}, {Key: "variations", Value: "text"}},
			Options: options.Index().SetName("word_text_variations_text").SetDefaultLanguage("none"),
		},
		{Keys: bson.D{{Key: "word", Value: 1}}},
		{Keys: bson.D{{Key: "variations", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create word indexes: %w", err)
	}

	examples := m.DB.Collection(ExamplesCollection)
	_, err = examples.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "associatedWords", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create example indexes: %w", err)
	}

	return nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	return m.Client.Ping(ctx, readpref.Primary())
}

func (m *Mongo) Close(ctx context.Context) error {
	m.log.Info().Msg("closing mongodb connection")
	return m.Client.Disconnect(ctx)
}
