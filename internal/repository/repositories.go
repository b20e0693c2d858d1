package repository

import (
	"github.com/deppfellow/dictionary-api/internal/config"
	"github.com/deppfellow/dictionary-api/internal/database"
	"github.com/deppfellow/dictionary-api/internal/server"
)

// Repositories groups the stores of the configured driver.
type Repositories struct {
	Words    WordRepository
	Examples ExampleRepository
}

// NewRepositories picks the backend matching the configured driver.
func NewRepositories(s *server.Server) *Repositories {
	if s.Config.Database.Driver == config.DriverPostgres {
		return &Repositories{
			Words:    NewPostgresWordRepository(s.DB.Pool),
			Examples: NewPostgresExampleRepository(s.DB.Pool),
		}
	}

	return &Repositories{
		Words:    NewMongoWordRepository(s.Mongo.DB.Collection(database.WordsCollection), s.Mongo.Timeout),
		Examples: NewMongoExampleRepository(s.Mongo.DB.Collection(database.ExamplesCollection), s.Mongo.Timeout),
	}
}
