// Package handler is the first layer after the router.
//
// It binds and validates requests through the validation package, calls
// the service layer and packages the results: plain JSON for single
// documents, a JSON array plus a Content-Range total for searches.
package handler

import (
	"github.com/deppfellow/dictionary-api/internal/server"
	"github.com/deppfellow/dictionary-api/internal/service"
)

// Handlers groups every HTTP handler.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Metrics    *MetricsHandler
	Word       *WordHandler
	Example    *ExampleHandler
	Dictionary *DictionaryHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s, services.Words),
		OpenAPI:    NewOpenAPIHandler(s),
		Metrics:    NewMetricsHandler(s),
		Word:       NewWordHandler(s, services.Words),
		Example:    NewExampleHandler(s, services.Examples),
		Dictionary: NewDictionaryHandler(s, services.Dictionary),
	}
}
