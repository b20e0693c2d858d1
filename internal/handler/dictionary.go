package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/server"
	"github.com/deppfellow/dictionary-api/internal/service"
)

// DictionaryHandler serves headword lookups in the bundled dictionary.
type DictionaryHandler struct {
	Handler
	dictionary *service.DictionaryService
}

func NewDictionaryHandler(s *server.Server, dictionary *service.DictionaryService) *DictionaryHandler {
	return &DictionaryHandler{
		Handler:    NewHandler(s),
		dictionary: dictionary,
	}
}

func (h *DictionaryHandler) Lookup(c echo.Context, req *model.LookupRequest) (service.Dictionary, error) {
	return h.dictionary.Lookup(req.Keyword)
}
