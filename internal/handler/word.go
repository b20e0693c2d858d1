package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/middleware"
	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/server"
	"github.com/deppfellow/dictionary-api/internal/service"
)

type WordHandler struct {
	Handler
	words *service.WordService
}

func NewWordHandler(s *server.Server, words *service.WordService) *WordHandler {
	return &WordHandler{
		Handler: NewHandler(s),
		words:   words,
	}
}

func (h *WordHandler) SearchWords(c echo.Context, req *model.SearchWordsRequest) (Page[model.Word], error) {
	result, err := h.words.Search(c.Request().Context(), req, middleware.IsUsingMainKey(c))
	if err != nil {
		return Page[model.Word]{}, err
	}
	return NewPage(result.Words, result.ContentLength), nil
}

func (h *WordHandler) GetWord(c echo.Context, req *model.GetWordRequest) (*model.Word, error) {
	return h.words.GetByID(c.Request().Context(), req)
}

func (h *WordHandler) CreateWord(c echo.Context, req *model.CreateWordRequest) (*model.Word, error) {
	word, err := h.words.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(c).Info().
		Str("word_id", word.ID).
		Str("user_id", middleware.GetUserID(c)).
		Msg("word created")

	return word, nil
}
