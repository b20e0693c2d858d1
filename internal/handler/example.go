package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/dictionary-api/internal/middleware"
	"github.com/deppfellow/dictionary-api/internal/model"
	"github.com/deppfellow/dictionary-api/internal/server"
	"github.com/deppfellow/dictionary-api/internal/service"
)

type ExampleHandler struct {
	Handler
	examples *service.ExampleService
}

func NewExampleHandler(s *server.Server, examples *service.ExampleService) *ExampleHandler {
	return &ExampleHandler{
		Handler:  NewHandler(s),
		examples: examples,
	}
}

func (h *ExampleHandler) SearchExamples(c echo.Context, req *model.SearchExamplesRequest) (Page[model.Example], error) {
	result, err := h.examples.Search(c.Request().Context(), req)
	if err != nil {
		return Page[model.Example]{}, err
	}
	return NewPage(result.Examples, result.ContentLength), nil
}

func (h *ExampleHandler) GetExample(c echo.Context, req *model.GetExampleRequest) (*model.Example, error) {
	return h.examples.GetByID(c.Request().Context(), req)
}

func (h *ExampleHandler) CreateExample(c echo.Context, req *model.CreateExampleRequest) (*model.Example, error) {
	example, err := h.examples.Create(c.Request().Context(), req)
	if err != nil {
		return nil, err
	}

	middleware.GetLogger(c).Info().
		Str("example_id", example.ID).
		Str("user_id", middleware.GetUserID(c)).
		Msg("example created")

	return example, nil
}
