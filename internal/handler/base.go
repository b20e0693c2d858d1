package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/dictionary-api/internal/middleware"
	"github.com/deppfellow/dictionary-api/internal/server"
	"github.com/deppfellow/dictionary-api/internal/validation"
)

// Handler is the base handler type that holds shared application dependencies.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Page is one page of a search result and the total number of matches.
type Page[T any] struct {
	Items []T
	Total int64
}

// NewPage never yields a null body for an empty result.
func NewPage[T any](items []T, total int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total}
}

func (p Page[T]) items() any   { return p.Items }
func (p Page[T]) total() int64 { return p.Total }

type paged interface {
	items() any
	total() int64
}

// ResponseHandler writes a successful handler result and decorates the
// transaction for that response type.
type ResponseHandler interface {
	Handle(c echo.Context, result interface{}) error
	GetOperation() string
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by EnhanceTracing.
}

// PageResponseHandler writes the items of a Page as a JSON array and the
// total match count in the Content-Range header.
type PageResponseHandler struct {
	status int
}

func (h PageResponseHandler) Handle(c echo.Context, result interface{}) error {
	page := result.(paged)

	c.Response().Header().Set(middleware.ContentRangeHeader, strconv.FormatInt(page.total(), 10))
	return c.JSON(h.status, page.items())
}

func (h PageResponseHandler) GetOperation() string {
	return "handler_page"
}

func (h PageResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if page, ok := result.(paged); ok && txn != nil {
		txn.AddAttribute("search.total", page.total())
	}
}

// handleRequest is the pipeline shared by every endpoint: bind and validate,
// run the handler, log and trace each phase, then write the response.
func handleRequest[Req validation.Validatable](
	c echo.Context,
	req Req,
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		validationDuration := time.Since(validationStart)

		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		return err
	}

	validationDuration := time.Since(validationStart)
	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)
	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed endpoint in the request pipeline. A fresh request
// value is allocated for every call.
//
//	router.GET("/words/:id", handler.Handle(h.Word.GetWord, http.StatusOK))
func Handle[Req any, Res any, P interface {
	*Req
	validation.Validatable
}](
	handler func(c echo.Context, req P) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, P(new(Req)), func(c echo.Context, req P) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandlePage wraps a search endpoint; the response body is the page items
// and Content-Range carries the total.
func HandlePage[Req any, Item any, P interface {
	*Req
	validation.Validatable
}](
	handler func(c echo.Context, req P) (Page[Item], error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, P(new(Req)), func(c echo.Context, req P) (interface{}, error) {
			return handler(c, req)
		}, PageResponseHandler{status: status})
	}
}
