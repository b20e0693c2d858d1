package query

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/deppfellow/dictionary-api/internal/errs"
)

const (
	DefaultLimit = 10
	MaxLimit     = 25

	// MaxPage keeps page*DefaultLimit from overflowing.
	MaxPage = (math.MaxInt - MaxLimit) / DefaultLimit
)

// Page is a resolved skip/limit window.
type Page struct {
	Skip  int
	Limit int
}

// ParsePage resolves the page number and the optional "[start,end]" range.
// The range wins over page; the resulting limit is clamped to [1, MaxLimit].
func ParsePage(page int, rng string) (Page, error) {
	if page < 0 || page > MaxPage {
		code := errs.CodeInvalidPage
		return Page{}, errs.NewBadRequestError("Page must be a non-negative number.", true, &code, nil, nil)
	}

	if rng == "" {
		return Page{Skip: page * DefaultLimit, Limit: DefaultLimit}, nil
	}

	var bounds []int
	if err := json.Unmarshal([]byte(rng), &bounds); err != nil || len(bounds) != 2 {
		return Page{}, invalidRange(rng)
	}

	start, end := bounds[0], bounds[1]
	if start < 0 || end < start {
		return Page{}, invalidRange(rng)
	}

	// end-start cannot overflow once both are non-negative.
	limit := MaxLimit
	if end-start < MaxLimit {
		limit = end - start + 1
	}

	return Page{Skip: start, Limit: limit}, nil
}

func invalidRange(rng string) error {
	code := errs.CodeInvalidRange
	return errs.NewBadRequestError(
		fmt.Sprintf("Invalid range %q, expected [start,end].", rng),
		true, &code, nil, nil,
	)
}
