package model

// Dialect is a regional form of a headword.
type Dialect struct {
	Word          string   `json:"word"`
	Variations    []string `json:"variations"`
	Dialects      []string `json:"dialects"`
	Pronunciation string   `json:"pronunciation"`
}

type WordAttributes struct {
	IsStandardIgbo bool `json:"isStandardIgbo"`
}

// Word is a dictionary entry.
//
// ExampleIDs is the stored back-reference; Examples is only populated when
// the caller asks for expanded examples, and is then never null.
type Word struct {
	Base
	Word          string         `json:"word"`
	WordClass     string         `json:"wordClass"`
	Definitions   []string       `json:"definitions"`
	Variations    []string       `json:"variations"`
	Stems         []string       `json:"stems"`
	Dialects      []Dialect      `json:"dialects,omitempty"`
	Pronunciation string         `json:"pronunciation"`
	Nsibidi       string         `json:"nsibidi"`
	Attributes    WordAttributes `json:"attributes"`
	ExampleIDs    []string       `json:"-"`
	Examples      []Example      `json:"examples"`
}

// FirstDefinition returns the first definition, or "".
func (w Word) FirstDefinition() string {
	if len(w.Definitions) == 0 {
		return ""
	}
	return w.Definitions[0]
}
