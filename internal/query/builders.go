package query

// PronunciationMinLength is the shortest stored pronunciation value that
// still counts as an audio recording.
const PronunciationMinLength = 10

// WordFields are the attribute flags a word search may require.
type WordFields struct {
	IsStandardIgbo bool
	Nsibidi        bool
	Pronunciation  bool
}

// FilteringParams turns the set flags into filters. Unset flags add nothing.
func FilteringParams(fields WordFields) []Filter {
	var filters []Filter
	if fields.IsStandardIgbo {
		filters = append(filters, Eq{Field: FieldIsStandardIgbo, Value: true})
	}
	if fields.Nsibidi {
		filters = append(filters, NotEmpty{Field: FieldNsibidi})
	}
	if fields.Pronunciation {
		filters = append(filters, MinLength{Field: FieldPronunciation, Length: PronunciationMinLength})
	}
	return filters
}

// IgboSearch describes a regular (non-strict) Igbo word search.
type IgboSearch struct {
	Keyword        string
	Regex          Regexps
	IsUsingMainKey bool
	Filters        []Filter
}

// SearchIgboTextSearch matches the keyword through the text index, the word
// or any of its variations.
//
// With the main key an empty keyword lists every word that passes the
// filters; without it an empty keyword matches nothing.
func SearchIgboTextSearch(s IgboSearch) Filter {
	if s.Keyword == "" {
		if s.IsUsingMainKey {
			return Combine(All(), s.Filters...)
		}
		return Nothing{}
	}

	return Combine(Or{
		Text{Search: s.Keyword},
		Regex{Field: FieldWord, Pattern: s.Regex.Word},
		Regex{Field: FieldVariations, Pattern: s.Regex.Word},
	}, s.Filters...)
}

// StrictSearchIgbo matches words equal to the keyword, ignoring tone marks
// and case.
func StrictSearchIgbo(regex Regexps, filters []Filter) Filter {
	if regex.Keyword == "" {
		return Nothing{}
	}
	return Combine(Regex{Field: FieldWord, Pattern: regex.Strict}, filters...)
}

// SearchEnglishRegex matches words whose definitions contain the keyword.
func SearchEnglishRegex(regex Regexps, filters []Filter) Filter {
	if regex.Keyword == "" {
		return Nothing{}
	}
	return Combine(Regex{Field: FieldDefinitions, Pattern: regex.Definitions}, filters...)
}

// SearchExamplesRegex matches examples by their Igbo or English sentence.
// An empty keyword lists every example.
func SearchExamplesRegex(regex Regexps) Filter {
	if regex.Keyword == "" {
		return All()
	}
	return Or{
		Regex{Field: FieldIgbo, Pattern: regex.Example},
		Regex{Field: FieldEnglish, Pattern: regex.Example},
	}
}
