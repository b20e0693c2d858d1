package email

// Template is a string-based enum naming email templates.
type Template string

const (
	// TemplateWordCreated corresponds to templates/word_created.html
	TemplateWordCreated Template = "word_created"
)
