package email

import "fmt"

// WordCreatedData is rendered into the word_created template.
type WordCreatedData struct {
	WordID     string
	Word       string
	WordClass  string
	Definition string
	Examples   int
}

// SendWordCreatedEmail tells the editors that a word was added.
func (c *Client) SendWordCreatedEmail(to []string, data WordCreatedData) error {
	return c.SendEmail(
		to,
		fmt.Sprintf("New dictionary word: %s", data.Word),
		TemplateWordCreated,
		data,
	)
}
