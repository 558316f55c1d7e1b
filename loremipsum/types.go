package loremipsum

import (
	"net/http"
	"strings"
)

// TextResponse is the decoded body of a lorem ipsum request.
// Two responses are equal when their text is equal, so values compare with ==.
type TextResponse struct {
	Text string `json:"text"`
}

// Paragraphs splits the text on line breaks, skipping empty lines
func (t TextResponse) Paragraphs() []string {
	return strings.FieldsFunc(t.Text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
}

// NumberOfParagraphs returns len(Paragraphs())
func (t TextResponse) NumberOfParagraphs() int {
	return len(t.Paragraphs())
}

// Response is the raw result of a successful HTTP call
type Response struct {
	Body       []byte
	StatusCode int
	Header     http.Header
}

// wireResponse mirrors TextResponse with a pointer so a missing or null
// "text" key can be told apart from an empty string.
type wireResponse struct {
	Text *string `json:"text"`
}
