package filter

import (
	"strings"
	"unicode/utf8"
)

// Paragraph is the data a filter expression sees for one paragraph
type Paragraph struct {
	Text      string
	Index     int // 0-based position
	Number    int // 1-based position
	Total     int // paragraphs in the response
	Words     int
	Chars     int
	Sentences int
}

// NewParagraphs builds Paragraph values for a list of paragraph texts
func NewParagraphs(texts []string) []Paragraph {
	out := make([]Paragraph, len(texts))
	for i, text := range texts {
		out[i] = Paragraph{
			Text:      text,
			Index:     i,
			Number:    i + 1,
			Total:     len(texts),
			Words:     len(strings.Fields(text)),
			Chars:     utf8.RuneCountInString(text),
			Sentences: countSentences(text),
		}
	}
	return out
}

// countSentences counts runs of terminal punctuation
func countSentences(text string) int {
	count := 0
	inTerminator := false
	for _, r := range text {
		switch r {
		case '.', '!', '?':
			if !inTerminator {
				count++
			}
			inTerminator = true
		default:
			inTerminator = false
		}
	}
	return count
}
