// Package presenter holds the view state for generated text and the
// handlers that update it.
package presenter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/s0up4200/lorem/clipboard"
	"github.com/s0up4200/lorem/loremipsum"
)

// User-facing messages, one per error kind
const (
	MsgDecoding         = "Failed to decode the result. Please try again."
	MsgInvalidParameter = "Number of paragraphs must not be negative."
	MsgNetwork          = "Network error, please try again."
	MsgInvalidURL       = "Invalid URL. Please contact the developer."
	MsgUnknown          = "An error occurred, please try again."
)

// State is a snapshot of what the view renders
type State struct {
	GeneratedText string
	ErrorMessage  string
}

// Presenter owns State and applies Generate and Copy events to it
type Presenter struct {
	generator loremipsum.Generator
	clipboard clipboard.Writer
	logger    zerolog.Logger

	mu    sync.Mutex
	state State
}

// New creates a Presenter with empty state
func New(generator loremipsum.Generator, clip clipboard.Writer, logger zerolog.Logger) *Presenter {
	return &Presenter{
		generator: generator,
		clipboard: clip,
		logger:    logger,
	}
}

// State returns the current state
func (p *Presenter) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Generate requests new text. On success the text replaces the previous one
// and the error message is cleared; on failure the previous text is kept and
// ErrorMessage describes the failure. The error is returned in both cases.
func (p *Presenter) Generate(ctx context.Context, paragraphs int) (State, error) {
	resp, err := p.generator.Generate(ctx, paragraphs)

	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.state.ErrorMessage = Message(err)
		p.logger.Debug().Err(err).Int("paragraphs", paragraphs).Msg("Generate failed")
		return p.state, err
	}

	p.state.GeneratedText = resp.Text
	p.state.ErrorMessage = ""
	return p.state, nil
}

// Copy places the current text on the clipboard. It reports false without
// touching the clipboard when there is no text yet.
func (p *Presenter) Copy() (bool, error) {
	text := p.State().GeneratedText
	if text == "" {
		return false, nil
	}
	if p.clipboard == nil {
		return false, clipboard.ErrUnsupported
	}

	if err := p.clipboard.Copy(text); err != nil {
		return false, err
	}

	p.logger.Debug().Int("bytes", len(text)).Msg("Copied generated text")
	return true, nil
}

// Message maps an error to the message shown to the user
func Message(err error) string {
	switch loremipsum.KindOf(err) {
	case loremipsum.ErrDecoding:
		return MsgDecoding
	case loremipsum.ErrInvalidParameter:
		return MsgInvalidParameter
	case loremipsum.ErrNetwork:
		return MsgNetwork
	case loremipsum.ErrInvalidURL:
		return MsgInvalidURL
	}
	return MsgUnknown
}

// ErrNotANumber is returned by ParseParagraphs for non-numeric input
var ErrNotANumber = errors.New("number of paragraphs must be a whole number")

// ParseParagraphs reads a paragraph count typed by the user.
// Negative values are returned as-is so the generator can reject them.
func ParseParagraphs(input string) (int, error) {
	input = strings.TrimSpace(input)
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, input)
	}
	return n, nil
}
