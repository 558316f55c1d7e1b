package loremipsum

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
)

// Repository turns HTTP responses into TextResponse values
type Repository struct {
	client HTTPClient
	logger zerolog.Logger
}

// NewRepository creates a Repository backed by client
func NewRepository(client HTTPClient, logger zerolog.Logger) *Repository {
	return &Repository{
		client: client,
		logger: logger,
	}
}

// Generate requests the given number of paragraphs and decodes the result.
// Every client failure, including ErrInvalidURL, is reported as ErrNetwork.
func (r *Repository) Generate(ctx context.Context, paragraphs int) (TextResponse, error) {
	if err := ValidateParagraphs(paragraphs); err != nil {
		return TextResponse{}, err
	}

	resp, err := r.client.Get(ctx, paragraphs)
	if err != nil {
		r.logger.Debug().Err(err).Int("paragraphs", paragraphs).Msg("Lorem ipsum request failed")
		return TextResponse{}, toNetworkError(err)
	}

	text, err := decode(resp.Body)
	if err != nil {
		r.logger.Debug().Err(err).Int("bytes", len(resp.Body)).Msg("Failed to decode lorem ipsum response")
		return TextResponse{}, err
	}

	return text, nil
}

// decode parses {"text": string}; the key is mandatory
func decode(body []byte) (TextResponse, error) {
	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return TextResponse{}, &Error{Kind: ErrDecoding, Err: err}
	}
	if wire.Text == nil {
		return TextResponse{}, &Error{Kind: ErrDecoding, Err: errors.New(`missing "text" field`)}
	}
	return TextResponse{Text: *wire.Text}, nil
}
