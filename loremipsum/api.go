package loremipsum

import (
	"context"
)

// HTTPClient fetches raw lorem ipsum responses from the remote API
type HTTPClient interface {
	// Get performs one GET request for the given paragraph count
	Get(ctx context.Context, paragraphs int) (*Response, error)
}

// Generator produces lorem ipsum text.
// Both Repository and UseCase implement it.
type Generator interface {
	Generate(ctx context.Context, paragraphs int) (TextResponse, error)
}
