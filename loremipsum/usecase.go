package loremipsum

import (
	"context"
	"fmt"
)

// ValidateParagraphs rejects negative paragraph counts.
// Zero is accepted and left to the API to interpret.
func ValidateParagraphs(paragraphs int) error {
	if paragraphs < 0 {
		return &Error{Kind: ErrInvalidParameter, Err: fmt.Errorf("got %d", paragraphs)}
	}
	return nil
}

// UseCase is the entry point for generating lorem ipsum text
type UseCase struct {
	repo Generator
}

// NewUseCase wraps repo with parameter validation
func NewUseCase(repo Generator) *UseCase {
	return &UseCase{repo: repo}
}

// Generate validates the paragraph count and delegates to the repository.
// Repository errors are returned unchanged.
func (u *UseCase) Generate(ctx context.Context, paragraphs int) (TextResponse, error) {
	if err := ValidateParagraphs(paragraphs); err != nil {
		return TextResponse{}, err
	}
	return u.repo.Generate(ctx, paragraphs)
}
