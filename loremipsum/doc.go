// Package loremipsum provides a client for the api-ninjas lorem ipsum endpoint.
//
// The package is organized as a small pipeline:
//
//   - Client: performs one GET request with the paragraph count and API key
//   - Repository: maps transport failures and decodes the JSON body
//   - UseCase: validates the paragraph count before delegating
//   - Errors: a closed set of error kinds with the original cause attached
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := loremipsum.NewClient("your-api-key", logger,
//		loremipsum.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	generator := loremipsum.NewUseCase(loremipsum.NewRepository(client, logger))
//	text, err := generator.Generate(ctx, 3)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, p := range text.Paragraphs() {
//		fmt.Println(p)
//	}
//
// # Error Handling
//
// Every error returned by Repository and UseCase carries one of four kinds:
//
//   - ErrInvalidParameter: the paragraph count was negative, no request was made
//   - ErrInvalidURL: the request URL could not be built (only seen from Client)
//   - ErrNetwork: the request failed; Repository reports every Client failure this way
//   - ErrDecoding: the body was not a JSON object with a string "text" field
//
// Use errors.Is to test for a kind, or KindOf to switch on it:
//
//	switch loremipsum.KindOf(err) {
//	case loremipsum.ErrNetwork:
//		// retry later
//	}
//
// The underlying cause stays in the chain, so errors.As can still reach a
// *StatusError or a *url.Error behind an ErrNetwork.
package loremipsum
