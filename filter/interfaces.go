package filter

// Filter decides whether a paragraph is kept
type Filter interface {
	// Evaluate checks if a paragraph matches the filter
	Evaluate(p Paragraph) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (Filter, error)
}
