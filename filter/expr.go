package filter

import (
	"strings"
	"unicode"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// DefaultCacheSize is the number of compiled expressions kept by Compile
const DefaultCacheSize = 32

// exprFilter implements Filter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
}

// CompilerOption configures an expr compiler
type CompilerOption func(*exprCompiler)

// WithCache enables compiled-filter caching with the specified size
func WithCache(size int) CompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[Filter](size)
		}
	}
}

// exprCompiler implements Compiler for expr-based filters
type exprCompiler struct {
	cache *lruCache[Filter]
}

// NewCompiler creates a new expr-based filter compiler
func NewCompiler(opts ...CompilerOption) Compiler {
	c := &exprCompiler{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// Type-check against a zero paragraph so unknown names fail here
	program, err := expr.Compile(expression,
		expr.Env(environment(Paragraph{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	f := &exprFilter{
		expression: expression,
		program:    program,
	}

	if c.cache != nil {
		c.cache.Put(expression, f)
	}

	return f, nil
}

// Evaluate runs the filter against one paragraph
func (f *exprFilter) Evaluate(p Paragraph) (bool, error) {
	result, err := expr.Run(f.program, environment(p))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Paragraph:  p.Number,
			Err:        err,
		}
	}
	// AsBool guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// environment exposes a paragraph and the helper functions to expressions
func environment(p Paragraph) map[string]any {
	return map[string]any{
		"Text":      p.Text,
		"Index":     p.Index,
		"Number":    p.Number,
		"Total":     p.Total,
		"Words":     p.Words,
		"Chars":     p.Chars,
		"Sentences": p.Sentences,

		"hasWord":      hasWord,
		"containsFold": containsFold,
	}
}

// hasWord reports whether text contains word as a whole word, ignoring case
func hasWord(text, word string) bool {
	for _, w := range strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if strings.EqualFold(w, word) {
			return true
		}
	}
	return false
}

// containsFold is a case-insensitive strings.Contains
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
