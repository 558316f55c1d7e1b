package filter

import (
	"sync"
)

var (
	defaultCompiler     Compiler
	defaultCompilerOnce sync.Once
)

// Compile compiles expression with a shared, cached compiler
func Compile(expression string) (Filter, error) {
	defaultCompilerOnce.Do(func() {
		defaultCompiler = NewCompiler(WithCache(DefaultCacheSize))
	})
	return defaultCompiler.Compile(expression)
}

// Apply returns the paragraphs f keeps, in their original order.
// A nil filter keeps everything.
func Apply(f Filter, paragraphs []string) ([]string, error) {
	if f == nil {
		return paragraphs, nil
	}

	kept := make([]string, 0, len(paragraphs))
	for _, p := range NewParagraphs(paragraphs) {
		ok, err := f.Evaluate(p)
		if err != nil {
			return nil, err
		}
		if ok {
			kept = append(kept, p.Text)
		}
	}
	return kept, nil
}
