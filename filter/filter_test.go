package filter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []string{
	"Lorem ipsum dolor sit amet, consectetur adipiscing elit.",
	"Tincidunt vitae semper quis lectus.",
	"Nulla facilisi. Etiam non quam lacus! Suspendisse potenti?",
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Words > 5`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `Words >`,
			wantErr:    true,
		},
		{
			name:       "unknown name",
			expression: `Rating > 3`,
			wantErr:    true,
		},
		{
			name:       "not a boolean",
			expression: `Words + 1`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `hasWord(Text, "lorem") or (Sentences > 1 and Number == Total)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewCompiler().Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestApply(t *testing.T) {
	tests := []struct {
		expression string
		expected   []string
	}{
		{`Number == 1`, sample[:1]},
		{`Index > 0`, sample[1:]},
		{`Words <= 5`, sample[1:2]},
		{`Sentences >= 3`, sample[2:]},
		{`hasWord(Text, "LOREM")`, sample[:1]},
		{`hasWord(Text, "lore")`, []string{}},
		{`containsFold(Text, "VITAE")`, sample[1:2]},
		{`Text contains "quam"`, sample[2:]},
		{`len(Text) > 0`, sample},
		{`Total == 3 and Chars < 10`, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			kept, err := Apply(f, sample)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kept)
		})
	}
}

func TestApply_NilFilter(t *testing.T) {
	kept, err := Apply(nil, sample)
	require.NoError(t, err)
	assert.Equal(t, sample, kept)
}

// erroringFilter fails on every paragraph
type erroringFilter struct{}

func (erroringFilter) Evaluate(p Paragraph) (bool, error) {
	return false, &EvaluationError{Expression: "boom", Paragraph: p.Number, Err: errors.New("kaput")}
}

func (erroringFilter) Expression() string { return "boom" }

func TestApply_EvaluationError(t *testing.T) {
	_, err := Apply(erroringFilter{}, sample)
	require.Error(t, err)
	assert.Equal(t, "evaluation error for filter 'boom' on paragraph 1: kaput", err.Error())
}

func TestCompilerCache(t *testing.T) {
	t.Run("cached", func(t *testing.T) {
		c := NewCompiler(WithCache(2))
		a, err := c.Compile("Words > 1")
		require.NoError(t, err)
		b, err := c.Compile("  Words > 1 ")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("uncached", func(t *testing.T) {
		c := NewCompiler()
		a, err := c.Compile("Words > 1")
		require.NoError(t, err)
		b, err := c.Compile("Words > 1")
		require.NoError(t, err)
		assert.NotSame(t, a, b)
	})
}

func TestLRUCache(t *testing.T) {
	c := newLRUCache[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// Touch "a" so "b" is evicted next
	v, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	c.Put("c", 3)
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get("b")
	assert.False(t, ok)

	c.Put("a", 10)
	v, _ = c.Get("a")
	assert.Equal(t, 10, v)

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestNewParagraphs(t *testing.T) {
	ps := NewParagraphs(sample)
	require.Len(t, ps, 3)

	assert.Equal(t, Paragraph{
		Text:      sample[1],
		Index:     1,
		Number:    2,
		Total:     3,
		Words:     5,
		Chars:     len(sample[1]),
		Sentences: 1,
	}, ps[1])
	assert.Equal(t, 3, ps[2].Sentences)
}

func TestCountSentences(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"", 0},
		{"No terminator", 0},
		{"One.", 1},
		{"Wait... what?!", 2},
		{"A. B! C?", 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.text), func(t *testing.T) {
			assert.Equal(t, tt.expected, countSentences(tt.text))
		})
	}
}
