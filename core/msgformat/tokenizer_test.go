package msgformat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		pattern  string
		expected []token
	}{
		{
			name:     "empty pattern",
			pattern:  "",
			expected: nil,
		},
		{
			name:    "plain text",
			pattern: "hello",
			expected: []token{
				{kind: tokenText, text: "hello", pos: 0},
			},
		},
		{
			name:    "structural characters",
			pattern: "a{b,c}#",
			expected: []token{
				{kind: tokenText, text: "a", pos: 0},
				{kind: tokenOpen, text: "{", pos: 1},
				{kind: tokenText, text: "b", pos: 2},
				{kind: tokenComma, text: ",", pos: 3},
				{kind: tokenText, text: "c", pos: 4},
				{kind: tokenClose, text: "}", pos: 5},
				{kind: tokenPound, text: "#", pos: 6},
			},
		},
		{
			name:    "doubled apostrophe",
			pattern: "it''s",
			expected: []token{
				{kind: tokenText, text: "it's", pos: 0},
			},
		},
		{
			name:    "lone apostrophe is literal",
			pattern: "it's",
			expected: []token{
				{kind: tokenText, text: "it's", pos: 0},
			},
		},
		{
			name:    "quoted syntax characters",
			pattern: "x'{#}'y",
			expected: []token{
				{kind: tokenText, text: "x{#}y", pos: 0},
			},
		},
		{
			name:    "doubled apostrophe inside quotes",
			pattern: "'{''}'",
			expected: []token{
				{kind: tokenText, text: "{'}", pos: 0},
			},
		},
		{
			name:    "quoted comma survives",
			pattern: "'{a,b}'",
			expected: []token{
				{kind: tokenText, text: "{a,b}", pos: 0},
			},
		},
		{
			name:    "positions count code points",
			pattern: "héllo{",
			expected: []token{
				{kind: tokenText, text: "héllo", pos: 0},
				{kind: tokenOpen, text: "{", pos: 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tokens, err := tokenize(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tokens)
		})
	}
}

func TestTokenizeUnterminatedQuote(t *testing.T) {
	t.Parallel()

	_, err := tokenize("ab'{cd")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, ErrUnterminatedQuote)
	assert.Equal(t, 2, perr.Offset)
}

func TestSplitWords(t *testing.T) {
	t.Parallel()

	words := splitWords(token{kind: tokenText, text: "  offset:1 =0 ", pos: 10})
	assert.Equal(t, []word{
		{text: "offset:1", pos: 12},
		{text: "=0", pos: 21},
	}, words)
}
