package msgformat_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/messageformat/core/msgformat"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	t.Run("literal only", func(t *testing.T) {
		t.Parallel()
		msg, err := msgformat.Compile("Hello, world!")
		require.NoError(t, err)
		require.Equal(t, 1, msg.Len())

		lit, ok := msg.Parts()[0].(*msgformat.Literal)
		require.True(t, ok)
		assert.Equal(t, "Hello, world!", lit.Text())
	})

	t.Run("empty pattern", func(t *testing.T) {
		t.Parallel()
		msg, err := msgformat.Compile("")
		require.NoError(t, err)
		assert.Equal(t, 0, msg.Len())
	})

	t.Run("argument types", func(t *testing.T) {
		t.Parallel()
		msg, err := msgformat.Compile("{a} {b, number} {c, date, short} {d, time} {e, number, #,##0.00}")
		require.NoError(t, err)

		parts := msg.Parts()
		require.Len(t, parts, 9)

		simple, ok := parts[0].(*msgformat.SimpleArgument)
		require.True(t, ok)
		assert.Equal(t, "a", simple.Name())

		num, ok := parts[2].(*msgformat.NumberArgument)
		require.True(t, ok)
		assert.Equal(t, "b", num.Name())
		assert.Empty(t, num.Style())

		date, ok := parts[4].(*msgformat.DateArgument)
		require.True(t, ok)
		assert.Equal(t, "short", date.Style())

		tm, ok := parts[6].(*msgformat.TimeArgument)
		require.True(t, ok)
		assert.Equal(t, "d", tm.Name())

		skeleton, ok := parts[8].(*msgformat.NumberArgument)
		require.True(t, ok)
		assert.Equal(t, "#,##0.00", skeleton.Style())
	})

	t.Run("plural with offset and exact keys", func(t *testing.T) {
		t.Parallel()
		msg, err := msgformat.Compile("{n, plural, offset:1 =0{none} =1.0{just one} one{#} other{# more}}")
		require.NoError(t, err)

		plural, ok := msg.Parts()[0].(*msgformat.PluralArgument)
		require.True(t, ok)
		assert.Equal(t, "n", plural.Name())
		assert.Equal(t, msgformat.Cardinal, plural.Kind())
		assert.Equal(t, int64(1), plural.Offset())

		keys := make([]string, 0)
		for _, br := range plural.Branches() {
			keys = append(keys, br.Key())
		}
		assert.Equal(t, []string{"=0", "=1", "one", "other"}, keys)

		exact, isExact := plural.Branches()[1].Exact()
		assert.True(t, isExact)
		assert.Equal(t, 1.0, exact)

		_, ok = plural.Branch("few")
		assert.False(t, ok)
	})

	t.Run("offset with space", func(t *testing.T) {
		t.Parallel()
		msg, err := msgformat.Compile("{n, plural, offset: 2 other{#}}")
		require.NoError(t, err)
		plural := msg.Parts()[0].(*msgformat.PluralArgument)
		assert.Equal(t, int64(2), plural.Offset())
	})

	t.Run("selectordinal", func(t *testing.T) {
		t.Parallel()
		msg, err := msgformat.Compile("{n, selectordinal, one{#st} two{#nd} few{#rd} other{#th}}")
		require.NoError(t, err)
		plural := msg.Parts()[0].(*msgformat.PluralArgument)
		assert.Equal(t, msgformat.Ordinal, plural.Kind())
		assert.Len(t, plural.Branches(), 4)
	})

	t.Run("pound nested in select inside plural", func(t *testing.T) {
		t.Parallel()
		_, err := msgformat.Compile("{n, plural, other{{g, select, female{she and #} other{they and #}}}}")
		require.NoError(t, err)
	})

	t.Run("whitespace is insignificant", func(t *testing.T) {
		t.Parallel()
		msg, err := msgformat.Compile("{  n ,  select ,\n  a {x}\n  other {y}\n}")
		require.NoError(t, err)
		sel, ok := msg.Parts()[0].(*msgformat.SelectArgument)
		require.True(t, ok)
		assert.Equal(t, "n", sel.Name())
		assert.Len(t, sel.Branches(), 2)
	})

	t.Run("configurable depth", func(t *testing.T) {
		t.Parallel()
		pattern := strings.Repeat("{a, select, other{", 100) + "x" + strings.Repeat("}}", 100)

		_, err := msgformat.Compile(pattern)
		assert.ErrorIs(t, err, msgformat.ErrTooDeeplyNested)

		_, err = msgformat.Compile(pattern, msgformat.WithMaxDepth(200))
		assert.NoError(t, err)
	})

	t.Run("depth at the limit compiles", func(t *testing.T) {
		t.Parallel()
		depth := msgformat.DefaultMaxDepth
		pattern := strings.Repeat("{a, select, other{", depth) + "x" + strings.Repeat("}}", depth)
		_, err := msgformat.Compile(pattern)
		assert.NoError(t, err)
	})
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pattern string
		kind    error
		offset  int
	}{
		{"unclosed brace", "Hello {name", msgformat.ErrUnbalancedBrace, 6},
		{"stray closing brace", "Hello }", msgformat.ErrUnbalancedBrace, 6},
		{"unclosed branch", "{n, plural, other{abc", msgformat.ErrUnbalancedBrace, 17},
		{"unclosed argument after branch", "{n, plural, other{abc}", msgformat.ErrUnbalancedBrace, 0},
		{"offset in code points", "héllo {", msgformat.ErrUnbalancedBrace, 6},
		{"missing other in plural", "{n, plural, one{a}}", msgformat.ErrMissingOtherBranch, 0},
		{"missing other in selectordinal", "x{n, selectordinal, one{a}}", msgformat.ErrMissingOtherBranch, 1},
		{"missing other in select", "{g, select, male{he}}", msgformat.ErrMissingOtherBranch, 0},
		{"duplicate key", "{n, plural, other{a} other{b}}", msgformat.ErrDuplicateBranchKey, 21},
		{"duplicate exact key", "{n, plural, =1{a} =1.0{b} other{c}}", msgformat.ErrDuplicateBranchKey, 18},
		{"unknown type", "{n, foo}", msgformat.ErrUnknownArgumentType, 4},
		{"missing type", "{n, }", msgformat.ErrUnknownArgumentType, 4},
		{"malformed offset", "{n, plural, offset:x other{#}}", msgformat.ErrInvalidOffset, 19},
		{"negative offset", "{n, plural, offset:-1 other{#}}", msgformat.ErrInvalidOffset, 19},
		{"offset without value", "{n, plural, offset: other{#}}", msgformat.ErrInvalidOffset, 20},
		{"ordinal with offset", "{n, selectordinal, offset:1 other{#}}", msgformat.ErrInvalidOffset, 26},
		{"unterminated quote", "'{ unterminated", msgformat.ErrUnterminatedQuote, 0},
		{"pound at top level", "# items", msgformat.ErrUnexpectedPound, 0},
		{"pound in top-level select", "{g, select, a{#} other{x}}", msgformat.ErrUnexpectedPound, 14},
		{"empty argument", "{}", msgformat.ErrMissingArgumentName, 1},
		{"argument without name", "{, number}", msgformat.ErrMissingArgumentName, 1},
		{"name with space", "{first name}", msgformat.ErrInvalidArgumentName, 1},
		{"unknown category", "{n, plural, lots{x} other{y}}", msgformat.ErrInvalidBranchKey, 12},
		{"exact key in select", "{n, select, =1{x} other{y}}", msgformat.ErrInvalidBranchKey, 12},
		{"malformed exact key", "{n, plural, =abc{x} other{y}}", msgformat.ErrInvalidBranchKey, 12},
		{"key without message", "{n, plural, few other{x}}", msgformat.ErrMissingBranchMessage, 12},
		{"message without key", "{n, select, {x} other{y}}", msgformat.ErrMissingBranchMessage, 12},
		{"trailing key", "{n, select, other{y} male}", msgformat.ErrMissingBranchMessage, 21},
		{"nested brace in style", "{n, number, {x}}", msgformat.ErrUnexpectedToken, 12},
		{"plural without branches comma", "{n, plural}", msgformat.ErrUnexpectedToken, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg, err := msgformat.Compile(tt.pattern)
			require.Error(t, err)
			assert.Nil(t, msg)
			assert.ErrorIs(t, err, tt.kind)

			var perr *msgformat.ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.offset, perr.Offset, perr.Error())
		})
	}
}

func TestMustCompile(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		msgformat.MustCompile("{n, plural, other{#}}")
	})
	assert.Panics(t, func() {
		msgformat.MustCompile("{n, plural, one{#}}")
	})
}

func TestMessageString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pattern   string
		canonical string
	}{
		{
			name:      "canonical plural",
			pattern:   "{n, plural, offset:1 =0{none} one{'#'one} other{# items}}",
			canonical: "{n, plural, offset:1 =0{none} one{'#'one} other{# items}}",
		},
		{
			name:      "whitespace normalised",
			pattern:   "{ n ,select,a{x}   other {y}}",
			canonical: "{n, select, a{x} other{y}}",
		},
		{
			name:      "escapes restored",
			pattern:   "it''s '{'literal'}'",
			canonical: "it''s '{'literal'}'",
		},
		{
			name:      "style kept",
			pattern:   "{n, number, #,##0.00} {d, date,short}",
			canonical: "{n, number, #,##0.00} {d, date, short}",
		},
		{
			name:      "exact key canonicalised",
			pattern:   "{n, plural, =1.0{one} other{#}}",
			canonical: "{n, plural, =1{one} other{#}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg, err := msgformat.Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, msg.String())

			again, err := msgformat.Compile(msg.String())
			require.NoError(t, err)
			assert.Equal(t, msg.String(), again.String())
		})
	}
}

func TestMessageArguments(t *testing.T) {
	t.Parallel()

	msg := msgformat.MustCompile("{a} {b, plural, other{{c} {d, select, x{{e, number}} other{}}}} {a}")
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, msg.Arguments())

	assert.Empty(t, msgformat.MustCompile("plain").Arguments())
}

func TestMessagePartsAreCopies(t *testing.T) {
	t.Parallel()

	msg := msgformat.MustCompile("a{b}")
	parts := msg.Parts()
	parts[0] = nil

	lit, ok := msg.Parts()[0].(*msgformat.Literal)
	require.True(t, ok)
	assert.Equal(t, "a", lit.Text())
}
