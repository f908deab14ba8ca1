package textscan_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/textkit/pkg/textscan"
)

func TestTokenizeText(t *testing.T) {
	t.Parallel()

	t.Run("mixed text splits into all categories", func(t *testing.T) {
		tokens := textscan.TokenizeText("Hello, world! 123.45 and @user #coding https://example.com")

		assert.Equal(t, []string{"Hello", "world", "and"}, tokens.Words)
		assert.Equal(t, []string{"123.45"}, tokens.Numbers)
		assert.Equal(t, []string{",", "!"}, tokens.Punctuation)
		assert.Equal(t, []string{"#coding"}, tokens.Hashtags)
		assert.Equal(t, []string{"@user"}, tokens.Mentions)
		assert.Equal(t, []string{"https://example.com"}, tokens.URLs)
	})

	t.Run("integers and decimals", func(t *testing.T) {
		tokens := textscan.TokenizeText("1 item, 2.5 kilos, version 10")

		assert.Equal(t, []string{"1", "2.5", "10"}, tokens.Numbers)
		assert.Equal(t, []string{"item", "kilos", "version"}, tokens.Words)
	})

	t.Run("punctuation reported one character per element", func(t *testing.T) {
		tokens := textscan.TokenizeText("wait... what?!")

		assert.Equal(t, []string{".", ".", ".", "?", "!"}, tokens.Punctuation)
	})

	t.Run("unicode words", func(t *testing.T) {
		tokens := textscan.TokenizeText("naïve résumé 日本語")

		assert.Equal(t, []string{"naïve", "résumé", "日本語"}, tokens.Words)
	})

	t.Run("entity interiors are not re-tokenized", func(t *testing.T) {
		tokens := textscan.TokenizeText("see https://example.com/a.b?c=1 and #tag_2")

		assert.Equal(t, []string{"see", "and"}, tokens.Words)
		assert.Empty(t, tokens.Numbers)
		assert.Empty(t, tokens.Punctuation)
		assert.Equal(t, []string{"#tag_2"}, tokens.Hashtags)
		assert.Equal(t, []string{"https://example.com/a.b?c=1"}, tokens.URLs)
	})

	t.Run("letters and digits split within a token", func(t *testing.T) {
		tokens := textscan.TokenizeText("v2 go1.24")

		assert.Equal(t, []string{"v", "go"}, tokens.Words)
		assert.Equal(t, []string{"2", "1.24"}, tokens.Numbers)
	})

	t.Run("empty input yields empty sequences", func(t *testing.T) {
		tokens := textscan.TokenizeText("")

		assert.Empty(t, tokens.Words)
		assert.Empty(t, tokens.Numbers)
		assert.Empty(t, tokens.Punctuation)
		assert.Empty(t, tokens.Hashtags)
		assert.Empty(t, tokens.Mentions)
		assert.Empty(t, tokens.URLs)
	})

	t.Run("empty input marshals to empty JSON arrays", func(t *testing.T) {
		data, err := json.Marshal(textscan.TokenizeText(""))
		require.NoError(t, err)

		assert.JSONEq(t,
			`{"words":[],"numbers":[],"punctuation":[],"hashtags":[],"mentions":[],"urls":[]}`,
			string(data))
	})

	t.Run("whitespace only", func(t *testing.T) {
		tokens := textscan.TokenizeText("  \t\n ")

		assert.Empty(t, tokens.Words)
		assert.Empty(t, tokens.Numbers)
		assert.Empty(t, tokens.Punctuation)
	})
}
