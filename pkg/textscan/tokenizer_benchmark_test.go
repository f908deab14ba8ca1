package textscan_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/textkit/pkg/textscan"
)

var benchTexts = map[string]string{
	"short":    "Hello, world! #go",
	"social":   "Check out #golang with @dev_user at https://go.dev and www.example.com 123.45 times!",
	"plain":    "The quick brown fox jumps over the lazy dog and keeps on running without any entities at all",
	"repeated": strings.Repeat("word 42 #tag @name https://example.com/path ", 50),
}

func BenchmarkTokenizeText(b *testing.B) {
	for name, text := range benchTexts {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = textscan.TokenizeText(text)
			}
		})
	}
}

func BenchmarkExtractSocialMediaEntities(b *testing.B) {
	for name, text := range benchTexts {
		b.Run(name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = textscan.ExtractSocialMediaEntities(text)
			}
		})
	}
}
