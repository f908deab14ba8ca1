// Package textscan extracts structured substrings from free text: social
// media entities (hashtags, mentions, URLs) and word/number/punctuation
// tokens.
//
// Matching is Unicode-aware: hashtags, mentions, and words accept letters
// from any script, not only ASCII. All scans are greedy, non-overlapping,
// left-to-right; every returned sequence preserves the order of occurrence in
// the source text and keeps duplicates.
//
// The entity patterns recognised are:
//
//   - hashtag: # followed by letters, digits, or underscores
//   - mention: @ followed by letters, digits, or underscores
//   - url:     http://, https://, or www. followed by URL-safe characters
//
// TokenizeText extracts the same entities and additionally segments the
// remaining text (entity spans excluded) into words, numbers, and individual
// punctuation characters.
//
// All functions are pure and safe for concurrent use; the compiled patterns
// are package-level and immutable.
package textscan
