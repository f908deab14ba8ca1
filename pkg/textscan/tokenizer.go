package textscan

// TokenizedText holds every token category found in a text. Each sequence
// preserves left-to-right order of occurrence and may be empty.
type TokenizedText struct {
	Words       []string `json:"words"`
	Numbers     []string `json:"numbers"`
	Punctuation []string `json:"punctuation"`
	Hashtags    []string `json:"hashtags"`
	Mentions    []string `json:"mentions"`
	URLs        []string `json:"urls"`
}

// TokenizeText segments a text into words, numbers, punctuation characters,
// hashtags, mentions, and URLs. Entities are scanned over the full text with
// the same patterns as ExtractSocialMediaEntities; words, numbers, and
// punctuation are then segmented over the remainder with entity spans blanked
// out, so the interior of a URL or hashtag is not re-reported as words or
// punctuation. Punctuation is reported one character per element. Empty input
// yields empty sequences.
func TokenizeText(text string) TokenizedText {
	// URLs first: their character set includes # and @, so blanking them
	// before the hashtag and mention passes keeps URL interiors out of those
	// categories in the remainder.
	remainder := urlRegex.ReplaceAllString(text, " ")
	remainder = hashtagRegex.ReplaceAllString(remainder, " ")
	remainder = mentionRegex.ReplaceAllString(remainder, " ")

	return TokenizedText{
		Words:       matchAll(wordRegex, remainder),
		Numbers:     matchAll(numberRegex, remainder),
		Punctuation: matchAll(punctuationRegex, remainder),
		Hashtags:    matchAll(hashtagRegex, text),
		Mentions:    matchAll(mentionRegex, text),
		URLs:        matchAll(urlRegex, text),
	}
}
