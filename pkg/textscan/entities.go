package textscan

import "regexp"

// SocialEntities holds the social media entities found in a text, each in
// order of occurrence. Sequences may be empty.
type SocialEntities struct {
	Hashtags []string `json:"hashtags"`
	Mentions []string `json:"mentions"`
	URLs     []string `json:"urls"`
}

// ExtractSocialMediaEntities scans a text for hashtags, mentions, and URLs.
// The three scans are independent; a match in one category does not exclude
// overlapping matches in another. Empty input yields empty sequences.
func ExtractSocialMediaEntities(text string) SocialEntities {
	return SocialEntities{
		Hashtags: matchAll(hashtagRegex, text),
		Mentions: matchAll(mentionRegex, text),
		URLs:     matchAll(urlRegex, text),
	}
}

// matchAll never returns nil, so the sequences marshal to JSON arrays rather
// than null.
func matchAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}
