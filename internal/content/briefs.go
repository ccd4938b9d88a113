package content

import (
	"regexp"
	"strings"
)

// briefMarker matches a numbered-list marker anchored to a line start.
var briefMarker = regexp.MustCompile(`(?m)^\d+[.)]\s*`)

// minBriefPostLength filters out the near-empty fragments left behind when
// splitting on numbered markers.
const minBriefPostLength = 20

// ParseBriefPosts converts a free-text model response into at most expected
// short post strings, in original order.
//
// The primary pass splits on line-anchored numbered markers. If that yields
// fewer segments than expected, a fallback splits on blank-line separators
// instead, stripping leading numerals from each paragraph. Both passes drop
// segments of 20 characters or fewer.
func ParseBriefPosts(raw string, expected int) []string {
	if expected < 0 {
		expected = 0
	}

	var posts []string

	for _, section := range briefMarker.Split(raw, -1) {
		section = strings.TrimSpace(section)
		if len(section) > minBriefPostLength {
			posts = append(posts, section)
		}
	}

	if len(posts) < expected {
		posts = nil

		for _, paragraph := range strings.Split(raw, "\n\n") {
			paragraph = strings.TrimSpace(paragraph)
			paragraph = strings.TrimSpace(briefMarker.ReplaceAllString(paragraph, ""))

			if len(paragraph) > minBriefPostLength {
				posts = append(posts, paragraph)
			}
		}
	}

	if len(posts) > expected {
		posts = posts[:expected]
	}

	return posts
}
