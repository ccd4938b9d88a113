package content

import (
	"strings"

	"github.com/alkime/pillars/pkg/collections"
)

// Idea is one candidate post concept parsed from a model response.
type Idea struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Hook        string `json:"hook,omitempty"`
}

// fallbackIdeaLimit caps how many blank-line paragraphs the fallback pass
// turns into ideas when the numbered-list pass finds nothing.
const fallbackIdeaLimit = 7

type ideaSection int

const (
	sectionNone ideaSection = iota
	sectionTitle
	sectionDescription
	sectionHook
)

// ParseIdeas converts a free-text model response into ordered Idea records.
//
// The primary pass is a line-oriented scan for numbered records ("1.", "2)")
// with hook/angle section markers. Records that never get a title are dropped.
// If the pass yields nothing, a paragraph fallback splits on blank lines and
// takes the first line of each paragraph as the title.
func ParseIdeas(raw string) []Idea {
	var (
		ideas    []Idea
		current  Idea
		buffer   []string
		section  = sectionNone
		started  bool
		hasTitle bool
	)

	flush := func() {
		if !started {
			return
		}

		if len(buffer) > 0 {
			if section == sectionHook {
				current.Hook = strings.Join(buffer, " ")
			} else if current.Description == "" {
				current.Description = strings.Join(buffer, " ")
			}
		}

		if hasTitle {
			ideas = append(ideas, current)
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lower := strings.ToLower(line)

		switch {
		case isRecordStart(line):
			flush()

			current = Idea{}
			buffer = nil
			started = true
			hasTitle = false
			section = sectionTitle

			if title := titleAfterMarker(line); title != "" {
				current.Title = title
				hasTitle = true
			}

		case strings.Contains(lower, "hook") || strings.Contains(lower, "angle"):
			// Migrate whatever accumulated before the hook marker into the
			// description. This does not re-check whether a description was
			// already set.
			if started && len(buffer) > 0 {
				current.Description = strings.Join(buffer, " ")
			}

			buffer = nil
			section = sectionHook

			// Text on the marker line itself ("Hook: snarky opener") seeds
			// the hook buffer.
			if _, after, found := strings.Cut(line, ":"); found {
				if trailing := strings.TrimSpace(after); trailing != "" {
					buffer = append(buffer, trailing)
				}
			}

		case started:
			buffer = append(buffer, line)

			// Covers templates that put the numbered marker and the title
			// text on separate lines.
			if section == sectionTitle && !hasTitle {
				current.Title = line
				hasTitle = true
				section = sectionDescription
			}
		}
	}

	flush()

	if len(ideas) == 0 {
		ideas = fallbackIdeas(raw)
	}

	return ideas
}

// isRecordStart reports whether a trimmed line opens a new numbered record:
// a leading digit with '.' or ')' somewhere in the first three characters.
func isRecordStart(line string) bool {
	if line == "" || line[0] < '0' || line[0] > '9' {
		return false
	}

	head := line
	if len(head) > 3 {
		head = head[:3]
	}

	return strings.ContainsAny(head, ".)")
}

// titleAfterMarker strips the leading numeral and punctuation from a
// record-start line, leaving the title text (possibly empty).
func titleAfterMarker(line string) string {
	rest := line
	if _, after, found := strings.Cut(rest, "."); found {
		rest = after
	}

	if _, after, found := strings.Cut(rest, ")"); found {
		rest = after
	}

	return strings.TrimSpace(rest)
}

// fallbackIdeas re-splits the raw text on blank-line paragraphs when the
// numbered-list pass found no records.
func fallbackIdeas(raw string) []Idea {
	var ideas []Idea

	paragraphs := strings.Split(raw, "\n\n")
	if len(paragraphs) > fallbackIdeaLimit {
		paragraphs = paragraphs[:fallbackIdeaLimit]
	}

	for _, paragraph := range paragraphs {
		kept := collections.Keep(
			collections.Apply(strings.Split(paragraph, "\n"), strings.TrimSpace),
			func(line string) bool { return line != "" },
		)

		if len(kept) == 0 {
			continue
		}

		ideas = append(ideas, Idea{
			Title:       kept[0],
			Description: strings.Join(kept[1:], " "),
		})
	}

	return ideas
}
