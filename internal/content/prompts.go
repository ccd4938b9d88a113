package content

import (
	"fmt"
	"strings"

	"github.com/alkime/pillars/internal/pillars"
)

// IdeaSystemPrompt is the system role text for idea generation.
const IdeaSystemPrompt = "You are a creative content strategist helping a freelance ML engineer" +
	" create engaging LinkedIn content."

// BriefPostSystemPrompt is the system role text for brief post generation.
const BriefPostSystemPrompt = "You are a creative content writer helping a freelance ML engineer" +
	" create engaging LinkedIn content that matches their unique voice."

// IdeaPrompt renders the idea-generation user prompt for a pillar. The
// additional-context block is included only when context is non-empty; the
// voice profile text is inserted verbatim.
func IdeaPrompt(pillar pillars.Pillar, context, voiceProfile string, count int) string {
	additionalContext := ""
	if strings.TrimSpace(context) != "" {
		additionalContext = fmt.Sprintf("ADDITIONAL CONTEXT:\n%s\n", strings.TrimSpace(context))
	}

	return fmt.Sprintf(`You are helping a freelance ML engineer generate LinkedIn content ideas.

CONTENT PILLAR FOR TODAY:
Topic: %s
Description: %s

%s
VOICE PROFILE:
%s

TASK:
Generate exactly %d content ideas for a LinkedIn post that:
1. Align with today's content pillar
2. Would appeal to an audience of ML engineers, AI practitioners, and tech professionals
3. Have potential for engaging hooks that match the voice profile (only if appropriate based on the additional context)
4. Are specific enough to be actionable but broad enough to be interesting

For each idea, provide:
- A brief title/headline (1 line)
- A 1-2 sentence description of what the post would cover
- A potential hook angle (how it could start, showing the voice style)

Format your response as a numbered list, with each idea clearly separated.`,
		pillar.Name, pillar.Description, additionalContext, voiceProfile, count)
}

// BriefPostPrompt renders the brief-post user prompt for a selected idea.
func BriefPostPrompt(ideaTitle string, pillar pillars.Pillar, count int) string {
	return fmt.Sprintf(`You are helping a freelance ML engineer create LinkedIn content. Generate %d brief versions of a LinkedIn post based on the selected idea.

SELECTED IDEA:
Title: %s

CONTENT PILLAR:
Topic: %s
Description: %s

TASK:
Generate exactly %d BRIEF versions of this LinkedIn post. Each version should be:
- Short and concise (approximately 3-5 sentences or 100-200 words)
- Different in approach, angle, or style from the others

Note, do not generate the full post, just short snippets/summaries of the post.
These are PREVIEW versions - they should give a sense of what the full post would be like, but be brief enough to quickly compare different approaches.

Format your response as a numbered list (1-%d), with each brief post clearly separated by blank lines.`,
		count, ideaTitle, pillar.Name, pillar.Description, count, count)
}
