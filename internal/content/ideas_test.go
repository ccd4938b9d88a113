package content

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIdeas_WellFormedNumberedList(t *testing.T) {
	raw := `1. The Real Cost of AI Hype
A post about how hype cycles distract from real engineering work.
Hook: Start with a sarcastic observation about the latest AI announcement

2. Shipping Models Is the Easy Part
What actually breaks after deployment, and why nobody talks about it.
Hook angle: Open with the 2 AM pager story

3. Why I Stopped Chasing SOTA
Benchmarks versus the boring baseline that actually solved the problem.
Hook: A confession about wasted GPU hours`

	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 3)

	assert.Equal(t, "The Real Cost of AI Hype", ideas[0].Title)
	assert.Equal(t, "A post about how hype cycles distract from real engineering work.", ideas[0].Description)
	assert.Equal(t, "Start with a sarcastic observation about the latest AI announcement", ideas[0].Hook)

	assert.Equal(t, "Shipping Models Is the Easy Part", ideas[1].Title)
	assert.Equal(t, "What actually breaks after deployment, and why nobody talks about it.", ideas[1].Description)
	assert.Equal(t, "Open with the 2 AM pager story", ideas[1].Hook)

	assert.Equal(t, "Why I Stopped Chasing SOTA", ideas[2].Title)
	assert.Equal(t, "A confession about wasted GPU hours", ideas[2].Hook)
}

func TestParseIdeas_SevenRecordsInOrder(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 7; i++ {
		fmt.Fprintf(&sb, "%d. Title %d\nDescription %d.\nHook: Opener %d\n\n", i, i, i, i)
	}

	ideas := ParseIdeas(sb.String())

	require.Len(t, ideas, 7)

	for i, idea := range ideas {
		assert.Equal(t, fmt.Sprintf("Title %d", i+1), idea.Title)
		assert.Equal(t, fmt.Sprintf("Description %d.", i+1), idea.Description)
		assert.Equal(t, fmt.Sprintf("Opener %d", i+1), idea.Hook)
	}
}

func TestParseIdeas_HookTextOnMarkerLine(t *testing.T) {
	raw := "1. Idea A\nDescription line.\nHook: snarky opener\n\n2. Idea B\nAnother desc.\n"

	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 2)

	assert.Equal(t, Idea{
		Title:       "Idea A",
		Description: "Description line.",
		Hook:        "snarky opener",
	}, ideas[0])

	assert.Equal(t, Idea{
		Title:       "Idea B",
		Description: "Another desc.",
	}, ideas[1])
}

func TestParseIdeas_ParenthesisMarkers(t *testing.T) {
	raw := "1) First idea\nSome detail.\n\n2) Second idea\nMore detail."

	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 2)
	assert.Equal(t, "First idea", ideas[0].Title)
	assert.Equal(t, "Some detail.", ideas[0].Description)
	assert.Equal(t, "Second idea", ideas[1].Title)
}

func TestParseIdeas_TitleOnSeparateLine(t *testing.T) {
	raw := "1.\nStandalone Title\nThe description follows here.\n"

	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 1)
	assert.Equal(t, "Standalone Title", ideas[0].Title)
	// The title line also enters the accumulation buffer, so it leads the
	// description. Quirky, but it is the documented scan behavior.
	assert.Equal(t, "Standalone Title The description follows here.", ideas[0].Description)
}

func TestParseIdeas_MultiLineDescriptionJoinedWithSpaces(t *testing.T) {
	raw := "1. Split Description\nFirst half of the description\nsecond half on its own line.\n"

	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 1)
	assert.Equal(t, "First half of the description second half on its own line.", ideas[0].Description)
}

func TestParseIdeas_MultiLineHookJoinedWithSpaces(t *testing.T) {
	raw := "1. Long Hook\nA description.\nHook angle:\nstart slow\nthen land the punchline\n"

	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 1)
	assert.Equal(t, "A description.", ideas[0].Description)
	assert.Equal(t, "start slow then land the punchline", ideas[0].Hook)
}

func TestParseIdeas_FallbackParagraphs(t *testing.T) {
	raw := "First paragraph title\nwith a continuation line.\n\nSecond paragraph title\nand its body."

	ideas := ParseIdeas(raw)

	require.Len(t, ideas, 2)
	assert.Equal(t, "First paragraph title", ideas[0].Title)
	assert.Equal(t, "with a continuation line.", ideas[0].Description)
	assert.Empty(t, ideas[0].Hook)
	assert.Equal(t, "Second paragraph title", ideas[1].Title)
}

func TestParseIdeas_FallbackCapsAtSevenParagraphs(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= 10; i++ {
		fmt.Fprintf(&sb, "Paragraph %d\n\n", i)
	}

	ideas := ParseIdeas(sb.String())

	require.Len(t, ideas, 7)
	assert.Equal(t, "Paragraph 1", ideas[0].Title)
	assert.Equal(t, "Paragraph 7", ideas[6].Title)
}

func TestParseIdeas_DegenerateInput(t *testing.T) {
	assert.Empty(t, ParseIdeas(""))
	assert.Empty(t, ParseIdeas("\n\n\n"))
	assert.Empty(t, ParseIdeas("   \n \t \n\n  "))
}

func TestParseIdeas_NoCountTruncation(t *testing.T) {
	// The idea parser deliberately returns everything it finds; only the
	// brief-post parser truncates to a requested count.
	var sb strings.Builder
	for i := 1; i <= 9; i++ {
		fmt.Fprintf(&sb, "%d. Idea number %d\n", i, i)
	}

	ideas := ParseIdeas(sb.String())

	assert.Len(t, ideas, 9)
}

func TestIsRecordStart(t *testing.T) {
	assert.True(t, isRecordStart("1. Foo"))
	assert.True(t, isRecordStart("2) Bar"))
	assert.True(t, isRecordStart("10. Ten"))
	assert.False(t, isRecordStart("No marker here"))
	assert.False(t, isRecordStart("1000 units sold"))
	assert.False(t, isRecordStart(""))
}

func TestTitleAfterMarker(t *testing.T) {
	assert.Equal(t, "Idea A", titleAfterMarker("1. Idea A"))
	assert.Equal(t, "Idea B", titleAfterMarker("2) Idea B"))
	assert.Equal(t, "", titleAfterMarker("3."))
}
