package content

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alkime/pillars/internal/pillars"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCompleter implements Completer for testing.
type mockCompleter struct {
	response string
	err      error
	prompts  []Prompt
}

func (m *mockCompleter) Complete(_ context.Context, prompt Prompt) (string, error) {
	m.prompts = append(m.prompts, prompt)
	return m.response, m.err
}

func testSchedule(t *testing.T) *pillars.Schedule {
	t.Helper()

	schedule, err := pillars.LoadSchedule("")
	require.NoError(t, err)

	return schedule
}

func TestGenerateIdeas_HappyPath(t *testing.T) {
	completer := &mockCompleter{
		response: "1. Idea A\nDescription line.\nHook: snarky opener\n\n2. Idea B\nAnother desc.\n",
	}
	generator := NewGenerator(completer, testSchedule(t), "voice profile text")

	ideas, err := generator.GenerateIdeas(context.Background(), GenerationContext{Day: "monday"})

	require.NoError(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "Idea A", ideas[0].Title)
	assert.Equal(t, "snarky opener", ideas[0].Hook)

	require.Len(t, completer.prompts, 1)
	prompt := completer.prompts[0]
	assert.Equal(t, IdeaSystemPrompt, prompt.System)
	assert.InDelta(t, DefaultTemperature, prompt.Temperature, 0.001)
	assert.Contains(t, prompt.User, "ML Engineering Insights")
	assert.Contains(t, prompt.User, "voice profile text")
	assert.NotContains(t, prompt.User, "ADDITIONAL CONTEXT")
}

func TestGenerateIdeas_IncludesContextBlock(t *testing.T) {
	completer := &mockCompleter{response: "1. Something\n"}
	generator := NewGenerator(completer, testSchedule(t), "profile")

	_, err := generator.GenerateIdeas(context.Background(), GenerationContext{
		Day:     "tuesday",
		Context: "just shipped a RAG pipeline",
	})

	require.NoError(t, err)
	require.Len(t, completer.prompts, 1)
	assert.Contains(t, completer.prompts[0].User, "ADDITIONAL CONTEXT:\njust shipped a RAG pipeline")
}

func TestGenerateIdeas_CompletionFailure(t *testing.T) {
	completer := &mockCompleter{err: errors.New("quota exceeded")}
	generator := NewGenerator(completer, testSchedule(t), "profile")

	ideas, err := generator.GenerateIdeas(context.Background(), GenerationContext{Day: "monday"})

	require.Error(t, err)
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Nil(t, ideas)
}

func TestGenerateIdeas_DoesNotTruncate(t *testing.T) {
	// The prompt asks for NumIdeas but the parser keeps whatever it finds.
	// The brief-post path truncates; this one does not. Asymmetric on
	// purpose.
	var sb strings.Builder
	for i := 1; i <= NumIdeas+2; i++ {
		fmt.Fprintf(&sb, "%d. Idea number %d\n", i, i)
	}

	completer := &mockCompleter{response: sb.String()}
	generator := NewGenerator(completer, testSchedule(t), "profile")

	ideas, err := generator.GenerateIdeas(context.Background(), GenerationContext{Day: "monday"})

	require.NoError(t, err)
	assert.Len(t, ideas, NumIdeas+2)
}

func TestGenerateIdeas_DegenerateOutputIsNotAnError(t *testing.T) {
	completer := &mockCompleter{response: "   \n\n  "}
	generator := NewGenerator(completer, testSchedule(t), "profile")

	ideas, err := generator.GenerateIdeas(context.Background(), GenerationContext{Day: "monday"})

	require.NoError(t, err)
	assert.Empty(t, ideas)
}

func TestGenerateBriefPosts_HappyPath(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= NumBriefPosts; i++ {
		fmt.Fprintf(&sb, "%d. Brief version %d with enough length to clear the filter.\n\n", i, i)
	}

	completer := &mockCompleter{response: sb.String()}
	generator := NewGenerator(completer, testSchedule(t), "profile")

	idea := Idea{Title: "The Real Cost of AI Hype", Description: "ignored downstream"}

	posts, err := generator.GenerateBriefPosts(context.Background(), idea, GenerationContext{Day: "monday"})

	require.NoError(t, err)
	assert.Len(t, posts, NumBriefPosts)

	require.Len(t, completer.prompts, 1)
	prompt := completer.prompts[0]
	assert.Equal(t, BriefPostSystemPrompt, prompt.System)
	assert.Contains(t, prompt.User, "The Real Cost of AI Hype")
	// Only the title is forwarded to the prompt.
	assert.NotContains(t, prompt.User, "ignored downstream")
}

func TestGenerateBriefPosts_TruncatesToCount(t *testing.T) {
	var sb strings.Builder
	for i := 1; i <= NumBriefPosts+3; i++ {
		fmt.Fprintf(&sb, "%d. Brief version %d with enough length to clear the filter.\n\n", i, i)
	}

	completer := &mockCompleter{response: sb.String()}
	generator := NewGenerator(completer, testSchedule(t), "profile")

	posts, err := generator.GenerateBriefPosts(context.Background(), Idea{Title: "T"}, GenerationContext{})

	require.NoError(t, err)
	assert.Len(t, posts, NumBriefPosts)
}

func TestGenerateBriefPosts_CompletionFailure(t *testing.T) {
	completer := &mockCompleter{err: errors.New("connection reset")}
	generator := NewGenerator(completer, testSchedule(t), "profile")

	posts, err := generator.GenerateBriefPosts(context.Background(), Idea{Title: "T"}, GenerationContext{Day: "monday"})

	require.Error(t, err)
	assert.Nil(t, posts)
}

func TestGenerator_WithTemperature(t *testing.T) {
	completer := &mockCompleter{response: "1. Something\n"}
	generator := NewGenerator(completer, testSchedule(t), "profile").WithTemperature(0.2)

	_, err := generator.GenerateIdeas(context.Background(), GenerationContext{Day: "monday"})

	require.NoError(t, err)
	require.Len(t, completer.prompts, 1)
	assert.InDelta(t, 0.2, completer.prompts[0].Temperature, 0.001)
}

func TestGenerator_PillarForUnknownDayIsZero(t *testing.T) {
	generator := NewGenerator(&mockCompleter{}, testSchedule(t), "profile")

	pillar := generator.Pillar(GenerationContext{Day: "blursday"})

	assert.True(t, pillar.IsZero())
}
