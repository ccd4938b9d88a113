package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_WithIdeasReplacesBatchAndClearsDownstream(t *testing.T) {
	session := NewSession("monday").
		WithIdeas([]Idea{{Title: "Old"}}).
		WithSelection(0).
		WithBriefPosts([]string{"old post"})

	session = session.WithIdeas([]Idea{{Title: "New A"}, {Title: "New B"}})

	require.Len(t, session.Ideas, 2)
	assert.Equal(t, -1, session.Selected)
	assert.Nil(t, session.BriefPosts)
}

func TestSession_SelectionClearsStaleBriefPosts(t *testing.T) {
	session := NewSession("monday").
		WithIdeas([]Idea{{Title: "A"}, {Title: "B"}}).
		WithSelection(0).
		WithBriefPosts([]string{"post for A"})

	session = session.WithSelection(1)

	assert.Equal(t, 1, session.Selected)
	assert.Nil(t, session.BriefPosts)

	idea, ok := session.SelectedIdea()
	require.True(t, ok)
	assert.Equal(t, "B", idea.Title)
}

func TestSession_OutOfRangeSelection(t *testing.T) {
	session := NewSession("monday").WithIdeas([]Idea{{Title: "A"}})

	session = session.WithSelection(5)

	assert.Equal(t, -1, session.Selected)

	_, ok := session.SelectedIdea()
	assert.False(t, ok)
}

func TestSession_NewSessionHasNoSelection(t *testing.T) {
	session := NewSession("friday")

	assert.Equal(t, "friday", session.Day)

	_, ok := session.SelectedIdea()
	assert.False(t, ok)
}
