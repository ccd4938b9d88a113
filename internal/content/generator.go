package content

import (
	"context"
	"fmt"

	"github.com/alkime/pillars/internal/pillars"
)

const (
	// NumIdeas is how many ideas the prompt asks the model for. The idea
	// parser deliberately does not trim to this count.
	NumIdeas = 7
	// NumBriefPosts is how many brief versions the prompt asks for. The
	// brief-post parser truncates to this count.
	NumBriefPosts = 5

	// DefaultTemperature favors more creative variation in the output.
	DefaultTemperature = 0.8
)

// GenerationContext carries the per-request inputs: which weekday's pillar to
// use (empty means today) and an optional free-text context note.
type GenerationContext struct {
	Day     string `json:"day"`
	Context string `json:"context"`
}

// Generator runs the lookup, render, complete, parse pipeline for both
// generation actions. Each action performs exactly one blocking completion
// call; on failure nothing is committed and the error is returned as-is for
// the caller to display.
type Generator struct {
	completer   Completer
	schedule    *pillars.Schedule
	profile     string
	temperature float64
}

// NewGenerator creates a generator over the given completion backend and
// configuration documents.
func NewGenerator(completer Completer, schedule *pillars.Schedule, profile string) *Generator {
	return &Generator{
		completer:   completer,
		schedule:    schedule,
		profile:     profile,
		temperature: DefaultTemperature,
	}
}

// WithTemperature overrides the sampling temperature.
func (g *Generator) WithTemperature(temperature float64) *Generator {
	g.temperature = temperature
	return g
}

// Pillar resolves the pillar for the request's day.
func (g *Generator) Pillar(gc GenerationContext) pillars.Pillar {
	return g.schedule.ForDay(gc.Day)
}

// GenerateIdeas produces content ideas for the day's pillar. The result may
// hold more or fewer than NumIdeas entries; an empty slice is a valid, if
// unhelpful, outcome.
func (g *Generator) GenerateIdeas(ctx context.Context, gc GenerationContext) ([]Idea, error) {
	pillar := g.schedule.ForDay(gc.Day)

	raw, err := g.completer.Complete(ctx, Prompt{
		System:      IdeaSystemPrompt,
		User:        IdeaPrompt(pillar, gc.Context, g.profile, NumIdeas),
		Temperature: g.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate ideas: %w", err)
	}

	return ParseIdeas(raw), nil
}

// GenerateBriefPosts produces up to NumBriefPosts short draft versions of the
// selected idea. Only the idea's title is forwarded to the prompt.
func (g *Generator) GenerateBriefPosts(ctx context.Context, idea Idea, gc GenerationContext) ([]string, error) {
	pillar := g.schedule.ForDay(gc.Day)

	raw, err := g.completer.Complete(ctx, Prompt{
		System:      BriefPostSystemPrompt,
		User:        BriefPostPrompt(idea.Title, pillar, NumBriefPosts),
		Temperature: g.temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate brief posts: %w", err)
	}

	return ParseBriefPosts(raw, NumBriefPosts), nil
}
