// Package tui implements the interactive content studio: pick a day, add
// context, generate ideas, select one, and compare brief post versions.
package tui

import (
	"context"
	"slices"
	"strings"

	"github.com/alkime/pillars/internal/content"
	"github.com/alkime/pillars/internal/pillars"
	"github.com/alkime/pillars/internal/tui/components/labeledspinner"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Generator is the slice of the content generator the TUI needs; tests
// substitute a mock.
type Generator interface {
	Pillar(gc content.GenerationContext) pillars.Pillar
	GenerateIdeas(ctx context.Context, gc content.GenerationContext) ([]content.Idea, error)
	GenerateBriefPosts(ctx context.Context, idea content.Idea, gc content.GenerationContext) ([]string, error)
}

// Config holds the initial TUI state.
type Config struct {
	InitialDay     string
	InitialContext string
}

type state int

const (
	stateCompose state = iota
	stateGeneratingIdeas
	stateIdeas
	stateGeneratingBriefs
	stateBriefs
)

type ideasGeneratedMsg struct {
	ideas []content.Idea
	err   error
}

type briefsGeneratedMsg struct {
	posts []string
	err   error
}

// Model is the studio TUI model. Session state lives in an explicit
// content.Session value rather than package globals.
type Model struct {
	generator Generator
	keys      KeyMap
	state     state

	session  content.Session
	dayIndex int
	cursor   int

	contextInput textarea.Model
	spinner      labeledspinner.Model
	viewport     viewport.Model
	editing      bool

	errMsg string
	width  int
	height int
}

// New creates the studio TUI model.
func New(cfg Config, generator Generator) Model {
	day := strings.ToLower(cfg.InitialDay)
	if day == "" {
		day = pillars.CurrentDay()
	}

	dayIndex := slices.Index(pillars.Days(), day)
	if dayIndex < 0 {
		dayIndex = 0
		day = pillars.Days()[0]
	}

	input := textarea.New()
	input.Placeholder = "Recently built an AI tool for X, working on Y project, just learned about Z..."
	input.SetValue(cfg.InitialContext)
	input.SetHeight(4)
	input.SetWidth(72)
	input.CharLimit = 2000

	session := content.NewSession(day)
	session.Context = cfg.InitialContext

	return Model{
		generator:    generator,
		keys:         DefaultKeyMap(),
		state:        stateCompose,
		session:      session,
		dayIndex:     dayIndex,
		contextInput: input,
		width:        80,
		height:       24,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles all messages.
func (m Model) Update(teaMsg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := teaMsg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contextInput.SetWidth(min(m.width-4, 72))

		if m.state == stateBriefs {
			m.setupViewport()
		}

		return m, nil

	case ideasGeneratedMsg:
		return m.onIdeasGenerated(msg)

	case briefsGeneratedMsg:
		return m.onBriefsGenerated(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}

		switch m.state {
		case stateCompose:
			return m.updateCompose(msg)
		case stateIdeas:
			return m.updateIdeas(msg)
		case stateBriefs:
			return m.updateBriefs(msg)
		case stateGeneratingIdeas, stateGeneratingBriefs:
			// The single blocking call is in flight; ignore everything
			// except force quit.
			return m, nil
		}

		return m, nil
	}

	// Non-key messages: spinner ticks and textarea blinks.
	if m.state == stateGeneratingIdeas || m.state == stateGeneratingBriefs {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(teaMsg)

		return m, cmd
	}

	if m.state == stateCompose && m.editing {
		var cmd tea.Cmd
		m.contextInput, cmd = m.contextInput.Update(teaMsg)

		return m, cmd
	}

	return m, nil
}

func (m Model) updateCompose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		if msg.Type == tea.KeyEsc {
			m.editing = false
			m.contextInput.Blur()

			return m, nil
		}

		var cmd tea.Cmd
		m.contextInput, cmd = m.contextInput.Update(msg)

		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.PrevDay):
		m.setDay(m.dayIndex - 1)
		return m, nil

	case key.Matches(msg, m.keys.NextDay):
		m.setDay(m.dayIndex + 1)
		return m, nil

	case key.Matches(msg, m.keys.EditContext):
		m.editing = true
		return m, m.contextInput.Focus()

	case key.Matches(msg, m.keys.Generate):
		return m.startIdeaGeneration()
	}

	return m, nil
}

func (m Model) updateIdeas(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.session.Ideas)-1 {
			m.cursor++
		}

		return m, nil

	case key.Matches(msg, m.keys.Regenerate):
		return m.startIdeaGeneration()

	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.EditContext):
		m.state = stateCompose
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if len(m.session.Ideas) == 0 {
			return m, nil
		}

		return m.startBriefGeneration()
	}

	return m, nil
}

func (m Model) updateBriefs(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.state = stateIdeas
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)

	return m, cmd
}

// setDay cycles the selected weekday, wrapping around the week.
func (m *Model) setDay(index int) {
	days := pillars.Days()
	m.dayIndex = ((index % len(days)) + len(days)) % len(days)
	m.session.Day = days[m.dayIndex]
}

func (m Model) generationContext() content.GenerationContext {
	return content.GenerationContext{
		Day:     m.session.Day,
		Context: strings.TrimSpace(m.contextInput.Value()),
	}
}

func (m Model) startIdeaGeneration() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.editing = false
	m.contextInput.Blur()
	m.session.Context = strings.TrimSpace(m.contextInput.Value())
	m.state = stateGeneratingIdeas
	m.spinner = labeledspinner.New(
		spinner.Dot,
		"Generating content ideas...",
		"Asking the model for "+pillars.DisplayDay(m.session.Day)+"'s pillar",
		"This may take a moment",
	)

	return m, tea.Batch(
		m.spinner.Init(),
		generateIdeasCmd(m.generator, m.generationContext()),
	)
}

func (m Model) startBriefGeneration() (tea.Model, tea.Cmd) {
	m.errMsg = ""
	m.session = m.session.WithSelection(m.cursor)

	idea, ok := m.session.SelectedIdea()
	if !ok {
		return m, nil
	}

	m.state = stateGeneratingBriefs
	m.spinner = labeledspinner.New(
		spinner.Pulse,
		"Generating brief post versions...",
		"Drafting previews for: "+idea.Title,
		"This may take a moment",
	)

	return m, tea.Batch(
		m.spinner.Init(),
		generateBriefsCmd(m.generator, idea, m.generationContext()),
	)
}

func (m Model) onIdeasGenerated(msg ideasGeneratedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// Leave the previous batch untouched; just surface the error.
		m.errMsg = msg.err.Error()
		if len(m.session.Ideas) == 0 {
			m.state = stateCompose
		} else {
			m.state = stateIdeas
		}

		return m, nil
	}

	m.session = m.session.WithIdeas(msg.ideas)
	m.cursor = 0
	m.state = stateIdeas

	return m, nil
}

func (m Model) onBriefsGenerated(msg briefsGeneratedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errMsg = msg.err.Error()
		m.state = stateIdeas

		return m, nil
	}

	m.session = m.session.WithBriefPosts(msg.posts)
	m.setupViewport()
	m.state = stateBriefs

	return m, nil
}

func generateIdeasCmd(generator Generator, gc content.GenerationContext) tea.Cmd {
	return func() tea.Msg {
		ideas, err := generator.GenerateIdeas(context.Background(), gc)
		return ideasGeneratedMsg{ideas: ideas, err: err}
	}
}

func generateBriefsCmd(generator Generator, idea content.Idea, gc content.GenerationContext) tea.Cmd {
	return func() tea.Msg {
		posts, err := generator.GenerateBriefPosts(context.Background(), idea, gc)
		return briefsGeneratedMsg{posts: posts, err: err}
	}
}
