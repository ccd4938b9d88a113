package tui

import (
	"fmt"
	"strings"

	"github.com/alkime/pillars/internal/pillars"
	"github.com/alkime/pillars/internal/tui/style"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// View renders the current UI.
func (m Model) View() string {
	switch m.state {
	case stateCompose:
		return m.composeView()
	case stateGeneratingIdeas, stateGeneratingBriefs:
		return m.spinner.View()
	case stateIdeas:
		return m.ideasView()
	case stateBriefs:
		return m.briefsView()
	}

	return ""
}

func (m Model) composeView() string {
	var sb strings.Builder

	sb.WriteString(style.Title.Render("LinkedIn Content Studio"))
	sb.WriteString("\n\n")

	pillar := m.generator.Pillar(m.generationContext())

	sb.WriteString(style.Label.Render("Day: "))
	sb.WriteString(style.Selected.Render("◀ " + pillars.DisplayDay(m.session.Day) + " ▶"))
	sb.WriteString("\n")

	if pillar.IsZero() {
		sb.WriteString(style.Muted.Render("No content pillar configured for this day."))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(style.Label.Render("Pillar: "))
		sb.WriteString(pillar.Name)
		sb.WriteString("\n")
		sb.WriteString(style.Subtitle.Render(pillar.Description))
		sb.WriteString("\n\n")
	}

	sb.WriteString(style.Label.Render("Additional context (optional):"))
	sb.WriteString("\n")
	sb.WriteString(m.contextInput.View())
	sb.WriteString("\n\n")

	if m.errMsg != "" {
		sb.WriteString(style.Error.Render("Error: " + m.errMsg))
		sb.WriteString("\n\n")
	}

	if m.editing {
		sb.WriteString(style.Help.Render("esc to finish editing"))
	} else {
		sb.WriteString(renderKeyHelp(
			m.keys.PrevDay, m.keys.NextDay, m.keys.EditContext, m.keys.Generate, m.keys.Quit,
		))
	}

	return sb.String()
}

func (m Model) ideasView() string {
	var sb strings.Builder

	pillar := m.generator.Pillar(m.generationContext())

	sb.WriteString(style.Title.Render("Content Ideas"))
	sb.WriteString("  ")
	sb.WriteString(style.Subtitle.Render(pillars.DisplayDay(m.session.Day) + " · " + pillar.Name))
	sb.WriteString("\n\n")

	if len(m.session.Ideas) == 0 {
		sb.WriteString(style.Muted.Render("The model returned no usable ideas. Try regenerating, or add more context."))
		sb.WriteString("\n\n")
	}

	for i, idea := range m.session.Ideas {
		line := fmt.Sprintf("%d. %s", i+1, idea.Title)
		if i == m.cursor {
			sb.WriteString(style.Selected.Render("> " + line))
		} else {
			sb.WriteString("  " + line)
		}

		sb.WriteString("\n")

		if i == m.cursor {
			if idea.Description != "" {
				sb.WriteString(style.Subtitle.Render("   " + idea.Description))
				sb.WriteString("\n")
			}

			if idea.Hook != "" {
				sb.WriteString(style.Muted.Render("   Hook: " + idea.Hook))
				sb.WriteString("\n")
			}
		}
	}

	sb.WriteString("\n")

	if m.errMsg != "" {
		sb.WriteString(style.Error.Render("Error: " + m.errMsg))
		sb.WriteString("\n\n")
	}

	sb.WriteString(renderKeyHelp(
		m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Regenerate, m.keys.Back, m.keys.Quit,
	))

	return sb.String()
}

func (m Model) briefsView() string {
	var sb strings.Builder

	sb.WriteString(style.Title.Render("Brief Post Versions"))
	sb.WriteString("\n")

	if idea, ok := m.session.SelectedIdea(); ok {
		sb.WriteString(style.Subtitle.Render("Selected idea: " + idea.Title))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(style.Viewport.Render(m.viewport.View()))
	sb.WriteString("\n\n")
	sb.WriteString(renderKeyHelp(m.keys.Back, m.keys.Quit))

	return sb.String()
}

// setupViewport (re)builds the brief post viewport for the current size.
func (m *Model) setupViewport() {
	width := m.width - 6
	if width < 20 {
		width = 20
	}

	height := m.height - 8
	if height < 5 {
		height = 5
	}

	m.viewport = viewport.New(width, height)
	m.viewport.SetContent(renderBriefPosts(m.session.BriefPosts, width))
}

func renderBriefPosts(posts []string, width int) string {
	if len(posts) == 0 {
		return style.Muted.Render("The model returned no usable brief posts.")
	}

	wrapper := lipgloss.NewStyle().Width(width)

	var sb strings.Builder

	for i, post := range posts {
		sb.WriteString(style.Label.Render(fmt.Sprintf("Version %d", i+1)))
		sb.WriteString("\n")
		sb.WriteString(wrapper.Render(post))

		if i < len(posts)-1 {
			sb.WriteString("\n\n")
		}
	}

	return sb.String()
}

// renderKeyHelp renders a single help line for the given bindings.
func renderKeyHelp(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, style.Key.Render(help.Key)+" "+style.Help.Render(help.Desc))
	}

	return strings.Join(parts, style.Help.Render(" · "))
}
