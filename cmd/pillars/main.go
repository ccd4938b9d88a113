package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alkime/pillars/internal/config"
	"github.com/alkime/pillars/internal/content"
	"github.com/alkime/pillars/internal/keyring"
	"github.com/alkime/pillars/internal/pillars"
	"github.com/alkime/pillars/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

// CLI defines the pillars command structure.
type CLI struct {
	// Default TUI command (runs when no subcommand given)
	Studio StudioCmd `cmd:"" default:"withargs" help:"Launch the interactive content studio"`

	// Subcommands
	Ideas    IdeasCmd    `cmd:"" help:"Generate content ideas and print them"`
	Schedule ScheduleCmd `cmd:"" help:"Show the weekly pillar schedule"`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration"`
}

// GenerationFlags are shared by the studio and ideas commands.
type GenerationFlags struct {
	Day             string `flag:"" optional:"" help:"Weekday to generate for (default: today)"`
	Context         string `flag:"" optional:"" help:"Additional context for idea generation"`
	Provider        string `flag:"" optional:"" help:"Completion provider: openai or anthropic (overrides PROVIDER)"`
	Pillars         string `flag:"" optional:"" help:"Pillar schedule YAML path (default: embedded schedule)"`
	Profile         string `flag:"" optional:"" help:"Voice profile YAML path (default: embedded profile)"`
	OpenAIAPIKey    string `flag:"" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	AnthropicAPIKey string `flag:"" env:"ANTHROPIC_API_KEY" help:"Anthropic API key"`
}

// buildGenerator assembles the generation pipeline from config, flags, and
// the system keychain. A missing API key blocks the whole action path here,
// before any UI starts.
func (f *GenerationFlags) buildGenerator() (*content.Generator, *pillars.Schedule, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	provider := cfg.Provider
	if f.Provider != "" {
		provider = f.Provider
	}

	schedule, err := pillars.LoadSchedule(firstNonEmpty(f.Pillars, cfg.PillarsFile))
	if err != nil {
		return nil, nil, err
	}

	profile, err := pillars.LoadVoiceProfile(firstNonEmpty(f.Profile, cfg.VoiceProfileFile))
	if err != nil {
		return nil, nil, err
	}

	var completer content.Completer

	switch provider {
	case config.ProviderOpenAI:
		apiKey := resolveAPIKey(f.OpenAIAPIKey, keyring.OpenAI)
		if apiKey == "" {
			return nil, nil, errors.New(
				"missing OpenAI API key: set OPENAI_API_KEY or run 'pillars config set-key openai <key>'")
		}

		completer = content.NewOpenAICompleter(apiKey, cfg.Model)

	case config.ProviderAnthropic:
		apiKey := resolveAPIKey(f.AnthropicAPIKey, keyring.Anthropic)
		if apiKey == "" {
			return nil, nil, errors.New(
				"missing Anthropic API key: set ANTHROPIC_API_KEY or run 'pillars config set-key anthropic <key>'")
		}

		completer = content.NewAnthropicCompleter(apiKey, cfg.Model)

	default:
		return nil, nil, fmt.Errorf("invalid provider %q: must be 'openai' or 'anthropic'", provider)
	}

	generator := content.NewGenerator(completer, schedule, profile).WithTemperature(cfg.Temperature)

	return generator, schedule, nil
}

// StudioCmd is the default command that runs the TUI.
type StudioCmd struct {
	GenerationFlags
}

// Run executes the studio command.
func (c *StudioCmd) Run() error {
	generator, _, err := c.buildGenerator()
	if err != nil {
		return err
	}

	model := tui.New(tui.Config{
		InitialDay:     c.Day,
		InitialContext: c.Context,
	}, generator)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start TUI: %w", err)
	}

	return nil
}

// IdeasCmd generates ideas once and prints them, for scripting.
type IdeasCmd struct {
	GenerationFlags
}

// Run executes the ideas command.
func (c *IdeasCmd) Run() error {
	generator, _, err := c.buildGenerator()
	if err != nil {
		return err
	}

	gc := content.GenerationContext{Day: c.Day, Context: c.Context}

	ideas, err := generator.GenerateIdeas(context.Background(), gc)
	if err != nil {
		return err
	}

	pillar := generator.Pillar(gc)
	fmt.Printf("Generated %d ideas for pillar %q:\n\n", len(ideas), pillar.Name)

	for i, idea := range ideas {
		fmt.Printf("%d. %s\n", i+1, idea.Title)

		if idea.Description != "" {
			fmt.Printf("   %s\n", idea.Description)
		}

		if idea.Hook != "" {
			fmt.Printf("   Hook: %s\n", idea.Hook)
		}

		fmt.Println()
	}

	return nil
}

// ScheduleCmd prints the weekly pillar schedule.
type ScheduleCmd struct {
	Pillars string `flag:"" optional:"" help:"Pillar schedule YAML path (default: embedded schedule)"`
}

// Run executes the schedule command.
func (c *ScheduleCmd) Run() error {
	schedule, err := pillars.LoadSchedule(c.Pillars)
	if err != nil {
		return err
	}

	for _, day := range pillars.Days() {
		pillar := schedule.ForDay(day)
		if pillar.IsZero() {
			fmt.Printf("%-10s (no pillar configured)\n", pillars.DisplayDay(day))
			continue
		}

		fmt.Printf("%-10s %s\n", pillars.DisplayDay(day), pillar.Name)
		fmt.Printf("           %s\n", pillar.Description)
	}

	if alternative, ok := schedule.FridayAlternative(); ok {
		fmt.Printf("\nFriday alternative: %s\n", alternative.Name)
		fmt.Printf("           %s\n", alternative.Description)
	}

	return nil
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	SetKey   SetKeyCmd   `cmd:"" help:"Store an API key in system keychain"`
	ListKeys ListKeysCmd `cmd:"" name:"list-keys" help:"Show which API keys are configured"`
}

// SetKeyCmd stores an API key in the system keychain.
type SetKeyCmd struct {
	Service string `arg:"" enum:"openai,anthropic" help:"Service name (openai or anthropic)"`
	Secret  string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	apiKey, err := keyring.APIKeyFromServiceName(c.Service)
	if err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	if err := keyring.Set(apiKey, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Printf("%s API key stored in keychain\n", c.Service)

	return nil
}

// ListKeysCmd shows which API keys are configured.
type ListKeysCmd struct{}

// Run executes the list-keys command.
//
//nolint:unparam // error return required by Kong interface
func (c *ListKeysCmd) Run() error {
	allSet := true

	for _, apiKey := range keyring.AllAPIKeys() {
		if keyring.IsSet(apiKey) {
			fmt.Printf("%s: configured\n", apiKey.DisplayName())
		} else {
			fmt.Printf("%s: not set\n", apiKey.DisplayName())
			allSet = false
		}
	}

	if !allSet {
		fmt.Println("\nRun 'pillars config set-key <service> <key>' to configure.")
	}

	return nil
}

func main() {
	// Set up text-based logger for CLI output
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}

// resolveAPIKey prefers the explicit (flag or environment) value and falls
// back to the system keychain.
func resolveAPIKey(explicit string, key keyring.APIKey) string {
	if explicit != "" {
		return explicit
	}

	secret, err := keyring.Get(key)
	if err != nil {
		slog.Debug("keychain lookup failed", "key", key.DisplayName(), "error", err)
		return ""
	}

	return secret
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}

	return ""
}
