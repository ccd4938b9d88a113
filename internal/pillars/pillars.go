// Package pillars loads the weekly content pillar schedule and the voice
// profile consumed by the prompt templates.
package pillars

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed content_pillars.yaml
var defaultScheduleYAML []byte

//go:embed voice_profile.yaml
var defaultProfileYAML []byte

// Pillar is the content topic assigned to a weekday.
type Pillar struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// IsZero reports whether the pillar carries no configuration.
func (p Pillar) IsZero() bool {
	return p.Name == "" && p.Description == ""
}

type pillarEntry struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Alternative *Pillar `yaml:"alternative"`
}

type scheduleDoc struct {
	ContentPillars map[string]pillarEntry `yaml:"content_pillars"`
}

// Schedule maps lowercase weekday names to pillars.
type Schedule struct {
	entries map[string]pillarEntry
}

// LoadSchedule reads a pillar schedule from a YAML file. An empty path loads
// the embedded default schedule.
func LoadSchedule(path string) (*Schedule, error) {
	data := defaultScheduleYAML

	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read pillar schedule: %w", err)
		}

		data = fileData
	}

	var doc scheduleDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse pillar schedule: %w", err)
	}

	return &Schedule{entries: doc.ContentPillars}, nil
}

// ForDay returns the pillar for the given weekday. Matching is
// case-insensitive; an empty day resolves to the current local weekday.
// A day with no configured pillar returns the zero Pillar so callers never
// have to handle a missing-config error mid-action.
func (s *Schedule) ForDay(day string) Pillar {
	if day == "" {
		day = CurrentDay()
	}

	entry, ok := s.entries[strings.ToLower(day)]
	if !ok {
		return Pillar{}
	}

	// Friday may carry an alternative variant. It is detected here but the
	// primary variant always wins; there is no selection mechanism yet.
	return Pillar{
		Name:        entry.Name,
		Description: entry.Description,
	}
}

// FridayAlternative returns the alternative Friday pillar when the schedule
// defines one. Nothing resolves to it today; the hook exists so a future
// selection mechanism has somewhere to attach.
func (s *Schedule) FridayAlternative() (Pillar, bool) {
	entry, ok := s.entries["friday"]
	if !ok || entry.Alternative == nil {
		return Pillar{}, false
	}

	return *entry.Alternative, true
}

// Days returns the weekday names in calendar order, monday first.
func Days() []string {
	return []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
}

// DisplayDay capitalizes a lowercase weekday name for presentation.
func DisplayDay(day string) string {
	if day == "" {
		return ""
	}

	return strings.ToUpper(day[:1]) + day[1:]
}

// CurrentDay returns the current local weekday, lowercased for lookup.
func CurrentDay() string {
	return strings.ToLower(time.Now().Weekday().String())
}

type profileDoc struct {
	VoiceProfile string `yaml:"voice_profile"`
}

// LoadVoiceProfile reads the voice profile text from a YAML file. The profile
// is consumed verbatim inside the idea prompt; it is never parsed beyond the
// YAML scalar. An empty path loads the embedded default profile.
func LoadVoiceProfile(path string) (string, error) {
	data := defaultProfileYAML

	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read voice profile: %w", err)
		}

		data = fileData
	}

	var doc profileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", fmt.Errorf("failed to parse voice profile: %w", err)
	}

	return strings.TrimSpace(doc.VoiceProfile), nil
}
