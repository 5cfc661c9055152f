package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// RecurringTimeOff declares a standing leave pattern (e.g. an employee who is
// never scheduled on Sundays) as an RRULE; occurrences inside a generation
// horizon are expanded into single-day leave requests.
type RecurringTimeOff struct {
	Name     string `yaml:"name" validate:"required"`
	RRule    string `yaml:"rrule" validate:"required"`
	Approved bool   `yaml:"approved"`
	Vacation bool   `yaml:"vacation"`
}

// WeeklyCaps overrides the default per-department weekly shift caps.
type WeeklyCaps struct {
	FrontDesk    *int `yaml:"frontDesk,omitempty" validate:"omitempty,min=1"`
	Shuttle      *int `yaml:"shuttle,omitempty" validate:"omitempty,min=1"`
	BreakfastBar *int `yaml:"breakfastBar,omitempty" validate:"omitempty,min=1"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL,omitempty"`

	// AnchorWeekday is the weekday week windows start on; defaults to Thursday
	AnchorWeekday string `yaml:"anchorWeekday,omitempty" validate:"omitempty,oneof=Sunday Monday Tuesday Wednesday Thursday Friday Saturday"`

	// LateStaggerOverrides names employees always placed on the later
	// Front Desk stagger regardless of seniority
	LateStaggerOverrides []string `yaml:"lateStaggerOverrides,omitempty"`

	WeeklyCaps *WeeklyCaps `yaml:"weeklyCaps,omitempty"`

	RecurringTimeOff []RecurringTimeOff `yaml:"recurringTimeOff,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from innkeeper.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, recurring := range cfg.RecurringTimeOff {
		if _, err := rrule.StrToRRule(recurring.RRule); err != nil {
			return fmt.Errorf("invalid rrule in recurringTimeOff[%d]: %w", i, err)
		}
	}

	return nil
}

// AnchorDay returns the configured week anchor weekday, Thursday by default.
func (c *Config) AnchorDay() time.Weekday {
	switch c.AnchorWeekday {
	case "Sunday":
		return time.Sunday
	case "Monday":
		return time.Monday
	case "Tuesday":
		return time.Tuesday
	case "Wednesday":
		return time.Wednesday
	case "Friday":
		return time.Friday
	case "Saturday":
		return time.Saturday
	case "Thursday", "":
		return time.Thursday
	}
	return time.Thursday
}

// EffectiveWeeklyCaps returns the per-department weekly caps with config
// overrides applied over the built-in defaults (Front Desk 5, Shuttle 4,
// Breakfast Bar uncapped).
func (c *Config) EffectiveWeeklyCaps() map[string]int {
	caps := map[string]int{
		"Front Desk": 5,
		"Shuttle":    4,
	}
	if c.WeeklyCaps == nil {
		return caps
	}
	if c.WeeklyCaps.FrontDesk != nil {
		caps["Front Desk"] = *c.WeeklyCaps.FrontDesk
	}
	if c.WeeklyCaps.Shuttle != nil {
		caps["Shuttle"] = *c.WeeklyCaps.Shuttle
	}
	if c.WeeklyCaps.BreakfastBar != nil {
		caps["Breakfast Bar"] = *c.WeeklyCaps.BreakfastBar
	}
	return caps
}

// ExpandedTimeOff is a single-day leave occurrence produced from a recurring
// pattern.
type ExpandedTimeOff struct {
	Name     string
	Date     time.Time
	Approved bool
	Vacation bool
}

// ExpandRecurringTimeOff expands every recurring pattern into its occurrences
// within [start, end] inclusive.
func (c *Config) ExpandRecurringTimeOff(start, end time.Time) ([]ExpandedTimeOff, error) {
	var expanded []ExpandedTimeOff
	for i, recurring := range c.RecurringTimeOff {
		rule, err := rrule.StrToRRule(recurring.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in recurringTimeOff[%d]: %w", i, err)
		}
		rule.DTStart(start)
		for _, occurrence := range rule.Between(start, end, true) {
			expanded = append(expanded, ExpandedTimeOff{
				Name:     recurring.Name,
				Date:     occurrence,
				Approved: recurring.Approved,
				Vacation: recurring.Vacation,
			})
		}
	}
	return expanded, nil
}

// findConfigFile searches for innkeeper.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "innkeeper.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
