package scheduler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Buffer is the extra reserved time around an activity, in minutes.
type Buffer struct {
	Before int `yaml:"before"`
	After  int `yaml:"after"`
}

// Window bounds one pipeline's schedulable day.
type Window struct {
	DayStart int `yaml:"day_start"`
	DayEnd   int `yaml:"day_end"`
	MinGap   int `yaml:"min_gap"`
}

// MealWindow is a named fixed meal interval.
type MealWindow struct {
	Title string `yaml:"title"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

// Config carries every engine tunable. It is an immutable value passed
// explicitly into each computation; callers needing per-tenant overrides
// construct their own copy instead of mutating shared state.
type Config struct {
	Buffers         map[ActivityKind]Buffer `yaml:"buffers"`
	SynthesizeMeals bool                    `yaml:"synthesize_meals"`
	MealWindows     []MealWindow            `yaml:"meal_windows"`
	MealBuffer      Buffer                  `yaml:"meal_buffer"`

	Daily   Window `yaml:"daily"`
	TaskGen Window `yaml:"task_gen"`

	DefaultSessionMinutes int `yaml:"default_session_minutes"`
	MinSessionMinutes     int `yaml:"min_session_minutes"`
	MaxSessionMinutes     int `yaml:"max_session_minutes"`

	MicroBreakMinutes         int `yaml:"micro_break_minutes"`
	MacroBreakMinutes         int `yaml:"macro_break_minutes"`
	MacroBreakAfterSessions   int `yaml:"macro_break_after_sessions"`
	MaxContinuousFocusMinutes int `yaml:"max_continuous_focus_minutes"`
	PrepBufferMinutes         int `yaml:"prep_buffer_minutes"`
	WrapBufferMinutes         int `yaml:"wrap_buffer_minutes"`
}

// DefaultConfig returns the stock tunables. Meal synthesis is off for the
// daily pipeline unless a tenant opts in.
func DefaultConfig() Config {
	return Config{
		Buffers: map[ActivityKind]Buffer{
			KindMeal:     {Before: 30, After: 45},
			KindWork:     {Before: 15, After: 15},
			KindStudy:    {Before: 15, After: 15},
			KindPersonal: {Before: 10, After: 10},
			KindDefault:  {Before: 15, After: 15},
		},
		SynthesizeMeals: false,
		MealWindows: []MealWindow{
			{Title: "Breakfast", Start: 7 * 60, End: 8 * 60},
			{Title: "Lunch", Start: 12 * 60, End: 13 * 60},
			{Title: "Dinner", Start: 18 * 60, End: 19 * 60},
		},
		MealBuffer: Buffer{Before: 15, After: 15},

		Daily:   Window{DayStart: 6 * 60, DayEnd: 23 * 60, MinGap: 30},
		TaskGen: Window{DayStart: 6 * 60, DayEnd: 22 * 60, MinGap: 45},

		DefaultSessionMinutes: 45,
		MinSessionMinutes:     30,
		MaxSessionMinutes:     120,

		MicroBreakMinutes:         10,
		MacroBreakMinutes:         20,
		MacroBreakAfterSessions:   3,
		MaxContinuousFocusMinutes: 120,
		PrepBufferMinutes:         5,
		WrapBufferMinutes:         5,
	}
}

// LoadConfig reads YAML overrides on top of DefaultConfig. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read scheduler config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse scheduler config: %w", err)
	}
	return cfg, nil
}

func (c Config) bufferFor(kind ActivityKind) Buffer {
	if b, ok := c.Buffers[kind]; ok {
		return b
	}
	if b, ok := c.Buffers[KindDefault]; ok {
		return b
	}
	return Buffer{Before: 15, After: 15}
}
