package scheduler

import (
	"sort"
	"strings"
)

// TemplateEntry is one topic segment of a subject's fixed study sequence.
type TemplateEntry struct {
	Topic   string
	Minutes int
	Order   int
}

// templateRegistry holds the known subject breakdowns. Entries are ordered
// and never regenerated or reordered by the engine.
var templateRegistry = map[string][]TemplateEntry{
	"javascript": {
		{Topic: "Syntax & Variables", Minutes: 45, Order: 1},
		{Topic: "Functions & Scope", Minutes: 60, Order: 2},
		{Topic: "Arrays & Objects", Minutes: 60, Order: 3},
		{Topic: "Async & Promises", Minutes: 60, Order: 4},
		{Topic: "DOM & Events", Minutes: 45, Order: 5},
		{Topic: "Practice Project", Minutes: 90, Order: 6},
	},
	"react": {
		{Topic: "Components & JSX", Minutes: 60, Order: 1},
		{Topic: "State & Props", Minutes: 60, Order: 2},
		{Topic: "Hooks", Minutes: 60, Order: 3},
		{Topic: "Routing & Data Fetching", Minutes: 45, Order: 4},
		{Topic: "Performance & Patterns", Minutes: 45, Order: 5},
		{Topic: "Practice Project", Minutes: 90, Order: 6},
	},
	"python": {
		{Topic: "Syntax & Data Types", Minutes: 45, Order: 1},
		{Topic: "Control Flow & Functions", Minutes: 60, Order: 2},
		{Topic: "Collections & Comprehensions", Minutes: 60, Order: 3},
		{Topic: "Modules & Files", Minutes: 45, Order: 4},
		{Topic: "OOP Basics", Minutes: 60, Order: 5},
		{Topic: "Practice Scripts", Minutes: 90, Order: 6},
	},
	"english": {
		{Topic: "Vocabulary Building", Minutes: 30, Order: 1},
		{Topic: "Grammar Drills", Minutes: 45, Order: 2},
		{Topic: "Reading Comprehension", Minutes: 45, Order: 3},
		{Topic: "Listening Practice", Minutes: 45, Order: 4},
		{Topic: "Speaking & Shadowing", Minutes: 30, Order: 5},
		{Topic: "Writing Practice", Minutes: 45, Order: 6},
	},
	"ielts": {
		{Topic: "Listening Section", Minutes: 40, Order: 1},
		{Topic: "Reading Section", Minutes: 60, Order: 2},
		{Topic: "Writing Task 1", Minutes: 30, Order: 3},
		{Topic: "Writing Task 2", Minutes: 45, Order: 4},
		{Topic: "Speaking Mock", Minutes: 30, Order: 5},
		{Topic: "Full Mock Review", Minutes: 60, Order: 6},
	},
}

var defaultTemplate = []TemplateEntry{
	{Topic: "Core Concepts", Minutes: 45, Order: 1},
	{Topic: "Guided Practice", Minutes: 60, Order: 2},
	{Topic: "Applied Exercises", Minutes: 60, Order: 3},
	{Topic: "Review & Recall", Minutes: 30, Order: 4},
	{Topic: "Self Assessment", Minutes: 45, Order: 5},
	{Topic: "Deep Dive", Minutes: 90, Order: 6},
}

func normalizeSubject(subject string) string {
	lowered := strings.ToLower(subject)
	return strings.Join(strings.Fields(lowered), "")
}

// TemplateFor resolves a subject to its topic sequence: exact match first,
// then substring match either direction, then the default template.
// Substring candidates are checked in sorted key order so resolution is
// deterministic.
func TemplateFor(subject string) []TemplateEntry {
	key := normalizeSubject(subject)
	if entries, ok := templateRegistry[key]; ok {
		return entries
	}
	if key != "" {
		names := make([]string, 0, len(templateRegistry))
		for name := range templateRegistry {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			if strings.Contains(key, name) || strings.Contains(name, key) {
				return templateRegistry[name]
			}
		}
	}
	return defaultTemplate
}
