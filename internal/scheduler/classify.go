package scheduler

import "strings"

// activityKeywords maps title fragments to kinds. First match wins, so
// more specific fragments sit above generic ones. The table is data, not
// control flow: adding a locale means adding rows here.
var activityKeywords = []struct {
	fragment string
	kind     ActivityKind
}{
	{"breakfast", KindMeal},
	{"lunch", KindMeal},
	{"dinner", KindMeal},
	{"brunch", KindMeal},
	{"meal", KindMeal},
	{"ăn sáng", KindMeal},
	{"ăn trưa", KindMeal},
	{"ăn tối", KindMeal},
	{"gym", KindPersonal},
	{"workout", KindPersonal},
	{"run", KindPersonal},
	{"walk", KindPersonal},
	{"errand", KindPersonal},
	{"lecture", KindStudy},
	{"class", KindStudy},
	{"study", KindStudy},
	{"course", KindStudy},
	{"homework", KindStudy},
	{"standup", KindWork},
	{"meeting", KindWork},
	{"work", KindWork},
	{"shift", KindWork},
	{"office", KindWork},
}

// ClassifyActivity maps a free-form activity title to a closed kind.
// Unknown titles fall through to KindDefault.
func ClassifyActivity(title string) ActivityKind {
	normalized := strings.ToLower(strings.TrimSpace(title))
	if normalized == "" {
		return KindDefault
	}
	for _, row := range activityKeywords {
		if strings.Contains(normalized, row.fragment) {
			return row.kind
		}
	}
	return KindDefault
}

// isMealTitle reports whether a neighboring-activity title denotes a meal.
// An empty title (no neighbor) never does.
func isMealTitle(title string) bool {
	return title != "" && ClassifyActivity(title) == KindMeal
}
