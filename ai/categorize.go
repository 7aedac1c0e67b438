package ai

import (
	"sort"
	"strings"

	"smarttodo/backend/types"
)

// fallbackCategory is returned when no taxonomy category matches at all.
const fallbackCategory = "general"

// categoryRule pairs a category name with its keyword set.
type categoryRule struct {
	name     string
	keywords []string
}

// categoryTaxonomy is the fixed category taxonomy in canonical order:
// work, personal, shopping, health, finance, education, travel, home.
// Score ties resolve to the earlier entry, so this order is part of the
// classification contract; do not reorder.
var categoryTaxonomy = []categoryRule{
	{"work", []string{"meeting", "project", "deadline", "client", "report", "presentation"}},
	{"personal", []string{"family", "health", "exercise", "hobby", "personal"}},
	{"shopping", []string{"buy", "purchase", "shop", "grocery", "store"}},
	{"health", []string{"doctor", "appointment", "medicine", "exercise", "fitness"}},
	{"finance", []string{"payment", "bill", "bank", "money", "budget", "tax"}},
	{"education", []string{"study", "course", "learn", "book", "exam", "homework"}},
	{"travel", []string{"trip", "vacation", "flight", "hotel", "travel"}},
	{"home", []string{"clean", "repair", "maintenance", "home", "house"}},
}

// CategorizeTask maps task text to its best-fit category. Each category
// scores one point per keyword found in the text (case-insensitive
// substring); confidence is the winner's score over its keyword-set size.
// When nothing matches the result is the "general" fallback with confidence
// 0.1 and no alternatives.
//
// existingCategories is accepted so callers can pass the category names they
// already persist; it does not alter scoring. Classification runs against
// the fixed taxonomy only.
func (e *Engine) CategorizeTask(title, description string, existingCategories []string) types.CategoryResult {
	_ = existingCategories

	text := strings.ToLower(title + " " + description)

	type scored struct {
		index int // taxonomy position, the tie-break
		score int
	}
	var matches []scored
	for i, rule := range categoryTaxonomy {
		score := 0
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{index: i, score: score})
		}
	}

	if len(matches) == 0 {
		return types.CategoryResult{
			SuggestedCategory: fallbackCategory,
			Confidence:        0.1,
			Alternatives:      []string{},
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].score != matches[j].score {
			return matches[i].score > matches[j].score
		}
		return matches[i].index < matches[j].index
	})

	winner := categoryTaxonomy[matches[0].index]
	alternatives := []string{}
	for _, m := range matches[1:] {
		if len(alternatives) == 3 {
			break
		}
		alternatives = append(alternatives, categoryTaxonomy[m.index].name)
	}

	return types.CategoryResult{
		SuggestedCategory: winner.name,
		Confidence:        float64(matches[0].score) / float64(len(winner.keywords)),
		Alternatives:      alternatives,
	}
}
