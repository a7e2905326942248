package mealdb

import (
	"regexp"
	"strings"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

var (
	// "STEP 3", "Step 3:", "3." or "3)" on a line by itself.
	headerLine = regexp.MustCompile(`(?i)^(step\s*)?\d+\s*[.):]?$`)
	// "3. Do the thing" or "STEP 3 - Do the thing".
	numberPrefix = regexp.MustCompile(`(?i)^(step\s*)?\d+\s*[.):\-]\s*`)
	// "... until golden (do not stir)." -> note "do not stir"
	trailingRemark = regexp.MustCompile(`\s*\(([^()]+)\)\s*\.?$`)
)

// kitchenTools is the vocabulary matched against step text for equipment.
var kitchenTools = []string{
	"baking dish", "baking sheet", "baking tray", "blender", "bowl", "casserole",
	"colander", "dutch oven", "food processor", "frying pan", "grater", "grill",
	"ladle", "microwave", "oven", "pan", "pot", "rolling pin", "saucepan", "sieve",
	"skillet", "spatula", "tin", "whisk", "wok",
}

// ParseSteps splits free-text instructions into numbered steps. Each step
// lists the recipe ingredients and kitchen tools its text mentions.
func ParseSteps(instructions string, ingredients []domain.IngredientMeasure) []domain.RecipeStep {
	normalized := strings.ReplaceAll(instructions, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")

	var out []domain.RecipeStep
	for _, line := range strings.Split(normalized, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || headerLine.MatchString(line) {
			continue
		}
		line = numberPrefix.ReplaceAllString(line, "")

		var note string
		if m := trailingRemark.FindStringSubmatch(line); m != nil && len(m[0]) < len(line) {
			note = strings.TrimSpace(m[1])
			line = strings.TrimSpace(strings.TrimSuffix(line, m[0]))
			if !strings.HasSuffix(line, ".") {
				line += "."
			}
		}
		if line == "" {
			continue
		}

		out = append(out, domain.RecipeStep{
			Number:      len(out) + 1,
			Instruction: line,
			Note:        note,
			Ingredients: mentionedIngredients(line, ingredients),
			Equipment:   mentionedTools(line),
		})
	}
	return out
}

func mentionedIngredients(text string, ingredients []domain.IngredientMeasure) []domain.StepItem {
	lower := strings.ToLower(text)
	var out []domain.StepItem
	for _, ing := range ingredients {
		if containsWord(lower, strings.ToLower(ing.Ingredient)) {
			out = append(out, domain.StepItem{Name: ing.Ingredient, Image: IngredientImage(ing.Ingredient)})
		}
	}
	return out
}

func mentionedTools(text string) []domain.StepItem {
	lower := strings.ToLower(text)
	var out []domain.StepItem
	for _, tool := range kitchenTools {
		if containsWord(lower, tool) {
			out = append(out, domain.StepItem{Name: tool})
		}
	}
	return out
}

// containsWord reports whether word occurs in s at word boundaries.
// A trailing plural "s" or "es" is accepted.
func containsWord(s, word string) bool {
	if word == "" {
		return false
	}
	for from := 0; ; {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return false
		}
		start := from + i
		end := start + len(word)
		rest := s[end:]
		switch {
		case strings.HasPrefix(rest, "es"):
			end += 2
		case strings.HasPrefix(rest, "s"):
			end++
		}
		if (start == 0 || !isLetter(s[start-1])) && (end == len(s) || !isLetter(s[end])) {
			return true
		}
		from = start + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
