// Package steps compresses a recipe's raw instruction steps into fewer,
// denser steps for large-print cooking mode. Ingredients, equipment and
// notes of merged steps are preserved.
package steps

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Merge thresholds. Lengths are counted in characters.
const (
	// DefaultMaxCombinedLength caps len(a)+len(b)+1 for two merged instructions.
	DefaultMaxCombinedLength = 180
	// DefaultMaxNoteLength is the longest note a step may carry and still be
	// merged into the step before it.
	DefaultMaxNoteLength = 50
)

// Limits configures when two adjacent steps may merge.
type Limits struct {
	MaxCombinedLength int
	MaxNoteLength     int
}

// DefaultLimits returns the stock thresholds.
func DefaultLimits() Limits {
	return Limits{
		MaxCombinedLength: DefaultMaxCombinedLength,
		MaxNoteLength:     DefaultMaxNoteLength,
	}
}

// Optimize merges short consecutive steps using DefaultLimits.
func Optimize(steps []domain.RecipeStep) []domain.RecipeStep {
	return OptimizeWith(steps, DefaultLimits())
}

// OptimizeWith performs a single forward scan over steps. Each step is
// merged with at most one successor; a merged step is never considered for
// merging again. The result is renumbered 1..N and shares no slices with
// the input.
func OptimizeWith(steps []domain.RecipeStep, limits Limits) []domain.RecipeStep {
	out := make([]domain.RecipeStep, 0, len(steps))

	for i := 0; i < len(steps); {
		current := steps[i]
		if i+1 < len(steps) && canMerge(current, steps[i+1], limits) {
			merged := merge(current, steps[i+1])
			merged.Number = len(out) + 1
			out = append(out, merged)
			i += 2
			continue
		}

		current.Number = len(out) + 1
		current.Ingredients = slices.Clone(current.Ingredients)
		current.Equipment = slices.Clone(current.Equipment)
		out = append(out, current)
		i++
	}

	for i := range out {
		out[i].Number = i + 1
	}
	return out
}

func canMerge(current, next domain.RecipeStep, limits Limits) bool {
	combined := utf8.RuneCountInString(current.Instruction) + utf8.RuneCountInString(next.Instruction) + 1
	if combined > limits.MaxCombinedLength {
		return false
	}
	// A long note gets its own step.
	if next.Note != "" && utf8.RuneCountInString(next.Note) > limits.MaxNoteLength {
		return false
	}
	return true
}

func merge(a, b domain.RecipeStep) domain.RecipeStep {
	return domain.RecipeStep{
		Instruction: a.Instruction + " " + b.Instruction,
		Note:        joinNotes(a.Note, b.Note),
		Ingredients: Dedup(concat(a.Ingredients, b.Ingredients)),
		Equipment:   Dedup(concat(a.Equipment, b.Equipment)),
	}
}

func joinNotes(a, b string) string {
	switch {
	case a != "" && b != "":
		return a + ". " + b
	case a != "":
		return a
	default:
		return b
	}
}

func concat(a, b []domain.StepItem) []domain.StepItem {
	out := make([]domain.StepItem, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Dedup keeps the first occurrence of each item name, compared
// case-insensitively. Order is preserved and images are ignored.
// A nil input yields an empty slice.
func Dedup(items []domain.StepItem) []domain.StepItem {
	out := make([]domain.StepItem, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		key := strings.ToLower(item.Name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}
