package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// RenderCards renders a recipe list, one line per card. Saved recipes are
// marked with a heart.
func RenderCards(cards []domain.RecipeCard, isFavorite func(id string) bool) string {
	if len(cards) == 0 {
		return secondaryStyle.Render("  No recipes found.")
	}

	var b strings.Builder
	for _, c := range cards {
		mark := "  "
		if isFavorite != nil && isFavorite(c.ID) {
			mark = favStyle.Render("♥ ")
		}
		b.WriteString(mark)
		b.WriteString(titleStyle.Render(c.Title))
		if meta := cardMeta(c); meta != "" {
			b.WriteString(secondaryStyle.Render("  " + meta))
		}
		b.WriteString(sepStyle.Render("  [" + c.ID + "]"))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderFavorites renders saved recipes with their save dates.
func RenderFavorites(favs []domain.FavoriteRecipe) string {
	if len(favs) == 0 {
		return secondaryStyle.Render("  No favorites yet.")
	}

	var b strings.Builder
	for _, f := range favs {
		b.WriteString(favStyle.Render("♥ "))
		b.WriteString(titleStyle.Render(f.Title))
		b.WriteString(secondaryStyle.Render("  saved " + f.SavedAt.Local().Format("2006-01-02 15:04")))
		b.WriteString(sepStyle.Render("  [" + f.ID + "]"))
		b.WriteByte('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderRecipe renders the full detail view of a recipe.
func RenderRecipe(r *domain.Recipe, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(r.Title))
	b.WriteByte('\n')
	if meta := cardMeta(r.Card()); meta != "" {
		b.WriteString(secondaryStyle.Render(meta))
		b.WriteByte('\n')
	}
	if len(r.Tags) > 0 {
		b.WriteString(secondaryStyle.Render("tags: " + strings.Join(r.Tags, ", ")))
		b.WriteByte('\n')
	}

	if len(r.Ingredients) > 0 {
		b.WriteString("\n" + titleStyle.Render("Ingredients") + "\n")
		for _, ing := range r.Ingredients {
			line := "  • " + ing.Ingredient
			if ing.Measure != "" {
				line += secondaryStyle.Render("  " + ing.Measure)
			}
			b.WriteString(primaryStyle.Render(line) + "\n")
		}
	}

	if len(r.Steps) > 0 {
		b.WriteString("\n" + titleStyle.Render("Method") + "\n")
		wrap := lipgloss.NewStyle().Width(max(width-6, 20))
		for _, st := range r.Steps {
			b.WriteString(fmt.Sprintf("%s %s\n",
				secondaryStyle.Render(fmt.Sprintf("%3d.", st.Number)),
				primaryStyle.Render(wrap.Render(st.Instruction))))
			if st.Note != "" {
				b.WriteString("     " + noteStyle.Render(st.Note) + "\n")
			}
		}
	}

	if r.YouTube != "" {
		b.WriteString("\n" + secondaryStyle.Render("video: "+r.YouTube) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderStep renders one cooking-mode step in large print.
func RenderStep(step domain.RecipeStep, total, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Step %d/%d", step.Number, total)))
	b.WriteByte('\n')
	b.WriteString(largeStyle.Width(max(width-4, 20)).Render(step.Instruction))
	b.WriteByte('\n')

	if step.Note != "" {
		b.WriteString(noteStyle.Render("Note: " + step.Note))
		b.WriteByte('\n')
	}
	if len(step.Ingredients) > 0 {
		b.WriteString(secondaryStyle.Render("You'll need: " + itemNames(step.Ingredients)))
		b.WriteByte('\n')
	}
	if len(step.Equipment) > 0 {
		b.WriteString(secondaryStyle.Render("Equipment: " + itemNames(step.Equipment)))
		b.WriteByte('\n')
	}
	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// RenderNotice explains a degraded or failed result. It returns "" for
// live data. cause may be nil when it is not known.
func RenderNotice(outcome domain.Outcome, cause error) string {
	switch outcome {
	case domain.OutcomeFallback:
		if cause == nil {
			return warnStyle.Render("  Showing sample recipes.")
		}
		return warnStyle.Render(fmt.Sprintf("  Showing sample recipes (%v).", cause))
	case domain.OutcomeFailure:
		return warnStyle.Render(fmt.Sprintf("  Could not load recipes: %v", cause))
	default:
		return ""
	}
}

// RenderCategories renders category names as a compact list.
func RenderCategories(cats []string) string {
	if len(cats) == 0 {
		return secondaryStyle.Render("  No categories.")
	}
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = primaryStyle.Render(c)
	}
	return "  " + strings.Join(parts, sepStyle.Render(" · "))
}

func cardMeta(c domain.RecipeCard) string {
	var parts []string
	if c.Category != "" {
		parts = append(parts, c.Category)
	}
	if c.Area != "" {
		parts = append(parts, c.Area)
	}
	return strings.Join(parts, " · ")
}

func itemNames(items []domain.StepItem) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return strings.Join(names, ", ")
}
