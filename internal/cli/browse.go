package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/state"
)

func newSearchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search recipes by name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.recipes.FetchRecipes(cmd.Context(), strings.Join(args, " "))
			return a.printList(cmd)
		},
	}
}

func newRandomCmd(a *app) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a handful of random recipes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = a.cfg.Random.Count
			}
			a.recipes.FetchRandomRecipes(cmd.Context(), count)
			return a.printList(cmd)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 6, "number of recipes")
	return cmd
}

func newCategoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "List the recipes in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.recipes.FetchRecipesByCategory(cmd.Context(), args[0])
			return a.printList(cmd)
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List recipe categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := a.catalog.GetCategories(cmd.Context())
			if res.Failed() {
				return res.Cause
			}
			out := cmd.OutOrStdout()
			if notice := display.RenderNotice(res.Outcome, res.Cause); notice != "" {
				fmt.Fprintln(out, notice)
			}
			fmt.Fprintln(out, display.RenderCategories(res.Value))
			return nil
		},
	}
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a recipe with its ingredients and steps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.recipes.FetchRecipeByID(cmd.Context(), args[0])
			st := a.recipes.State()
			if st.Error != nil {
				return errNotFound(args[0], st.Error)
			}

			out := cmd.OutOrStdout()
			if st.Degraded {
				fmt.Fprintln(out, display.RenderNotice(domain.OutcomeFallback, nil))
			}
			fmt.Fprintln(out, display.RenderRecipe(st.CurrentRecipe, display.TermWidth()))
			return nil
		},
	}
}

// printList renders the store's recipe list after a fetch.
func (a *app) printList(cmd *cobra.Command) error {
	st := a.recipes.State()
	if st.Error != nil {
		return st.Error
	}
	out := cmd.OutOrStdout()
	if notice := listNotice(st); notice != "" {
		fmt.Fprintln(out, notice)
	}
	fmt.Fprintln(out, display.RenderCards(st.Recipes, a.isFavorite(cmd.Context())))
	return nil
}

func listNotice(st state.State) string {
	if !st.Degraded {
		return ""
	}
	return display.RenderNotice(domain.OutcomeFallback, nil)
}
