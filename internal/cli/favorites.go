package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/display"
)

func newFavoritesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Manage saved recipes",
	}
	cmd.AddCommand(
		newFavListCmd(a),
		newFavAddCmd(a),
		newFavRemoveCmd(a),
		newFavToggleCmd(a),
		newFavClearCmd(a),
		newFavExportCmd(a),
	)
	return cmd
}

func newFavListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved recipes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), display.RenderFavorites(a.favorites.Load(cmd.Context())))
			return nil
		},
	}
}

func newFavAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <id>",
		Short: "Save a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := a.catalog.GetRecipeByID(ctx, args[0]).Unwrap()
			if err != nil {
				return errNotFound(args[0], err)
			}
			if err := a.favorites.Add(ctx, r.Card()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", r.Title)
			return nil
		},
	}
}

func newFavRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Forget a saved recipe",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !a.favorites.IsFavorite(ctx, args[0]) {
				return fmt.Errorf("recipe %q is not a favorite", args[0])
			}
			if err := a.favorites.Remove(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}

func newFavToggleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Save a recipe, or forget it when already saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := a.catalog.GetRecipeByID(ctx, args[0]).Unwrap()
			if err != nil {
				return errNotFound(args[0], err)
			}
			saved, err := a.favorites.Toggle(ctx, r.Card())
			if err != nil {
				return err
			}
			if saved {
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %s.\n", r.Title)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", r.Title)
			}
			return nil
		},
	}
}

func newFavClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.favorites.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Favorites cleared.")
			return nil
		},
	}
}

func newFavExportCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export saved recipes as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || output == "-" {
				return a.favorites.Export(cmd.Context(), cmd.OutOrStdout())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			if err := a.favorites.Export(cmd.Context(), f); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}
