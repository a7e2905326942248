package cli

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/display"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
)

var _ display.Stepper = (*engine.Engine)(nil)

func newCookCmd(a *app) *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "cook <id>",
		Short: "Cook a recipe one step at a time",
		Long: `Cook enters cooking mode: short consecutive steps are merged and each
step is shown in large print. Use → or n for the next step, ← or p to go
back and q to quit.

With --plain every step is printed at once, which suits pipes and printers.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			session, err := a.engine.StartCooking(ctx, args[0])
			if err != nil {
				if errors.Is(err, domain.ErrNoSteps) {
					return fmt.Errorf("recipe %q has no instructions to cook from", args[0])
				}
				return errNotFound(args[0], err)
			}

			out := cmd.OutOrStdout()
			if plain {
				return a.cookPlain(cmd, session, out)
			}

			fmt.Fprintln(out, display.RenderBanner())
			model := display.NewCookingModel(ctx, a.engine, session)
			final, err := tea.NewProgram(model,
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(out),
			).Run()
			if err != nil {
				return fmt.Errorf("cooking mode: %w", err)
			}
			if m, ok := final.(display.CookingModel); ok && m.Err() != nil {
				a.log.Warn("cooking session %s: %v", session.ID, m.Err())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print all steps without the interactive view")
	return cmd
}

// cookPlain walks the session to completion, printing every step.
func (a *app) cookPlain(cmd *cobra.Command, session *domain.CookingSession, out io.Writer) error {
	ctx := cmd.Context()
	width := display.TermWidth()
	total := len(session.Steps)

	fmt.Fprintln(out, display.RenderCards([]domain.RecipeCard{{ID: session.RecipeID, Title: session.RecipeTitle}}, nil))
	if session.Degraded {
		fmt.Fprintln(out, display.RenderNotice(domain.OutcomeFallback, nil))
	}

	step, err := a.engine.Current(ctx, session.ID)
	for err == nil {
		fmt.Fprintln(out, display.RenderStep(*step, total, width))
		step, err = a.engine.Next(ctx, session.ID)
	}
	if !errors.Is(err, domain.ErrNoMoreSteps) {
		return err
	}
	return nil
}
