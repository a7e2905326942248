package display

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/recipebox/internal/domain"
)

// Stepper moves a cooking session's cursor. engine.Engine satisfies it.
type Stepper interface {
	Next(ctx context.Context, sessionID string) (*domain.RecipeStep, error)
	Previous(ctx context.Context, sessionID string) (*domain.RecipeStep, error)
	Abandon(ctx context.Context, sessionID string) error
}

type keyMap struct {
	Next key.Binding
	Prev key.Binding
	Quit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "right", "l", " ", "enter"),
			key.WithHelp("→/n", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("p", "left", "h"),
			key.WithHelp("←/p", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ── Bubble Tea model ─────────────────────────────────────────────

// CookingModel shows one optimized step at a time in large print.
type CookingModel struct {
	ctx       context.Context
	stepper   Stepper
	sessionID string
	title     string
	total     int
	step      domain.RecipeStep
	degraded  bool
	keys      keyMap
	width     int
	finished  bool // walked past the last step
	quitting  bool
	err       error
}

// NewCookingModel starts cooking mode at the session's current step.
func NewCookingModel(ctx context.Context, stepper Stepper, session *domain.CookingSession) CookingModel {
	m := CookingModel{
		ctx:       ctx,
		stepper:   stepper,
		sessionID: session.ID,
		title:     session.RecipeTitle,
		total:     len(session.Steps),
		degraded:  session.Degraded,
		keys:      defaultKeys(),
		width:     TermWidth(),
	}
	if cur := session.Current(); cur != nil {
		m.step = *cur
	}
	return m
}

// Finished reports whether the user reached the end of the recipe.
func (m CookingModel) Finished() bool { return m.finished }

// Err returns the last navigation error, if any.
func (m CookingModel) Err() error { return m.err }

func (m CookingModel) Init() tea.Cmd { return nil }

func (m CookingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			if err := m.stepper.Abandon(m.ctx, m.sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotActive) {
				m.err = err
			}
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next):
			step, err := m.stepper.Next(m.ctx, m.sessionID)
			if errors.Is(err, domain.ErrNoMoreSteps) {
				m.finished = true
				return m, tea.Quit
			}
			return m.moved(step, err), nil

		case key.Matches(msg, m.keys.Prev):
			step, err := m.stepper.Previous(m.ctx, m.sessionID)
			return m.moved(step, err), nil
		}
	}
	return m, nil
}

func (m CookingModel) moved(step *domain.RecipeStep, err error) CookingModel {
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	if step != nil {
		m.step = *step
	}
	return m
}

func (m CookingModel) View() string {
	if m.finished {
		return titleStyle.Render("  Done! Enjoy your "+m.title+".") + "\n"
	}
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(BannerStyle.Render(m.title))
	if m.degraded {
		b.WriteString(warnStyle.Render("  (sample recipe)"))
	}
	b.WriteString("\n\n")
	b.WriteString(RenderStep(m.step, m.total, m.width))
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(warnStyle.Render("  " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(secondaryStyle.Render(helpLine(m.keys.Next, m.keys.Prev, m.keys.Quit)))
	b.WriteString("\n")
	return b.String()
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return "  " + strings.Join(parts, " • ")
}
