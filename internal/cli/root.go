// Package cli provides the command-line interface for recipebox.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/recipebox/internal/config"
	"github.com/hammamikhairi/recipebox/internal/domain"
	"github.com/hammamikhairi/recipebox/internal/engine"
	"github.com/hammamikhairi/recipebox/internal/favorites"
	"github.com/hammamikhairi/recipebox/internal/logger"
	"github.com/hammamikhairi/recipebox/internal/mealdb"
	"github.com/hammamikhairi/recipebox/internal/recipe"
	"github.com/hammamikhairi/recipebox/internal/state"
	"github.com/hammamikhairi/recipebox/internal/storage"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries the flags and the dependencies wired from them.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	offline    bool

	cfg       *config.Config
	log       *logger.Logger
	catalog   *recipe.Catalog
	recipes   *state.RecipesStore
	favorites *favorites.Store
	engine    *engine.Engine

	closers []func() error
}

// Execute builds the command tree and runs it.
func Execute(ctx context.Context) error {
	a := &app{}
	defer a.close()
	return newRootCmd(a).ExecuteContext(ctx)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "recipebox",
		Short: "Browse recipes and cook them step by step",
		Long: `Recipebox searches TheMealDB, keeps your favorite recipes and walks
you through a recipe one step at a time in cooking mode.

When the recipe API cannot be reached the built-in sample recipes are shown
instead.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip wiring for help and completion
			if cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}
			return a.wire(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./recipebox.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")
	root.PersistentFlags().BoolVar(&a.offline, "offline", false, "use the sample recipes only")

	root.AddCommand(
		newSearchCmd(a),
		newShowCmd(a),
		newRandomCmd(a),
		newCategoriesCmd(a),
		newCategoryCmd(a),
		newCookCmd(a),
		newFavoritesCmd(a),
	)
	return root
}

// wire loads the configuration and builds every dependency.
func (a *app) wire(stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.offline {
		cfg.API.Offline = true
	}
	a.cfg = cfg

	log, closeLog := logger.NewWithFile(logger.ParseLevel(cfg.Log.Level), stderr, cfg.Log.File)
	if a.verbose {
		log.SetLevel(logger.LevelVerbose)
	}
	a.log = log
	a.closers = append(a.closers, closeLog)

	var remote domain.RecipeAPI
	if !cfg.API.Offline {
		remote = mealdb.NewClient(cfg.API.BaseURL, log, mealdb.WithHTTPTimeout(cfg.API.Timeout))
	}
	a.catalog = recipe.NewCatalog(remote, recipe.NewSampleSource(log), log,
		recipe.WithRandomConcurrency(cfg.Random.Concurrency),
	)
	a.recipes = state.NewRecipesStore(a.catalog, log)

	kv, err := a.openKV()
	if err != nil {
		return err
	}
	a.favorites = favorites.NewStore(kv, log, favorites.WithKey(cfg.Favorites.Key))

	a.engine = engine.New(a.catalog, storage.NewMemorySessionStore(log), log,
		engine.WithLimits(cfg.Steps.Limits()),
	)
	return nil
}

func (a *app) openKV() (domain.KVStore, error) {
	switch a.cfg.Storage.Driver {
	case config.DriverSQLite:
		kv, err := storage.OpenSQLiteKV(a.cfg.Storage.Path, a.log)
		if err != nil {
			return nil, fmt.Errorf("open favorites database: %w", err)
		}
		a.closers = append(a.closers, kv.Close)
		return kv, nil
	default:
		return storage.NewMemoryKV(a.log), nil
	}
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: close: %v\n", err)
		}
	}
	a.closers = nil
}

// isFavorite adapts the favorites store for the list renderers.
func (a *app) isFavorite(ctx context.Context) func(id string) bool {
	saved := make(map[string]bool)
	for _, f := range a.favorites.Load(ctx) {
		saved[f.ID] = true
	}
	return func(id string) bool { return saved[id] }
}

// errNotFound turns a lookup miss into a friendly message.
func errNotFound(id string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no recipe with id %q", id)
	}
	return err
}
