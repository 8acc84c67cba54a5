package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"razertr/internal/application"
	"razertr/internal/config"
	"razertr/internal/infrastructure/database"
	"razertr/internal/infrastructure/i18n"
	"razertr/internal/ports/output"
)

var (
	cfg     *config.Config
	logger  *zap.Logger
	verbose bool

	flagLocale string
	flagDir    string
	flagDB     string
)

var rootCmd = &cobra.Command{
	Use:   "razertr",
	Short: "Look up and maintain the translated labels of Razer devices",
	Long: `razertr resolves lighting-effect, LED zone and charging labels of Razer
devices in the user's language. Translations come from Qt Linguist .ts files
(or flat TOML/YAML/JSON tables); anything a language does not translate is
shown in English.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if flagLocale != "" {
			cfg.Locale = flagLocale
		}
		if flagDir != "" {
			cfg.TranslationsDir = flagDir
		}
		if flagDB != "" {
			cfg.DatabaseURL = flagDB
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		zcfg := zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to parse log level: %w", err)
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagLocale, "locale", "l", "", "locale to translate into (default $LOCALE or the system locale)")
	pf.StringVarP(&flagDir, "dir", "d", "", "translations directory (default $TRANSLATIONS_DIR or the built-in catalogs)")
	pf.StringVar(&flagDB, "db", "", "PostgreSQL URL of the catalog store (default $DATABASE_URL)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(lookupCmd, listCmd, checkCmd, exportCmd, syncCmd, watchCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// fileSource is where catalogs come from unless a command reads the
// database explicitly.
func fileSource() output.CatalogSource {
	return i18n.DirSource{Path: cfg.TranslationsDir}
}

func newService(ctx context.Context, src output.CatalogSource) (*application.CatalogService, *i18n.Store, error) {
	t, err := i18n.Load(ctx, src, cfg.Locale)
	if err != nil {
		return nil, nil, err
	}
	store := i18n.NewStore(t)
	return application.NewCatalogService(store), store, nil
}

// withRepository connects to the catalog store, migrating it first.
func withRepository(ctx context.Context, fn func(*database.CatalogRepository) error) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("no database configured: set DATABASE_URL or --db")
	}
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()
	return fn(database.NewCatalogRepository(pool))
}
