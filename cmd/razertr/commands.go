package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"razertr/internal/application"
	"razertr/internal/domain/entities"
	"razertr/internal/infrastructure/database"
	"razertr/internal/infrastructure/i18n"
	"razertr/internal/ports/output"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup KEY...",
	Short: "Print the translation of each source string",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService(cmd.Context(), fileSource())
		if err != nil {
			return err
		}
		var errs []error
		for _, key := range args {
			v, err := svc.Lookup(key, cfg.Locale)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return errors.Join(errs...)
	},
}

var fromDB bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every label with its translation",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if !fromDB {
			svc, _, err := newService(ctx, fileSource())
			if err != nil {
				return err
			}
			return printLabels(cmd, svc)
		}
		return withRepository(ctx, func(repo *database.CatalogRepository) error {
			svc, _, err := newService(ctx, repo)
			if err != nil {
				return err
			}
			return printLabels(cmd, svc)
		})
	},
}

func printLabels(cmd *cobra.Command, svc *application.CatalogService) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "KIND\tSOURCE\t%s\n", strings.ToUpper(cfg.Locale))
	for _, c := range entities.Effects() {
		fmt.Fprintf(w, "effect\t%s\t%s\n", c.Label, svc.EffectName(c.Effect, cfg.Locale))
	}
	for _, id := range entities.LedIDs() {
		fmt.Fprintf(w, "led 0x%02x\t%s\t%s\n", uint8(id), id.Label(), svc.LedName(id, cfg.Locale))
	}
	for _, s := range entities.ChargingStates() {
		fmt.Fprintf(w, "charging\t%s\t%s\n", s.Label(), svc.ChargingName(s, cfg.Locale))
	}
	return w.Flush()
}

var strict bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report untranslated and stale strings of every catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := newService(cmd.Context(), fileSource())
		if err != nil {
			return err
		}
		report, err := svc.CoverageAll()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		incomplete := 0
		for _, cov := range report {
			total := len(cov.Translated) + len(cov.Missing)
			fmt.Fprintf(out, "%s: %d/%d translated\n", cov.Locale, len(cov.Translated), total)
			for _, k := range cov.Missing {
				fmt.Fprintf(out, "  missing:  %s\n", k)
			}
			for _, k := range cov.Obsolete {
				fmt.Fprintf(out, "  obsolete: %s\n", k)
			}
			if len(cov.Obsolete) > 0 || (strict && !cov.Complete()) {
				incomplete++
			}
		}
		if incomplete > 0 {
			return fmt.Errorf("%d catalog(s) need attention", incomplete)
		}
		return nil
	},
}

var (
	exportFormat string
	exportOut    string
	exportPrefix string
	exportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write catalogs in another format",
	Long: `Writes the catalog of --locale, or of every locale with --all or without
--locale, as .ts, .toml, .yaml or .json into the --out directory ("-" for
stdout).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := exportFormatOf(exportFormat)
		if err != nil {
			return err
		}
		_, store, err := newService(cmd.Context(), fileSource())
		if err != nil {
			return err
		}

		var catalogs []*entities.Catalog
		if exportAll || flagLocale == "" {
			for _, l := range store.Locales() {
				c, _ := store.Catalog(l)
				catalogs = append(catalogs, c)
			}
		} else {
			c, ok := store.Catalog(cfg.Locale)
			if !ok {
				return fmt.Errorf("no catalog for locale %s", cfg.Locale)
			}
			catalogs = append(catalogs, c)
		}

		for _, c := range catalogs {
			buf, err := i18n.Encode(c, f)
			if err != nil {
				return err
			}
			if exportOut == "-" {
				if _, err := cmd.OutOrStdout().Write(buf); err != nil {
					return err
				}
				continue
			}
			name := filepath.Join(exportOut, i18n.FileName(exportPrefix, c.Locale, f))
			if err := os.WriteFile(name, buf, 0o644); err != nil {
				return err
			}
			zap.L().Info("catalog exported", zap.String("locale", c.Locale), zap.String("file", name))
		}
		return nil
	},
}

// exportFormatOf accepts a format name or extension, e.g. "yml" for YAML.
func exportFormatOf(name string) (i18n.Format, error) {
	f, ok := i18n.FormatOf("x." + strings.TrimPrefix(name, "."))
	if !ok {
		return "", fmt.Errorf("unknown format %q", name)
	}
	return f, nil
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Publish the catalogs to the PostgreSQL catalog store",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		catalogs, err := fileSource().Catalogs(ctx)
		if err != nil {
			return err
		}
		// refuse to publish what would not load
		if _, err := i18n.NewTranslator(cfg.Locale, catalogs...); err != nil {
			return err
		}
		return withRepository(ctx, func(repo *database.CatalogRepository) error {
			return publish(ctx, cmd, repo, catalogs)
		})
	},
}

func publish(ctx context.Context, cmd *cobra.Command, repo output.CatalogRepository, catalogs []*entities.Catalog) error {
	for _, c := range catalogs {
		version, err := repo.Save(ctx, c)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: version %d\n", c.Locale, version)
	}
	return nil
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep the catalogs of --dir loaded and reload them on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.TranslationsDir == "" {
			return fmt.Errorf("watch needs a translations directory: set TRANSLATIONS_DIR or --dir")
		}
		ctx := cmd.Context()
		svc, store, err := newService(ctx, fileSource())
		if err != nil {
			return err
		}
		w, err := i18n.NewWatcher(cfg.TranslationsDir, store, cfg.Locale)
		if err != nil {
			return err
		}
		w.OnReload(func(err error) {
			if err != nil {
				return
			}
			report, _ := svc.CoverageAll()
			for _, cov := range report {
				zap.L().Info("catalog coverage",
					zap.String("locale", cov.Locale),
					zap.Int("translated", len(cov.Translated)),
					zap.Int("missing", len(cov.Missing)),
					zap.Int("obsolete", len(cov.Obsolete)))
			}
		})
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()

		<-ctx.Done()
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&fromDB, "from-db", false, "read the latest catalogs from the catalog store")
	checkCmd.Flags().BoolVar(&strict, "strict", false, "fail on untranslated strings too")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "toml", "ts, toml, yaml (yml) or json")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", `output directory, "-" for stdout`)
	exportCmd.Flags().StringVar(&exportPrefix, "prefix", "razer", "file name prefix")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "export every locale")
}
