package i18n

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"razertr/internal/domain/entities"
	"razertr/internal/ports/output"
)

const loadWorkers = 4

var _ output.CatalogSource = DirSource{}

// DirSource loads catalogs from a directory, or from the catalogs compiled
// into the binary when Path is empty.
type DirSource struct {
	Path string
}

func (s DirSource) Catalogs(ctx context.Context) ([]*entities.Catalog, error) {
	if s.Path == "" {
		return Embedded(ctx)
	}
	return LoadDir(ctx, os.DirFS(s.Path))
}

// Embedded loads the catalogs shipped with the binary.
func Embedded(ctx context.Context) ([]*entities.Catalog, error) {
	sub, err := fs.Sub(localeFS, "translations")
	if err != nil {
		return nil, err
	}
	return LoadDir(ctx, sub)
}

// LoadDir decodes every resource at the top of fsys, in file name order.
// Files of other types and dot files are ignored.
func LoadDir(ctx context.Context, fsys fs.FS) ([]*entities.Catalog, error) {
	dirEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("i18n: read translations: %w", err)
	}
	var names []string
	for _, de := range dirEntries {
		if de.IsDir() || strings.HasPrefix(de.Name(), ".") {
			continue
		}
		if _, ok := FormatOf(de.Name()); ok {
			names = append(names, de.Name())
		}
	}

	catalogs := make([]*entities.Catalog, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(loadWorkers)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := LoadFile(fsys, name)
			if err != nil {
				return err
			}
			catalogs[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	zap.L().Debug("i18n: catalogs loaded", zap.Strings("files", names))
	return catalogs, nil
}

// LoadFile decodes one resource of fsys.
func LoadFile(fsys fs.FS, name string) (*entities.Catalog, error) {
	buf, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", name, err)
	}
	c, err := Decode(name, buf)
	if err != nil {
		return nil, fmt.Errorf("i18n: load %s: %w", name, err)
	}
	return c, nil
}
