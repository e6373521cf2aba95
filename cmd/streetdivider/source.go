package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/streetdivider/internal/config"
	"github.com/streetdivider/internal/db"
	"github.com/streetdivider/internal/divider"
	"github.com/streetdivider/internal/logger"
	"github.com/streetdivider/internal/streets"
	"github.com/streetdivider/internal/web/handlers"
)

const fileSourcePrefix = "file:"

// loadStreets fetches the special street names from source.
func loadStreets(ctx context.Context, source, enc string) ([]string, error) {
	switch {
	case source == "" || source == "embedded":
		return streets.Default(), nil

	case source == "db":
		conn, err := db.NewConnection(ctx)
		if err != nil {
			return nil, err
		}
		defer conn.Close()
		return streets.NewStore(conn.DB).List(ctx)

	case strings.HasPrefix(source, fileSourcePrefix):
		path := strings.TrimPrefix(source, fileSourcePrefix)
		if path == "" {
			return nil, fmt.Errorf("dictionary source %q: missing path", source)
		}
		return streets.ReadFile(path, enc)
	}

	return nil, fmt.Errorf("unknown dictionary source %q (want embedded, db or file:<path>)", source)
}

// newDivider builds a divider from the configured dictionary source.
func newDivider(ctx context.Context, settings *config.Settings) (*divider.Divider, error) {
	names, err := loadStreets(ctx, settings.DictSource, settings.DictEncoding)
	if err != nil {
		return nil, fmt.Errorf("loading special streets: %w", err)
	}
	logger.Debug("special streets loaded", "source", settings.DictSource, "count", len(names))
	return divider.NewWithStreets(names...), nil
}

func streetLoader(settings *config.Settings) handlers.StreetLoader {
	return func(ctx context.Context) ([]string, error) {
		return loadStreets(ctx, settings.DictSource, settings.DictEncoding)
	}
}
