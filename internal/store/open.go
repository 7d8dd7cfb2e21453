package store

import (
	"context"
	"fmt"

	"github.com/Bhumika158/SignSegmentationUI/internal/config"
	"github.com/Bhumika158/SignSegmentationUI/internal/db"
)

// Open constructs the record store selected by deployment configuration.
// The choice is invisible to the validation service.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSONFile, "":
		return NewJSONFile(cfg.DBPath)
	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return NewPostgres(ctx, pool)
	case config.BackendSQLite:
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		return NewSQLite(gdb)
	default:
		return nil, fmt.Errorf("unsupported DB_BACKEND %q (expected jsonfile, postgres, or sqlite)", cfg.Backend)
	}
}
