// Command migrator imports a legacy JSON validation snapshot into the record
// store selected by the environment. One-shot and offline; safe to re-run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Bhumika158/SignSegmentationUI/internal/config"
	"github.com/Bhumika158/SignSegmentationUI/internal/importer"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

func main() {
	var (
		snapshotPath = flag.String("snapshot", "", "Path to the legacy JSON snapshot (default: DB_PATH)")
		showHelp     = flag.Bool("help", false, "Show help information")
	)
	flag.Parse()

	if *showHelp {
		printUsage()
		os.Exit(0)
	}

	cfg := config.Load()

	src := *snapshotPath
	if src == "" {
		src = cfg.DBPath
	}

	ctx := context.Background()
	target, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open target store: %v", err)
	}
	defer target.Close()

	log.Printf("migrating %s into %s store", src, target.Name())

	res, err := importer.Run(ctx, src, target)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	fmt.Printf("Migration complete: %d migrated, %d skipped (duplicates), %d failed\n",
		res.Migrated, res.Skipped, res.Failed)
}

func printUsage() {
	fmt.Print(`migrator - one-shot validation snapshot import

USAGE:
    migrator [-snapshot PATH]

The target store is selected by the same environment variables the server
uses (DB_BACKEND, DATABASE_URL, SQLITE_PATH, DB_PATH). Events already in the
target are skipped when an existing record matches on
(video_id, timestamp, status), so re-running is safe.

OPTIONS:
    -snapshot PATH  Legacy JSON snapshot to import (default: DB_PATH)
    -help           Show this help message

EXAMPLES:
    DB_BACKEND=postgres DATABASE_URL=postgres://... migrator -snapshot data/validation_database.json
    DB_BACKEND=sqlite migrator
`)
}
