// Command dbctl is the administrative maintenance tool for the validation
// store: inspect entries, show statistics, clear the store, or delete one
// video's history. Destructive commands ask for confirmation.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/Bhumika158/SignSegmentationUI/internal/config"
	"github.com/Bhumika158/SignSegmentationUI/internal/model"
	"github.com/Bhumika158/SignSegmentationUI/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()
	ctx := context.Background()

	st, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer st.Close()

	command := strings.ToLower(os.Args[1])
	switch command {
	case "show":
		err = showValidations(ctx, st)
	case "stats":
		err = showStats(ctx, st)
	case "clear":
		err = clearAll(ctx, st)
	case "delete":
		if len(os.Args) < 3 {
			log.Fatal("usage: dbctl delete VIDEO_ID")
		}
		err = deleteVideo(ctx, st, os.Args[2])
	default:
		fmt.Printf("unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}

func showValidations(ctx context.Context, st store.Store) error {
	events, err := st.All(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("Store is empty.")
		return nil
	}

	byVideo := groupByVideo(events)
	videoIDs := sortedKeys(byVideo)

	fmt.Printf("Validation store (%s): %d total entries\n\n", st.Name(), len(events))
	for _, videoID := range videoIDs {
		list := byVideo[videoID]
		fmt.Printf("%s: %d validation(s)\n", videoID, len(list))
		for i, e := range list {
			fmt.Printf("  %d. [%s] %s (by %s)\n", i+1, e.Status, e.Timestamp, e.Validator)
			if fb := strings.TrimSpace(e.Feedback); fb != "" {
				if len(fb) > 50 {
					fb = fb[:50] + "..."
				}
				fmt.Printf("     Feedback: %s\n", fb)
			}
		}
		fmt.Println()
	}
	return nil
}

func showStats(ctx context.Context, st store.Store) error {
	events, err := st.All(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("Store is empty.")
		return nil
	}

	statusCounts := make(map[string]int)
	videoIDs := make(map[string]bool)
	for _, e := range events {
		statusCounts[e.Status]++
		videoIDs[e.VideoID] = true
	}

	fmt.Printf("Store statistics (%s)\n", st.Name())
	fmt.Printf("Total validations: %d\n", len(events))
	fmt.Printf("Videos with validations: %d\n", len(videoIDs))
	fmt.Println("By status:")
	for _, status := range sortedKeys(statusCounts) {
		fmt.Printf("  %s: %d\n", status, statusCounts[status])
	}
	return nil
}

func clearAll(ctx context.Context, st store.Store) error {
	events, err := st.All(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Println("Store is already empty.")
		return nil
	}

	if !confirm(fmt.Sprintf("Delete ALL %d validation(s)?", len(events))) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := st.Truncate(ctx); err != nil {
		return err
	}
	fmt.Printf("Deleted all %d validation(s).\n", len(events))
	return nil
}

func deleteVideo(ctx context.Context, st store.Store, videoID string) error {
	existing, err := st.QueryByVideo(ctx, videoID)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		fmt.Printf("No validations found for video: %s\n", videoID)
		return nil
	}

	if !confirm(fmt.Sprintf("Delete %d validation(s) for %q?", len(existing), videoID)) {
		fmt.Println("Cancelled.")
		return nil
	}

	n, err := st.DeleteByVideo(ctx, videoID)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d validation(s) for %q.\n", n, videoID)
	return nil
}

func confirm(prompt string) bool {
	fmt.Printf("WARNING: %s (yes/no): ", prompt)
	var response string
	fmt.Scanln(&response)
	return strings.EqualFold(response, "yes")
}

func groupByVideo(events []model.ValidationEvent) map[string][]model.ValidationEvent {
	byVideo := make(map[string][]model.ValidationEvent)
	for _, e := range events {
		byVideo[e.VideoID] = append(byVideo[e.VideoID], e)
	}
	return byVideo
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printUsage() {
	fmt.Print(`dbctl - validation store maintenance

USAGE:
    dbctl COMMAND

COMMANDS:
    show           Show all validations grouped by video
    stats          Show store statistics
    clear          Delete every validation (requires confirmation)
    delete VIDEO   Delete all validations for one video (requires confirmation)

The store is selected by the same environment variables the server uses
(DB_BACKEND, DB_PATH, DATABASE_URL, SQLITE_PATH).
`)
}
