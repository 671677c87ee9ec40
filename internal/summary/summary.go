// Package summary handles display of run results and skipped items
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/project2txt/internal/walker"
)

// pathWidth caps the path column of the skipped items table
const pathWidth = 50

// Logger defines the minimal logging interface required
type Logger interface {
	Info(format string, args ...interface{})
}

// DisplayResults logs the totals of a finished run
func DisplayResults(logger Logger, artifacts, skipped, wordCount int, duration time.Duration) {
	logger.Info("Exported %d files, skipped %d entries.", artifacts, skipped)
	if artifacts > 0 {
		logger.Info("Merged output holds %d words.", wordCount)
	}
	logger.Info("Run complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints a table of skipped items, sorted by path
func DisplaySkippedItems(logger Logger, skippedItems []walker.SkippedItem, output io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
		logger.Info("--- End Skipped Items ---")
		return
	}

	items := append([]walker.SkippedItem(nil), skippedItems...)
	sort.Slice(items, func(i, j int) bool {
		return items[i].Path < items[j].Path
	})
	for _, item := range items {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Add space for alignment
		}
		fmt.Fprintf(output, "Skipped %s: %-*.*s [%s]\n",
			typeStr,
			pathWidth, pathWidth,
			item.Path,
			item.Reason,
		)
	}
	logger.Info("--- End Skipped Items ---")
}
