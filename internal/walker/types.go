// Package walker handles directory traversal and file processing
package walker

// WalkFunc is called once for every file that survives the ignore rules.
// path is absolute; relativePath is slash-separated and relative to the
// root. A returned error is reported and tracked, and the walk continues.
type WalkFunc func(path, relativePath string) error

// SkippedReason clarifies why a file/directory was not processed.
type SkippedReason string

const (
	ReasonIgnoredRule       SkippedReason = "Ignored (Ignore List Rule)"
	ReasonExcludedPath      SkippedReason = "Skipped (Output Location)"
	ReasonSkippedNotRegular SkippedReason = "Skipped (Not a Regular File)"
	ReasonSkippedSymlinkDir SkippedReason = "Skipped (Symlinked Directory)"
	ReasonSkippedPermError  SkippedReason = "Skipped (Permission Error)"
	ReasonSkippedWalkError  SkippedReason = "Skipped (Walk Error)"
	ReasonSkippedExport     SkippedReason = "Skipped (Export Error)"
)

// SkippedItem holds information about a skipped path.
type SkippedItem struct {
	Path   string        `json:"path"`
	Reason SkippedReason `json:"reason"`
	IsDir  bool          `json:"is_dir"`
}

// Result is what a completed walk produced.
type Result struct {
	// Files lists every file handed to the WalkFunc without error, in
	// traversal order (absolute paths).
	Files   []string
	Skipped []SkippedItem
}

// SkippedTracker is a struct to track skipped items
type SkippedTracker struct {
	items []SkippedItem
}

// NewSkippedTracker creates a new SkippedTracker
func NewSkippedTracker(capacity int) *SkippedTracker {
	return &SkippedTracker{
		items: make([]SkippedItem, 0, capacity),
	}
}

// Track adds a skipped item to the tracker
func (st *SkippedTracker) Track(path string, reason SkippedReason, isDir bool) {
	st.items = append(st.items, SkippedItem{Path: path, Reason: reason, IsDir: isDir})
}

// Items returns the tracked skipped items
func (st *SkippedTracker) Items() []SkippedItem {
	return st.items
}
