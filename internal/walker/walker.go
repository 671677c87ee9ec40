// Package walker handles directory traversal and file processing
package walker

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/bethropolis/project2txt/internal/ignore"
)

// stats counts what the walk has seen so far
type stats struct {
	totalFiles     int64
	processedFiles int64
	skippedFiles   int64
	totalDirs      int64
	skippedDirs    int64
}

// walk carries the state of one traversal
type walk struct {
	matcher *ignore.Matcher
	walkFn  WalkFunc
	options WalkOptions
	tracker *SkippedTracker
	stats   stats
	files   []string
}

// Walk traverses the directory tree starting from rootDir, top-down.
//
// Within each directory, entries are taken in name order: ignored child
// directories are pruned before anything is descended, then every remaining
// file is tested and handed to walkFn, then the surviving subdirectories are
// walked in turn. A pruned directory's contents are never visited.
//
// A root that is missing, unreadable or not a directory is a fatal error.
// Errors below the root are reported through the logger, tracked as
// skipped, and the walk continues.
func Walk(rootDir string, matcher *ignore.Matcher, walkFn WalkFunc, opts ...Option) (Result, error) {
	startTime := time.Now()

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	absRootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return Result{}, fmt.Errorf("walker: failed to get absolute path for '%s': %w", rootDir, err)
	}

	info, err := os.Stat(absRootDir)
	if err != nil {
		return Result{}, fmt.Errorf("walker: cannot access root '%s': %w", absRootDir, err)
	}
	if !info.IsDir() {
		return Result{}, fmt.Errorf("walker: root '%s' is not a directory", absRootDir)
	}

	w := &walk{
		matcher: matcher,
		walkFn:  walkFn,
		options: options,
		tracker: NewSkippedTracker(16),
	}

	options.Logger.Debug("walker.Walk started. Root: %s", absRootDir)

	entries, err := os.ReadDir(absRootDir)
	if err != nil {
		return Result{}, fmt.Errorf("walker: cannot read root '%s': %w", absRootDir, err)
	}
	w.stats.totalDirs++

	walkErr := w.visit(absRootDir, "", entries)

	options.Logger.Debug("Walker: %d files processed, %d files and %d dirs skipped in %s",
		w.stats.processedFiles, w.stats.skippedFiles, w.stats.skippedDirs, time.Since(startTime))

	return Result{Files: w.files, Skipped: w.tracker.Items()}, walkErr
}

// visit processes one already-listed directory and recurses into its
// surviving subdirectories.
func (w *walk) visit(dir, rel string, entries []os.DirEntry) error {
	if err := w.options.Context.Err(); err != nil {
		return err
	}

	var dirs, files []string

	for _, entry := range entries {
		name := entry.Name()
		childPath := filepath.Join(dir, name)
		childRel := path.Join(rel, name)

		if _, excluded := w.options.ExcludePaths[childPath]; excluded {
			w.options.Logger.Debug("Walker: Excluded %q (output location)", childRel)
			w.tracker.Track(childRel, ReasonExcludedPath, entry.IsDir())
			continue
		}

		isDir, regular, err := classify(childPath, entry)
		if err != nil {
			w.options.Logger.Warn("Walker: Cannot stat %q: %v", childRel, err)
			w.skip(childRel, reasonFor(err), false)
			continue
		}

		if isDir {
			w.stats.totalDirs++
			if w.matcher.ShouldIgnore(childRel, true) {
				w.options.Logger.Debug("Walker: Pruned directory %q by ignore rules", childRel)
				w.skip(childRel, ReasonIgnoredRule, true)
				continue
			}
			if entry.Type()&os.ModeSymlink != 0 {
				w.options.Logger.Debug("Walker: Not following symlinked directory %q", childRel)
				w.skip(childRel, ReasonSkippedSymlinkDir, true)
				continue
			}
			dirs = append(dirs, name)
			continue
		}

		w.stats.totalFiles++
		if !regular {
			w.options.Logger.Debug("Walker: Skipping %q: not a regular file", childRel)
			w.skip(childRel, ReasonSkippedNotRegular, false)
			continue
		}
		files = append(files, name)
	}

	for _, name := range files {
		childRel := path.Join(rel, name)
		if w.matcher.ShouldIgnore(childRel, false) {
			w.options.Logger.Debug("Walker: Ignored %q by ignore rules", childRel)
			w.skip(childRel, ReasonIgnoredRule, false)
			continue
		}
		w.processFile(filepath.Join(dir, name), childRel)
	}

	for _, name := range dirs {
		childPath := filepath.Join(dir, name)
		childRel := path.Join(rel, name)

		children, err := os.ReadDir(childPath)
		if err != nil {
			w.options.Logger.Error("Walker Error: Cannot read directory %q: %v", childRel, err)
			w.skip(childRel, reasonFor(err), true)
			continue
		}

		w.options.Logger.Debug("Walker: Descending into directory %q", childRel)
		if err := w.visit(childPath, childRel, children); err != nil {
			return err
		}
	}

	return nil
}

// skip records a skipped entry and bumps the matching counter
func (w *walk) skip(rel string, reason SkippedReason, isDir bool) {
	w.tracker.Track(rel, reason, isDir)
	if isDir {
		w.stats.skippedDirs++
	} else {
		w.stats.skippedFiles++
	}
}

// classify resolves what an entry is, following symlinks one level.
func classify(childPath string, entry os.DirEntry) (isDir, regular bool, err error) {
	mode := entry.Type()
	if mode&os.ModeSymlink == 0 {
		return mode.IsDir(), mode.IsRegular(), nil
	}

	info, err := os.Stat(childPath)
	if err != nil {
		return false, false, err
	}
	return info.IsDir(), info.Mode().IsRegular(), nil
}

// reasonFor maps an I/O error to a skipped reason
func reasonFor(err error) SkippedReason {
	if os.IsPermission(err) {
		return ReasonSkippedPermError
	}
	return ReasonSkippedWalkError
}
