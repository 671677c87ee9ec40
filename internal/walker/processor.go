// Package walker handles directory traversal and file processing
package walker

// processFile hands a single surviving file to the walk function
func (w *walk) processFile(path, relativePath string) {
	if w.options.ProgressFn != nil {
		w.options.ProgressFn(ProgressStats{
			TotalFiles:      w.stats.totalFiles,
			ProcessedFiles:  w.stats.processedFiles,
			SkippedFiles:    w.stats.skippedFiles,
			TotalDirs:       w.stats.totalDirs,
			SkippedDirs:     w.stats.skippedDirs,
			CurrentFilePath: relativePath,
		})
	}

	if w.walkFn == nil {
		w.files = append(w.files, path)
		w.stats.processedFiles++
		return
	}

	if err := w.walkFn(path, relativePath); err != nil {
		w.options.Logger.Error("processFile Error [%s]: %v", relativePath, err)
		w.skip(relativePath, ReasonSkippedExport, false)
		return
	}

	w.options.Logger.Debug("processFile Success [%s]", relativePath)
	w.files = append(w.files, path)
	w.stats.processedFiles++
}
