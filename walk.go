package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// walkFiles calls fn for every regular file under root, depth first in
// lexical order. Directories are skipped. A root that cannot be read stops
// the walk; an unreadable directory below it is logged and skipped. Errors
// from fn stop the walk and are returned as is.
func walkFiles(root string, log *zap.Logger, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return fmt.Errorf("walk %s: %w", path, err)
			}
			log.Warn("Skipping unreadable path", zap.String("path", path), zap.Error(err))
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !isCandidateFile(path, d) {
			return nil
		}
		return fn(path)
	})
}

// isCandidateFile reports regular files and symlinks that do not resolve to
// a directory. Dangling links are kept so the open reports them.
func isCandidateFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err != nil || info.Mode().IsRegular()
}
