package scanner

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// ScanDirectory recursively walks root and scans every regular file whose
// name ends with one of the configured extensions (case-sensitive).
//
// Traversal order is whatever filepath.WalkDir yields; flag deduplication
// makes the final result set order-independent. WalkDir does not follow
// symlinks, which is also our cycle protection: a link pointing back into
// the tree is listed once and never descended into.
func (s *Scanner) ScanDirectory(root string) {
	s.logger.Debug("scanning directory", "root", root, "extensions", s.extensions)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry (or a missing root): record and move on.
			s.recordFailure(path, err)
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !s.matchesExtension(d.Name()) {
			return nil
		}

		s.ScanFile(path)
		return nil
	})
	if err != nil {
		// WalkDir only returns an error our callback produced, and the
		// callback swallows everything. Guard anyway.
		s.recordFailure(root, err)
	}
}

// matchesExtension reports whether a file name ends with one of the
// allowed extensions. The comparison is an exact suffix match; "A.JS"
// does not match ".js".
func (s *Scanner) matchesExtension(name string) bool {
	for _, ext := range s.extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
