package scanner

import (
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ScanFile reads a local file and feeds its content to the matcher.
// Read failures (missing file, permissions, I/O errors) are reported and
// recorded; they never abort the run.
func (s *Scanner) ScanFile(path string) {
	raw, err := os.ReadFile(path) //nolint:gosec // Scanning user-provided paths is the point
	if err != nil {
		s.recordFailure(path, err)
		return
	}

	s.logger.Debug("scanning file", "path", path, "bytes", len(raw))
	s.matcher.Scan(decodeText(raw), path)
}

// decodeText converts arbitrary file bytes to scannable UTF-8 text.
//
// UTF-16 files are converted via their BOM; everything else is treated as
// UTF-8. Invalid byte sequences are dropped rather than surfaced as an
// error, so binary files degrade to best-effort partial text instead of
// aborting the scan.
func decodeText(raw []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "")
	}

	// The decoder substitutes undecodable bytes with U+FFFD; drop those
	// to match the lossy "ignore errors" contract.
	return strings.ReplaceAll(string(decoded), "�", "")
}
