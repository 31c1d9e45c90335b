package model

import "fmt"

// Flag is a CTF flag token extracted from scanned content.
// Identity is exact string equality; flags are immutable once found.
type Flag string

// String returns the flag as a plain string.
func (f Flag) String() string {
	return string(f)
}

// ContentKind labels what part of a fetched page a piece of text came from.
// It is attached to source labels for reporting only and carries no other
// semantics.
type ContentKind string

// Content kinds reported by the URL scanner.
const (
	// KindHTML is the raw body of the fetched page.
	KindHTML ContentKind = "HTML"

	// KindJavaScript is an external script fetched via a <script src> tag.
	KindJavaScript ContentKind = "JavaScript"

	// KindInlineJavaScript is the text content of an inline <script> tag.
	KindInlineJavaScript ContentKind = "Inline JavaScript"

	// KindCSS is an external stylesheet fetched via <link rel="stylesheet">.
	KindCSS ContentKind = "CSS"

	// KindInlineCSS is the text content of an inline <style> tag.
	KindInlineCSS ContentKind = "Inline CSS"

	// KindHTMLContent is a text or comment node from the parsed document.
	KindHTMLContent ContentKind = "HTML Content"
)

// SourceLabel builds a human-readable provenance string for a URL-derived
// source, e.g. "http://example.com/app.js (JavaScript)". File sources use
// the bare path and do not go through this function.
func SourceLabel(location string, kind ContentKind) string {
	return fmt.Sprintf("%s (%s)", location, kind)
}

// Match pairs a flag with the source label it was first seen at.
// Later occurrences of the same flag are silently dropped by the matcher,
// so only the first-seen source is ever recorded.
type Match struct {
	// Flag is the matched flag value.
	Flag Flag `json:"flag"`

	// Source is the human-readable provenance of the first occurrence:
	// a file path, or a URL annotated with a content kind.
	Source string `json:"source"`
}
