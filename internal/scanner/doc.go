// Package scanner enumerates text sources and feeds them to the matcher.
//
// Three origins are supported: a single local file, a recursively walked
// directory filtered by extension, and a fetched URL plus its directly
// embedded resources (external scripts, external stylesheets, inline
// scripts and styles, and every text or comment node of the document).
//
// Every per-item failure (unreadable file, failed fetch) is reported to
// the diagnostics writer and recorded on the run's Report; nothing here
// aborts a run. Only a failed main-page fetch aborts that one URL's scan,
// because there is no content left to parse.
//
// Data flows one way: source enumeration produces raw text, the matcher
// extracts and deduplicates flags, and the match callback handles
// immediate reporting. The scanner holds no result state of its own.
package scanner
