// Package log provides structured logging with credential redaction.
//
// Per-site configuration can carry session cookies and auth headers for
// protected challenge servers. Scan logging mentions request details at
// debug level, so every attribute passes through a sanitizing handler
// that masks credential-looking keys and values before they reach the
// output.
package log
