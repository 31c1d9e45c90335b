// Package fetch provides the HTTP client used by the URL scanner.
//
// The Client wraps net/http with the behavior the scanner needs and
// nothing more: context-aware GET, a fixed per-request timeout, a
// browser-like User-Agent, optional per-site headers, a response body
// size cap, and a single failure signal for both transport errors and
// non-2xx responses. Response bodies are decoded to text according to
// the declared charset and then lossily cleaned to valid UTF-8, so
// callers always receive a scannable string.
package fetch
