package matcher

import (
	"regexp"
	"sort"
	"sync"

	"github.com/usucyber/flagscan/internal/model"
)

// flagPattern matches a CTF flag: "USU{" followed by one or more
// non-brace characters and the nearest closing brace. The content match
// is greedy but bounded, so "USU{a}extra}" yields exactly "USU{a}".
var flagPattern = regexp.MustCompile(`USU\{[^}]+\}`)

// Matcher extracts flags from text and suppresses duplicate reports.
//
// Design decision: We keep the found-flag set inside the Matcher and pass
// the Matcher explicitly to every scan operation rather than using
// package-level state because:
//  1. Independent runs (and tests) get independent result sets
//  2. The deduplication contract lives in exactly one place
//  3. Callers can reuse a Matcher across files, directories, and URLs,
//     which is what makes cross-source deduplication work
type Matcher struct {
	// pattern is the compiled flag regular expression.
	pattern *regexp.Regexp

	// seen tracks flags already reported, unique by exact string value.
	seen map[model.Flag]bool

	// onMatch, if set, is invoked once per first-seen flag.
	// This is how immediate reporting is wired without the matcher
	// knowing anything about output formatting.
	onMatch func(model.Match)

	// mutex protects seen so a Matcher can be shared safely.
	mutex sync.Mutex
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithPattern overrides the default flag pattern.
// Useful for CTFs with a different flag prefix.
func WithPattern(re *regexp.Regexp) Option {
	return func(m *Matcher) {
		m.pattern = re
	}
}

// WithOnMatch registers a callback invoked for every first-seen flag.
func WithOnMatch(fn func(model.Match)) Option {
	return func(m *Matcher) {
		m.onMatch = fn
	}
}

// New creates a Matcher with the default USU{...} pattern.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		pattern: flagPattern,
		seen:    make(map[model.Flag]bool),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Scan extracts all non-overlapping flag matches from text and returns
// the ones not seen before, attributed to the given source label.
// Already-recorded flags are ignored: no error, no callback, no result.
//
// Malformed or binary text is tolerated; callers guarantee a string input
// via lossy decoding, and the regex simply finds nothing in garbage.
func (m *Matcher) Scan(text, source string) []model.Match {
	found := m.pattern.FindAllString(text, -1)
	if len(found) == 0 {
		return nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	var fresh []model.Match
	for _, raw := range found {
		flag := model.Flag(raw)
		if m.seen[flag] {
			continue
		}
		m.seen[flag] = true

		match := model.Match{Flag: flag, Source: source}
		fresh = append(fresh, match)
		if m.onMatch != nil {
			m.onMatch(match)
		}
	}

	return fresh
}

// Found returns all flags recorded so far, sorted lexicographically
// ascending.
func (m *Matcher) Found() []model.Flag {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	flags := make([]model.Flag, 0, len(m.seen))
	for flag := range m.seen {
		flags = append(flags, flag)
	}
	sort.Slice(flags, func(i, j int) bool { return flags[i] < flags[j] })
	return flags
}

// Count returns the number of distinct flags recorded so far.
func (m *Matcher) Count() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.seen)
}

// Reset clears the found-flag set, allowing the Matcher to be reused
// for an independent run.
func (m *Matcher) Reset() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.seen = make(map[model.Flag]bool)
}
