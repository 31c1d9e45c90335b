// Package matcher implements flag extraction and deduplication.
//
// The Matcher holds the compiled flag pattern and the set of flags found
// so far. Scanning arbitrary text reports only flags not seen before;
// later occurrences of an identical flag string are silently dropped, so
// discovery order across sources never affects the final result set.
//
// # Usage
//
//	m := matcher.New(matcher.WithOnMatch(func(mt model.Match) {
//		fmt.Printf("found %s at %s\n", mt.Flag, mt.Source)
//	}))
//	m.Scan(content, "index.html")
package matcher
