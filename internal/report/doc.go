// Package report renders scan results in multiple output formats.
//
// Three writers share the Writer interface: SimpleWriter produces the
// plain-text terminal summary, JSONWriter emits machine-readable output
// for piping into other tools, and MarkdownWriter generates shareable
// writeup material. MultiWriter fans a report out to several writers at
// once, such as terminal plus file.
package report
