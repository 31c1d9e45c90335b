// Package main provides the entry point for the flagscan CLI.
//
// flagscan searches local files, directory trees, and web pages
// (including their linked scripts and stylesheets) for CTF flags of the
// form USU{...}.
//
// Usage:
//
//	flagscan scan -u http://challenge.example.com
//	flagscan scan -f notes.txt -d ./challenges
//
// See --help for all available options.
package main

// main is the entry point for flagscan.
func main() {
	Execute()
}
