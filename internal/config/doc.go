// Package config holds the runtime configuration for flagscan.
//
// Configuration comes from two places: CLI flags, which populate Config
// directly, and an optional .flagscan YAML file, which supplies per-site
// request settings (cookies, extra headers) keyed by host. The file is
// discovered in a fixed order: explicit --config path, the current
// directory, the XDG config directory, then the home directory.
package config
