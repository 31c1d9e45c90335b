// Package model defines the core data types shared across flagscan.
//
// The central types are Flag (a matched CTF token), Match (a flag paired
// with the source it was first seen at), and Report (the aggregate result
// of a single run). These types carry no behavior beyond construction and
// simple queries; scanning logic lives in the matcher and scanner packages.
package model
