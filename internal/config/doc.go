// Package config provides configuration loading, merging, and validation
// facilities for the ragkit clients.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flag overrides supplied by the CLI layer
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig].
package config
