// Package config provides configuration loading, merging, and validation
// for the check-in client and the dev server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables, optionally seeded from a .env file
//  3. Command-line flags
//  4. JSON config file
//
// The entry points are [GetClientConfig] and [GetDevServerConfig].
package config
