// Package config handles configuration management for dot.
// It layers embedded defaults, the user configuration file, the
// repository configuration file and environment variables, then applies
// command-line overrides on top.
package config
