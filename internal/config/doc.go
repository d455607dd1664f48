// Package config loads, validates, and defaults the TOML configuration
// for megone.
package config
