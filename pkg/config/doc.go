// Package config handles configuration management for xml2struct.
// It layers embedded TOML defaults, the user's TOML config file, an
// explicit config file, XML2STRUCT_ environment variables and command-line
// overrides.
package config
