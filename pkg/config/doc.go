// Package config handles configuration management for housekeeper.
// Values come from embedded defaults, an optional TOML file given with
// --config, and command-line flags, in increasing order of precedence.
// No file is searched for implicitly and no environment variables are read.
package config
