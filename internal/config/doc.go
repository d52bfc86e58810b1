// Package config loads runtime configuration for the menu application.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-f string       backing file (default users.json)
//	-hash string    digest algorithm (default sha512)
//	-lang string    UI language (default en)
//	-log string     log file (default stderr)
//	-level string   log level (default warn)
//
// # JSON schema
//
//	{
//	  "data_file": "users.db",
//	  "hash_algorithm": "sha512",
//	  "language": "es",
//	  "log_file": "gophusers.log",
//	  "log_level": "info"
//	}
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
