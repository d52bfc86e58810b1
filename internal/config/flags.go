package config

import (
	"flag"

	"github.com/dmitrijs2005/gophusers/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-f string       backing file (extension selects the storage format)
//	-hash string    password digest algorithm
//	-lang string    UI language tag
//	-log string     log file (empty: stderr)
//	-level string   log level
//
// Arguments belonging to other flags (-c/-config) are filtered out first.
func parseFlags(cfg *Config, args []string) {
	filtered := flagx.FilterArgs(args, "f", "hash", "lang", "log", "level")

	fs := flag.NewFlagSet("gophusers", flag.ContinueOnError)

	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "backing file for the user database")
	fs.StringVar(&cfg.HashAlgorithm, "hash", cfg.HashAlgorithm, "password digest algorithm (sha512, sha3-512, blake2b-512)")
	fs.StringVar(&cfg.Language, "lang", cfg.Language, "UI language (en, es)")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "log file (default stderr)")
	fs.StringVar(&cfg.LogLevel, "level", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(filtered); err != nil {
		panic(err)
	}
}
