package config

import (
	"fmt"

	"github.com/dmitrijs2005/gophusers/internal/cryptox"
	"github.com/dmitrijs2005/gophusers/internal/logging"
)

// Config holds runtime settings for the menu application.
//
// Fields:
//   - DataFile: backing file; its extension selects the storage format.
//   - HashAlgorithm: password digest algorithm (sha512, sha3-512, blake2b-512).
//   - Language: BCP 47 tag of the UI language.
//   - LogFile: log destination; empty means stderr.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	DataFile      string
	HashAlgorithm string
	Language      string
	LogFile       string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataFile = "users.json"
	c.HashAlgorithm = cryptox.AlgorithmSHA512
	c.Language = "en"
	c.LogFile = ""
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if a -c/-config path is given) and command-line flags. Later sources
// take precedence over earlier ones. Malformed input is returned as an error.
func LoadConfig(args []string) (cfg *Config, err error) {
	defer func() {
		if p := recover(); p != nil {
			cfg = nil
			err = fmt.Errorf("load config: %v", p)
		}
	}()

	cfg = &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
