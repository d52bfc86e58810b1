package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophusers/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty", so a partial file only
// overrides the keys it names.
type JsonConfig struct {
	DataFile      *string `json:"data_file"`
	HashAlgorithm *string `json:"hash_algorithm"`
	Language      *string `json:"language"`
	LogFile       *string `json:"log_file"`
	LogLevel      *string `json:"log_level"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read and decode
// errors panic; LoadConfig turns them into an error.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DataFile, jc.DataFile)
	overlay(&cfg.HashAlgorithm, jc.HashAlgorithm)
	overlay(&cfg.Language, jc.Language)
	overlay(&cfg.LogFile, jc.LogFile)
	overlay(&cfg.LogLevel, jc.LogLevel)
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
