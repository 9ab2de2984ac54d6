package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/arloliu/fano"
	"github.com/arloliu/fano/format"
)

// config holds the settings shared by the encode and decode commands. It can
// be loaded from a YAML file; command-line flags override file values.
type config struct {
	Compression string `json:"compression,omitempty"`
	Runes       bool   `json:"runes,omitempty"`
	Parallelism int    `json:"parallelism,omitempty"`
	Verbose     bool   `json:"verbose,omitempty"`
}

func loadConfig(path string) (config, error) {
	var cfg config

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	return cfg, nil
}

// encodeOptions translates cfg into encoder options.
func (c config) encodeOptions() ([]fano.Option, error) {
	comp, err := format.ParseCompressionType(c.Compression)
	if err != nil {
		return nil, err
	}

	width := format.SymbolWidthByte
	if c.Runes {
		width = format.SymbolWidthRune
	}

	return []fano.Option{
		fano.WithSymbolWidth(width),
		fano.WithCompression(comp),
		fano.WithParallelism(c.Parallelism),
	}, nil
}
