package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// configBuilder stacks configuration layers. Layers are merged in the
// order they were added and a field set by an earlier layer is never
// overwritten by a later one, so environment beats flags, flags beat the
// JSON file and everything beats the built-in defaults.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) add(source string, load func() (*StructuredConfig, error)) *configBuilder {
	cfg, err := load()
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	if cfg != nil {
		b.layers = append(b.layers, cfg)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add("env", func() (*StructuredConfig, error) {
		cfg, err := env.ParseAs[StructuredConfig]()
		if err != nil {
			return nil, err
		}
		return &cfg, nil
	})
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add("flags", func() (*StructuredConfig, error) {
		return ParseFlags(args)
	})
}

// withJSON loads the file named by the first layer that carries a path.
func (b *configBuilder) withJSON() *configBuilder {
	return b.add("json", func() (*StructuredConfig, error) {
		for _, layer := range b.layers {
			if layer.JSONFilePath != "" {
				return parseJSON(layer.JSONFilePath)
			}
		}
		return nil, nil
	})
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", func() (*StructuredConfig, error) {
		return defaults(), nil
	})
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error loading config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, nil
}

// GetStructuredConfig merges environment variables, command-line flags, the
// optional JSON file and the defaults, in that order of precedence.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
