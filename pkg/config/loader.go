package config

import (
	"fmt"
	"sort"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/ironbus-io/ironbus-core/pkg/config/definition"
)

const keyDelim = "."

// Keys returns every configuration key in sorted order. The list is the
// full vocabulary a flat map representation of a Config uses.
func Keys() []string {
	return definition.CreateRegistry().Paths()
}

// Map flattens the configuration into dot-delimited keys. Every key
// returned by Keys appears exactly once; values keep their Go types.
func (c *Config) Map() (map[string]any, error) {
	k := koanf.New(keyDelim)
	if err := k.Load(structs.Provider(c, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to flatten configuration: %w", err)
	}
	return k.All(), nil
}

// FromMap builds a Config by overlaying values on top of the shipped
// defaults. Keys must come from the registry vocabulary; an unknown key is
// an error, not a silent drop. Values may carry their natural Go types or
// the string forms external sources produce; either way the result is
// validated before it is returned.
func FromMap(values map[string]any) (*Config, error) {
	k := koanf.New(keyDelim)
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load default configuration: %w", err)
	}

	registry := definition.CreateRegistry()
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if _, known := registry.GetField(key); !known {
			return nil, fmt.Errorf("unknown configuration key %q", key)
		}
		if err := k.Set(key, values[key]); err != nil {
			return nil, fmt.Errorf("failed to set configuration key %q: %w", key, err)
		}
	}

	config, err := unmarshalConfig(k)
	if err != nil {
		return nil, err
	}
	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

func unmarshalConfig(k *koanf.Koanf) (*Config, error) {
	var config Config
	err := k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           &config,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.TextUnmarshallerHookFunc(),
			),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return &config, nil
}
