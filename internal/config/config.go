// Package config loads the gmlfeatures driver settings from defaults, an
// optional .env file and the process environment.
package config

import (
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// EnvPrefix prefixes every recognized variable, e.g. GMLFEATURES_WORKERS.
const EnvPrefix = "GMLFEATURES_"

// Config holds the driver settings.
type Config struct {
	// Workers is the pool size; 0 means GOMAXPROCS.
	Workers   int    `mapstructure:"workers"`
	Pattern   string `mapstructure:"pattern"`
	Normalize bool   `mapstructure:"normalize"`
	Smooth    bool   `mapstructure:"smooth"`
	Dedupe    bool   `mapstructure:"dedupe"`
	LogLevel  string `mapstructure:"log_level"`
	// Output is the CSV destination; empty means stdout.
	Output string `mapstructure:"output"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Pattern:  "*.gml",
		LogLevel: "info",
	}
}

// Load returns Default overlaid with envFile (skipped when empty) and then
// the process environment. Environment variables win over the file.
func Load(envFile string) (Config, error) {
	return load(envFile, os.Environ())
}

func load(envFile string, environ []string) (Config, error) {
	raw := make(map[string]any)

	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		if err != nil {
			return Config{}, errors.Wrapf(err, "config: read %s", envFile)
		}
		for k, v := range vars {
			collect(raw, k, v)
		}
	}
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			collect(raw, k, v)
		}
	}

	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, errors.Wrap(err, "config: decoder")
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func collect(raw map[string]any, key, value string) {
	name, ok := strings.CutPrefix(key, EnvPrefix)
	if !ok || name == "" {
		return
	}
	raw[strings.ToLower(name)] = value
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return errors.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	if c.Pattern == "" {
		return errors.New("config: empty pattern")
	}
	return nil
}
