// SPDX-License-Identifier: EPL-2.0

// Package config loads relay settings from an optional config file and
// VEMO_ prefixed environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the relay configuration. Keys match the mapstructure tags; nested
// keys use a dot in files and an underscore in the environment
// (VEMO_ANALYZE_TARGETRATE).
type Config struct {
	ListenAddress string        `mapstructure:"listenaddress"`
	InferenceURL  string        `mapstructure:"inferenceurl"`
	Timeout       time.Duration `mapstructure:"timeout"`
	Retries       int           `mapstructure:"retries"`
	MaxBodyBytes  int64         `mapstructure:"maxbodybytes"`
	AllowOrigin   string        `mapstructure:"alloworigin"`
	LogLevel      string        `mapstructure:"loglevel"`
	LogFile       string        `mapstructure:"logfile"`
	Analyze       Analyze       `mapstructure:"analyze"`
}

// Analyze controls how /api/analyze prepares uploads before encoding.
type Analyze struct {
	// TargetRate resamples uploads; 0 keeps the recorded rate.
	TargetRate int  `mapstructure:"targetrate"`
	Mono       bool `mapstructure:"mono"`
}

const envPrefix = "VEMO"

func setDefaults(v *viper.Viper) {
	v.SetDefault("listenaddress", ":8080")
	v.SetDefault("inferenceurl", "http://localhost:5000")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("retries", 0)
	v.SetDefault("maxbodybytes", 32<<20)
	v.SetDefault("alloworigin", "*")
	v.SetDefault("loglevel", "info")
	v.SetDefault("logfile", "")
	v.SetDefault("analyze.targetrate", 0)
	v.SetDefault("analyze.mono", false)
}

// Load reads configFilePath on top of the defaults, then applies the
// environment. A missing file is not an error; an empty path skips the file.
func Load(configFilePath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFilePath != "" {
		v.SetConfigFile(configFilePath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config %q: %w", configFilePath, err)
			}
			slog.Info("no config file found", "configFilePath", configFilePath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports the first setting the relay cannot run with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.InferenceURL)
	switch {
	case err != nil:
		return fmt.Errorf("%w: inferenceurl: %w", ErrInvalidConfig, err)
	case u.Scheme != "http" && u.Scheme != "https", u.Host == "":
		return fmt.Errorf("%w: inferenceurl %q is not an http(s) URL", ErrInvalidConfig, c.InferenceURL)
	case c.ListenAddress == "":
		return fmt.Errorf("%w: listenaddress is empty", ErrInvalidConfig)
	case c.Timeout <= 0:
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	case c.Retries < 0:
		return fmt.Errorf("%w: retries must not be negative, got %d", ErrInvalidConfig, c.Retries)
	case c.MaxBodyBytes <= 0:
		return fmt.Errorf("%w: maxbodybytes must be positive, got %d", ErrInvalidConfig, c.MaxBodyBytes)
	case c.Analyze.TargetRate < 0:
		return fmt.Errorf("%w: analyze.targetrate must not be negative, got %d", ErrInvalidConfig, c.Analyze.TargetRate)
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}
