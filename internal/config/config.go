package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=trace debug info warn error fatal panic disabled"`
		Format string `yaml:"format" default:"console" validate:"oneof=console json"`
	} `yaml:"log"`
	Series struct {
		Label       string  `yaml:"label" default:"SPX500 (synthetic)"`
		Length      int     `yaml:"length" default:"200" validate:"gte=1"`
		Persistence float64 `yaml:"persistence" default:"0.7" validate:"gte=0,lte=1"`
		StartValue  float64 `yaml:"start_value" default:"100"`
		Seed        int64   `yaml:"seed"` // 0 seeds from the clock
	} `yaml:"series"`
	Analysis struct {
		WindowSize      int     `yaml:"window_size" default:"50" validate:"gte=1"`
		TrendPeriod     int     `yaml:"trend_period" default:"20" validate:"gte=1"`
		RollingWindow   int     `yaml:"rolling_window" default:"100" validate:"gte=10"`
		RegimeThreshold float64 `yaml:"regime_threshold" default:"0.5" validate:"gt=0,lte=1"`
		Workers         int     `yaml:"workers" default:"4" validate:"gte=1,lte=256"`
	} `yaml:"analysis"`
	Sweep struct {
		Trials       int       `yaml:"trials" default:"200" validate:"gte=1"`
		Persistences []float64 `yaml:"persistences" default:"[0,0.25,0.5,0.75,1]" validate:"min=1,dive,gte=0,lte=1"`
	} `yaml:"sweep"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron" default:"0 */5 * * * *" validate:"required"`
	} `yaml:"schedule"`
}

var validate = validator.New()

// Load applies defaults, then the YAML file at path (a missing file is fine),
// then environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("FRACTAL_REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("FRACTAL_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("FRACTAL_SEED: %w", err)
		}
		cfg.Series.Seed = seed
	}
	if v := os.Getenv("FRACTAL_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FRACTAL_LENGTH: %w", err)
		}
		cfg.Series.Length = n
	}
	if v := os.Getenv("FRACTAL_PERSISTENCE"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("FRACTAL_PERSISTENCE: %w", err)
		}
		cfg.Series.Persistence = p
	}
	if v := os.Getenv("FRACTAL_WINDOW"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("FRACTAL_WINDOW: %w", err)
		}
		cfg.Analysis.WindowSize = w
	}
	return nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
