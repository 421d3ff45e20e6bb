// Package config loads runtime settings from an optional YAML file,
// environment variables (ONOMA_ prefix), and defaults.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds every tunable of the CLI and the report suite.
type Settings struct {
	Debug bool // true to enable debug logging

	Input struct {
		Files    []string // CSV files to load (source data ships per state)
		Database string   // SQLite snapshot path; used when no files are given
	}

	Reports struct {
		TopN int // per-partition limit for the top-N views

		Trend struct {
			Name   string // name to trace across years
			Gender string // M or F
		}

		Delta struct {
			FirstYear int // 0 = earliest year in the data
			LastYear  int // 0 = latest year in the data
		}

		Lengths struct {
			Count int // how many longest/shortest names to report
		}

		Share struct {
			Name string // target name for the per-state percentage view
		}
	}

	Output struct {
		Format string // table, csv, json
		Path   string // output file; empty = stdout
	}
}

// Load reads settings from the given config file (optional when empty: the
// defaults apply and ./onoma.yaml is picked up if present), then applies
// ONOMA_* environment overrides.
func Load(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("onoma")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/onoma")
	}

	v.SetEnvPrefix("ONOMA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file anywhere — defaults and env only.
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validate(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("reports.topn", 3)
	v.SetDefault("reports.trend.name", "Michael")
	v.SetDefault("reports.trend.gender", "M")
	v.SetDefault("reports.lengths.count", 5)
	v.SetDefault("reports.share.name", "Marina")
	v.SetDefault("output.format", "table")
}

func validate(s *Settings) error {
	switch s.Output.Format {
	case "table", "csv", "json":
	default:
		return fmt.Errorf("unknown output format %q (want table, csv or json)", s.Output.Format)
	}
	if s.Reports.TopN < 1 {
		return fmt.Errorf("reports.topn must be at least 1, got %d", s.Reports.TopN)
	}
	if s.Reports.Lengths.Count < 1 {
		return fmt.Errorf("reports.lengths.count must be at least 1, got %d", s.Reports.Lengths.Count)
	}
	return nil
}
