package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const ENV_PREFIX = "CAMPUS"

var ErrInvalidPosition = errors.New("position must be \"lat,lon\"")

// Config holds everything main needs. Start and End are -1 when they should be asked interactively,
// Position is empty for the same reason.
type Config struct {
	ConfigFile    string `mapstructure:"config"`
	Dataset       string `mapstructure:"dataset"`
	Format        string `mapstructure:"format"`
	Start         int    `mapstructure:"start"`
	End           int    `mapstructure:"end"`
	Position      string `mapstructure:"position"`
	ExportGeoJSON string `mapstructure:"export-geojson"`
	ExportGraph   string `mapstructure:"export-graph"`
}

func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringP("config", "c", "", "optional yaml config file")
	fs.StringP("dataset", "d", "", "campus dataset (yaml, .osm, .osm.pbf or .graph.bz2), built-in campus when empty")
	fs.StringP("format", "f", "auto", "dataset format: auto|yaml|osm|pbf|graph")
	fs.IntP("start", "s", -1, "start place id, asked on stdin when negative")
	fs.IntP("end", "e", -1, "destination place id, asked on stdin when negative")
	fs.StringP("position", "p", "", "current position as \"lat,lon\" for the nearest parking query")
	fs.String("export-geojson", "", "write the route as geojson to this file")
	fs.String("export-graph", "", "write the campus graph as bzip2 text to this file")
	return fs
}

// Load parses args into fs and merges, from lowest to highest priority: defaults, config file,
// CAMPUS_* environment variables, flags.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Interactive reports whether any query input is left for stdin. main prompts only for the missing ids.
func (c *Config) Interactive() bool {
	return c.Start < 0 || c.End < 0
}

// ParsePosition splits a "lat,lon" string. ok is false for an empty string.
func ParsePosition(s string) (lat, lon float64, ok bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, false, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false, fmt.Errorf("%w: %q", ErrInvalidPosition, s)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false, fmt.Errorf("%w: %w", ErrInvalidPosition, err)
	}
	return lat, lon, true, nil
}
