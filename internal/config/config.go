// Package config reads runtime settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the explorer's settings. Empty paths select the embedded data.
type Config struct {
	TilesetPath string // DOORJAM_TILESET: path to a .tsx file
	MapPath     string // DOORJAM_MAP: path to a .tmj file
	Layer       string // DOORJAM_LAYER: tile layer name, first tile layer if empty
	EmptyTile   int    // DOORJAM_EMPTY_TILE: tile id used for empty map cells

	LogLevel  string // LOG_LEVEL
	LogFormat string // LOG_FORMAT: text or json
	LogFile   string // DOORJAM_LOG_FILE: log destination while the terminal UI runs

	Telemetry        bool   // DOORJAM_TELEMETRY
	HoneycombAPIKey  string // HONEYCOMB_DOORJAM_API_KEY
	HoneycombDataset string // HONEYCOMB_DOORJAM_DATASET

	WallColor  string // DOORJAM_WALL_COLOR: hex
	FloorColor string // DOORJAM_FLOOR_COLOR: hex
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		EmptyTile:        2,
		LogLevel:         "info",
		LogFormat:        "text",
		LogFile:          "doorjam.log",
		HoneycombDataset: "doorjam",
		WallColor:        "#C8A050",
		FloorColor:       "#505050",
	}
}

// Load reads a .env file if present, then the process environment.
// The returned note is non-empty when the .env file could not be loaded;
// that is not an error since variables may be set directly.
func Load() (cfg Config, note string, err error) {
	if err := godotenv.Load(); err != nil {
		note = fmt.Sprintf(".env file not loaded: %v", err)
	}
	cfg, err = FromEnv(os.Getenv)
	return cfg, note, err
}

// FromEnv builds a Config from a getenv-style lookup.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()

	setString(&cfg.TilesetPath, getenv("DOORJAM_TILESET"))
	setString(&cfg.MapPath, getenv("DOORJAM_MAP"))
	setString(&cfg.Layer, getenv("DOORJAM_LAYER"))
	setString(&cfg.LogLevel, getenv("LOG_LEVEL"))
	setString(&cfg.LogFormat, getenv("LOG_FORMAT"))
	setString(&cfg.LogFile, getenv("DOORJAM_LOG_FILE"))
	setString(&cfg.HoneycombAPIKey, getenv("HONEYCOMB_DOORJAM_API_KEY"))
	setString(&cfg.HoneycombDataset, getenv("HONEYCOMB_DOORJAM_DATASET"))
	setString(&cfg.WallColor, getenv("DOORJAM_WALL_COLOR"))
	setString(&cfg.FloorColor, getenv("DOORJAM_FLOOR_COLOR"))

	if v := getenv("DOORJAM_EMPTY_TILE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid DOORJAM_EMPTY_TILE %q", v)
		}
		cfg.EmptyTile = n
	}

	if v := getenv("DOORJAM_TELEMETRY"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid DOORJAM_TELEMETRY %q: %w", v, err)
		}
		cfg.Telemetry = b
	}

	return cfg, nil
}

// OTelEnv returns the OTEL_* variables that point the exporter at Honeycomb.
// Headers are only set when an API key is configured.
func (c Config) OTelEnv() map[string]string {
	env := map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": "https://api.honeycomb.io",
	}
	if c.HoneycombAPIKey != "" {
		env["OTEL_EXPORTER_OTLP_HEADERS"] = fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s",
			c.HoneycombAPIKey, c.HoneycombDataset)
	}
	return env
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
