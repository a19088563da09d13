package config

import (
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "github.com/go-playground/validator/v10"
    "github.com/goccy/go-yaml"
    "github.com/pelletier/go-toml/v2"

    "fairgrid/internal/models"
)

type Config struct {
    Data   DataConfig    `yaml:"data" toml:"data"`
    Model  models.Params `yaml:"model" toml:"model"`
    Search SearchConfig  `yaml:"search" toml:"search"`
    Output OutputConfig  `yaml:"output" toml:"output"`
    Log    LogConfig     `yaml:"log" toml:"log"`
}

type DataConfig struct {
    Path       string  `yaml:"path" toml:"path" validate:"required"`
    Regenerate bool    `yaml:"regenerate" toml:"regenerate"`
    Rows       int     `yaml:"rows" toml:"rows" validate:"gte=10"`
    Seed       int64   `yaml:"seed" toml:"seed"`
    TestRatio  float64 `yaml:"test_ratio" toml:"test_ratio" validate:"gt=0,lt=1"`
}

type SearchConfig struct {
    Constraint       string  `yaml:"constraint" toml:"constraint" validate:"oneof=equalized_odds true_positive_rate_parity demographic_parity"`
    GridSize         int     `yaml:"grid_size" toml:"grid_size" validate:"gte=1"`
    GridLimit        float64 `yaml:"grid_limit" toml:"grid_limit" validate:"gt=0"`
    ConstraintWeight float64 `yaml:"constraint_weight" toml:"constraint_weight" validate:"gte=0,lte=1"`
    Workers          int     `yaml:"workers" toml:"workers" validate:"gte=0"`
}

type OutputConfig struct {
    Bundle string `yaml:"bundle" toml:"bundle" validate:"required"`
    Plot   string `yaml:"plot" toml:"plot"`
    CSV    string `yaml:"csv" toml:"csv"`
}

type LogConfig struct {
    File  string `yaml:"file" toml:"file"`
    Level string `yaml:"level" toml:"level" validate:"omitempty,oneof=debug info warn error"`
}

func Default() Config {
    return Config{
        Data:   DataConfig{Path: "data/applicants.csv", Regenerate: true, Rows: 20000, Seed: 7, TestRatio: 0.3},
        Model:  models.DefaultParams(),
        Search: SearchConfig{Constraint: "equalized_odds", GridSize: 20, GridLimit: 2.0, ConstraintWeight: 0.5},
        Output: OutputConfig{Bundle: "data/dashboard.json", Plot: "data/tradeoff.png", CSV: "data/tradeoff.csv"},
        Log:    LogConfig{Level: "info"},
    }
}

// Load overlays the file at path on Default. An empty path returns the
// defaults. The format follows the extension: .yaml, .yml or .toml.
func Load(path string) (Config, error) {
    cfg := Default()
    if path == "" { return cfg, cfg.Validate() }
    raw, err := os.ReadFile(path)
    if err != nil { return cfg, err }
    switch ext := strings.ToLower(filepath.Ext(path)); ext {
    case ".yaml", ".yml":
        err = yaml.Unmarshal(raw, &cfg)
    case ".toml":
        err = toml.Unmarshal(raw, &cfg)
    default:
        return cfg, fmt.Errorf("unsupported config format %q", ext)
    }
    if err != nil { return cfg, fmt.Errorf("parse %s: %w", path, err) }
    return cfg, cfg.Validate()
}

var validate = validator.New()

func (c Config) Validate() error {
    if err := validate.Struct(c); err != nil { return fmt.Errorf("invalid config: %w", err) }
    return nil
}
