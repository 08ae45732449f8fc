package crunchbang

import (
	"errors"
	"fmt"
	"os"

	"codeberg.org/crunchbang/crunchbang/dice"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config gathers the game settings. Values come from DefaultConfig, then an
// optional YAML file, then CRUNCHBANG_* environment variables.
type Config struct {
	PlayerName       string `yaml:"player_name" env:"CRUNCHBANG_PLAYER_NAME"`
	PlayerHP         int    `yaml:"player_hp" env:"CRUNCHBANG_PLAYER_HP"`
	PlayerHitDie     string `yaml:"player_hit_die" env:"CRUNCHBANG_PLAYER_HIT_DIE"`
	MapWidth         int    `yaml:"map_width" env:"CRUNCHBANG_MAP_WIDTH"`
	MapHeight        int    `yaml:"map_height" env:"CRUNCHBANG_MAP_HEIGHT"`
	DungeonLevels    int    `yaml:"dungeon_levels" env:"CRUNCHBANG_DUNGEON_LEVELS"`
	FOVRadius        int    `yaml:"fov_radius" env:"CRUNCHBANG_FOV_RADIUS"`
	MonstersBase     int    `yaml:"monsters_base" env:"CRUNCHBANG_MONSTERS_BASE"`
	MonstersPerDepth int    `yaml:"monsters_per_depth" env:"CRUNCHBANG_MONSTERS_PER_DEPTH"`
	ItemsPerLevel    int    `yaml:"items_per_level" env:"CRUNCHBANG_ITEMS_PER_LEVEL"`
	Seed             uint64 `yaml:"seed" env:"CRUNCHBANG_SEED"`
	TemplateDir      string `yaml:"template_dir" env:"CRUNCHBANG_TEMPLATE_DIR"`
	SaveDir          string `yaml:"save_dir" env:"CRUNCHBANG_SAVE_DIR"`
	LogLevel         string `yaml:"log_level" env:"CRUNCHBANG_LOG_LEVEL"`
	LogFormat        string `yaml:"log_format" env:"CRUNCHBANG_LOG_FORMAT"`
	LogFile          string `yaml:"log_file" env:"CRUNCHBANG_LOG_FILE"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		PlayerName:       "Frost",
		PlayerHP:         30,
		PlayerHitDie:     "1d6+1",
		MapWidth:         80,
		MapHeight:        21,
		DungeonLevels:    7,
		FOVRadius:        DefaultFOVRadius,
		MonstersBase:     3,
		MonstersPerDepth: 1,
		ItemsPerLevel:    2,
		LogLevel:         "info",
		LogFormat:        "console",
	}
}

// LoadConfig returns the default settings overridden by the YAML file at
// path, if it exists, and then by the environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (cfg Config) Validate() error {
	switch {
	case cfg.MapWidth < 20 || cfg.MapHeight < 10:
		return fmt.Errorf("config: map size %dx%d too small (min 20x10)", cfg.MapWidth, cfg.MapHeight)
	case cfg.DungeonLevels < 1:
		return fmt.Errorf("config: need at least one dungeon level, got %d", cfg.DungeonLevels)
	case cfg.PlayerHP < 1:
		return fmt.Errorf("config: player hp must be positive, got %d", cfg.PlayerHP)
	case cfg.FOVRadius < 1:
		return fmt.Errorf("config: fov radius must be positive, got %d", cfg.FOVRadius)
	case cfg.MonstersBase < 0 || cfg.MonstersPerDepth < 0 || cfg.ItemsPerLevel < 0:
		return errors.New("config: population counts must not be negative")
	}
	if _, err := dice.Parse(cfg.PlayerHitDie); err != nil {
		return fmt.Errorf("config: player hit die: %w", err)
	}
	return nil
}
