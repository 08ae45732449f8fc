package crunchbang

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crunchbang.yaml")
	data := []byte("player_name: Ayla\nmap_width: 60\ndungeon_levels: 3\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CRUNCHBANG_PLAYER_HP", "12")
	t.Setenv("CRUNCHBANG_DUNGEON_LEVELS", "5")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.PlayerName != "Ayla" || cfg.MapWidth != 60 {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.PlayerHP != 12 || cfg.DungeonLevels != 5 {
		t.Errorf("environment values not applied: %+v", cfg)
	}
	if cfg.MapHeight != DefaultConfig().MapHeight {
		t.Errorf("map height %d, want default", cfg.MapHeight)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"small.yaml":  "map_width: 5\n",
		"levels.yaml": "dungeon_levels: 0\n",
		"dice.yaml":   "player_hit_die: 2x6\n",
		"syntax.yaml": "map_width: [\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: no error", name)
		}
	}
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("CRUNCHBANG_FOV_RADIUS", "wide")
	if _, err := LoadConfig(""); err == nil {
		t.Errorf("invalid environment value accepted")
	}
}

func TestNewLogger(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "log.txt")
	for _, format := range []string{"console", "json"} {
		cfg.LogFormat = format
		logger, err := NewLogger(cfg)
		if err != nil {
			t.Fatalf("%s: NewLogger: %v", format, err)
		}
		logger.Info("test message")
		_ = logger.Sync()
	}
	data, err := os.ReadFile(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Errorf("nothing logged")
	}
}
