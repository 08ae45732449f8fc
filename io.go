package crunchbang

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/zap"
)

// DataDir returns the directory holding saves and logs, creating it if
// needed. It lives under XDG_DATA_HOME, or LOCALAPPDATA on windows, with
// ~/.local/share as fallback.
func DataDir() (string, error) {
	base := os.Getenv("XDG_DATA_HOME")
	if runtime.GOOS == "windows" {
		base = os.Getenv("LOCALAPPDATA")
	}
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("locating data directory: %w", err)
		}
		base = filepath.Join(home, ".local", "share")
	}
	dir := filepath.Join(base, "crunchbang")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dir, nil
}

// savePath resolves a save file name: absolute paths are kept, relative ones
// are placed in the configured save directory, or the data directory.
func (cfg Config) savePath(fileName string) (string, error) {
	if filepath.IsAbs(fileName) {
		return fileName, nil
	}
	dir := cfg.SaveDir
	if dir == "" {
		var err error
		dir, err = DataDir()
		if err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, fileName), nil
}

// writeFileAtomic writes data to a temporary file in the same directory and
// renames it, so that an interrupted save never corrupts a previous one.
func writeFileAtomic(path string, data []byte) error {
	tmp := filepath.Join(filepath.Dir(path), "temp-"+filepath.Base(path))
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// SaveGame writes the whole game state to the given file.
func (g *Game) SaveGame(fileName string) error {
	path, err := g.Config.savePath(fileName)
	if err != nil {
		return err
	}
	data, err := g.Encode()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("saving game: %w", err)
	}
	g.logger.Info("game saved", zap.String("path", path), zap.Int("turn", g.Turn))
	return nil
}

// LoadGame replaces the game state by the one saved in the given file.
func (g *Game) LoadGame(fileName string) error {
	path, err := g.Config.savePath(fileName)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading game: %w", err)
	}
	if err := g.Decode(data); err != nil {
		return err
	}
	g.logger.Info("game loaded", zap.String("path", path), zap.Int("turn", g.Turn))
	return nil
}

// OpenGame returns the game saved in the given file. The configuration is
// used for locating the file and loading templates; the saved settings
// replace it afterwards.
func OpenGame(cfg Config, fileName string, opts ...Option) (*Game, error) {
	g, err := newGame(cfg, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.LoadGame(fileName); err != nil {
		return nil, err
	}
	return g, nil
}

// RemoveSave removes a save file if it exists.
func (cfg Config) RemoveSave(fileName string) error {
	path, err := cfg.savePath(fileName)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
