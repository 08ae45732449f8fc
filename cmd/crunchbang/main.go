// Command crunchbang is a terminal front-end for the crunchbang dungeon
// crawler.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/crunchbang/crunchbang"
	"go.uber.org/zap"
)

// saveFile is the name of the save file in the save directory.
const saveFile = "save"

func main() {
	optConfig := flag.String("c", "", "path to YAML configuration file")
	optLoad := flag.Bool("l", false, "load the saved game")
	optSeed := flag.Uint64("s", 0, "random seed (0: random)")
	optVersion := flag.Bool("version", false, "print build info")
	flag.Parse()

	if *optVersion {
		fmt.Printf("crunchbang\t%v\n", crunchbang.Version)
		if bi, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(bi)
		}
		os.Exit(0)
	}
	log.SetPrefix("crunchbang ")
	cfg, err := crunchbang.LoadConfig(*optConfig)
	if err != nil {
		log.Fatal(err)
	}
	if *optSeed != 0 {
		cfg.Seed = *optSeed
	}
	if cfg.LogFile == "" {
		// The terminal belongs to the game: diagnostics go to a file.
		dir, err := crunchbang.DataDir()
		if err != nil {
			log.Fatal(err)
		}
		cfg.LogFile = filepath.Join(dir, "logs.txt")
	}
	logger, err := crunchbang.NewLogger(cfg)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *optLoad); err != nil {
		logger.Error("game aborted", zap.Error(err))
		log.Fatal(err)
	}
}

// run plays a new or saved game until the player quits.
func run(cfg crunchbang.Config, logger *zap.Logger, load bool) error {
	var g *crunchbang.Game
	var err error
	if load {
		g, err = crunchbang.OpenGame(cfg, saveFile, crunchbang.WithLogger(logger))
	} else {
		g, err = crunchbang.NewGame(cfg, crunchbang.WithLogger(logger))
	}
	if err != nil {
		return err
	}
	logger.Info("game started",
		zap.Bool("loaded", load),
		zap.Int("levels", len(g.Levels)),
		zap.String("player", g.Player.Name))

	md := newModel(g, saveFile)
	app := gruid.NewApp(gruid.AppConfig{
		Driver: newDriver(),
		Model:  md,
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Start(ctx); err != nil {
		return err
	}
	if g.State == crunchbang.Finished {
		if err := cfg.RemoveSave(saveFile); err != nil {
			logger.Warn("removing save file", zap.Error(err))
		}
		logger.Info("game finished", zap.Int("turn", g.Turn), zap.Int("xp", g.Player.XP))
	}
	return md.err
}
