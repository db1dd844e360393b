package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"pixelshooter/pkg/game/catalog"
	"pixelshooter/pkg/game/config"
	"pixelshooter/pkg/game/generator"
	"pixelshooter/pkg/game/renderer"
	"pixelshooter/pkg/game/renderer/ebiten"
	"pixelshooter/pkg/game/state"
)

func initGettext(cfg *config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Language, "default")
}

// useCatalog swaps the default generator onto a catalog file
func useCatalog(path string) error {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}
	generator.DefaultGenerator = generator.NewBuilder(cat, nil)
	return nil
}

func main() {
	configPath := flag.String("config", "pixelshooter.yaml", "path to the YAML config file")
	startFloor := flag.Int("floor", 0, "starting floor number (for developer testing)")
	seed := flag.Int64("seed", 0, "seed for the first run (0 = random)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}
	if *startFloor > 0 {
		cfg.StartFloor = *startFloor
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid settings", "err", err)
	}

	log.SetLevel(cfg.Level())
	initGettext(cfg)

	if cfg.CatalogPath != "" {
		if err := useCatalog(cfg.CatalogPath); err != nil {
			log.Fatal("loading room catalog", "path", cfg.CatalogPath, "err", err)
		}
	}

	g := state.NewGame()
	g.TotalFloors = cfg.TotalFloors
	g.StartFloor = cfg.StartFloor
	g.ConfiguredSeed = cfg.Seed

	r := ebiten.New(g, cfg.WindowScale)
	renderer.SetRenderer(r)

	log.Info("starting", "floors", cfg.TotalFloors, "start_floor", cfg.StartFloor, "seed", cfg.Seed)
	if err := r.Run(); err != nil {
		log.Error("game loop stopped", "err", err)
		os.Exit(1)
	}
	log.Info(gotext.Get("GOODBYE"))
}
