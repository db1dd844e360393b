// Command floorgen generates floors and prints their door graph, for tuning
// the room catalog without starting the game.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/leonelquinteros/gotext"

	"pixelshooter/pkg/game/catalog"
	"pixelshooter/pkg/game/devtools"
	"pixelshooter/pkg/game/generator"
	"pixelshooter/pkg/game/progression"
	"pixelshooter/pkg/game/renderer"
	"pixelshooter/pkg/game/renderer/tui"
)

func main() {
	floor := flag.Int("floor", 1, "floor number to generate (drives enemy stats)")
	count := flag.Int("count", 1, "how many floors to generate")
	seed := flag.Int64("seed", 0, "random seed (0 = clock)")
	catalogPath := flag.String("catalog", "", "room template YAML (default: built-in)")
	dump := flag.Bool("dump", false, "write the last floor to floor.txt")
	verbose := flag.Bool("v", false, "debug logging")
	localeDir := flag.String("locales", "locales", "gettext locale directory")
	flag.Parse()

	gotext.Configure(*localeDir, "en_GB", "default")

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	cat := catalog.Default()
	if *catalogPath != "" {
		var err error
		cat, err = catalog.LoadFile(*catalogPath)
		if err != nil {
			log.Fatal("loading room catalog", "path", *catalogPath, "err", err)
		}
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	b := generator.NewBuilder(cat, rand.New(rand.NewSource(*seed)))

	t := tui.New(os.Stdout)
	renderer.SetRenderer(t)
	renderer.Init()

	for i := 0; i < *count; i++ {
		f := b.Generate(*floor)
		header := fmt.Sprintf(gotext.Get("HUD_FLOOR"), f.Number, progression.DefaultTotalFloors)
		fmt.Println(renderer.FormatText("ACTION{%s} SUBTLE{seed %d, #%d}", header, *seed, i+1))
		t.RenderFloor(f)
		fmt.Println()

		if *dump && i == *count-1 {
			path, err := devtools.DumpFloorToFile(f, *seed)
			if err != nil {
				log.Fatal("dumping floor", "err", err)
			}
			log.Info("floor dumped", "path", path)
		}
	}
}
