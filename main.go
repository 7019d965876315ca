package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/florodoro/pkg/app"
	"github.com/decker502/florodoro/pkg/embedded"
	"github.com/decker502/florodoro/pkg/scenes"
)

func main() {
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "debug mode: timers run 60x faster")
	flag.Parse()

	// 嵌入资源必须在任何加载之前初始化
	embedded.Init(dataFS)

	application, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Debug:   *debug,
	})
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	ebiten.SetWindowSize(scenes.WindowWidth, scenes.WindowHeight)
	ebiten.SetWindowTitle("Florodoro")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(application); err != nil {
		log.Fatal(err)
	}
}
