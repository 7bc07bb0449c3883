package main

import (
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/hopper/internal/config"
	"chosenoffset.com/hopper/internal/game"
	"chosenoffset.com/hopper/internal/level"
	ebitenrender "chosenoffset.com/hopper/internal/render/ebiten"
)

func main() {
	// Command-line flags
	levelsDir := flag.String("levels", "assets/levels", "Levels directory")
	levelName := flag.String("level", "level1", "Level to load (name without extension)")
	flag.Parse()

	display, err := config.ParseDisplay()
	if err != nil {
		log.Fatalf("Failed to load display config: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Scan the levels directory for available levels
	entries, err := level.ScanLevels(*levelsDir)
	if err != nil {
		log.Fatalf("Failed to scan levels directory: %v", err)
	}
	if len(entries) == 0 {
		log.Fatalf("No levels found in %s", *levelsDir)
	}

	selected := entries[0]
	found := false
	for _, e := range entries {
		if e.Name == *levelName {
			selected = e
			found = true
			break
		}
	}
	if !found {
		log.Printf("Level %q not found, falling back to %q", *levelName, selected.Name)
	}

	log.Printf("Loading level: %s", selected.Path)
	lvl, err := level.Load(selected.Path)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	log.Printf("Loaded level: %s (%.0fx%.0f px, %d solids, %d enemies, %d collectibles)",
		lvl.Name, lvl.WidthPx, lvl.HeightPx,
		len(lvl.Solids), len(lvl.EnemySpawns), len(lvl.Collectibles))

	g := game.New(renderer, inputMgr, lvl, display.ScreenWidth, display.ScreenHeight)

	engine.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	engine.SetWindowTitle(fmt.Sprintf("Hopper [%s] - A/D move, Space jump, R restart", lvl.Name))
	engine.SetWindowResizable(display.Resizable)

	log.Printf("Starting game...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
