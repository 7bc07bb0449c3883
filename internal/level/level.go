// Package level loads platformer levels from ASCII grid files.
//
// A level file is a plain-text grid, one character per tile:
//
//	#  solid block
//	P  player spawn
//	E  enemy spawn
//	C  collectible
//	G  goal
//
// Spaces are empty tiles. Anything else is a load error.
package level

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chosenoffset.com/hopper/internal/geom"
)

// TileSize is the edge length of one grid tile in pixels.
const TileSize = 32

// Level holds the static geometry and spawn points parsed from a level file.
type Level struct {
	Name         string
	Solids       []geom.Rect
	EnemySpawns  []geom.Vec2
	Collectibles []geom.Rect
	Goal         geom.Rect
	PlayerSpawn  geom.Vec2
	WidthPx      float64
	HeightPx     float64
}

// Load reads and parses a level file.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file %s: %w", path, err)
	}

	lvl, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("invalid level data in %s: %w", path, err)
	}

	lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return lvl, nil
}

// Parse parses level text into a Level.
func Parse(text string) (*Level, error) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return nil, fmt.Errorf("level is empty")
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	if width == 0 {
		return nil, fmt.Errorf("level has no tiles")
	}

	lvl := &Level{
		// Defaults used when the grid omits the marker.
		Goal:        geom.NewRect(0, 0, TileSize, TileSize*2),
		PlayerSpawn: geom.Vec2{X: TileSize, Y: TileSize},
	}

	for row, line := range lines {
		for col, ch := range line {
			x := float64(col * TileSize)
			y := float64(row * TileSize)
			switch ch {
			case '#':
				lvl.Solids = append(lvl.Solids, geom.NewRect(x, y, TileSize, TileSize))
			case 'P':
				// The marker sits on the ground row; spawn one tile up so the
				// two-tile-tall player starts standing on it.
				lvl.PlayerSpawn = geom.Vec2{X: x, Y: y - TileSize}
			case 'E':
				lvl.EnemySpawns = append(lvl.EnemySpawns, geom.Vec2{X: x, Y: y})
			case 'C':
				lvl.Collectibles = append(lvl.Collectibles, geom.NewRect(x+8, y+8, 16, 16))
			case 'G':
				lvl.Goal = geom.NewRect(x, y-TileSize, TileSize, TileSize*2)
			case ' ':
				// empty tile
			default:
				return nil, fmt.Errorf("unknown tile %q at row %d, col %d", string(ch), row, col)
			}
		}
	}

	lvl.WidthPx = float64(width * TileSize)
	lvl.HeightPx = float64(len(lines) * TileSize)
	return lvl, nil
}
