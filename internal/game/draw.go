package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/hopper/internal/render"
)

// Flat palette, one color per entity kind.
var (
	backgroundColor  = color.RGBA{24, 26, 38, 255}
	groundColor      = color.RGBA{86, 106, 137, 255}
	playerColor      = color.RGBA{236, 203, 96, 255}
	enemyColor       = color.RGBA{214, 81, 81, 255}
	collectibleColor = color.RGBA{120, 214, 136, 255}
	goalColor        = color.RGBA{128, 105, 214, 255}
	uiColor          = color.RGBA{235, 235, 235, 255}
)

// Draw renders the game to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	// World, offset by the camera.
	g.drawSolids(screen)
	g.drawCollectibles(screen)
	g.drawEnemies(screen)
	g.drawGoal(screen)
	g.drawPlayer(screen)

	// UI on top, unaffected by the camera.
	g.drawHUD(screen)
}

func (g *Game) drawSolids(screen render.Image) {
	for _, block := range g.Level.Solids {
		g.Renderer.FillRect(screen,
			float32(block.X-g.Camera.X),
			float32(block.Y-g.Camera.Y),
			float32(block.W),
			float32(block.H),
			groundColor)
	}
}

func (g *Game) drawCollectibles(screen render.Image) {
	for _, c := range g.Collectibles {
		if c.Collected {
			continue
		}
		g.Renderer.FillCircle(screen,
			float32(c.Rect.CenterX()-g.Camera.X),
			float32(c.Rect.CenterY()-g.Camera.Y),
			float32(c.Rect.W/2),
			collectibleColor)
	}
}

func (g *Game) drawEnemies(screen render.Image) {
	for _, enemy := range g.Enemies {
		g.Renderer.FillRect(screen,
			float32(enemy.Rect.X-g.Camera.X),
			float32(enemy.Rect.Y-g.Camera.Y),
			float32(enemy.Rect.W),
			float32(enemy.Rect.H),
			enemyColor)
	}
}

func (g *Game) drawGoal(screen render.Image) {
	g.Renderer.FillRect(screen,
		float32(g.Level.Goal.X-g.Camera.X),
		float32(g.Level.Goal.Y-g.Camera.Y),
		float32(g.Level.Goal.W),
		float32(g.Level.Goal.H),
		goalColor)
}

func (g *Game) drawPlayer(screen render.Image) {
	g.Renderer.FillRect(screen,
		float32(g.Player.Rect.X-g.Camera.X),
		float32(g.Player.Rect.Y-g.Camera.Y),
		float32(g.Player.Rect.W),
		float32(g.Player.Rect.H),
		playerColor)
	g.Renderer.StrokeRect(screen,
		float32(g.Player.Rect.X-g.Camera.X),
		float32(g.Player.Rect.Y-g.Camera.Y),
		float32(g.Player.Rect.W),
		float32(g.Player.Rect.H),
		2,
		uiColor)
}

func (g *Game) drawHUD(screen render.Image) {
	statusText := fmt.Sprintf("Score: %d  Deaths: %d", g.Score, g.Deaths)
	g.Renderer.DrawText(screen, statusText, 12, 10, uiColor, 1.0)

	if g.LevelComplete {
		winText := "Victory! Press R to restart"
		textWidth, _ := g.Renderer.MeasureText(winText, 1.0)
		g.Renderer.DrawText(screen, winText, (g.ScreenWidth-textWidth)/2, 40, uiColor, 1.0)
	}
}
