// Package game implements the platformer's frame loop: input handling,
// entity physics, pickups, deaths, the goal check, and the scrolling camera.
package game

import (
	"chosenoffset.com/hopper/internal/level"
	"chosenoffset.com/hopper/internal/render"
)

// Camera tracks the viewport position for scrolling levels larger than the
// screen.
type Camera struct {
	X, Y float64 // top-left corner of the viewport in world coords
}

// Game holds all game state and logic.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Level        *level.Level
	Player       *Player
	Enemies      []*Enemy
	Collectibles []*Collectible
	Camera       Camera

	Renderer render.Renderer
	InputMgr render.InputManager

	Score         int
	Deaths        int
	LevelComplete bool
}

// New creates a game running the given level.
func New(renderer render.Renderer, inputMgr render.InputManager, lvl *level.Level, screenWidth, screenHeight int) *Game {
	g := &Game{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,
		Level:        lvl,
		Renderer:     renderer,
		InputMgr:     inputMgr,
	}
	g.Reset()
	return g
}

// Reset restores the level's initial state: player at spawn with zero
// velocity, enemies at their spawn points, collectibles restored, score
// cleared. The deaths counter survives resets.
func (g *Game) Reset() {
	g.Player = NewPlayer(g.Level.PlayerSpawn)

	g.Enemies = g.Enemies[:0]
	for _, spawn := range g.Level.EnemySpawns {
		g.Enemies = append(g.Enemies, NewEnemy(spawn))
	}

	g.Collectibles = g.Collectibles[:0]
	for _, rect := range g.Level.Collectibles {
		g.Collectibles = append(g.Collectibles, &Collectible{Rect: rect, Value: 1})
	}

	g.Score = 0
	g.LevelComplete = false
}

// Update handles one tick of game logic.
func (g *Game) Update() error {
	// Fixed timestep, matching the tick rate.
	dt := 1.0 / FPS

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.Termination
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyR) {
		g.Reset()
		return nil
	}
	if g.InputMgr.IsKeyJustPressed(render.KeySpace) {
		g.Player.RequestJump()
	}

	inputAxis := 0.0
	if g.InputMgr.IsKeyPressed(render.KeyA) || g.InputMgr.IsKeyPressed(render.KeyLeft) {
		inputAxis -= 1.0
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) || g.InputMgr.IsKeyPressed(render.KeyRight) {
		inputAxis += 1.0
	}

	if !g.LevelComplete {
		g.Player.Update(dt, g.Level.Solids, inputAxis)
		for _, enemy := range g.Enemies {
			enemy.Update(dt, g.Level.Solids)
		}
	}

	for _, c := range g.Collectibles {
		if !c.Collected && g.Player.Rect.Intersects(c.Rect) {
			c.Collected = true
			g.Score += c.Value
		}
	}

	for _, enemy := range g.Enemies {
		if g.Player.Rect.Intersects(enemy.Rect) {
			g.Deaths++
			g.Player = NewPlayer(g.Level.PlayerSpawn)
			break
		}
	}

	if g.Player.Rect.Intersects(g.Level.Goal) {
		g.LevelComplete = true
	}

	g.updateCamera()
	return nil
}

// updateCamera centers the viewport on the player, clamped to level bounds.
func (g *Game) updateCamera() {
	g.Camera.X = clamp(g.Player.Rect.CenterX()-float64(g.ScreenWidth)/2, 0, g.Level.WidthPx-float64(g.ScreenWidth))
	g.Camera.Y = clamp(g.Player.Rect.CenterY()-float64(g.ScreenHeight)/2, 0, g.Level.HeightPx-float64(g.ScreenHeight))
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		// Level smaller than the screen; pin to the level origin.
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Layout implements render.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
