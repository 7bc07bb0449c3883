package game

import (
	"chosenoffset.com/hopper/internal/geom"
	"chosenoffset.com/hopper/internal/level"
)

// Player is the player-controlled entity. Horizontal velocity follows input
// directly; vertical velocity is integrated by gravity and collision.
type Player struct {
	Rect     geom.Rect
	Velocity geom.Vec2
	OnGround bool

	coyoteTimer   float64
	jumpRequested bool
}

// NewPlayer creates a player standing at the given spawn point.
func NewPlayer(spawn geom.Vec2) *Player {
	return &Player{
		Rect: geom.NewRect(spawn.X, spawn.Y, PlayerWidth, PlayerHeight),
	}
}

// RequestJump latches a jump request for the next Update. The request is
// honored only when the player is grounded or within the coyote window.
func (p *Player) RequestJump() {
	p.jumpRequested = true
}

// Update advances the player by dt seconds. inputAxis is -1 (left), 0, or +1
// (right). Collision against solids is resolved one axis at a time.
func (p *Player) Update(dt float64, solids []geom.Rect, inputAxis float64) {
	p.Velocity.X = inputAxis * MoveSpeed
	p.Velocity.Y += Gravity * dt

	p.Rect.X += p.Velocity.X * dt
	p.resolveHorizontal(solids)

	p.Rect.Y += p.Velocity.Y * dt
	p.resolveVertical(solids)

	if p.OnGround {
		p.coyoteTimer = 0
	} else {
		p.coyoteTimer += dt
	}

	if p.jumpRequested {
		p.tryJump()
	}
	p.jumpRequested = false
}

func (p *Player) tryJump() {
	if p.OnGround || p.coyoteTimer <= CoyoteTime {
		p.Velocity.Y = -JumpSpeed
		p.OnGround = false
		// Burn the coyote window so the same fall cannot grant a second jump.
		p.coyoteTimer = CoyoteTime + 1
	}
}

func (p *Player) resolveHorizontal(solids []geom.Rect) {
	for _, block := range solids {
		if p.Rect.Intersects(block) {
			if p.Velocity.X > 0 {
				p.Rect.SetRight(block.Left())
			} else if p.Velocity.X < 0 {
				p.Rect.SetLeft(block.Right())
			}
		}
	}
}

func (p *Player) resolveVertical(solids []geom.Rect) {
	p.OnGround = false
	for _, block := range solids {
		if p.Rect.Intersects(block) {
			if p.Velocity.Y > 0 {
				p.Rect.SetBottom(block.Top())
				p.Velocity.Y = 0
				p.OnGround = true
			} else if p.Velocity.Y < 0 {
				p.Rect.SetTop(block.Bottom())
				p.Velocity.Y = 0
			}
		}
	}
}

// Enemy patrols horizontally, reversing direction on wall contact.
type Enemy struct {
	Rect     geom.Rect
	Velocity geom.Vec2
}

// NewEnemy creates an enemy at the given position, moving right.
func NewEnemy(pos geom.Vec2) *Enemy {
	return &Enemy{
		Rect:     geom.NewRect(pos.X, pos.Y, level.TileSize, level.TileSize),
		Velocity: geom.Vec2{X: EnemySpeed},
	}
}

// Update advances the enemy by dt seconds.
func (e *Enemy) Update(dt float64, solids []geom.Rect) {
	e.Velocity.Y += Gravity * dt

	e.Rect.X += e.Velocity.X * dt
	collided := false
	for _, block := range solids {
		if e.Rect.Intersects(block) {
			collided = true
			if e.Velocity.X > 0 {
				e.Rect.SetRight(block.Left())
			} else {
				e.Rect.SetLeft(block.Right())
			}
		}
	}
	if collided {
		e.Velocity.X = -e.Velocity.X
	}

	e.Rect.Y += e.Velocity.Y * dt
	for _, block := range solids {
		if e.Rect.Intersects(block) {
			if e.Velocity.Y > 0 {
				e.Rect.SetBottom(block.Top())
				e.Velocity.Y = 0
			} else if e.Velocity.Y < 0 {
				e.Rect.SetTop(block.Bottom())
				e.Velocity.Y = 0
			}
		}
	}
}

// Collectible is a pickup worth Value points.
type Collectible struct {
	Rect      geom.Rect
	Value     int
	Collected bool
}
