package game

import "chosenoffset.com/hopper/internal/level"

const (
	FPS          = 60
	Gravity      = 1500.0 // px/s^2 downward
	MoveSpeed    = 260.0  // horizontal speed while a direction key is held
	JumpSpeed    = 620.0  // initial upward speed of a jump
	CoyoteTime   = 0.12   // jump grace window after walking off a ledge, seconds
	EnemySpeed   = 140.0  // patrol speed
	PlayerWidth  = level.TileSize
	PlayerHeight = level.TileSize * 2
)
