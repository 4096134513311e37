package common

const (
	// TileSize is the edge length of one grid cell in pixels.
	TileSize = 100

	// LevelW and LevelH are the grid dimensions in cells.
	LevelW = 40
	LevelH = 30

	// EntitySize is the width and height of the player and zombie rects.
	EntitySize = TileSize / 2

	// GoodieSize is the goodie rect edge, placed GoodieInset into its cell.
	GoodieSize  = TileSize / 2
	GoodieInset = TileSize / 4

	ScreenW = 640
	ScreenH = 480

	// MaxFrameDelta is the longest frame (ms) that still moves anything.
	// Slower frames are treated as a stutter and skipped.
	MaxFrameDelta = 100

	// SearchDepth bounds the planner's open set.
	SearchDepth = 64
	// MaxPathNodes bounds a zombie's waypoint buffer.
	MaxPathNodes = 64

	PlayerSpeed = TileSize * 4
	ZombieSpeed = TileSize * 2

	ChaseRadius    = 5
	WanderRange    = 10
	WanderAttempts = 32
)
