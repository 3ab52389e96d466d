package parameter

// Stage Geometry
const (
	// ScreenWidth is the logical play-field width in world units
	ScreenWidth = 1280
	// ScreenHeight is the logical play-field height in world units
	ScreenHeight = 720

	// FPS is the fixed simulation tick rate
	FPS = 60
)

// Stage Lifecycle
const (
	// StageResetDelayTicks is the delay between player death and stage reset
	StageResetDelayTicks = FPS * 3

	// MaxStars is the starfield population
	MaxStars = 500

	// StarSpeedRange bounds star scroll speed to [1, StarSpeedRange]
	StarSpeedRange = 8

	// BackgroundScrollSpeed is the background offset change per tick
	BackgroundScrollSpeed = 1

	// ListCapacity bounds the live nodes of every entity list
	// Spawns beyond capacity are skipped for the tick
	ListCapacity = 4096
)
