package parameter

// Player Fighter
const (
	// PlayerSpeed is the per-axis velocity applied for each held direction
	PlayerSpeed = 4

	// PlayerStartX, PlayerStartY is the spawn position on stage entry and reset
	PlayerStartX = 100
	PlayerStartY = 100

	// PlayerHealth is the full health of a fresh player fighter
	PlayerHealth = 5
)

// Player Weapon
const (
	// PlayerBulletSpeed is the forward speed of player bullets
	PlayerBulletSpeed = 16

	// PlayerReloadTicks is the cooldown between twin shots
	PlayerReloadTicks = 8
)

// Afterburner Trailer
const (
	// TrailerMax is the full trailer intensity (alpha)
	TrailerMax = 255
	// TrailerRamp is the intensity gained per tick while moving
	TrailerRamp = 16
	// TrailerDecay is the intensity lost per tick while idle
	TrailerDecay = 8
)
