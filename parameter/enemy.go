package parameter

// Enemy Fighter
const (
	// EnemyHealth is the health of a freshly spawned enemy
	EnemyHealth = 3

	// EnemySpawnYOffset is added to the raw random vertical spawn position
	EnemySpawnYOffset = 5

	// EnemyMinSpeed, EnemySpeedRange give leftward speed in [min, min+range)
	EnemyMinSpeed   = 2
	EnemySpeedRange = 4

	// EnemyDrift is the vertical drift magnitude
	EnemyDrift = 1
)

// Enemy Spawn Timing
const (
	// EnemySpawnMinTicks, EnemySpawnRangeTicks give the spawn interval [min, min+range)
	EnemySpawnMinTicks   = 30
	EnemySpawnRangeTicks = 60
)

// Alien Weapon
const (
	// AlienReloadRangeTicks bounds alien reload to [1, AlienReloadRangeTicks]
	AlienReloadRangeTicks = FPS * 2

	// AlienBulletSpeed is the base speed of aimed shots
	AlienBulletSpeed = 6
	// AlienBulletSpeedRange randomizes aimed speed in [base, base+range)
	AlienBulletSpeedRange = 3

	// AlienHeavyBulletSpeed is the fixed leftward speed of heavy shots
	AlienHeavyBulletSpeed = 10
)
