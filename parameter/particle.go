package parameter

// Explosion Particles
const (
	// ExplosionParticles is the burst size on fighter destruction
	ExplosionParticles = 32

	// ExplosionJitter bounds the position spread around the burst center
	ExplosionJitter = 32

	// ExplosionDriftRange and ExplosionDriftDivisor give drift (Spread(range) / divisor)
	ExplosionDriftRange   = 10
	ExplosionDriftDivisor = 10.0

	// ExplosionLifeRangeTicks bounds particle lifetime to [1, range]
	ExplosionLifeRangeTicks = FPS * 3
)

// Debris Fragments
const (
	// DebrisDriftRange gives horizontal drift Spread(range)
	DebrisDriftRange = 5

	// DebrisLiftMin, DebrisLiftRange give upward speed -(min + Intn(range))
	DebrisLiftMin   = 5
	DebrisLiftRange = 12

	// DebrisLifeTicks is the fixed fragment lifetime
	DebrisLifeTicks = FPS * 2

	// DebrisGravity is the downward acceleration per tick
	DebrisGravity = 0.5
)
