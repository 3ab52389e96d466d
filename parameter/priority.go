package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityStarfield = 10
	PriorityEffect    = 15 // Ages debris and explosions from earlier ticks, fresh bursts keep full life
	PrioritySpawn     = 20
	PriorityPlayer    = 30
	PriorityAlienFire = 40
	PriorityFighter   = 50 // Movement and contact collisions
	PriorityClip      = 60 // After fighter movement
	PriorityBullet    = 70 // After fighter movement, hits decrement health
	PriorityCull      = 80 // After all damage sources
	PriorityStage     = 90
)
