package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundPlayerFire       SoundType = iota // Player twin shot
	SoundAlienFire                         // Enemy shot, aimed or heavy
	SoundPlayerTakeDamage                  // Player hit but alive
	SoundPlayerDie                         // Player destroyed
	SoundAlienDie                          // Enemy destroyed on screen
	SoundTypeCount
)

// SoundChannel groups sounds that interrupt each other
// A new sound on a channel replaces the one playing there, ChannelAny never interrupts
type SoundChannel int

const (
	ChannelAny SoundChannel = iota - 1
	ChannelPlayer
	ChannelAlienFire
	ChannelExplosion
	SoundChannelCount
)
