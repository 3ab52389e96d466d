package audio

import (
	"github.com/lixenwraith/side-fighter/core"
)

//go:generate go tool mockgen -destination=./mocks/player_mock.go -package=mocks . Player

// Player is the "play sound" primitive consumed by the simulation
// Implementations must not block the tick
type Player interface {
	Play(sound core.SoundType, channel core.SoundChannel)
}

// Silent discards every sound, used when no audio device is available
type Silent struct{}

func (Silent) Play(core.SoundType, core.SoundChannel) {}
