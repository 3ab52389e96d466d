package beepaudio

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/side-fighter/audio"
	"github.com/lixenwraith/side-fighter/config"
	"github.com/lixenwraith/side-fighter/core"
)

// ErrDisabled is returned by Init when audio is switched off in config
var ErrDisabled = errors.New("audio disabled by config")

var _ audio.Player = (*BeepPlayer)(nil)

// BeepPlayer plays synthesized effects through the beep speaker
// Each SoundChannel holds at most one voice, a new sound on a channel cuts the previous one
type BeepPlayer struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	cache       *soundCache
	mixer       *beep.Mixer
	channels    [core.SoundChannelCount]*beep.Ctrl
	initialized bool
	log         *zap.Logger
}

// NewBeepPlayer creates an uninitialized player, call Init before Play
func NewBeepPlayer(cfg config.AudioConfig, log *zap.Logger) *BeepPlayer {
	if log == nil {
		log = zap.NewNop()
	}
	return &BeepPlayer{
		cfg:   cfg,
		cache: newSoundCache(beep.SampleRate(cfg.SampleRate)),
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Init opens the speaker and starts the mixer
func (p *BeepPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if !p.cfg.Enabled {
		return ErrDisabled
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	p.cache.preload()
	speaker.Play(newVolume(p.mixer, p.cfg.MasterVolume))
	p.initialized = true
	p.log.Info("audio initialized", zap.Int("sample_rate", p.cfg.SampleRate))
	return nil
}

// Play starts a sound, replacing whatever plays on the same channel
func (p *BeepPlayer) Play(sound core.SoundType, channel core.SoundChannel) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	buf := p.cache.get(sound)
	if buf == nil {
		return
	}

	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}

	speaker.Lock()
	if channel >= 0 && channel < core.SoundChannelCount {
		if prev := p.channels[channel]; prev != nil {
			// nil streamer drains the voice, the mixer drops it on its next pass
			prev.Streamer = nil
		}
		p.channels[channel] = ctrl
	}
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// Close stops all sounds and releases the speaker
func (p *BeepPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()

	p.channels = [core.SoundChannelCount]*beep.Ctrl{}
	p.initialized = false
}
