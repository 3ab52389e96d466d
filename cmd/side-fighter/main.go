package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/side-fighter/asset"
	"github.com/lixenwraith/side-fighter/audio"
	"github.com/lixenwraith/side-fighter/audio/beepaudio"
	"github.com/lixenwraith/side-fighter/config"
	"github.com/lixenwraith/side-fighter/core"
	"github.com/lixenwraith/side-fighter/game"
	"github.com/lixenwraith/side-fighter/input"
	"github.com/lixenwraith/side-fighter/render"
)

var (
	configFlag  = flag.String("config", "", "Path to TOML config (default $SIDE_FIGHTER_CONFIG or side-fighter.toml)")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 seeds from the clock")
	noAudioFlag = flag.Bool("no-audio", false, "Disable sound")
	logFlag     = flag.String("log", "", "Log file, overrides [logging] file")
)

// errQuit ends the run loops on a quit key
var errQuit = errors.New("quit requested")

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "side-fighter: %v\n", err)
		os.Exit(1)
	}
}

func resolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if env := os.Getenv(config.EnvConfigPath); env != "" {
		return env
	}
	return config.DefaultPath
}

func run() error {
	cfg, err := config.Load(resolveConfigPath(*configFlag))
	if err != nil {
		return err
	}
	cfg.ApplyEnv()
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *noAudioFlag {
		cfg.Audio.Enabled = false
	}
	if *logFlag != "" {
		cfg.Logging.File = *logFlag
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	catalog, err := asset.DefaultCatalog()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	// Panics anywhere below must restore the terminal before printing
	core.SetCrashFinalizer(screen.Fini)
	defer screen.Fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()
	screen.Clear()

	player, closeAudio := newAudio(cfg.Audio, log)
	defer closeAudio()

	keyboard := input.NewKeyboard(cfg.Input.HoldTicks)
	stage, err := game.NewStage(game.Options{
		Config:   cfg,
		Sprites:  catalog,
		Audio:    player,
		Input:    keyboard,
		Renderer: render.NewTcellRenderer(screen, cfg.Stage.Width, cfg.Stage.Height),
		Logger:   log,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer recoverCrash()
		return pumpInput(ctx, screen, keyboard)
	})
	g.Go(func() error {
		defer recoverCrash()
		// PollEvent does not watch ctx, wake it so the pump can see cancellation
		defer screen.PostEvent(tcell.NewEventInterrupt(nil))
		return tickLoop(ctx, stage, cfg.Stage.FPS, log)
	})

	err = g.Wait()
	stats := stage.Stats()
	log.Info("session ended",
		zap.Uint64("ticks", stats.Tick),
		zap.Int("resets", stats.Resets),
		zap.Uint64("skipped_spawns", stats.Skipped),
	)
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func recoverCrash() {
	if r := recover(); r != nil {
		core.HandleCrash(r)
	}
}

// newAudio opens the speaker, falling back to silence when no device is usable
func newAudio(cfg config.AudioConfig, log *zap.Logger) (audio.Player, func()) {
	p := beepaudio.NewBeepPlayer(cfg, log)
	if err := p.Init(); err != nil {
		log.Warn("audio unavailable, continuing silent", zap.Error(err))
		return audio.Silent{}, func() {}
	}
	return p, p.Close
}

// pumpInput feeds terminal key events into the keyboard until quit or cancellation
func pumpInput(ctx context.Context, screen tcell.Screen, kb *input.Keyboard) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if input.IsQuit(ev) {
				return errQuit
			}
			if k, ok := input.FromEvent(ev); ok {
				kb.Press(k)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// tickLoop advances and renders the stage at a fixed rate
func tickLoop(ctx context.Context, stage *game.Stage, fps int, log *zap.Logger) error {
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	statsEvery := uint64(fps * 10)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			stage.Advance()
			if err := stage.Render(); err != nil {
				return err
			}

			if st := stage.Stats(); st.Tick%statsEvery == 0 {
				log.Debug("stage stats",
					zap.Uint64("tick", st.Tick),
					zap.Int("fighters", st.Fighters),
					zap.Int("bullets", st.Bullets),
					zap.Int("debris", st.Debris),
					zap.Int("explosions", st.Explosions),
					zap.Bool("player_up", st.PlayerUp),
				)
			}
		}
	}
}
