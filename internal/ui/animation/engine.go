package animation

import (
	"context"
	"sync"
	"time"
)

// Config contains pulse timing values.
type Config struct {
	OnDuration  time.Duration
	OffDuration time.Duration
}

// DefaultConfig returns the shot clock warning rhythm.
func DefaultConfig() Config {
	return Config{
		OnDuration:  350 * time.Millisecond,
		OffDuration: 150 * time.Millisecond,
	}
}

// Engine drives a two-phase pulse, used to flash the shot clock while the
// warning cue condition holds.
type Engine struct {
	mu      sync.Mutex
	config  Config
	update  func(on bool)
	cancel  context.CancelFunc
	running bool
}

// New creates a new pulse engine. update is called from the engine
// goroutine on every phase change.
func New(config Config, update func(on bool)) *Engine {
	defaults := DefaultConfig()
	if config.OnDuration <= 0 {
		config.OnDuration = defaults.OnDuration
	}
	if config.OffDuration <= 0 {
		config.OffDuration = defaults.OffDuration
	}
	return &Engine{
		config: config,
		update: update,
	}
}

// Start begins pulsing. Starting a running engine is a no-op.
func (engine *Engine) Start(ctx context.Context) {
	engine.mu.Lock()
	if engine.running {
		engine.mu.Unlock()
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.running = true
	engine.mu.Unlock()

	go engine.run(runCtx)
}

// Stop ends pulsing and leaves the target in its "on" phase.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	engine.cancel()
	engine.cancel = nil
	engine.running = false
	engine.mu.Unlock()
}

// Running reports whether the engine is pulsing.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

func (engine *Engine) run(ctx context.Context) {
	defer engine.update(true)
	for {
		engine.update(false)
		if !sleepWithContext(ctx, engine.config.OffDuration) {
			return
		}
		engine.update(true)
		if !sleepWithContext(ctx, engine.config.OnDuration) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
