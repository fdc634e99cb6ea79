package match

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"snookerclock/internal/core/model"
)

// CuePlayer plays the audio cues.
type CuePlayer interface {
	Play(cue model.Cue)
	Stop(cue model.Cue)
	Playing(cue model.Cue) bool
}

// Options contains runtime dependencies for Match.
type Options struct {
	Clock  clockwork.Clock
	Player CuePlayer
}

// Match owns the main timer, the shot clock and the scoreboard. All
// mutations go through its methods; side effects (cues, the shot clock
// auto-set) are applied at the point of mutation.
type Match struct {
	mu     sync.Mutex
	config model.MatchConfig
	clock  clockwork.Clock
	player CuePlayer

	main        Countdown
	shot        Countdown
	shotAutoSet bool
	board       Scoreboard

	mainStop chan struct{}
	shotStop chan struct{}

	events []chan Event
	closed bool
}

// New creates a Match with both timers stopped at their initial values.
func New(config model.MatchConfig, options Options) *Match {
	if config.TickInterval <= 0 {
		config.TickInterval = time.Second
	}
	if options.Clock == nil {
		options.Clock = clockwork.NewRealClock()
	}
	if options.Player == nil {
		options.Player = nopPlayer{}
	}

	match := &Match{
		config: config,
		clock:  options.Clock,
		player: options.Player,
		main:   Countdown{Remaining: config.Main.Initial},
		shot:   Countdown{Remaining: config.Shot.Initial},
		board:  NewScoreboard(),
	}
	match.applyShotAutoSetLocked()
	return match
}

// Subscribe registers a new observer channel.
func (match *Match) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed {
		close(ch)
		return ch
	}
	match.events = append(match.events, ch)
	return ch
}

// Snapshot returns a copy of the current state.
func (match *Match) Snapshot() Snapshot {
	match.mu.Lock()
	defer match.mu.Unlock()
	return match.snapshotLocked()
}

// ToggleMain starts the main timer if it is stopped and pauses it otherwise.
func (match *Match) ToggleMain() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed {
		return
	}
	if match.main.Running {
		match.pauseMainLocked()
	} else {
		match.startMainLocked()
	}
	match.emitLocked(EventStateChange)
}

// StartMain starts the main timer.
func (match *Match) StartMain() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed || match.main.Running {
		return
	}
	match.startMainLocked()
	match.emitLocked(EventStateChange)
}

// PauseMain pauses the main timer.
func (match *Match) PauseMain() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed || !match.main.Running {
		return
	}
	match.pauseMainLocked()
	match.emitLocked(EventStateChange)
}

// ResetMain stops the main timer, restores its reset value and silences
// its cues.
func (match *Match) ResetMain() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed {
		return
	}
	match.pauseMainLocked()
	match.main.Remaining = match.config.Main.Reset
	match.player.Stop(model.CueFinalCountdown)
	match.player.Stop(model.CueFiveMinutes)
	match.applyShotAutoSetLocked()
	match.emitLocked(EventStateChange)
}

// ToggleShot starts the shot clock if it is stopped and pauses it otherwise.
func (match *Match) ToggleShot() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed {
		return
	}
	if match.shot.Running {
		match.pauseShotLocked()
	} else {
		match.startShotLocked()
	}
	match.shotCueLocked()
	match.emitLocked(EventStateChange)
}

// StartShot starts the shot clock.
func (match *Match) StartShot() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed || match.shot.Running {
		return
	}
	match.startShotLocked()
	match.shotCueLocked()
	match.emitLocked(EventStateChange)
}

// PauseShot pauses the shot clock and silences the warning cue.
func (match *Match) PauseShot() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed || !match.shot.Running {
		return
	}
	match.pauseShotLocked()
	match.shotCueLocked()
	match.emitLocked(EventStateChange)
}

// ResetShot stops the shot clock and restores its reset value. The auto-set
// flag is cleared and the rule re-evaluated, so after the five-minute mark
// the shot clock comes back at the reduced value.
func (match *Match) ResetShot() {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed {
		return
	}
	match.pauseShotLocked()
	match.shot.Remaining = match.config.Shot.Reset
	match.shotAutoSet = false
	match.player.Stop(model.CueShotWarning)
	match.applyShotAutoSetLocked()
	match.emitLocked(EventStateChange)
}

// SelectPlayer makes player n the active player.
func (match *Match) SelectPlayer(n int) error {
	return match.updateBoard(func(board *Scoreboard) error {
		return board.SelectPlayer(n)
	})
}

// RenamePlayer sets the display name of player n.
func (match *Match) RenamePlayer(n int, name string) error {
	return match.updateBoard(func(board *Scoreboard) error {
		return board.RenamePlayer(n, name)
	})
}

// AwardPoints credits the active player.
func (match *Match) AwardPoints(points int) error {
	return match.updateBoard(func(board *Scoreboard) error {
		return board.AwardPoints(points)
	})
}

// ResetScores zeroes both scores.
func (match *Match) ResetScores() {
	_ = match.updateBoard(func(board *Scoreboard) error {
		board.ResetScores()
		return nil
	})
}

// Close stops both tick sources and every cue, and closes observers.
func (match *Match) Close() {
	match.mu.Lock()
	if match.closed {
		match.mu.Unlock()
		return
	}
	match.pauseMainLocked()
	match.pauseShotLocked()
	for _, cue := range model.Cues {
		match.player.Stop(cue)
	}
	match.closed = true
	events := match.events
	match.events = nil
	match.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (match *Match) updateBoard(update func(*Scoreboard) error) error {
	match.mu.Lock()
	defer match.mu.Unlock()
	if match.closed {
		return nil
	}
	if err := update(&match.board); err != nil {
		return err
	}
	match.emitLocked(EventScore)
	return nil
}

func (match *Match) startMainLocked() {
	match.main.Running = true
	match.mainStop = match.startTickerLocked(match.tickMain)
}

func (match *Match) pauseMainLocked() {
	match.main.Running = false
	if match.mainStop != nil {
		close(match.mainStop)
		match.mainStop = nil
	}
}

func (match *Match) startShotLocked() {
	match.shot.Running = true
	match.shotStop = match.startTickerLocked(match.tickShot)
}

func (match *Match) pauseShotLocked() {
	match.shot.Running = false
	if match.shotStop != nil {
		close(match.shotStop)
		match.shotStop = nil
	}
}

// startTickerLocked creates the ticker before returning so a tick can never
// be missed between start and the goroutine being scheduled.
func (match *Match) startTickerLocked(tick func(stop <-chan struct{}, at time.Time)) chan struct{} {
	stop := make(chan struct{})
	ticker := match.clock.NewTicker(match.config.TickInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case at := <-ticker.Chan():
				tick(stop, at)
			}
		}
	}()
	return stop
}

func (match *Match) tickMain(stop <-chan struct{}, at time.Time) {
	match.mu.Lock()
	defer match.mu.Unlock()
	if stopped(stop) {
		return
	}
	match.main.Decrement()
	match.mainEffectsLocked()
	match.emitAtLocked(EventTick, at)
}

func (match *Match) tickShot(stop <-chan struct{}, at time.Time) {
	match.mu.Lock()
	defer match.mu.Unlock()
	if stopped(stop) {
		return
	}
	match.shot.Decrement()
	match.shotCueLocked()
	match.emitAtLocked(EventTick, at)
}

func (match *Match) mainEffectsLocked() {
	if match.main.Remaining == match.config.FinalCountdownAt {
		match.playLocked(model.CueFinalCountdown)
	}
	if match.main.Remaining == match.config.FiveMinuteMark {
		match.playLocked(model.CueFiveMinutes)
	}
	match.applyShotAutoSetLocked()
}

func (match *Match) applyShotAutoSetLocked() {
	if match.shotAutoSet || match.main.Remaining > match.config.ShotAutoSetThreshold {
		return
	}
	match.shot.Remaining = match.config.ShotAutoSetValue
	match.shotAutoSet = true
	log.Debug().
		Int("main_remaining", match.main.Remaining).
		Int("shot_remaining", match.shot.Remaining).
		Msg("shot clock auto-set")
	match.shotCueLocked()
}

func (match *Match) shotCueLocked() {
	if !match.shot.Running {
		match.player.Stop(model.CueShotWarning)
		return
	}
	if match.shot.Remaining == match.config.ShotWarningAt {
		match.playLocked(model.CueShotWarning)
	}
}

func (match *Match) playLocked(cue model.Cue) {
	if match.player.Playing(cue) {
		return
	}
	match.player.Play(cue)
	log.Debug().Stringer("cue", cue).Msg("cue started")
	match.emitCueLocked(cue)
}

func (match *Match) snapshotLocked() Snapshot {
	return Snapshot{
		Main: TimerState{
			Remaining: match.main.Remaining,
			Running:   match.main.Running,
		},
		Shot: ShotState{
			TimerState: TimerState{
				Remaining: match.shot.Remaining,
				Running:   match.shot.Running,
			},
			AutoSet: match.shotAutoSet,
		},
		Score: match.board.State(),
	}
}

func (match *Match) emitLocked(eventType EventType) {
	match.emitAtLocked(eventType, match.clock.Now())
}

func (match *Match) emitAtLocked(eventType EventType, at time.Time) {
	match.sendLocked(Event{
		Type:     eventType,
		Snapshot: match.snapshotLocked(),
		At:       at,
	})
}

func (match *Match) emitCueLocked(cue model.Cue) {
	match.sendLocked(Event{
		Type:     EventCue,
		Cue:      cue,
		Snapshot: match.snapshotLocked(),
		At:       match.clock.Now(),
	})
}

func (match *Match) sendLocked(event Event) {
	for _, ch := range match.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func stopped(stop <-chan struct{}) bool {
	select {
	case <-stop:
		return true
	default:
		return false
	}
}

type nopPlayer struct{}

func (nopPlayer) Play(model.Cue)         {}
func (nopPlayer) Stop(model.Cue)         {}
func (nopPlayer) Playing(model.Cue) bool { return false }
