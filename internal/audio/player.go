package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"snookerclock/internal/core/model"
)

// ErrSpeakerUnavailable indicates the audio device could not be opened.
var ErrSpeakerUnavailable = errors.New("audio speaker unavailable")

// output is the sink cues are mixed into.
type output interface {
	Play(streamers ...beep.Streamer)
	Lock()
	Unlock()
	Close()
}

type speakerOutput struct{}

func (speakerOutput) Play(streamers ...beep.Streamer) { speaker.Play(streamers...) }
func (speakerOutput) Lock()                           { speaker.Lock() }
func (speakerOutput) Unlock()                         { speaker.Unlock() }
func (speakerOutput) Close()                          { speaker.Close() }

type voice struct {
	buffer  *beep.Buffer
	ctrl    *beep.Ctrl
	playing bool
}

// Player plays each cue at most once at a time. Playback is fire-and-forget.
type Player struct {
	mu     sync.Mutex
	out    output
	voices map[model.Cue]*voice
	volume float64
	muted  bool
}

// New opens the speaker and loads every cue.
func New(config model.AudioConfig) (*Player, error) {
	rate := outputFormat.SampleRate
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSpeakerUnavailable, err)
	}
	return newPlayer(speakerOutput{}, LoadCues(config.SoundDir), config), nil
}

// NewSilent returns a Player with no cues. Every call is a no-op.
func NewSilent() *Player {
	return newPlayer(nil, nil, model.AudioConfig{})
}

func newPlayer(out output, buffers map[model.Cue]*beep.Buffer, config model.AudioConfig) *Player {
	voices := make(map[model.Cue]*voice, len(buffers))
	for cue, buffer := range buffers {
		voices[cue] = &voice{buffer: buffer}
	}
	return &Player{
		out:    out,
		voices: voices,
		volume: config.Volume,
		muted:  config.Muted,
	}
}

// Play starts the cue unless it is already playing.
func (player *Player) Play(cue model.Cue) {
	player.mu.Lock()
	voice := player.voices[cue]
	if player.out == nil || voice == nil || voice.playing {
		player.mu.Unlock()
		return
	}
	level, silent := gain(player.volume, player.muted)
	ctrl := &beep.Ctrl{}
	ctrl.Streamer = beep.Seq(
		&effects.Volume{
			Streamer: voice.buffer.Streamer(0, voice.buffer.Len()),
			Base:     2,
			Volume:   level,
			Silent:   silent,
		},
		beep.Callback(func() {
			player.finish(voice, ctrl)
		}),
	)
	voice.ctrl = ctrl
	voice.playing = true
	player.mu.Unlock()

	player.out.Play(ctrl)
}

// Stop cuts the cue short. Stopping a cue that is not playing is a no-op.
func (player *Player) Stop(cue model.Cue) {
	player.mu.Lock()
	voice := player.voices[cue]
	if voice == nil {
		player.mu.Unlock()
		return
	}
	ctrl := voice.ctrl
	voice.ctrl = nil
	voice.playing = false
	player.mu.Unlock()

	if ctrl != nil {
		player.out.Lock()
		ctrl.Streamer = nil
		player.out.Unlock()
	}
}

// Playing reports whether the cue is currently audible.
func (player *Player) Playing(cue model.Cue) bool {
	player.mu.Lock()
	defer player.mu.Unlock()
	voice := player.voices[cue]
	return voice != nil && voice.playing
}

// SetVolume sets the gain (0..1) for cues started from now on.
func (player *Player) SetVolume(volume float64) {
	player.mu.Lock()
	player.volume = volume
	player.mu.Unlock()
}

// SetMuted silences cues started from now on.
func (player *Player) SetMuted(muted bool) {
	player.mu.Lock()
	player.muted = muted
	player.mu.Unlock()
}

// Close stops every cue and releases the speaker.
func (player *Player) Close() {
	for _, cue := range model.Cues {
		player.Stop(cue)
	}
	if player.out != nil {
		player.out.Close()
	}
}

// finish runs on the speaker goroutine once a cue has played through.
func (player *Player) finish(voice *voice, ctrl *beep.Ctrl) {
	player.mu.Lock()
	defer player.mu.Unlock()
	if voice.ctrl != ctrl {
		return
	}
	voice.ctrl = nil
	voice.playing = false
}

// gain converts a linear 0..1 volume into a base-2 effects.Volume level.
func gain(volume float64, muted bool) (float64, bool) {
	if muted || volume <= 0 {
		return 0, true
	}
	if volume > 1 {
		volume = 1
	}
	return math.Log2(volume), false
}
