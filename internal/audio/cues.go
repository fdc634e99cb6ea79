package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
	"github.com/rs/zerolog/log"

	"snookerclock/internal/core/model"
)

const resampleQuality = 4

var outputFormat = beep.Format{
	SampleRate:  beep.SampleRate(44100),
	NumChannels: 2,
	Precision:   2,
}

type tone struct {
	freq float64
	on   time.Duration
	off  time.Duration
}

// Built-in patterns used when no sound file is configured for a cue.
var patterns = map[model.Cue][]tone{
	// one pip per second over the last five seconds of the shot
	model.CueShotWarning: repeat(tone{freq: 880, on: 150 * time.Millisecond, off: 850 * time.Millisecond}, 5),
	model.CueFinalCountdown: append(
		repeat(tone{freq: 660, on: 200 * time.Millisecond, off: 800 * time.Millisecond}, 9),
		tone{freq: 990, on: time.Second},
	),
	model.CueFiveMinutes: {
		{freq: 523.25, on: 400 * time.Millisecond, off: 100 * time.Millisecond},
		{freq: 659.25, on: 400 * time.Millisecond, off: 100 * time.Millisecond},
		{freq: 783.99, on: 700 * time.Millisecond},
	},
}

var soundExtensions = []string{".mp3", ".wav"}

// LoadCues loads every cue into memory. A cue is read from
// <dir>/<cue>.mp3 or <dir>/<cue>.wav when present, otherwise it is
// synthesised. Cues that fail both ways are left out.
func LoadCues(dir string) map[model.Cue]*beep.Buffer {
	buffers := make(map[model.Cue]*beep.Buffer, len(model.Cues))
	for _, cue := range model.Cues {
		buffer, err := loadCue(dir, cue)
		if err != nil {
			log.Warn().Err(err).Stringer("cue", cue).Msg("sound file unusable, using built-in tone")
			buffer = nil
		}
		if buffer == nil {
			buffer, err = synthesize(patterns[cue])
			if err != nil {
				log.Warn().Err(err).Stringer("cue", cue).Msg("cue disabled")
				continue
			}
		}
		buffers[cue] = buffer
	}
	return buffers
}

// loadCue returns nil without error when no file exists for the cue.
func loadCue(dir string, cue model.Cue) (*beep.Buffer, error) {
	if dir == "" {
		return nil, nil
	}
	for _, ext := range soundExtensions {
		path := filepath.Join(dir, cue.String()+ext)
		buffer, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		return buffer, err
	}
	return nil, nil
}

func loadFile(path string) (*beep.Buffer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch filepath.Ext(path) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	default:
		err = fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer func() {
		_ = streamer.Close()
	}()

	var source beep.Streamer = streamer
	if format.SampleRate != outputFormat.SampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, outputFormat.SampleRate, streamer)
	}

	buffer := beep.NewBuffer(outputFormat)
	buffer.Append(source)
	if streamer.Err() != nil {
		return nil, fmt.Errorf("read %s: %w", path, streamer.Err())
	}
	return buffer, nil
}

func synthesize(pattern []tone) (*beep.Buffer, error) {
	if len(pattern) == 0 {
		return nil, errors.New("empty tone pattern")
	}
	rate := outputFormat.SampleRate
	buffer := beep.NewBuffer(outputFormat)
	for _, step := range pattern {
		sine, err := generators.SineTone(rate, step.freq)
		if err != nil {
			return nil, fmt.Errorf("sine tone %.0fHz: %w", step.freq, err)
		}
		buffer.Append(beep.Take(rate.N(step.on), &effects.Volume{
			Streamer: sine,
			Base:     2,
			Volume:   -1,
		}))
		if step.off > 0 {
			buffer.Append(silence(rate.N(step.off)))
		}
	}
	return buffer, nil
}

func silence(samples int) beep.Streamer {
	return beep.StreamerFunc(func(buf [][2]float64) (int, bool) {
		if samples <= 0 {
			return 0, false
		}
		n := len(buf)
		if n > samples {
			n = samples
		}
		for i := range buf[:n] {
			buf[i] = [2]float64{}
		}
		samples -= n
		return n, true
	})
}

func repeat(step tone, count int) []tone {
	steps := make([]tone, count)
	for i := range steps {
		steps[i] = step
	}
	return steps
}
