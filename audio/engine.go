package audio

import (
	"hash/fnv"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/sim2d/core"
)

const sampleRate = beep.SampleRate(48000)

// Engine owns the speaker and one voice per sounding entity. Sources are
// procedural tones derived from the source name, so spec documents work
// without bundled sound files. All methods are nil-receiver safe; a nil
// engine is the headless/test configuration.
type Engine struct {
	mu          sync.Mutex
	log         *zap.Logger
	mixer       *beep.Mixer
	voices      map[core.Entity]*voice
	initialized bool
}

type voice struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		log:    log,
		mixer:  &beep.Mixer{},
		voices: make(map[core.Entity]*voice),
	}
}

// Initialize opens the speaker; idempotent
func (e *Engine) Initialize() error {
	if e == nil {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(e.mixer)
	e.initialized = true
	return nil
}

// Play starts or restarts the entity's voice for the named source
// Loop keeps the tone running until Stop; pitch scales the frequency
func (e *Engine) Play(entity core.Entity, source string, volume, pitch float64, loop bool) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}

	e.stopLocked(entity)

	vol := &effects.Volume{Streamer: newTone(source, pitch, loop), Base: 2}
	setVolume(vol, volume)
	ctrl := &beep.Ctrl{Streamer: vol}

	speaker.Lock()
	e.mixer.Add(ctrl)
	speaker.Unlock()
	e.voices[entity] = &voice{ctrl: ctrl, volume: vol}
}

// SetVolume adjusts a playing voice, used for spatial attenuation
func (e *Engine) SetVolume(entity core.Entity, volume float64) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if v, ok := e.voices[entity]; ok {
		speaker.Lock()
		setVolume(v.volume, volume)
		speaker.Unlock()
	}
}

// Stop silences and drops the entity's voice
func (e *Engine) Stop(entity core.Entity) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked(entity)
}

func (e *Engine) stopLocked(entity core.Entity) {
	if v, ok := e.voices[entity]; ok {
		speaker.Lock()
		v.ctrl.Paused = true
		v.ctrl.Streamer = nil
		speaker.Unlock()
		delete(e.voices, entity)
	}
}

// Playing reports whether the entity currently owns a voice
func (e *Engine) Playing(entity core.Entity) bool {
	if e == nil {
		return false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.voices[entity]
	return ok
}

// Cleanup stops all voices and clears the mixer; the speaker itself has
// no close in beep, silence is the terminal state
func (e *Engine) Cleanup() {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.initialized {
		return
	}
	speaker.Lock()
	for _, v := range e.voices {
		v.ctrl.Paused = true
		v.ctrl.Streamer = nil
	}
	e.mixer.Clear()
	speaker.Unlock()
	e.voices = make(map[core.Entity]*voice)
	e.initialized = false
}

func setVolume(v *effects.Volume, volume float64) {
	if volume <= 0 {
		v.Silent = true
		v.Volume = 0
		return
	}
	v.Silent = false
	v.Volume = math.Log2(volume)
}

// newTone maps a source name onto an enveloped sine burst. The name hash
// picks the base frequency so distinct sources sound distinct and a given
// source always sounds the same. Looping tones restart the envelope
// instead of ending.
func newTone(source string, pitch float64, loop bool) beep.Streamer {
	h := fnv.New32a()
	h.Write([]byte(source))
	base := 220.0 + float64(h.Sum32()%16)*55.0
	if pitch <= 0 {
		pitch = 1
	}
	freq := base * pitch

	total := sampleRate.N(time.Millisecond * 250)
	attack := sampleRate.N(time.Millisecond * 10)
	release := sampleRate.N(time.Millisecond * 80)
	pos := 0
	phaseInc := freq / float64(sampleRate)
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total && !loop {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				if !loop {
					break
				}
				pos = 0
			}
			v := math.Sin(2 * math.Pi * phase)
			switch {
			case pos < attack:
				v *= float64(pos) / float64(attack)
			case pos > total-release:
				v *= float64(total-pos) / float64(release)
			}
			samples[i][0] = v
			samples[i][1] = v
			phase += phaseInc
			if phase >= 1 {
				phase -= 1
			}
			pos++
			n++
		}
		return n, n > 0
	})
}
