// Package audio synthesizes sound effects on demand. There are no
// recorded assets: each effect is generated from parametric oscillator
// and envelope settings and mixed into a shared output.
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const defaultSampleRate = beep.SampleRate(44100)

// sink receives synthesized streamers for output.
type sink interface {
	play(s beep.Streamer)
}

// speakerSink mixes streamers into the live speaker output.
type speakerSink struct {
	mixer *beep.Mixer
}

func (s *speakerSink) play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// discardSink drains streamers without output. Used in silent mode and
// headless test runs; synthesis still happens so generation bugs surface.
type discardSink struct {
	buf [][2]float64
}

func (s *discardSink) play(st beep.Streamer) {
	if s.buf == nil {
		s.buf = make([][2]float64, 512)
	}
	for {
		if _, ok := st.Stream(s.buf); !ok {
			return
		}
	}
}

// Synth is the audio synthesizer. Play is fire-and-forget: effects are
// queued as commands and synthesized by a consumer goroutine off the
// frame path, so the logic loop never blocks on audio.
type Synth struct {
	sr    beep.SampleRate
	queue chan Effect

	mu     sync.Mutex
	out    sink
	closed chan struct{}
	wg     sync.WaitGroup

	ready   atomic.Bool
	silent  atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSynth creates an unstarted synthesizer.
func NewSynth() *Synth {
	return &Synth{
		sr:     defaultSampleRate,
		queue:  make(chan Effect, 32),
		closed: make(chan struct{}),
	}
}

// Start opens the speaker output and begins consuming the effect queue.
// Returns an error when the audio device is unavailable; the caller may
// retry or fall back to StartSilent. Start and StartSilent are one-shot.
func (s *Synth) Start() error {
	if err := speaker.Init(s.sr, s.sr.N(60*time.Millisecond)); err != nil {
		return err
	}
	mixer := &beep.Mixer{}
	speaker.Play(mixer)
	s.begin(&speakerSink{mixer: mixer})
	return nil
}

// StartSilent begins consuming the queue without an output device.
// Synthesis still runs; samples are discarded.
func (s *Synth) StartSilent() {
	s.silent.Store(true)
	s.begin(&discardSink{})
}

func (s *Synth) begin(out sink) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ready.Load() {
		return
	}
	s.out = out
	s.ready.Store(true)
	s.wg.Add(1)
	go s.consume()
}

// consume synthesizes queued effects until Close.
func (s *Synth) consume() {
	defer s.wg.Done()
	for {
		select {
		case <-s.closed:
			return
		case e := <-s.queue:
			if st := effectStreamer(e, s.sr); st != nil {
				s.out.play(st)
				s.played.Add(1)
			}
		}
	}
}

// Ready reports whether the synthesizer accepts effects (live or silent).
func (s *Synth) Ready() bool {
	return s.ready.Load()
}

// Silent reports whether output is discarded.
func (s *Synth) Silent() bool {
	return s.silent.Load()
}

// Play queues an effect without blocking. When the queue is full the
// effect is dropped rather than stalling the frame.
func (s *Synth) Play(e Effect) {
	if !s.ready.Load() {
		return
	}
	select {
	case s.queue <- e:
	default:
		s.dropped.Add(1)
	}
}

// Stats returns how many effects were synthesized and dropped.
func (s *Synth) Stats() (played, dropped uint64) {
	return s.played.Load(), s.dropped.Load()
}

// Close stops the consumer. Queued effects not yet synthesized are
// discarded.
func (s *Synth) Close() {
	s.mu.Lock()
	select {
	case <-s.closed:
		s.mu.Unlock()
		return
	default:
		close(s.closed)
	}
	s.mu.Unlock()
	s.wg.Wait()
}
