// Package audio plays a rendered music buffer in a loop through the system
// audio device. The composer knows nothing about this package; it only ever
// sees the finite PCM buffer handed over here.
package audio

import (
	"fmt"
	"sync"

	"github.com/hajimehoshi/oto/v2"
)

const (
	channels      = 1
	bytesPerSamp  = 2 // oto format: signed 16-bit LE
	defaultVolume = 0.14
)

// Session is a caller-owned playback handle for one looped buffer. Play and
// Stop are idempotent: a playing session is never double-started, a stopped
// one resumes. Device failures degrade to Available() == false and are never
// surfaced past this boundary.
type Session struct {
	mu     sync.Mutex
	ctx    *oto.Context
	ready  chan struct{}
	player oto.Player
	pcm    []byte
}

// Open prepares the audio device for the given mono 16-bit buffer. The
// returned session is always usable; the error is diagnostic only and means
// the session will simply report unavailable.
func Open(sampleRate int, pcm []byte) (*Session, error) {
	s := &Session{pcm: pcm}
	if len(pcm) == 0 {
		return s, nil
	}
	ctx, ready, err := oto.NewContext(sampleRate, channels, bytesPerSamp)
	if err != nil {
		return s, fmt.Errorf("audio device init: %w", err)
	}
	s.ctx = ctx
	s.ready = ready
	return s, nil
}

// Available reports whether the device initialized and is ready for
// playback. The readiness check never blocks.
func (s *Session) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.available()
}

func (s *Session) available() bool {
	if s.ctx == nil {
		return false
	}
	select {
	case <-s.ready:
		return true
	default:
		return false
	}
}

// Play starts or resumes the loop. It reports whether audio is actually
// playing; a second call while playing is a no-op.
func (s *Session) Play() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.available() {
		return false
	}
	if s.player == nil {
		s.player = s.ctx.NewPlayer(&loopReader{data: s.pcm})
		s.player.SetVolume(defaultVolume)
	}
	if s.player.IsPlaying() {
		return true
	}
	s.player.Play()
	return true
}

// Stop pauses the loop. Stopping a stopped or unavailable session is a
// no-op.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player != nil && s.player.IsPlaying() {
		s.player.Pause()
	}
}

// SetVolume adjusts playback gain in [0, 1].
func (s *Session) SetVolume(vol float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if vol < 0 {
		vol = 0
	} else if vol > 1 {
		vol = 1
	}
	if s.player != nil {
		s.player.SetVolume(vol)
	}
}

// Close releases the player. The session cannot be reused afterwards.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return nil
	}
	err := s.player.Close()
	s.player = nil
	s.ctx = nil
	return err
}

// loopReader replays its buffer forever so the device never underruns.
type loopReader struct {
	data []byte
	pos  int
}

func (r *loopReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		c := copy(p[n:], r.data[r.pos:])
		n += c
		r.pos += c
		if r.pos >= len(r.data) {
			r.pos = 0
		}
	}
	return n, nil
}
