package audio

import (
	"bytes"
	"testing"
)

func TestLoopReader_WrapsAround(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	r := &loopReader{data: data}

	out := make([]byte, 12)
	n, err := r.Read(out)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(out) {
		t.Fatalf("read %d bytes, want %d", n, len(out))
	}
	want := []byte{1, 2, 3, 4, 5, 1, 2, 3, 4, 5, 1, 2}
	if !bytes.Equal(out, want) {
		t.Errorf("read %v, want %v", out, want)
	}

	// The next read continues from the wrap position.
	out = make([]byte, 3)
	r.Read(out)
	if !bytes.Equal(out, []byte{3, 4, 5}) {
		t.Errorf("continuation read %v, want [3 4 5]", out)
	}
}

func TestSession_EmptyBufferStaysUnavailable(t *testing.T) {
	s, err := Open(22050, nil)
	if err != nil {
		t.Fatalf("open with empty buffer: %v", err)
	}
	if s.Available() {
		t.Error("session with no samples should not be available")
	}
	if s.Play() {
		t.Error("play on an unavailable session should report false")
	}
	s.Stop() // must not panic
	if err := s.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}

func TestSession_UnavailableIsIdempotent(t *testing.T) {
	s := &Session{}
	for i := 0; i < 3; i++ {
		if s.Play() {
			t.Fatal("play without a device should report false")
		}
		s.Stop()
	}
	if err := s.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
