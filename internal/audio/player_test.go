package audio

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

// mockBackend fails every path except those in playable, and records
// the order of attempts. onStart, when set, runs before each attempt
// and lets a test supersede a request mid-flight.
type mockBackend struct {
	playable map[string]bool
	attempts []string
	onStart  func(path string)
	started  []*mockPlayback
}

type mockPlayback struct {
	stopped bool
}

func (p *mockPlayback) Stop() { p.stopped = true }

func (b *mockBackend) Start(ctx context.Context, path string) (Playback, error) {
	b.attempts = append(b.attempts, path)
	if b.onStart != nil {
		b.onStart(path)
	}
	if !b.playable[path] {
		return nil, errors.New("no such clip")
	}
	pb := &mockPlayback{}
	b.started = append(b.started, pb)
	return pb, nil
}

type mockSynth struct {
	spoken    []string
	cancelled int
}

func (s *mockSynth) Speak(ctx context.Context, text string) error {
	s.spoken = append(s.spoken, text)
	return nil
}

func (s *mockSynth) Cancel() { s.cancelled++ }

func TestPlayFirstPlayableCandidateWins(t *testing.T) {
	backend := &mockBackend{playable: map[string]bool{
		filepath.Join("assets", "audio", "g.mp3"): true,
	}}
	synth := &mockSynth{}
	p := NewPlayer("assets", backend, synth)

	p.Play(context.Background(), LetterSources("g"), "기역")

	want := []string{
		filepath.Join("assets", "audio", "g.webm"),
		filepath.Join("assets", "audio", "g.mp3"),
	}
	if len(backend.attempts) != len(want) {
		t.Fatalf("attempts = %v, want %v", backend.attempts, want)
	}
	for i := range want {
		if backend.attempts[i] != want[i] {
			t.Errorf("attempt %d = %q, want %q", i, backend.attempts[i], want[i])
		}
	}
	if len(synth.spoken) != 0 {
		t.Errorf("synth spoke %v despite a playable clip", synth.spoken)
	}
}

func TestPlayExhaustionFallsBackToSpeech(t *testing.T) {
	backend := &mockBackend{}
	synth := &mockSynth{}
	p := NewPlayer("assets", backend, synth)

	p.Play(context.Background(), LetterSources("ng"), "이응")

	if len(backend.attempts) != 3 {
		t.Errorf("tried %d candidates, want 3", len(backend.attempts))
	}
	if len(synth.spoken) != 1 || synth.spoken[0] != "이응" {
		t.Errorf("synth.spoken = %v, want [이응]", synth.spoken)
	}
}

func TestPlayExhaustionWithoutSynthesizerIsSilent(t *testing.T) {
	backend := &mockBackend{}
	p := NewPlayer("assets", backend, nil)

	// Must not panic and must simply do nothing.
	p.Play(context.Background(), LetterSources("m"), "미음")
}

func TestSupersededRequestNeverSounds(t *testing.T) {
	backend := &mockBackend{playable: map[string]bool{
		filepath.Join("assets", "audio", "n.mp3"): true,
	}}
	synth := &mockSynth{}
	p := NewPlayer("assets", backend, synth)

	// Supersede the request while its clip is "loading": the stop fires
	// between Backend.Start being entered and the player adopting the
	// playback.
	backend.onStart = func(path string) {
		if filepath.Ext(path) == ".mp3" {
			backend.onStart = nil
			p.StopAll()
		}
	}

	p.Play(context.Background(), LetterSources("n"), "니은")

	if len(backend.started) != 1 {
		t.Fatalf("started %d playbacks, want 1", len(backend.started))
	}
	if !backend.started[0].stopped {
		t.Error("stale playback was adopted instead of stopped")
	}
	if len(synth.spoken) != 0 {
		t.Errorf("stale request reached speech fallback: %v", synth.spoken)
	}
}

func TestSupersededRequestSkipsSpeechFallback(t *testing.T) {
	backend := &mockBackend{}
	synth := &mockSynth{}
	p := NewPlayer("assets", backend, synth)

	// All clips fail; the stop arrives during the last attempt, so the
	// exhaustion path must not speak.
	backend.onStart = func(path string) {
		if path == filepath.Join("assets", "audio", "tts", "s.mp3") {
			p.StopAll()
		}
	}

	p.Play(context.Background(), LetterSources("s"), "시옷")

	if len(synth.spoken) != 0 {
		t.Errorf("superseded request spoke: %v", synth.spoken)
	}
}

func TestSecondPlayStopsFirst(t *testing.T) {
	backend := &mockBackend{playable: map[string]bool{
		filepath.Join("assets", "audio", "g.mp3"): true,
		filepath.Join("assets", "audio", "d.mp3"): true,
	}}
	p := NewPlayer("assets", backend, &mockSynth{})

	p.Play(context.Background(), LetterSources("g"), "기역")
	p.Play(context.Background(), LetterSources("d"), "디귿")

	if len(backend.started) != 2 {
		t.Fatalf("started %d playbacks, want 2", len(backend.started))
	}
	if !backend.started[0].stopped {
		t.Error("first playback kept running after second request")
	}
	if backend.started[1].stopped {
		t.Error("second playback should still be running")
	}
}

func TestStopAllIdempotentAndBumpsGeneration(t *testing.T) {
	synth := &mockSynth{}
	p := NewPlayer("assets", &mockBackend{}, synth)

	g1 := p.StopAll()
	g2 := p.StopAll()
	if g2 != g1+1 {
		t.Errorf("generation %d -> %d, want +1", g1, g2)
	}
	if synth.cancelled != 2 {
		t.Errorf("synth cancelled %d times, want 2", synth.cancelled)
	}
}

func TestPlayKeyedSinglePathThenSpeech(t *testing.T) {
	backend := &mockBackend{}
	synth := &mockSynth{}
	p := NewPlayer("assets", backend, synth)

	p.PlayKeyed(context.Background(), CategorySyllables, "ga", "가")

	want := filepath.Join("assets", "audio", "tts", "syllables", "ga.mp3")
	if len(backend.attempts) != 1 || backend.attempts[0] != want {
		t.Errorf("attempts = %v, want [%s]", backend.attempts, want)
	}
	if len(synth.spoken) != 1 || synth.spoken[0] != "가" {
		t.Errorf("synth.spoken = %v, want [가]", synth.spoken)
	}
}
