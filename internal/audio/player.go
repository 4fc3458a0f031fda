// Package audio coordinates pronunciation playback. A play request
// walks an ordered chain of candidate clips and lands on synthesized
// speech when every clip is missing or unplayable; a generation counter
// guarantees that rapid repeated requests never overlap audibly.
package audio

import (
	"context"
	"path/filepath"
	"sync"
)

// Source is one candidate clip in a fallback chain.
type Source struct {
	Path   string // relative to the player's asset root
	Format string // "webm", "mp3"
}

// Playback is a handle to a clip that has started playing.
type Playback interface {
	Stop()
}

// Backend opens and starts a clip. Implementations that cannot open
// the file (missing asset, no player binary, decode failure) return an
// error and the coordinator moves on to the next candidate.
type Backend interface {
	Start(ctx context.Context, path string) (Playback, error)
}

// Synthesizer produces speech from raw text, fire-and-forget. Cancel
// silences any utterance still in flight.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
	Cancel()
}

// Player owns the single "currently audible" slot. Each new request
// bumps the generation counter; attempts carrying an older generation
// become silent no-ops at their next transition.
type Player struct {
	backend Backend
	synth   Synthesizer
	root    string

	mu         sync.Mutex
	generation uint64
	current    Playback
}

// NewPlayer creates a playback coordinator rooted at the given asset
// directory. synth may be nil, in which case chain exhaustion ends in
// silence.
func NewPlayer(root string, backend Backend, synth Synthesizer) *Player {
	return &Player{backend: backend, synth: synth, root: root}
}

// StopAll invalidates every in-flight attempt, stops the current clip
// and cancels pending speech. Safe to call with nothing playing. The
// returned generation identifies requests issued after this stop.
func (p *Player) StopAll() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopLocked()
}

func (p *Player) stopLocked() uint64 {
	p.generation++
	if p.current != nil {
		p.current.Stop()
		p.current = nil
	}
	if p.synth != nil {
		p.synth.Cancel()
	}
	return p.generation
}

// Play tries each candidate source in order and starts the first one
// that opens, falling back to synthesized speech when the chain is
// exhausted. Candidate failures are not reported: the only guarantee
// is that the most recent request wins, or nothing sounds at all.
func (p *Player) Play(ctx context.Context, sources []Source, fallbackText string) {
	g := p.StopAll()

	for _, src := range sources {
		if p.stale(g) {
			return
		}
		pb, err := p.backend.Start(ctx, filepath.Join(p.root, src.Path))
		if err != nil {
			continue
		}
		if !p.adopt(g, pb) {
			// Superseded while the clip was loading.
			pb.Stop()
			return
		}
		return
	}

	if p.stale(g) || p.synth == nil || fallbackText == "" {
		return
	}
	// Errors here mean silence, which is the contract.
	_ = p.synth.Speak(ctx, fallbackText)
}

// PlayKeyed plays the one pre-generated clip for a category/key pair,
// with no cross-format chain: closed syllables and words have exactly
// one conventional clip path, so any failure goes straight to speech.
func (p *Player) PlayKeyed(ctx context.Context, category, key, fallbackText string) {
	p.Play(ctx, []Source{{Path: TTSPath(category, key), Format: "mp3"}}, fallbackText)
}

// adopt installs pb as the current playback iff g is still the live
// generation.
func (p *Player) adopt(g uint64, pb Playback) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if g != p.generation {
		return false
	}
	p.current = pb
	return true
}

func (p *Player) stale(g uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return g != p.generation
}
