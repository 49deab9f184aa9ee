package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// speakerBuffer is the device buffer length handed to speaker.Init
const speakerBuffer = 100 * time.Millisecond

// SoundManager plays lifecycle cues through a single mixer
// Play calls come from the UI goroutine while beep pulls from the mixer on the speaker goroutine
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      [soundTypeCount]int
	log         *zap.Logger
}

// NewSoundManager creates a sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig, log *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		muted: cfg.Muted,
		log:   log.Named("audio"),
	}
}

// Initialize sets up the speaker, failures leave the manager silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}
	if sm.cfg.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSampleRate, sm.cfg.SampleRate)
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Debug("speaker initialized", zap.Int("sample_rate", sm.cfg.SampleRate))
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close, clearing the mixer leaves it silent
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) PlayFinalize() { sm.play(SoundFinalize) }
func (sm *SoundManager) PlayDiscard()  { sm.play(SoundDiscard) }
func (sm *SoundManager) PlayRestart()  { sm.play(SoundRestart) }

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// Muted reports whether cues are suppressed
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns how many cues of a type were requested while unmuted
func (sm *SoundManager) Played(s SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return sm.played[s]
}

func (sm *SoundManager) play(s SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.muted {
		return
	}
	sm.played[s]++

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(s, sm.cfg)
	if streamer == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}
