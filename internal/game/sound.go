package game

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/celebration/internal/audio"
	"github.com/iburimskiy/celebration/internal/fireworks"
	"github.com/iburimskiy/celebration/internal/logging"
)

// Sound plays a crackle through the speaker for every firework burst.
type Sound struct {
	sr     beep.SampleRate
	volume float64
	log    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSound initializes the speaker at sampleRate.
func NewSound(sampleRate int, volume float64, log *zap.Logger) (*Sound, error) {
	sr := beep.SampleRate(sampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{
		sr:     sr,
		volume: volume,
		log:    logging.OrNop(log).Named("sound"),
		rng:    rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x5eed)),
	}, nil
}

// Burst queues a crackle sized to b. Safe to call from the frame loop.
func (s *Sound) Burst(b fireworks.Burst) {
	s.mu.Lock()
	seed := s.rng.Uint64()
	s.mu.Unlock()
	speaker.Play(audio.NewCrackle(s.sr, b.Total(), s.volume, seed))
	s.log.Debug("crackle", zap.Int("particles", b.Total()))
}

// Stop drops anything still playing.
func (s *Sound) Stop() {
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
