package celebration

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/iburimskiy/celebration/internal/fireworks"
	"github.com/iburimskiy/celebration/internal/logging"
	"github.com/iburimskiy/celebration/internal/promo"
)

// Phase is the stage of a celebration run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFireworks
	PhaseDialog
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseFireworks:
		return "fireworks"
	case PhaseDialog:
		return "dialog"
	case PhaseDone:
		return "done"
	default:
		return "idle"
	}
}

// Dialog is the screen shown once the fireworks end. *promo.Popup satisfies it.
type Dialog interface {
	Show(ctx context.Context) (promo.Outcome, error)
}

type dialogResult struct {
	outcome promo.Outcome
	err     error
}

// Sequence runs the fireworks for a fixed hold time, then hands off to the
// dialog. Frame must be called once per display frame from a single goroutine.
type Sequence struct {
	show   *fireworks.Show
	frames *fireworks.FrameQueue
	dialog Dialog
	hold   time.Duration
	log    *zap.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	phase   Phase
	started time.Time
	result  chan dialogResult
	cancel  context.CancelFunc
	outcome promo.Outcome
	err     error
}

// NewSequence wires a show that was built on frames. A nil dialog ends the
// sequence as soon as the fireworks stop.
func NewSequence(show *fireworks.Show, frames *fireworks.FrameQueue, dialog Dialog, hold time.Duration, log *zap.Logger) *Sequence {
	return &Sequence{
		show:   show,
		frames: frames,
		dialog: dialog,
		hold:   hold,
		log:    logging.OrNop(log).Named("sequence"),
		Now:    time.Now,
	}
}

// Begin starts the fireworks on surface.
func (s *Sequence) Begin(surface fireworks.Surface) {
	s.started = s.Now()
	s.show.Start(surface)
	if !s.show.Running() {
		s.log.Warn("no surface, skipping fireworks")
	}
	s.phase = PhaseFireworks
}

// Frame advances the sequence by one display frame and returns the phase it
// is in afterwards.
func (s *Sequence) Frame(ctx context.Context) Phase {
	switch s.phase {
	case PhaseFireworks:
		if s.Now().Sub(s.started) >= s.hold {
			s.handOff(ctx)
			break
		}
		s.frames.Step()
	case PhaseDialog:
		select {
		case r := <-s.result:
			s.finish(r)
		default:
		}
	}
	return s.phase
}

// Skip ends the fireworks early.
func (s *Sequence) Skip(ctx context.Context) {
	if s.phase == PhaseFireworks {
		s.handOff(ctx)
	}
}

func (s *Sequence) Phase() Phase { return s.phase }

// Result reports the dialog outcome once the sequence is done.
func (s *Sequence) Result() (promo.Outcome, error) { return s.outcome, s.err }

// Wait blocks until the dialog closes or ctx ends.
func (s *Sequence) Wait(ctx context.Context) (promo.Outcome, error) {
	if s.phase == PhaseDialog {
		select {
		case r := <-s.result:
			s.finish(r)
		case <-ctx.Done():
			return promo.OutcomeSkipped, ctx.Err()
		}
	}
	return s.Result()
}

func (s *Sequence) handOff(ctx context.Context) {
	s.show.Stop()
	st := s.show.Stats()
	s.log.Info("fireworks finished",
		zap.Duration("elapsed", s.Now().Sub(s.started)),
		zap.Int("frames", st.Frame),
		zap.Int("bursts", st.Bursts))

	if s.dialog == nil {
		s.phase = PhaseDone
		return
	}
	s.phase = PhaseDialog
	s.result = make(chan dialogResult, 1)
	dctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	go func() {
		out, err := s.dialog.Show(dctx)
		s.result <- dialogResult{outcome: out, err: err}
	}()
}

// Close ends the run early: the fireworks stop, an open dialog is canceled
// and Close waits for it to return or for ctx to end.
func (s *Sequence) Close(ctx context.Context) (promo.Outcome, error) {
	switch s.phase {
	case PhaseFireworks:
		s.show.Stop()
		s.phase = PhaseDone
	case PhaseDialog:
		s.cancel()
	}
	return s.Wait(ctx)
}

func (s *Sequence) finish(r dialogResult) {
	s.cancel()
	s.outcome, s.err = r.outcome, r.err
	s.phase = PhaseDone
	if r.err != nil {
		s.log.Error("dialog failed", zap.Error(r.err))
		return
	}
	s.log.Info("dialog closed", zap.Stringer("outcome", r.outcome))
}
