package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"

	"github.com/iburimskiy/celebration/internal/celebration"
	"github.com/iburimskiy/celebration/internal/config"
	"github.com/iburimskiy/celebration/internal/logging"
)

// Game hosts a celebration sequence in an ebiten window.
type Game struct {
	ctx    context.Context
	seq    *celebration.Sequence
	canvas *Canvas
	sound  *Sound
	log    *zap.Logger

	// input edge detection
	prevKey map[ebiten.Key]bool

	phase celebration.Phase
}

// New returns a Game. sound may be nil.
func New(ctx context.Context, seq *celebration.Sequence, canvas *Canvas, sound *Sound, log *zap.Logger) *Game {
	return &Game{
		ctx:     ctx,
		seq:     seq,
		canvas:  canvas,
		sound:   sound,
		log:     logging.OrNop(log).Named("game"),
		prevKey: map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if g.ctx.Err() != nil || justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.seq.Phase() == celebration.PhaseIdle {
		// Start on the first frame so the hold time counts from a visible window.
		g.seq.Begin(g.canvas)
	}
	if justPressed(ebiten.KeySpace) {
		g.seq.Skip(g.ctx)
	}

	phase := g.seq.Frame(g.ctx)
	if phase != g.phase {
		g.log.Debug("phase", zap.Stringer("from", g.phase), zap.Stringer("to", phase))
		if g.phase == celebration.PhaseFireworks && g.sound != nil {
			g.sound.Stop()
		}
		g.phase = phase
	}
	if phase == celebration.PhaseDone {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.DrawTo(screen)

	status := ""
	switch g.phase {
	case celebration.PhaseFireworks:
		status = "Space: skip | Esc/Q: quit"
	case celebration.PhaseDialog:
		status = "Waiting for the dialog | Esc/Q: quit"
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

// Layout keeps the canvas at the window size; the running show picks the new
// size up through the canvas resize listeners.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until the sequence ends or the user quits.
func Run(win config.Window, g *Game) error {
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
