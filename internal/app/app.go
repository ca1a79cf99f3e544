package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/diegok/handpong/internal/config"
	"github.com/diegok/handpong/internal/game"
	"github.com/diegok/handpong/internal/protocol"
	"github.com/diegok/handpong/internal/tracker"
	"github.com/diegok/handpong/internal/ui"
)

//go:generate mockgen -source=app.go -destination=mock_app_test.go -package=app

// Display draws game states
type Display interface {
	Render(state protocol.GameState)
}

// ErrorDisplay is a display that can also show a fatal error
type ErrorDisplay interface {
	Display
	RenderError(msg string)
}

// Sounds plays the game's sound effects
type Sounds interface {
	Return()
	WallBounce()
	Point()
	GameOver()
}

// HandSource supplies the hands seen by the camera and receives every
// snapshot the game produces.
type HandSource interface {
	Hands() []protocol.HandRecord
	Publish(state protocol.GameState)
}

// Option configures an App
type Option func(*App)

// WithDisplay sets where snapshots are drawn
func WithDisplay(d Display) Option {
	return func(a *App) { a.display = d }
}

// WithSounds sets the sound effects player
func WithSounds(s Sounds) Option {
	return func(a *App) { a.sounds = s }
}

// WithHands sets the camera hand source
func WithHands(h HandSource) Option {
	return func(a *App) { a.hands = h }
}

// WithHub serves the tracker endpoint while running and uses it as the
// hand source.
func WithHub(h *tracker.Hub) Option {
	return func(a *App) {
		a.hub = h
		a.hands = h
	}
}

// WithClock sets the clock that drives ticks
func WithClock(c quartz.Clock) Option {
	return func(a *App) { a.clock = c }
}

// WithLogger sets the logger
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.logger = l }
}

// WithRecorder records the arena tuning, then every tick's hands and
// every applied command.
func WithRecorder(c *protocol.Codec) Option {
	return func(a *App) { a.recorder = c }
}

// App is the main application controller: it owns the session and drives
// it one tick at a time from camera, mouse and keyboard hands.
type App struct {
	cfg      *config.Config
	session  *game.Session
	display  Display
	sounds   Sounds
	hands    HandSource
	hub      *tracker.Hub
	clock    quartz.Clock
	logger   *log.Logger
	recorder *protocol.Codec

	mu       sync.Mutex
	mouse    *protocol.HandRecord
	keyboard []*ui.KeyboardHand
	screenW  int
	screenH  int
	prev     protocol.GameState
}

// New creates an App instance with the given configuration
func New(cfg *config.Config, opts ...Option) *App {
	tuning := cfg.Tuning()
	a := &App{
		cfg:      cfg,
		session:  game.NewSession(tuning),
		clock:    quartz.NewReal(),
		logger:   log.Default(),
		keyboard: ui.NewKeyboardHands(int(tuning.ArenaWidth), int(tuning.ArenaHeight)),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.recorder != nil {
		if err := a.recorder.EncodeTuning(tuning); err != nil {
			a.logger.Warn("recording tuning failed", "error", err)
		}
	}
	return a
}

// Session exposes the game being driven
func (a *App) Session() *game.Session {
	return a.session
}

// Run serves the tracker hub, pumps terminal events and ticks the game
// until the context is done or a quit command arrives.
func (a *App) Run(ctx context.Context, screen *ui.Screen) error {
	parent := ctx
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan struct{})
	defer close(done)

	a.SetScreenSize(screen.Size())

	// PollEvent only returns nil once the screen is finalised, so the pump
	// lives outside the group and exits after Run returns or the caller
	// calls Fini.
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	g, gctx := errgroup.WithContext(ctx)
	if a.hub != nil {
		g.Go(func() error {
			return a.hub.Serve(gctx)
		})
	}
	g.Go(func() error {
		defer cancel()
		return a.loop(gctx, events)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error("game stopped", "error", err)
		a.showError(parent, err, events)
		return fmt.Errorf("game loop: %w", err)
	}
	return nil
}

// showError keeps a fatal error on screen until a key is pressed
func (a *App) showError(ctx context.Context, err error, events <-chan tcell.Event) {
	d, ok := a.display.(ErrorDisplay)
	if !ok {
		return
	}
	d.RenderError(err.Error())
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			if _, ok := ev.(*tcell.EventKey); ok {
				return
			}
		}
	}
}

func (a *App) loop(ctx context.Context, events <-chan tcell.Event) error {
	ticker := a.clock.NewTicker(a.cfg.TickInterval(), "app", "tick")
	defer ticker.Stop()

	a.logger.Info("game loop started", "tick_rate", a.cfg.TickRate)
	a.render(a.session.Snapshot(nil))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.HandleEvent(ev) {
				a.logger.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			a.Tick()
		}
	}
}

// HandleEvent processes a terminal event. It returns true when the
// application should quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.HandleMouse(x, y)
	case *tcell.EventResize:
		a.SetScreenSize(ev.Size())
	}
	return false
}

// HandleKey maps a key to a command or a keyboard hand move
func (a *App) HandleKey(key tcell.Key, r rune) bool {
	if cmd := ui.KeyToCommand(key, r); cmd != protocol.CmdNone {
		return a.ApplyCommand(cmd)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	for _, k := range a.keyboard {
		if k.Handle(key, r) {
			break
		}
	}
	return false
}

// HandleMouse turns the pointer into a hand on the side it hovers
func (a *App) HandleMouse(x, y int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	t := a.session.Tuning
	hand := ui.MouseToHand(x, y, a.screenW, a.screenH, int(t.ArenaWidth), int(t.ArenaHeight))
	a.mouse = &hand
}

// SetScreenSize records the terminal size used to map mouse positions
func (a *App) SetScreenSize(w, h int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.screenW, a.screenH = w, h
}

// ApplyCommand changes the session in response to a player command.
// Restart always applies; a mode is only picked from the start screen.
// It returns true for quit.
func (a *App) ApplyCommand(cmd protocol.Command) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if cmd == protocol.CmdQuit {
		return true
	}

	applied := a.apply(cmd)
	if !applied {
		a.logger.Debug("command ignored", "command", cmd, "phase", a.session.Phase)
		return false
	}

	a.logger.Info("command", "command", cmd, "mode", a.session.Mode, "phase", a.session.Phase)
	if a.recorder != nil {
		if err := a.recorder.EncodeCommand(cmd); err != nil {
			a.logger.Warn("recording command failed", "error", err)
		}
	}
	return false
}

func (a *App) apply(cmd protocol.Command) bool {
	switch cmd {
	case protocol.CmdRestart:
		a.session.Restart()
	case protocol.CmdStartSolo, protocol.CmdStartDuo:
		if a.session.Phase != protocol.PhaseNotStarted {
			return false
		}
		mode := protocol.ModeSolo
		if cmd == protocol.CmdStartDuo {
			mode = protocol.ModeDuo
		}
		a.session.Start(mode)
	default:
		return false
	}
	a.prev = protocol.GameState{}
	return true
}

// Tick gathers the current hands, steps the session and presents the result
func (a *App) Tick() protocol.GameState {
	a.mu.Lock()
	defer a.mu.Unlock()

	hands := a.collectHands()
	if a.recorder != nil {
		if err := a.recorder.EncodeFrame(protocol.HandFrame{Hands: hands}); err != nil {
			a.logger.Warn("recording frame failed", "error", err)
		}
	}

	state := a.session.Step(hands)
	if a.hands != nil {
		a.hands.Publish(state)
	}
	a.detectSoundEvents(state)
	if state.Phase != a.prev.Phase {
		a.logger.Info("phase changed", "phase", state.Phase, "left", state.LeftScore, "right", state.RightScore)
	}
	a.prev = state

	a.render(state)
	return state
}

// collectHands merges camera hands with the local ones. A camera hand
// wins over a local hand for the same side.
func (a *App) collectHands() []protocol.HandRecord {
	var hands []protocol.HandRecord
	var seen [2]bool
	if a.hands != nil {
		for _, h := range a.hands.Hands() {
			hands = append(hands, h)
			if h.Side == protocol.SideLeft || h.Side == protocol.SideRight {
				seen[h.Side] = true
			}
		}
	}

	if a.mouse != nil && !seen[a.mouse.Side] {
		hands = append(hands, *a.mouse)
		seen[a.mouse.Side] = true
	}
	for _, k := range a.keyboard {
		if h, ok := k.Hand(); ok && !seen[h.Side] {
			hands = append(hands, h)
			seen[h.Side] = true
		}
	}
	return hands
}

func (a *App) render(state protocol.GameState) {
	if a.display != nil {
		a.display.Render(state)
	}
}

// detectSoundEvents compares current and previous game state to trigger sounds
func (a *App) detectSoundEvents(state protocol.GameState) {
	prev := a.prev
	if a.sounds == nil || a.cfg.Mute {
		return
	}

	// Skip until a game is running
	if prev.Phase != protocol.PhasePlaying {
		return
	}

	if state.Phase == protocol.PhaseOver {
		a.sounds.GameOver()
		return
	}

	// In duo points only come from misses, and the serve resets the velocity
	scored := state.LeftScore > prev.LeftScore || state.RightScore > prev.RightScore
	if state.Mode == protocol.ModeDuo && scored {
		a.sounds.Point()
		return
	}

	// Return: ball horizontal velocity reversed
	if (prev.Ball.VX > 0 && state.Ball.VX < 0) || (prev.Ball.VX < 0 && state.Ball.VX > 0) {
		a.sounds.Return()
	}

	// Wall bounce: ball vertical velocity reversed
	if (prev.Ball.VY > 0 && state.Ball.VY < 0) || (prev.Ball.VY < 0 && state.Ball.VY > 0) {
		a.sounds.WallBounce()
	}
}
