package game

import "github.com/diegok/handpong/internal/protocol"

// Tuning holds the arena geometry and ball defaults
type Tuning = protocol.Tuning

// DefaultTuning returns the canonical 1280x720 arena
func DefaultTuning() Tuning {
	return Tuning{
		ArenaWidth:   1280,
		ArenaHeight:  720,
		LeftAnchor:   59,
		RightAnchor:  1195,
		PaddleWidth:  25,
		PaddleHeight: 213,
		RightBand:    50,
		PaddleMinY:   20,
		PaddleMaxY:   415,
		ReturnNudge:  30,
		MissLeft:     40,
		MissRight:    1200,
		WallTop:      10,
		WallBottom:   500,
		StartX:       200,
		StartY:       200,
		ServeX:       100,
		ServeY:       100,
		Speed:        30,
		InitialSpeed: 40,
		WinScore:     5,
	}
}

// HandResult is the outcome of registering one hand
type HandResult struct {
	Paddle   protocol.PaddleState
	Placed   bool // false when the box could not be placed
	Returned bool // the ball was returned by this paddle
}

// Session owns the ball, scores, mode and phase of one game.
// It is not safe for concurrent use; the driving loop owns it.
type Session struct {
	Tuning  Tuning
	Ball    *Ball
	Paddles [2]*Paddle
	Scores  [2]int
	Mode    protocol.Mode
	Phase   protocol.Phase
	Tick    int
}

// NewSession creates a session waiting on the start screen
func NewSession(t Tuning) *Session {
	return &Session{
		Tuning: t,
		Ball:   NewBall(t.StartX, t.StartY, t.InitialSpeed),
		Paddles: [2]*Paddle{
			protocol.SideLeft:  NewPaddle(protocol.SideLeft, t),
			protocol.SideRight: NewPaddle(protocol.SideRight, t),
		},
		Mode:  protocol.ModeSolo,
		Phase: protocol.PhaseNotStarted,
	}
}

// Score returns a side's points
func (s *Session) Score(side protocol.Side) int {
	if !validSide(side) {
		return 0
	}
	return s.Scores[side]
}

// RegisterHand places the side's paddle from a hand box and resolves a
// collision with the ball. Outside Playing only the placement is computed.
func (s *Session) RegisterHand(hand protocol.HandRecord) HandResult {
	if !validSide(hand.Side) {
		return HandResult{}
	}

	paddle := s.Paddles[hand.Side]
	y1, ok := paddle.TopFor(hand.BBox)
	if !ok {
		return HandResult{}
	}

	result := HandResult{Paddle: paddle.Placement(y1), Placed: true}
	if s.Phase != protocol.PhasePlaying {
		return result
	}

	if !paddle.Contains(s.Ball.X, s.Ball.Y, y1) {
		return result
	}

	s.Ball.X += paddle.Nudge(s.Tuning.ReturnNudge)
	s.Ball.BounceHorizontal()
	if s.Mode == protocol.ModeSolo {
		s.Scores[hand.Side]++
	}
	result.Returned = true
	return result
}

// AdvanceBall reflects off the top and bottom walls, then moves the ball
func (s *Session) AdvanceBall() protocol.BallState {
	if s.Phase != protocol.PhasePlaying {
		return s.Ball.State()
	}

	if s.Ball.Y <= s.Tuning.WallTop || s.Ball.Y >= s.Tuning.WallBottom {
		s.Ball.BounceVertical()
	}
	s.Ball.Move()

	return s.Ball.State()
}

// CheckGameOver applies the horizontal exit rules and returns the phase.
// Solo: any exit ends the game. Duo: an exit scores for the other side and
// serves again; the game ends when a side reaches the win score.
func (s *Session) CheckGameOver() protocol.Phase {
	if s.Phase != protocol.PhasePlaying {
		return s.Phase
	}

	exited, out := protocol.SideLeft, true
	switch {
	case s.Ball.X < s.Tuning.MissLeft:
	case s.Ball.X > s.Tuning.MissRight:
		exited = protocol.SideRight
	default:
		out = false
	}

	if s.Mode == protocol.ModeSolo {
		if out {
			s.Phase = protocol.PhaseOver
		}
		return s.Phase
	}

	if out {
		s.Scores[exited.Opposite()]++
		s.Ball.Reset(s.Tuning.ServeX, s.Tuning.ServeY, s.Tuning.Speed)
	}

	if max(s.Score(protocol.SideLeft), s.Score(protocol.SideRight)) >= s.Tuning.WinScore {
		s.Phase = protocol.PhaseOver
	}
	return s.Phase
}

// Start resets the session and begins play in the given mode
func (s *Session) Start(mode protocol.Mode) {
	s.reset()
	s.Mode = mode
	s.Phase = protocol.PhasePlaying
}

// Restart returns to the start screen with everything at defaults
func (s *Session) Restart() {
	s.reset()
	s.Mode = protocol.ModeSolo
	s.Phase = protocol.PhaseNotStarted
}

func (s *Session) reset() {
	s.Ball.Reset(s.Tuning.StartX, s.Tuning.StartY, s.Tuning.Speed)
	s.Scores = [2]int{}
}

// Step runs one tick: every hand first, then the exit rules, then the ball
// moves if the game is still on. It returns the state to present.
func (s *Session) Step(hands []protocol.HandRecord) protocol.GameState {
	s.Tick++

	paddles := make([]protocol.PaddleState, 0, len(hands))
	for _, h := range hands {
		res := s.RegisterHand(h)
		if res.Placed {
			paddles = append(paddles, res.Paddle)
		}
	}

	if s.CheckGameOver() == protocol.PhasePlaying {
		s.AdvanceBall()
	}

	return s.Snapshot(paddles)
}

// Snapshot converts to the presentation state
func (s *Session) Snapshot(paddles []protocol.PaddleState) protocol.GameState {
	return protocol.GameState{
		Tick:        s.Tick,
		Phase:       s.Phase,
		Mode:        s.Mode,
		Ball:        s.Ball.State(),
		Paddles:     paddles,
		LeftScore:   s.Score(protocol.SideLeft),
		RightScore:  s.Score(protocol.SideRight),
		ArenaWidth:  s.Tuning.ArenaWidth,
		ArenaHeight: s.Tuning.ArenaHeight,
	}
}

func validSide(side protocol.Side) bool {
	return side == protocol.SideLeft || side == protocol.SideRight
}
