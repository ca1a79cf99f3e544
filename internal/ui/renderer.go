package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/handpong/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █

	defaultArenaW = 1280
	defaultArenaH = 720
)

// Renderer draws the start, game and game-over screens
type Renderer struct {
	screen *Screen
	footer string
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// SetFooter sets the hint shown on the start screen, e.g. the tracker URL
func (r *Renderer) SetFooter(text string) {
	r.footer = text
}

// Render draws the screen for the state's phase
func (r *Renderer) Render(state protocol.GameState) {
	switch state.Phase {
	case protocol.PhaseNotStarted:
		r.RenderStart()
	case protocol.PhaseOver:
		r.RenderGameOver(state)
	default:
		r.RenderGame(state)
	}
}

// RenderStart displays the mode menu
func (r *Renderer) RenderStart() {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawCentered(screenH/2-5, "=== HANDPONG ===", titleStyle)

	menuStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	r.screen.DrawCentered(screenH/2-2, "Press 1 for single player", menuStyle)
	r.screen.DrawCentered(screenH/2-1, "Press 2 for two players", menuStyle)

	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	r.screen.DrawCentered(screenH/2+2, "Move your hands, the mouse, W/S or the arrow keys", hintStyle)
	if r.footer != "" {
		r.screen.DrawCentered(screenH/2+4, r.footer, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
	r.screen.DrawCentered(screenH-2, "Press 'q' to quit", hintStyle)

	r.screen.Show()
}

// RenderGame displays the arena scaled to the terminal
func (r *Renderer) RenderGame(state protocol.GameState) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	toScreen := newScaler(state, screenW, screenH)

	// Court background
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Center dashed line
	centerX := screenW / 2
	lineStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(state, screenW)

	for _, paddle := range state.Paddles {
		style := SideStyle(paddle.Side)
		px, top := toScreen(paddle.X, paddle.Y)
		_, bottom := toScreen(paddle.X, paddle.Y+paddle.Height)
		if bottom <= top {
			bottom = top + 1
		}
		for py := top; py < bottom; py++ {
			if py >= 1 && py < screenH-1 && px >= 0 && px < screenW {
				r.screen.SetCell(px, py, style, PaddleChar)
			}
		}
	}

	ballX, ballY := toScreen(state.Ball.X, state.Ball.Y)
	if ballX >= 0 && ballX < screenW && ballY >= 1 && ballY < screenH-1 {
		r.screen.SetCell(ballX, ballY, tcell.StyleDefault.Foreground(tcell.ColorWhite), BallChar)
	}

	// Status bar at bottom
	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	statusText := fmt.Sprintf(" Tick: %d | %s | 'r' restart, 'q' quit", state.Tick, modeLabel(state.Mode))
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

// renderScoreboard draws the scores at top center
func (r *Renderer) renderScoreboard(state protocol.GameState, screenW int) {
	boardStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	leftStyle := boardStyle.Foreground(SideColors[protocol.SideLeft])
	rightStyle := boardStyle.Foreground(SideColors[protocol.SideRight])

	leftScore := fmt.Sprintf("%d", state.LeftScore)
	rightScore := fmt.Sprintf("%d", state.RightScore)
	text := fmt.Sprintf("[ LEFT %s - %s RIGHT ]", leftScore, rightScore)
	x := (screenW - len(text)) / 2

	r.screen.DrawText(x, 0, text, boardStyle)
	r.screen.DrawText(x+2, 0, "LEFT", leftStyle)
	r.screen.DrawText(x+len(text)-7, 0, "RIGHT", rightStyle)
}

// RenderGameOver displays the final score
func (r *Renderer) RenderGameOver(state protocol.GameState) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawCentered(screenH/2-4, "=== GAME OVER ===", titleStyle)

	label := "Your score"
	if state.Mode == protocol.ModeDuo {
		label = "Final score"
	}
	r.screen.DrawCentered(screenH/2-1, label, tcell.StyleDefault.Foreground(tcell.ColorGray))
	r.screen.DrawCentered(screenH/2, EndScoreText(state), tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	if state.Mode == protocol.ModeDuo {
		winner := "LEFT WINS!"
		side := protocol.SideLeft
		if state.RightScore > state.LeftScore {
			winner = "RIGHT WINS!"
			side = protocol.SideRight
		}
		r.screen.DrawCentered(screenH/2+2, winner, SideStyle(side).Bold(true))
	}

	r.screen.DrawCentered(screenH/2+4, "Press 'r' to restart | Press 'q' to quit", tcell.StyleDefault.Foreground(tcell.ColorGreen))

	r.screen.Show()
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	r.screen.DrawCentered(screenH/2-2, "ERROR", tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed))

	maxErrLen := screenW - 4
	errMsg := err
	if maxErrLen > 3 && len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	r.screen.DrawCentered(screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.screen.DrawCentered(screenH/2+3, "Press any key to continue", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// EndScoreText formats the game-over score: the combined returns as two
// digits in solo, "left:right" in duo.
func EndScoreText(state protocol.GameState) string {
	if state.Mode == protocol.ModeDuo {
		return fmt.Sprintf("%d:%d", state.LeftScore, state.RightScore)
	}
	return fmt.Sprintf("%02d", state.LeftScore+state.RightScore)
}

func modeLabel(m protocol.Mode) string {
	if m == protocol.ModeDuo {
		return "Two players"
	}
	return "Single player"
}

// newScaler maps arena pixels to screen cells, leaving the top and bottom
// rows for the scoreboard and status bar.
func newScaler(state protocol.GameState, screenW, screenH int) func(x, y float64) (int, int) {
	arenaW, arenaH := state.ArenaWidth, state.ArenaHeight
	if arenaW <= 0 {
		arenaW = defaultArenaW
	}
	if arenaH <= 0 {
		arenaH = defaultArenaH
	}
	scaleX := float64(screenW) / float64(arenaW)
	scaleY := float64(screenH-2) / float64(arenaH)

	return func(x, y float64) (int, int) {
		return int(x * scaleX), int(y*scaleY) + 1
	}
}
