package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/handpong/internal/protocol"
)

const (
	// Size of the synthetic hand box built from mouse or keys
	localHandSize = 100.0
	keyboardStep  = 40.0
)

// KeyToCommand converts a key event to a game command
func KeyToCommand(key tcell.Key, r rune) protocol.Command {
	if IsQuitKey(key, r) {
		return protocol.CmdQuit
	}
	if key != tcell.KeyRune {
		return protocol.CmdNone
	}
	switch r {
	case 'r', 'R':
		return protocol.CmdRestart
	case '1':
		return protocol.CmdStartSolo
	case '2':
		return protocol.CmdStartDuo
	}
	return protocol.CmdNone
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// MouseToHand turns a mouse position on screen into a hand in arena pixels.
// The half of the screen the pointer is on picks the side.
func MouseToHand(x, y, screenW, screenH, arenaW, arenaH int) protocol.HandRecord {
	side := protocol.SideLeft
	if x >= screenW/2 {
		side = protocol.SideRight
	}

	courtH := screenH - 2
	if courtH < 1 {
		courtH = 1
	}
	if screenW < 1 {
		screenW = 1
	}
	ax := float64(x) * float64(arenaW) / float64(screenW)
	ay := float64(y-1) * float64(arenaH) / float64(courtH)

	return protocol.HandRecord{
		Side: side,
		BBox: protocol.BoundingBox{
			X: ax - localHandSize/2,
			Y: ay,
			W: localHandSize,
			H: localHandSize,
		},
	}
}

// KeyboardHand is a virtual hand moved up and down with two keys
type KeyboardHand struct {
	Side     protocol.Side
	UpKey    tcell.Key
	DownKey  tcell.Key
	UpRune   rune
	DownRune rune

	y       float64
	x       float64
	arenaH  float64
	touched bool
}

// NewKeyboardHands returns the W/S hand on the left and the arrow-key
// hand on the right, both resting mid-arena.
func NewKeyboardHands(arenaW, arenaH int) []*KeyboardHand {
	mid := float64(arenaH) / 2
	return []*KeyboardHand{
		{Side: protocol.SideLeft, UpRune: 'w', DownRune: 's', y: mid, arenaH: float64(arenaH)},
		{Side: protocol.SideRight, UpKey: tcell.KeyUp, DownKey: tcell.KeyDown, y: mid, x: float64(arenaW) - localHandSize, arenaH: float64(arenaH)},
	}
}

// Handle moves the hand if the key is one of its keys
func (k *KeyboardHand) Handle(key tcell.Key, r rune) bool {
	var dir float64
	switch {
	case k.UpKey != 0 && key == k.UpKey:
		dir = -1
	case k.DownKey != 0 && key == k.DownKey:
		dir = 1
	case key == tcell.KeyRune && k.UpRune != 0 && unicode.ToLower(r) == k.UpRune:
		dir = -1
	case key == tcell.KeyRune && k.DownRune != 0 && unicode.ToLower(r) == k.DownRune:
		dir = 1
	default:
		return false
	}

	k.touched = true
	k.y += dir * keyboardStep
	if k.y < 0 {
		k.y = 0
	}
	if k.y > k.arenaH {
		k.y = k.arenaH
	}
	return true
}

// Hand returns the virtual hand once it has been moved at least once
func (k *KeyboardHand) Hand() (protocol.HandRecord, bool) {
	if !k.touched {
		return protocol.HandRecord{}, false
	}
	return protocol.HandRecord{
		Side: k.Side,
		BBox: protocol.BoundingBox{X: k.x, Y: k.y, W: localHandSize, H: localHandSize},
	}, true
}
