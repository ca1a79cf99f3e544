package game

import (
	"math"

	"github.com/diegok/handpong/internal/protocol"
)

// Paddle is one side's bat. Its horizontal anchor is fixed; the top edge
// follows the tracked hand every tick.
type Paddle struct {
	Side   protocol.Side
	Anchor float64 // x where the sprite is drawn
	Width  float64
	Height float64
	MinY   float64
	MaxY   float64

	// Collision band, open interval on x
	BandLeft  float64
	BandRight float64
}

// NewPaddle builds the paddle for a side from the tuning
func NewPaddle(side protocol.Side, t Tuning) *Paddle {
	p := &Paddle{
		Side:   side,
		Width:  t.PaddleWidth,
		Height: t.PaddleHeight,
		MinY:   t.PaddleMinY,
		MaxY:   t.PaddleMaxY,
	}

	// The left band grows right from its anchor, the right band grows left.
	if side == protocol.SideLeft {
		p.Anchor = t.LeftAnchor
		p.BandLeft = t.LeftAnchor
		p.BandRight = t.LeftAnchor + t.PaddleWidth
	} else {
		p.Anchor = t.RightAnchor
		p.BandLeft = t.RightAnchor - t.RightBand
		p.BandRight = t.RightAnchor
	}
	return p
}

// TopFor converts a hand box into the paddle's clamped top edge.
// It reports false when the box is not a usable number.
func (p *Paddle) TopFor(box protocol.BoundingBox) (float64, bool) {
	if math.IsNaN(box.Y) || math.IsInf(box.Y, 0) {
		return 0, false
	}
	y1 := box.Y - p.Height/2
	if y1 < p.MinY {
		y1 = p.MinY
	}
	if y1 > p.MaxY {
		y1 = p.MaxY
	}
	return y1, true
}

// Contains reports whether (x, y) lies strictly inside the band with top y1
func (p *Paddle) Contains(x, y, y1 float64) bool {
	return p.BandLeft < x && x < p.BandRight && y1 < y && y < y1+p.Height
}

// Nudge is the horizontal push applied on a return, away from the paddle
func (p *Paddle) Nudge(offset float64) float64 {
	if p.Side == protocol.SideLeft {
		return offset
	}
	return -offset
}

// Placement is where the renderer draws the paddle for top edge y1
func (p *Paddle) Placement(y1 float64) protocol.PaddleState {
	return protocol.PaddleState{
		Side:   p.Side,
		X:      p.Anchor,
		Y:      y1,
		Width:  p.Width,
		Height: p.Height,
	}
}
