package game

import "github.com/diegok/handpong/internal/protocol"

// Ball moves a fixed displacement per tick. Reflections only flip signs.
type Ball struct {
	X, Y   float64
	VX, VY float64
}

func NewBall(x, y, speed float64) *Ball {
	b := &Ball{}
	b.Reset(x, y, speed)
	return b
}

// Move advances the ball by its velocity
func (b *Ball) Move() {
	b.X += b.VX
	b.Y += b.VY
}

// BounceVertical reverses vertical direction (wall bounce)
func (b *Ball) BounceVertical() {
	b.VY = -b.VY
}

// BounceHorizontal reverses horizontal direction (paddle return)
func (b *Ball) BounceHorizontal() {
	b.VX = -b.VX
}

// Reset places the ball at x, y heading down and to the right
func (b *Ball) Reset(x, y, speed float64) {
	b.X = x
	b.Y = y
	b.VX = speed
	b.VY = speed
}

// State returns the ball as a protocol value
func (b *Ball) State() protocol.BallState {
	return protocol.BallState{X: b.X, Y: b.Y, VX: b.VX, VY: b.VY}
}
