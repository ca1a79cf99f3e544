package protocol

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
)

// Side identifies which paddle a hand controls
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// Opposite returns the other side of the arena
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// MarshalText encodes the side the way hand trackers label hands
func (s Side) MarshalText() ([]byte, error) {
	switch s {
	case SideLeft, SideRight:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("invalid side %d", int(s))
}

// UnmarshalText accepts "Left" or "Right" (case-insensitive first letter)
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Left", "left":
		*s = SideLeft
	case "Right", "right":
		*s = SideRight
	default:
		return fmt.Errorf("invalid side %q", text)
	}
	return nil
}

// Mode is the kind of match being played
type Mode int

const (
	ModeSolo Mode = 0
	ModeDuo  Mode = 1
)

func (m Mode) String() string {
	if m == ModeDuo {
		return "duo"
	}
	return "solo"
}

// MarshalText keeps modes readable in the /state endpoint
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "solo":
		*m = ModeSolo
	case "duo":
		*m = ModeDuo
	default:
		return fmt.Errorf("invalid mode %q", text)
	}
	return nil
}

// Phase is the coarse lifecycle stage of a session
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhasePlaying
	PhaseOver
)

var phaseName = map[Phase]string{
	PhaseNotStarted: "not_started",
	PhasePlaying:    "playing",
	PhaseOver:       "over",
}

func (p Phase) String() string {
	if name, ok := phaseName[p]; ok {
		return name
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// MarshalText keeps phases readable in the /state endpoint
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for phase, name := range phaseName {
		if name == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("invalid phase %q", text)
}

// Command is a discrete instruction from the player outside of hand tracking
type Command int

const (
	CmdNone Command = iota
	CmdRestart
	CmdStartSolo
	CmdStartDuo
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdRestart:
		return "restart"
	case CmdStartSolo:
		return "start_solo"
	case CmdStartDuo:
		return "start_duo"
	case CmdQuit:
		return "quit"
	}
	return "none"
}

// MessageType identifies the type of a recorded message
type MessageType int

const (
	MsgHandFrame MessageType = iota
	MsgCommand
	MsgTuning
)

// Message is the wrapper for all recorded messages
type Message struct {
	Type    MessageType
	Payload interface{}
}

// BoundingBox is a detected hand's box in arena pixels
type BoundingBox struct {
	X float64
	Y float64
	W float64
	H float64
}

// MarshalJSON writes the box as [x, y, w, h]
func (b BoundingBox) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]float64{b.X, b.Y, b.W, b.H})
}

// UnmarshalJSON reads the box from [x, y, w, h]
func (b *BoundingBox) UnmarshalJSON(data []byte) error {
	var v []float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("bbox must be [x, y, w, h]: %w", err)
	}
	if len(v) != 4 {
		return fmt.Errorf("bbox must have 4 numbers, got %d", len(v))
	}
	b.X, b.Y, b.W, b.H = v[0], v[1], v[2], v[3]
	return nil
}

// HandRecord is one detected hand for one tick
type HandRecord struct {
	Side Side        `json:"type"`
	BBox BoundingBox `json:"bbox"`
}

// HandFrame holds every hand detected in a single captured frame
type HandFrame struct {
	Hands []HandRecord `json:"hands"`
}

// BallState represents the ball's position and velocity
type BallState struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	VX float64 `json:"vx"`
	VY float64 `json:"vy"`
}

// PaddleState is where a paddle is drawn this tick
type PaddleState struct {
	Side   Side    `json:"side"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// GameState represents the complete observable game state
type GameState struct {
	Tick        int           `json:"tick"`
	Phase       Phase         `json:"phase"`
	Mode        Mode          `json:"mode"`
	Ball        BallState     `json:"ball"`
	Paddles     []PaddleState `json:"paddles"`
	LeftScore   int           `json:"left_score"`
	RightScore  int           `json:"right_score"`
	ArenaWidth  int           `json:"arena_width"`
	ArenaHeight int           `json:"arena_height"`
}

func init() {
	// Register all payload types with gob for recordings
	gob.Register(HandFrame{})
	gob.Register(HandRecord{})
	gob.Register(Command(0))
	gob.Register(Tuning{})
}
