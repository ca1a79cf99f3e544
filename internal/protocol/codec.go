package protocol

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

// Codec reads and writes recorded session messages
type Codec struct {
	enc *gob.Encoder
	dec *gob.Decoder
}

// NewEncoder creates an encoder-only codec, used when recording
func NewEncoder(w io.Writer) *Codec {
	return &Codec{
		enc: gob.NewEncoder(w),
	}
}

// NewDecoder creates a decoder-only codec, used when replaying
func NewDecoder(r io.Reader) *Codec {
	return &Codec{
		dec: gob.NewDecoder(r),
	}
}

// Encode writes a message
func (c *Codec) Encode(msg *Message) error {
	if c.enc == nil {
		return errors.New("codec has no encoder")
	}
	return c.enc.Encode(msg)
}

// EncodeFrame records the hands seen in one tick
func (c *Codec) EncodeFrame(frame HandFrame) error {
	return c.Encode(&Message{Type: MsgHandFrame, Payload: frame})
}

// EncodeCommand records a player command
func (c *Codec) EncodeCommand(cmd Command) error {
	return c.Encode(&Message{Type: MsgCommand, Payload: cmd})
}

// EncodeTuning records the arena the session was played in. It comes
// first in a recording.
func (c *Codec) EncodeTuning(t Tuning) error {
	return c.Encode(&Message{Type: MsgTuning, Payload: t})
}

// Decode reads a message. It returns io.EOF at the end of a recording.
func (c *Codec) Decode() (*Message, error) {
	if c.dec == nil {
		return nil, errors.New("codec has no decoder")
	}
	var msg Message
	if err := c.dec.Decode(&msg); err != nil {
		return nil, err
	}
	switch msg.Payload.(type) {
	case HandFrame:
		if msg.Type != MsgHandFrame {
			return nil, fmt.Errorf("message type %d carries a hand frame", msg.Type)
		}
	case Command:
		if msg.Type != MsgCommand {
			return nil, fmt.Errorf("message type %d carries a command", msg.Type)
		}
	case Tuning:
		if msg.Type != MsgTuning {
			return nil, fmt.Errorf("message type %d carries a tuning", msg.Type)
		}
	default:
		return nil, fmt.Errorf("unexpected payload %T", msg.Payload)
	}
	return &msg, nil
}
