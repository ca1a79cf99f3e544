package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/diegok/handpong/internal/game"
	"github.com/diegok/handpong/internal/protocol"
	"github.com/diegok/handpong/internal/tracker"
)

// Replay re-runs a recording against the session as fast as it can be
// decoded and returns the last state. A recorded tuning replaces the
// session, so the same recording always ends in the same state whatever
// the current configuration says.
func (a *App) Replay(ctx context.Context, r io.Reader) (protocol.GameState, error) {
	dec := protocol.NewDecoder(r)
	state := a.session.Snapshot(nil)
	ticks := 0

	for {
		if err := ctx.Err(); err != nil {
			return state, err
		}

		msg, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return state, fmt.Errorf("reading recording at tick %d: %w", ticks, err)
		}

		switch p := msg.Payload.(type) {
		case protocol.Tuning:
			a.mu.Lock()
			if p != a.session.Tuning {
				a.logger.Info("using recorded tuning", "speed", p.Speed, "win_score", p.WinScore)
			}
			a.session = game.NewSession(p)
			a.prev = protocol.GameState{}
			state = a.session.Snapshot(nil)
			a.mu.Unlock()
		case protocol.HandFrame:
			a.mu.Lock()
			state = a.session.Step(p.Hands)
			a.detectSoundEvents(state)
			a.prev = state
			a.mu.Unlock()
			a.render(state)
			ticks++
		case protocol.Command:
			a.mu.Lock()
			a.apply(p)
			state = a.session.Snapshot(nil)
			a.mu.Unlock()
		}
	}

	a.logger.Info("replay finished", "ticks", ticks, "phase", state.Phase,
		"left", state.LeftScore, "right", state.RightScore)
	return state, nil
}

// Stream plays the hand frames of a recording into a running game's
// tracker endpoint, one frame per tick. Commands and the tuning cannot
// travel over the tracker and are skipped. It returns the number of frames sent.
func (a *App) Stream(ctx context.Context, r io.Reader, addr string) (int, error) {
	client, err := tracker.Dial(ctx, addr)
	if err != nil {
		return 0, err
	}
	defer client.Close()

	ticker := a.clock.NewTicker(a.cfg.TickInterval(), "app", "stream")
	defer ticker.Stop()

	dec := protocol.NewDecoder(r)
	sent := 0
	for {
		msg, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			a.logger.Info("stream finished", "frames", sent)
			return sent, nil
		}
		if err != nil {
			return sent, fmt.Errorf("reading recording at frame %d: %w", sent, err)
		}

		frame, ok := msg.Payload.(protocol.HandFrame)
		if !ok {
			a.logger.Debug("skipping message", "type", msg.Type)
			continue
		}

		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		case <-ticker.C:
		}
		if err := client.Send(frame); err != nil {
			return sent, fmt.Errorf("sending frame %d: %w", sent, err)
		}
		sent++
	}
}
