package core

import "time"

// DefaultPlaybackPause is the wait between two replayed moves.
const DefaultPlaybackPause = 500 * time.Millisecond

// PlaybackStep reports what a Playback tick did.
type PlaybackStep int

const (
	PlaybackWaiting PlaybackStep = iota // animation running or pause not elapsed
	PlaybackIssued                      // a move was accepted and started
	PlaybackDone                        // every move has been issued and landed
)

// Playback replays a queue of moves through the normal TryMove path at a
// fixed cadence: it waits for the current flight to land, pauses, then
// issues the next move. The first move goes out without a pause.
type Playback struct {
	moves    []Move
	next     int
	pause    time.Duration
	wait     time.Duration
	lastTime time.Duration
	started  bool
}

// NewPlayback creates a playback of moves. A non-positive pause uses
// DefaultPlaybackPause.
func NewPlayback(moves []Move, pause time.Duration) *Playback {
	if pause <= 0 {
		pause = DefaultPlaybackPause
	}
	return &Playback{
		moves: append([]Move(nil), moves...),
		pause: pause,
	}
}

// Remaining returns how many moves have not been issued yet.
func (pb *Playback) Remaining() int {
	return len(pb.moves) - pb.next
}

// Done reports whether every move has been issued.
func (pb *Playback) Done() bool {
	return pb.next >= len(pb.moves)
}

// Tick issues the next move when the animator is idle and the pause has
// elapsed. A rejected move is not skipped: the error is returned and the
// caller abandons the playback.
func (pb *Playback) Tick(now time.Duration, p *Puzzle, a *Animator) (PlaybackStep, error) {
	if !pb.started {
		pb.started = true
		pb.lastTime = now
	}
	dt := now - pb.lastTime
	pb.lastTime = now
	if dt < 0 {
		dt = 0
	}

	if !a.Idle() || p.Moving() {
		return PlaybackWaiting, nil
	}
	if pb.Done() {
		return PlaybackDone, nil
	}
	if pb.wait > 0 {
		pb.wait -= dt
		if pb.wait > 0 {
			return PlaybackWaiting, nil
		}
	}

	mv := pb.moves[pb.next]
	accepted, err := p.TryMove(mv.From, mv.To)
	if err != nil {
		return PlaybackWaiting, err
	}
	pb.next++
	pb.wait = pb.pause
	a.Start(accepted, now)
	return PlaybackIssued, nil
}
