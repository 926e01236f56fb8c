package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors. A *MoveError matches the sentinel of its reason via errors.Is.
var (
	ErrAlreadyMoving = errors.New("hanoi: a disc is already moving")
	ErrSourceEmpty   = errors.New("hanoi: source rod is empty")
	ErrDestTooSmall  = errors.New("hanoi: destination disc is smaller")

	// ErrPegOutOfRange reports a peg index outside [1, N]. It is a caller bug,
	// not a player mistake, and leaves the puzzle untouched.
	ErrPegOutOfRange = errors.New("hanoi: peg index out of range")

	ErrInvalidDiscCount = errors.New("hanoi: invalid disc count")
	ErrInvalidPegCount  = errors.New("hanoi: invalid peg count")
	ErrInvalidWinPegs   = errors.New("hanoi: invalid winning peg set")
	ErrInvalidLayout    = errors.New("hanoi: invalid layout")
)

// MoveReason is why a move was rejected.
type MoveReason int

const (
	AlreadyMoving MoveReason = iota + 1
	SourceEmpty
	DestTooSmall
)

// String returns the reason name.
func (r MoveReason) String() string {
	switch r {
	case AlreadyMoving:
		return "AlreadyMoving"
	case SourceEmpty:
		return "SourceEmpty"
	case DestTooSmall:
		return "DestTooSmall"
	default:
		return "Unknown"
	}
}

func (r MoveReason) sentinel() error {
	switch r {
	case AlreadyMoving:
		return ErrAlreadyMoving
	case SourceEmpty:
		return ErrSourceEmpty
	case DestTooSmall:
		return ErrDestTooSmall
	default:
		return nil
	}
}

// MoveError is a rejected move. Rejections never change puzzle state.
type MoveError struct {
	Reason MoveReason
	From   int
	To     int
}

// Error returns the message shown to the player.
func (e *MoveError) Error() string {
	switch e.Reason {
	case AlreadyMoving:
		return "You can move only one disc at a time!"
	case SourceEmpty:
		return fmt.Sprintf("There is no disc on the %s rod!", Ordinal(e.From))
	case DestTooSmall:
		return fmt.Sprintf("You cannot move this disc, because it is bigger than the destination disc "+
			"(the disc on the top of the %s rod)!", Ordinal(e.To))
	default:
		return "hanoi: move rejected"
	}
}

// Is reports whether target is the sentinel for e's reason.
func (e *MoveError) Is(target error) bool {
	s := e.Reason.sentinel()
	return s != nil && target == s
}

// Ordinal renders n as an English ordinal number: 1st, 2nd, 3rd, 4th, 11th.
func Ordinal(n int) string {
	if n < 0 {
		n = -n
	}
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
