package core

import "fmt"

// Solve returns the moves that bring every disc onto dest, starting from an
// arbitrary legal state. state lists the disc IDs of each peg bottom to top,
// where ID 1 is the largest disc. state is not modified.
//
// For each disc from largest to smallest: if it is not on the target peg, the
// smaller discs are first moved to a spare peg (neither its peg nor the
// target), then it moves; afterwards the smaller discs move onto the target.
// From the canonical start this yields 2^n - 1 moves.
func Solve(state [][]int, discCount, dest int) ([]Move, error) {
	if discCount < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiscCount, discCount)
	}
	if len(state) < 3 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPegCount, len(state))
	}
	if dest < 1 || dest > len(state) {
		return nil, fmt.Errorf("%w: destination %d", ErrPegOutOfRange, dest)
	}

	s := &solver{
		pegs:  make([][]int, len(state)),
		where: make([]int, discCount+1),
	}
	seen := 0
	for i, stack := range state {
		s.pegs[i] = append([]int(nil), stack...)
		for j, id := range stack {
			if id < 1 || id > discCount || s.where[id] != 0 {
				return nil, fmt.Errorf("hanoi: invalid disc %d in state", id)
			}
			if j > 0 && stack[j-1] > id {
				return nil, fmt.Errorf("hanoi: disc %d rests on smaller disc %d", id, stack[j-1])
			}
			s.where[id] = i + 1
			seen++
		}
	}
	if seen != discCount {
		return nil, fmt.Errorf("hanoi: state holds %d of %d discs", seen, discCount)
	}

	s.solve(1, dest)
	return s.moves, nil
}

// SolveFresh returns the optimal solution for n discs all starting on peg 1
// of a three-peg board.
func SolveFresh(n, dest int) ([]Move, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiscCount, n)
	}
	start := make([]int, n)
	for i := range start {
		start[i] = i + 1
	}
	return Solve([][]int{start, {}, {}}, n, dest)
}

// OptimalMoves returns 2^n - 1.
func OptimalMoves(n int) int {
	if n < 1 {
		return 0
	}
	return 1<<n - 1
}

type solver struct {
	pegs  [][]int
	where []int // disc ID -> 1-based peg
	moves []Move
}

// solve brings disc id and every smaller disc onto dest.
func (s *solver) solve(id, dest int) {
	n := len(s.where) - 1
	if id > n {
		return
	}
	if from := s.where[id]; from != dest {
		spare := s.spare(from, dest)
		s.solve(id+1, spare)
		s.move(from, dest)
	}
	s.solve(id+1, dest)
}

func (s *solver) spare(a, b int) int {
	for i := 1; i <= len(s.pegs); i++ {
		if i != a && i != b {
			return i
		}
	}
	return 0
}

func (s *solver) move(from, to int) {
	src := s.pegs[from-1]
	id := src[len(src)-1]
	s.pegs[from-1] = src[:len(src)-1]
	s.pegs[to-1] = append(s.pegs[to-1], id)
	s.where[id] = to
	s.moves = append(s.moves, Move{From: from, To: to})
}
