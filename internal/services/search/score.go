package search

import "github.com/mcoot/connectfour/internal/model"

// Score returns the minimax value of board for the computer with
// depthRemaining plies left to explore.
//
// A computer win scores depthRemaining and a human win scores its negation,
// so faster wins and slower losses are preferred. Draws and positions at the
// horizon score 0; there is no static evaluation of unfinished positions.
// The board is never modified.
func Score(board *model.Board, depthRemaining int, maximizing bool) int {
	return newScorer().score(board, depthRemaining, maximizing)
}

// nodeKey identifies a searched node. The value of a node depends only on
// these three fields, so equal keys always have equal scores.
type nodeKey struct {
	position       string
	depthRemaining int
	maximizing     bool
}

// scorer runs the minimax recursion, remembering the value of every node so
// that move orders reaching the same position are only searched once
type scorer struct {
	memo map[nodeKey]int // nil disables memoisation
	hits int
}

func newScorer() *scorer {
	return &scorer{memo: make(map[nodeKey]int)}
}

func (s *scorer) score(board *model.Board, depthRemaining int, maximizing bool) int {
	switch board.Winner() {
	case model.Computer:
		return depthRemaining
	case model.Human:
		return -depthRemaining
	}

	moves := board.LegalMoves()
	if len(moves) == 0 || depthRemaining <= 0 {
		return 0
	}

	var key nodeKey
	if s.memo != nil {
		key = nodeKey{position: board.Encode(), depthRemaining: depthRemaining, maximizing: maximizing}
		if v, ok := s.memo[key]; ok {
			s.hits++
			return v
		}
	}

	mover := model.Human
	if maximizing {
		mover = model.Computer
	}

	best := 0
	for i, col := range moves {
		child := board.Copy()
		_ = child.Place(col, mover) // col comes from LegalMoves
		score := s.score(child, depthRemaining-1, !maximizing)
		switch {
		case i == 0:
			best = score
		case maximizing && score > best:
			best = score
		case !maximizing && score < best:
			best = score
		}
	}

	if s.memo != nil {
		s.memo[key] = best
	}
	return best
}
