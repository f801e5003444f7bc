package board

// PositionStep is the gap between consecutive card positions. The gap leaves
// room for midpoint reinsertion without rewriting every row.
const PositionStep = 1000

// NextPosition returns the position for a card appended to the end of a board.
// maxPos is the current maximum position in the collection, 0 when empty.
func NextPosition(maxPos int64) int64 {
	return maxPos + PositionStep
}

// Midpoint returns the position halfway between two neighboring cards.
// ok is false when the gap between the neighbors cannot fit another card,
// in which case the collection must be renormalized first.
func Midpoint(before, after int64) (pos int64, ok bool) {
	if after-before < 2 {
		return 0, false
	}
	return before + (after-before)/2, true
}

// Renormalize returns fresh gapped positions for n cards in display order.
func Renormalize(n int) []int64 {
	positions := make([]int64, n)
	for i := range positions {
		positions[i] = int64(i+1) * PositionStep
	}
	return positions
}
