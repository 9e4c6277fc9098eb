package hafnian

// decodeSubset expands the subset index x over m pair slots into matched
// matrix positions: each set bit i contributes the sibling rows 2i and 2i+1,
// written into pos in ascending order. It returns the number of positions
// written — always even, equal to twice the popcount of x.
//
// Contracts:
//   - x < 1<<m (enforced by the dispatcher's enumeration; a violation is a
//     programming error, not a runtime condition).
//   - len(pos) ≥ 2m.
//
// Determinism: fixed slot order i = 0..m−1, so pos is always sorted.
// Complexity: O(m) time, zero allocations.
func decodeSubset(x uint64, m int, pos []int) int {
	var (
		i   int // pair-slot iterator
		cnt int // positions written so far
	)
	for i = 0; i < m; i++ {
		if x&(1<<uint(i)) == 0 {
			continue
		}
		pos[cnt] = 2 * i
		pos[cnt+1] = 2*i + 1
		cnt += 2
	}

	return cnt
}
