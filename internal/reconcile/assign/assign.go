// Package assign solves minimum-cost bipartite assignment problems.
package assign

import "math"

// Solve computes a minimum-cost perfect matching over the given cost matrix
// (Kuhn-Munkres with potentials, O(n^3)) and returns, for each row, the column
// assigned to it, or -1 when the row was matched against internal padding.
//
// The input may be rectangular or ragged: it is padded to a square matrix with
// the largest cost present, so callers never have to build padded matrices by
// hand. An assignment to a padded cell is never reported as a real pairing.
func Solve(costs [][]int) []int {
	rows := len(costs)

	cols := 0
	maxCost := 0

	for _, r := range costs {
		if len(r) > cols {
			cols = len(r)
		}

		for _, c := range r {
			if c > maxCost {
				maxCost = c
			}
		}
	}

	assigned := make([]int, rows)
	for i := range assigned {
		assigned[i] = -1
	}

	if rows == 0 || cols == 0 {
		return assigned
	}

	n := rows
	if cols > n {
		n = cols
	}

	// Square 1-indexed working copy, padded with the max cost.
	a := make([][]int, n+1)
	for i := 1; i <= n; i++ {
		a[i] = make([]int, n+1)
		for j := 1; j <= n; j++ {
			a[i][j] = maxCost
			if i <= rows && j <= len(costs[i-1]) {
				a[i][j] = costs[i-1][j-1]
			}
		}
	}

	// u, v are the row/column potentials; p[j] is the row matched to column j.
	u := make([]int, n+1)
	v := make([]int, n+1)
	p := make([]int, n+1)
	way := make([]int, n+1)

	for i := 1; i <= n; i++ {
		p[0] = i
		j0 := 0

		minv := make([]int, n+1)
		used := make([]bool, n+1)

		for j := range minv {
			minv[j] = math.MaxInt
		}

		// Grow an augmenting path from row i until a free column is reached.
		for {
			used[j0] = true

			i0 := p[j0]
			delta := math.MaxInt
			j1 := 0

			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}

				cur := a[i0][j] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}

				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the augmenting path.
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	for j := 1; j <= n; j++ {
		i := p[j]
		if i < 1 || i > rows {
			continue
		}

		// Columns beyond a row's own width are padding for that row.
		if j > len(costs[i-1]) {
			continue
		}

		assigned[i-1] = j - 1
	}

	return assigned
}

// TotalCost sums the cost of an assignment as returned by Solve, counting only
// real (non-padded) pairings.
func TotalCost(costs [][]int, assigned []int) int {
	total := 0

	for i, j := range assigned {
		if j < 0 {
			continue
		}

		total += costs[i][j]
	}

	return total
}
