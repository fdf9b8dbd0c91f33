// Package assign solves minimum-cost bipartite assignment and enumerates
// assignments in non-decreasing cost order (Murty partitioning).
package assign

// infCost stands in for infinity in the cost matrix. Entries at or above
// it are forbidden and never selected.
const infCost int64 = 1 << 50

// solveJV solves the rectangular assignment problem for an n×m cost
// matrix using the Jonker–Volgenant variant of Kuhn–Munkres with
// potentials, O(n³). It returns rows[i] = column assigned to row i and
// the total cost, or ok=false when some row can only take a forbidden
// column. The algorithm is deterministic for identical inputs.
//
// For n < m the matrix is padded with forbidden rows internally; a
// padded row costs the same in every column, so the padding does not
// change which real columns the real rows take.
func solveJV(cost [][]int64) (rows []int, total int64, ok bool) {
	n := len(cost)
	if n == 0 {
		return nil, 0, true
	}
	m := len(cost[0])
	if m < n {
		return nil, 0, false
	}

	dim := n
	if m > dim {
		dim = m
	}

	// Padded square matrix. 1-indexed arrays keep the index arithmetic
	// of the augmenting path clean.
	c := make([][]int64, dim)
	for i := 0; i < dim; i++ {
		c[i] = make([]int64, dim)
		for j := 0; j < dim; j++ {
			if i < n && j < m {
				c[i][j] = cost[i][j]
			} else {
				c[i][j] = infCost
			}
		}
	}

	const unbounded = int64(1) << 60

	u := make([]int64, dim+1) // row potentials
	v := make([]int64, dim+1) // column potentials
	p := make([]int, dim+1)   // p[j] = row assigned to column j
	way := make([]int, dim+1) // previous column on the augmenting path
	minv := make([]int64, dim+1)
	used := make([]bool, dim+1)

	for i := 1; i <= dim; i++ {
		p[0] = i
		j0 := 0
		for j := 1; j <= dim; j++ {
			minv[j] = unbounded
			used[j] = false
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := unbounded
			j1 := -1
			for j := 1; j <= dim; j++ {
				if used[j] {
					continue
				}
				cur := c[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			if j1 < 0 {
				break
			}
			for j := 0; j <= dim; j++ {
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
		for j0 != 0 {
			p[j0] = p[way[j0]]
			j0 = way[j0]
		}
	}

	assigned := make([]int, dim)
	for i := range assigned {
		assigned[i] = -1
	}
	for j := 1; j <= dim; j++ {
		if p[j] > 0 {
			assigned[p[j]-1] = j - 1
		}
	}

	rows = make([]int, n)
	for i := 0; i < n; i++ {
		col := assigned[i]
		if col < 0 || col >= m || cost[i][col] >= infCost {
			return nil, 0, false
		}
		rows[i] = col
		total += cost[i][col]
	}
	return rows, total, true
}
