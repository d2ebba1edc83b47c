// SPDX-License-Identifier: MIT

package apsp

// SuccessorsFromPredecessors converts predecessor rows into successor form.
//
// prev is row-major n×n: prev[s*n+v] is the node before v on the shortest
// path from s (-1 for s itself and for unreachable v). The result next has
// next[s*n+v] = first hop from s toward v, next[s*n+s] = s, and -1 where v is
// unreachable from s.
//
// Each row is resolved with memoisation, so a row costs O(n) amortised.
//
// Errors: ErrBrokenWitness when a predecessor chain is longer than n
// (a cycle in the tree, which only a negative cycle can produce).
func SuccessorsFromPredecessors(n int, prev []int) ([]int, error) {
	const unknown = -2

	next := make([]int, n*n)
	var i int
	for i = range next {
		next[i] = unknown
	}

	var (
		s, v, w, hop int
		row, nrow    []int
		chain        = make([]int, 0, n)
	)
	for s = 0; s < n; s++ {
		row = prev[s*n : (s+1)*n]
		nrow = next[s*n : (s+1)*n]
		nrow[s] = s

		for v = 0; v < n; v++ {
			if nrow[v] != unknown {
				continue
			}

			// Climb toward s until the hop is known or the chain ends.
			chain = chain[:0]
			w = v
			for nrow[w] == unknown && row[w] != s && row[w] != noNode {
				chain = append(chain, w)
				if len(chain) > n {
					return nil, ErrBrokenWitness
				}
				w = row[w]
			}

			switch {
			case nrow[w] != unknown:
				hop = nrow[w]
			case row[w] == s:
				hop = w
			default:
				hop = noNode
			}
			nrow[w] = hop
			for _, w = range chain {
				nrow[w] = hop
			}
		}
	}

	return next, nil
}
