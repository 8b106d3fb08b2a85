package intervaltree

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestTree_RandomizedAgainstOracle drives a seeded add/remove workload and
// cross-checks every query against a linear scan over the live intervals,
// verifying the structural invariants after each mutation.
func TestTree_RandomizedAgainstOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	type span struct{ start, end float64 }
	oracle := make(map[string]span)
	tr := New[float64]()
	next := 0

	pointOracle := func(p float64) []string {
		var want []string
		for name, s := range oracle {
			if s.start <= p && p <= s.end {
				want = append(want, name)
			}
		}
		sort.Strings(want)
		return want
	}
	rangeOracle := func(s, e float64) []string {
		var want []string
		for name, sp := range oracle {
			if sp.start <= e && sp.end >= s {
				want = append(want, name)
			}
		}
		sort.Strings(want)
		return want
	}

	for op := 0; op < 400; op++ {
		if len(oracle) > 0 && rng.Intn(3) == 0 {
			names := make([]string, 0, len(oracle))
			for name := range oracle {
				names = append(names, name)
			}
			sort.Strings(names)
			name := names[rng.Intn(len(names))]
			require.NoError(t, tr.Remove(name), "op %d", op)
			delete(oracle, name)
		} else {
			a := float64(rng.Intn(200))
			b := float64(rng.Intn(200))
			if a == b {
				b = a + 1
			}
			if a > b {
				a, b = b, a
			}
			name := fmt.Sprintf("iv%03d", next)
			next++
			require.NoError(t, tr.Add(v(a), v(b), name), "op %d", op)
			oracle[name] = span{start: a, end: b}
		}

		checkStructure(t, tr)
		require.Equal(t, len(oracle), tr.Len(), "op %d", op)

		for i := 0; i < 8; i++ {
			p := float64(rng.Intn(401)) / 2 // hits endpoints and midpoints
			if diff := cmp.Diff(pointOracle(p), tr.TestPoint(v(p))); diff != "" {
				t.Fatalf("op %d: TestPoint(%v) mismatch (-want +got):\n%s", op, p, diff)
			}
		}
		for i := 0; i < 4; i++ {
			s := float64(rng.Intn(200))
			e := s + 1 + float64(rng.Intn(50))
			got, err := tr.TestRange(v(s), v(e))
			require.NoError(t, err)
			if diff := cmp.Diff(rangeOracle(s, e), got); diff != "" {
				t.Fatalf("op %d: TestRange(%v,%v) mismatch (-want +got):\n%s", op, s, e, diff)
			}
		}
	}

	// Drain whatever is left and verify the tree compacts all the way down.
	for _, name := range tr.Names() {
		require.NoError(t, tr.Remove(name))
		checkStructure(t, tr)
	}
	require.True(t, tr.root.isLeaf(), "drained tree should be a single leaf")
	require.Empty(t, mustRange(t, tr, NegInf[float64](), PosInf[float64]()))
}
