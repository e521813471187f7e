package dlx

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectSolutions(s *Solver) [][]int {
	var out [][]int
	for sol := range s.Solve() {
		cp := append([]int(nil), sol...)
		out = append(out, cp)
	}
	return out
}

func TestEmptyMatrixYieldsOneEmptySolution(t *testing.T) {
	s := New()
	sols := collectSolutions(s)
	require.Len(t, sols, 1)
	assert.Empty(t, sols[0])
}

// Knuth's canonical example matrix from "Dancing Links": seven columns, rows
//
//	A = {1, 4, 7}
//	B = {1, 4}
//	C = {4, 5, 7}
//	D = {3, 5, 6}
//	E = {2, 3, 6, 7}
//	F = {2, 7}
//
// whose unique exact cover is {B, D, F}.
//
// Each letter is independently optional under this API (AddRows always
// yields a column requiring exactly one of its k rows), so every letter is
// modelled as a take/skip pair sharing one identity column: "take" touches
// the real columns, "skip" touches nothing else. A solution therefore always
// contains exactly one row per letter; the letters actually "in" the cover
// are the ones whose take-row was picked.
func buildKnuthExample() (s *Solver, takeRowOf map[string]int) {
	s = New()
	takeRowOf = make(map[string]int)
	for _, letter := range []string{"A", "B", "C", "D", "E", "F"} {
		first := s.AddRows(2)
		takeRowOf[letter] = first // skip row is first+1, unreferenced
	}
	cols := [][]string{
		{"A", "B"},
		{"E", "F"},
		{"D", "E"},
		{"A", "B", "C"},
		{"C", "D"},
		{"D", "E"},
		{"A", "C", "E", "F"},
	}
	for _, colRows := range cols {
		ids := make([]int, len(colRows))
		for i, name := range colRows {
			ids[i] = takeRowOf[name]
		}
		s.AddColumn(ids)
	}
	return s, takeRowOf
}

func TestKnuthExampleUniqueSolution(t *testing.T) {
	s, takeRowOf := buildKnuthExample()
	sols := collectSolutions(s)
	require.Len(t, sols, 1)

	taken := takenLetters(sols[0], takeRowOf)
	sort.Strings(taken)
	assert.Equal(t, []string{"B", "D", "F"}, taken)
}

func takenLetters(solution []int, takeRowOf map[string]int) []string {
	taken := make(map[int]string, len(takeRowOf))
	for letter, id := range takeRowOf {
		taken[id] = letter
	}
	var letters []string
	for _, r := range solution {
		if letter, ok := taken[r]; ok {
			letters = append(letters, letter)
		}
	}
	return letters
}

func TestDeterminismAcrossRuns(t *testing.T) {
	build := func() *Solver {
		s, _ := buildKnuthExample()
		return s
	}

	first := collectSolutions(build())
	second := collectSolutions(build())
	assert.Equal(t, first, second)
}

func TestColumnWithZeroCountYieldsNoSolutions(t *testing.T) {
	s := New()
	first := s.AddRows(1)
	s.AddColumn([]int{first})
	// Remove the row's own nodes, driving the column's count to 0 while it
	// stays live in the header list.
	s.DeselectRow(first)

	sols := collectSolutions(s)
	assert.Empty(t, sols)
}

// buildIndependentHoleGroup returns a solver with a single conditional group
// of k independent "take or leave a hole" columns. Each column i is backed
// by a take_i/skip_i row pair sharing one Unique identity column (exactly
// one of the two must be chosen); only take_i also touches the conditional
// column. Covering the identity column itself (an unavoidable step taken
// before either alternative is picked) already drives the conditional
// column's count to 0 as a side effect of processing take_i's row, so the
// "skip" branch genuinely leaves a live, empty (count 0) conditional column
// behind — a real hole, not merely an untouched one.
func buildIndependentHoleGroup(holes, k int) *Solver {
	s := New()
	g := s.NewConditionalGroup(holes)
	for i := 0; i < k; i++ {
		first := s.AddRows(2)
		take := first
		s.AddConditionalColumn([]int{take}, g)
	}
	return s
}

func TestConditionalGroupBudgetAllowsTwoToTheKSolutions(t *testing.T) {
	const k = 3
	sols := collectSolutions(buildIndependentHoleGroup(k, k))
	assert.Len(t, sols, 1<<k)

	seen := make(map[string]bool)
	for _, sol := range sols {
		sort.Ints(sol)
		key := ""
		for _, r := range sol {
			key += string(rune('a' + r))
		}
		assert.False(t, seen[key], "duplicate solution %v", sol)
		seen[key] = true
		// Exactly one row per pair is chosen.
		assert.Len(t, sol, k)
	}
}

func TestConditionalGroupBudgetPrunesOverflow(t *testing.T) {
	const k = 3
	// holes = k-1 forbids the all-skip combination (k simultaneous holes),
	// so exactly one fewer than 2^k combinations remain feasible.
	sols := collectSolutions(buildIndependentHoleGroup(k-1, k))
	assert.Len(t, sols, 1<<k-1)
}

// TestConstraintColumnPrunesForbiddenCombination exercises AddConstraint: a
// Constraint column carries no coverage requirement of its own (it never
// joins a header list, so pick_best_column never selects it directly), but
// covering it as a side effect of a row that shares it still prunes any
// other row sharing that column. rowA is the sole row of its identity
// column, so it is always forced; takeB is one half of an independent
// take/skip pair that would otherwise make 2 solutions possible. The
// constraint column listing {rowA, takeB} means committing to rowA also
// covers the constraint column, which removes takeB from its own identity
// column — leaving skip_B as the only remaining choice there.
func TestConstraintColumnPrunesForbiddenCombination(t *testing.T) {
	s := New()
	rowA := s.AddRows(1)
	takeB := s.AddRows(2)
	s.AddConstraint([]int{rowA, takeB})

	sols := collectSolutions(s)
	require.Len(t, sols, 1)
	assert.Contains(t, sols[0], rowA)
	assert.NotContains(t, sols[0], takeB)
}

func TestSelectRowPreCommitsGivens(t *testing.T) {
	s, takeRowOf := buildKnuthExample()
	s.SelectRow(takeRowOf["B"])

	sols := collectSolutions(s)
	require.Len(t, sols, 1)
	taken := takenLetters(sols[0], takeRowOf)
	sort.Strings(taken)
	assert.Equal(t, []string{"B", "D", "F"}, taken)
}

func TestCoverUncoverRoundTripRestoresState(t *testing.T) {
	s, _ := buildKnuthExample()
	before := snapshot(s)

	col := s.pickBestColumn()
	require.NotEqual(t, noCandidate, col)
	s.removeColumn(col)
	s.resumeColumn(col)

	after := snapshot(s)
	assert.Equal(t, before, after)
}

type stateSnapshot struct {
	up, down, left, right []int
	counts                []int
	holes                 []int
}

func snapshot(s *Solver) stateSnapshot {
	counts := make([]int, len(s.columns))
	for i, c := range s.columns {
		counts[i] = c.count
	}
	holes := make([]int, len(s.groups))
	for i, g := range s.groups {
		holes[i] = g.currentHoles
	}
	return stateSnapshot{
		up:     append([]int(nil), s.up...),
		down:   append([]int(nil), s.down...),
		left:   append([]int(nil), s.left...),
		right:  append([]int(nil), s.right...),
		counts: counts,
		holes:  holes,
	}
}

func TestProgrammerErrorsPanic(t *testing.T) {
	t.Run("row out of range", func(t *testing.T) {
		s := New()
		s.AddRows(1)
		assert.Panics(t, func() { s.SelectRow(5) })
	})

	t.Run("unknown group", func(t *testing.T) {
		s := New()
		s.AddRows(1)
		assert.Panics(t, func() { s.AddConditionalColumn([]int{0}, 7) })
	})

	t.Run("empty column", func(t *testing.T) {
		s := New()
		assert.Panics(t, func() { s.AddColumn(nil) })
	})

	t.Run("mutate after solving", func(t *testing.T) {
		s := New()
		s.AddRows(1)
		it := s.Iter()
		_, _ = it.Next()
		assert.Panics(t, func() { s.AddRows(1) })
	})

	t.Run("row selected twice", func(t *testing.T) {
		s := New()
		r := s.AddRows(1)
		s.SelectRow(r)
		assert.Panics(t, func() { s.SelectRow(r) })
	})

	t.Run("row deselected after select", func(t *testing.T) {
		s := New()
		r := s.AddRows(1)
		s.SelectRow(r)
		assert.Panics(t, func() { s.DeselectRow(r) })
	})

	t.Run("row selected after deselect", func(t *testing.T) {
		s := New()
		r := s.AddRows(1)
		s.DeselectRow(r)
		assert.Panics(t, func() { s.SelectRow(r) })
	})
}
