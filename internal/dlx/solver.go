package dlx

// null is the sentinel used in place of a node, row or group index meaning
// "none". Go's signed int makes -1 as natural a sentinel as the design
// note's suggested "MAX of the index type"; everything downstream treats
// the two choices identically.
const null = -1

// noCandidate is returned by pickBestColumn when no column can be chosen:
// either the primary list is empty (a solution, handled earlier) or a
// primary Unique column has count 0 (a dead branch).
const noCandidate = -1

type columnKind int8

const (
	kindUnique columnKind = iota
	kindConditional
	kindConstraint
)

// column is a constraint: Unique columns require exactly one covering row,
// Conditional-unique columns allow at most one but may be left empty
// against their group's hole budget, and Constraint columns carry no
// coverage requirement at all (they exist only to prune rows that share a
// forbidden combination).
type column struct {
	kind  columnKind
	head  int
	count int
	group int // index into Solver.groups, meaningful only for kindConditional
}

// group is a conditional-unique constraint group: a bounded number of its
// member columns ("holes") may remain uncovered. Once that budget is
// saturated, chaining promotes the group's header list into the
// best-column heuristic so the search starts actively covering it.
type group struct {
	head         int
	holes        int
	currentHoles int
	chaining     bool
}

// row is a logical choice the solver may commit to.
type row struct {
	head    int
	chosen  bool
	removed bool // true once SelectRow or DeselectRow has acted on this row
}

// Solver owns the toroidal doubly-linked exact-cover matrix: the four
// neighbour arrays, the row/column/group metadata, and the explicit
// backtracking stack that drives search. All state is allocated during
// matrix construction and is never freed mid-search; cover/uncover relink
// existing nodes only.
type Solver struct {
	up, down, left, right []int
	nodeRow, nodeColumn   []int

	rows    []row
	columns []column
	groups  []group

	stack []frame

	solving bool
}

// New returns a solver with an empty matrix. Node 0 is the primary header
// list's anchor: a sentinel whose left/right loop back to itself until
// Unique columns are added.
func New() *Solver {
	s := &Solver{stack: []frame{{kind: frameDescend}}}
	s.newHeadNode()
	return s
}

func (s *Solver) newNode(rowID, columnID, rowHead, columnHead int) int {
	idx := len(s.up)
	s.up = append(s.up, null)
	s.down = append(s.down, null)
	s.left = append(s.left, null)
	s.right = append(s.right, null)
	s.nodeRow = append(s.nodeRow, rowID)
	s.nodeColumn = append(s.nodeColumn, columnID)

	if rowHead == null {
		s.left[idx] = idx
		s.right[idx] = idx
	} else {
		s.left[idx] = s.left[rowHead]
		s.right[idx] = rowHead
		s.right[s.left[idx]] = idx
		s.left[rowHead] = idx
	}
	if columnHead == null {
		s.up[idx] = idx
		s.down[idx] = idx
	} else {
		s.up[idx] = s.up[columnHead]
		s.down[idx] = columnHead
		s.down[s.up[idx]] = idx
		s.up[columnHead] = idx
	}
	return idx
}

func (s *Solver) newHeadNode() int {
	return s.newNode(null, null, null, null)
}

// newColumn allocates a column of the given kind and threads its head node
// into the header list determined by kind: the primary list for Unique,
// the owning group's list for Conditional-unique, no list for Constraint.
func (s *Solver) newColumn(kind columnKind, groupIdx, count int) int {
	colIdx := len(s.columns)
	var headerHead int
	switch kind {
	case kindUnique:
		headerHead = 0
	case kindConditional:
		headerHead = s.groups[groupIdx].head
	default:
		headerHead = null
	}
	head := s.newNode(null, colIdx, headerHead, null)
	s.columns = append(s.columns, column{kind: kind, head: head, count: count, group: groupIdx})
	return colIdx
}

// NewConditionalGroup allocates a new conditional-unique group with the
// given hole budget and returns its opaque id for use with
// AddConditionalColumn.
func (s *Solver) NewConditionalGroup(holes int) int {
	s.checkNotSolving()
	idx := len(s.groups)
	head := s.newHeadNode()
	s.groups = append(s.groups, group{head: head, holes: holes})
	return idx
}

// AddRows creates k new rows plus a fresh Unique "identity" column
// threading their heads, ensuring each of the k rows can be picked at most
// once. It returns the id of the first new row; subsequent rows are
// numbered consecutively.
func (s *Solver) AddRows(k int) int {
	s.checkNotSolving()
	firstRow := len(s.rows)
	col := s.newColumn(kindUnique, null, k)
	columnHead := s.columns[col].head
	for i := 0; i < k; i++ {
		head := s.newNode(len(s.rows), col, null, columnHead)
		s.rows = append(s.rows, row{head: head})
	}
	return firstRow
}

// AddColumn creates a Unique column containing one node per listed row.
func (s *Solver) AddColumn(rowIDs []int) {
	s.checkNotSolving()
	s.addColumnOfKind(kindUnique, null, rowIDs)
}

// AddConditionalColumn creates a Conditional-unique(group) column.
func (s *Solver) AddConditionalColumn(rowIDs []int, group int) {
	s.checkNotSolving()
	if group < 0 || group >= len(s.groups) {
		contractf(ErrUnknownGroup, "group %d", group)
	}
	s.addColumnOfKind(kindConditional, group, rowIDs)
}

// AddConstraint creates a Constraint column: not in any header list, used
// only to prune rows sharing a forbidden combination.
func (s *Solver) AddConstraint(rowIDs []int) {
	s.checkNotSolving()
	s.addColumnOfKind(kindConstraint, null, rowIDs)
}

func (s *Solver) addColumnOfKind(kind columnKind, group int, rowIDs []int) {
	if len(rowIDs) == 0 {
		contractf(ErrEmptyRowSet, "column has no rows")
	}
	col := s.newColumn(kind, group, len(rowIDs))
	columnHead := s.columns[col].head
	for _, r := range rowIDs {
		s.checkRowID(r)
		s.newNode(r, col, s.rows[r].head, columnHead)
	}
}

// SelectRow pre-commits row r: covers every column it participates in and
// marks it chosen. Used for givens and other forced choices; must be
// called only before the first call to Solve. Panics if r was already
// selected or deselected.
func (s *Solver) SelectRow(r int) {
	s.checkNotSolving()
	s.checkRowID(r)
	s.checkNotRemoved(r)
	head := s.rows[r].head
	nodes := []int{head}
	for n := s.right[head]; n != head; n = s.right[n] {
		nodes = append(nodes, n)
	}
	for _, n := range nodes {
		s.removeColumn(s.nodeColumn[n])
	}
	s.rows[r].chosen = true
	s.rows[r].removed = true
}

// DeselectRow permanently removes row r by detaching each of its nodes,
// decrementing the columns it touches. Unlike covering, the columns
// themselves are never spliced out of their header lists — only the row's
// own nodes disappear. Intended for disqualifying rows before search
// begins; using it mid-search is unsupported. Panics if r was already
// selected or deselected.
func (s *Solver) DeselectRow(r int) {
	s.checkNotSolving()
	s.checkRowID(r)
	s.checkNotRemoved(r)
	defer func() { s.rows[r].removed = true }()
	head := s.rows[r].head
	node := head
	for {
		if s.down[s.up[node]] == node {
			col := s.nodeColumn[node]
			s.columns[col].count--
			if s.columns[col].count == 0 && s.columns[col].kind == kindConditional {
				s.groups[s.columns[col].group].currentHoles++
			}
			s.down[s.up[node]] = s.down[node]
			s.up[s.down[node]] = s.up[node]
		}
		node = s.right[node]
		if node == head {
			break
		}
	}
}

func (s *Solver) checkRowID(r int) {
	if r < 0 || r >= len(s.rows) {
		contractf(ErrRowOutOfRange, "row %d (have %d rows)", r, len(s.rows))
	}
}

func (s *Solver) checkNotSolving() {
	if s.solving {
		contractf(ErrAlreadySolving, "construction call after Solve began")
	}
}

func (s *Solver) checkNotRemoved(r int) {
	if s.rows[r].removed {
		contractf(ErrRowAlreadyChosen, "row %d already selected or deselected", r)
	}
}
