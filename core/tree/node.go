package tree

import "github.com/sel-lang/sel/core/value"

// NodeSide names a mutable link on a Node.
type NodeSide int

const (
	Left NodeSide = iota
	Right
	Parent
)

func (s NodeSide) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Parent:
		return "Parent"
	default:
		return "NodeSide(?)"
	}
}

// Node is one entry in the tree's arena. Its own index is stable for the
// arena's lifetime; left/right/parent are mutated in place during
// compilation and never touched again afterward (spec.md §3 Lifecycle).
type Node struct {
	OwnIndex  int
	Operation Operation
	DataType  value.DataType
	Value     *int // index into the data heap, nil if unset

	Left   *int
	Right  *int
	Parent *int
}

// NewNode allocates a Node with no links set.
func NewNode(ownIndex int, op Operation, dt value.DataType, val *int) Node {
	return Node{OwnIndex: ownIndex, Operation: op, DataType: dt, Value: val}
}

func intPtr(i int) *int { return &i }

// IntPtr is exported for callers outside this package constructing links.
func IntPtr(i int) *int { return intPtr(i) }

// Change is a deferred mutation to one node's side, applied in a batch at
// the end of a resolve step (spec.md §9 "Change batching").
type Change struct {
	Index   int
	NewVal  *int
	Side    NodeSide
}

// ApplyChanges mutates nodes in place according to changes, in order.
func ApplyChanges(nodes []Node, changes []Change) {
	for _, c := range changes {
		if c.Index < 0 || c.Index >= len(nodes) {
			continue
		}
		n := &nodes[c.Index]
		switch c.Side {
		case Left:
			n.Left = c.NewVal
		case Right:
			n.Right = c.NewVal
		case Parent:
			n.Parent = c.NewVal
		}
	}
}

// NoneLeftRight returns the two Changes that clear both left and right of
// index (applied when a value-precedence node is "pulled in" as a leaf).
func NoneLeftRight(index int) []Change {
	return []Change{
		{Index: index, NewVal: nil, Side: Left},
		{Index: index, NewVal: nil, Side: Right},
	}
}
