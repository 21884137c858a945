package form

import "strconv"

// Segment addresses one child of a composite, either by name or by index.
type Segment struct {
	name    string
	index   int
	isIndex bool
}

// Name returns a name segment.
func Name(s string) Segment { return Segment{name: s} }

// Index returns an index segment.
func Index(i int) Segment { return Segment{index: i, isIndex: true} }

// Index reports the segment's index, if it is an index segment.
func (s Segment) Index() (int, bool) { return s.index, s.isIndex }

// Key is the name used for group lookups: the name, or the decimal index.
func (s Segment) Key() string {
	if s.isIndex {
		return strconv.Itoa(s.index)
	}
	return s.name
}

func (s Segment) String() string {
	if s.isIndex {
		return "[" + strconv.Itoa(s.index) + "]"
	}
	return s.name
}

// Get walks segs from root. It fails when a segment does not resolve or a
// leaf is reached before the segments are exhausted.
func Get(root Control, segs ...Segment) (Control, bool) {
	cur := root
	for _, seg := range segs {
		parent, ok := cur.(Composite)
		if !ok {
			return nil, false
		}
		if cur, ok = parent.Child(seg); !ok {
			return nil, false
		}
	}
	return cur, cur != nil
}

// Walk calls fn for every control under root, children before their parent.
func Walk(root Control, fn func(Control)) {
	if root == nil {
		return
	}
	if c, ok := root.(Composite); ok {
		for _, child := range c.Children() {
			Walk(child, fn)
		}
	}
	fn(root)
}
