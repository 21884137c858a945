package form

// Group is a composite of named children kept in insertion order.
type Group struct {
	base
	names    []string
	children map[string]Control
}

// NewGroup creates an empty group.
func NewGroup(validators ...ValidatorFn) *Group {
	g := &Group{children: make(map[string]Control)}
	g.self = g
	g.validators = validators
	g.UpdateValueAndValidity(OnlySelf())
	return g
}

// Add registers c under name, replacing any previous child with that name.
func (g *Group) Add(name string, c Control) *Group {
	if old, ok := g.children[name]; ok {
		old.setParent(nil)
	} else {
		g.names = append(g.names, name)
	}
	c.setParent(g)
	g.children[name] = c
	g.UpdateValueAndValidity()
	return g
}

// Get returns the child registered under name.
func (g *Group) Get(name string) (Control, bool) {
	c, ok := g.children[name]
	return c, ok
}

// Remove detaches the named child.
func (g *Group) Remove(name string) bool {
	c, ok := g.children[name]
	if !ok {
		return false
	}
	c.setParent(nil)
	delete(g.children, name)
	for i, n := range g.names {
		if n == name {
			g.names = append(g.names[:i], g.names[i+1:]...)
			break
		}
	}
	g.UpdateValueAndValidity()
	return true
}

// Names returns the child names in insertion order.
func (g *Group) Names() []string {
	return append([]string(nil), g.names...)
}

// Child looks up a child by segment; index segments use their decimal name.
func (g *Group) Child(seg Segment) (Control, bool) {
	return g.Get(seg.Key())
}

func (g *Group) Children() []Control {
	out := make([]Control, 0, len(g.names))
	for _, n := range g.names {
		out = append(out, g.children[n])
	}
	return out
}

func (g *Group) Value() any {
	out := make(map[string]any, len(g.names))
	for _, n := range g.names {
		out[n] = g.children[n].Value()
	}
	return out
}

func (g *Group) Valid() bool {
	return g.errors == nil && childrenValid(g.Children())
}
